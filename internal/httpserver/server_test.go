package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-list-manager/internal/board"
	"task-list-manager/internal/middleware"
	taskHTTP "task-list-manager/internal/task/delivery/http"
	"task-list-manager/internal/task/delivery/web"
	"task-list-manager/internal/task/repository/kv"
	"task-list-manager/internal/task/usecase"
	"task-list-manager/pkg/datemath"
	"task-list-manager/pkg/kvstore"
	"task-list-manager/pkg/log"
)

func newTestServer(t *testing.T, ready func(context.Context) error) *HTTPServer {
	t.Helper()
	return newTestServerIn(t, "test", ready)
}

func newTestServerIn(t *testing.T, environment string, ready func(context.Context) error) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	dates, _ := datemath.NewParser("UTC")
	uc := usecase.New(l, kv.New(kvstore.NewMemory(), kv.DefaultKey, dates.Location(), l), dates, nil)

	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: environment,
		Middleware:  middleware.New(l, 0),
		Ready:       ready,
		TaskHandler: taskHTTP.New(l, uc),
		WebHandler:  web.New(l, board.New(l, uc), web.Config{}),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		path string
		want int
	}{
		{path: "/health", want: http.StatusOK},
		{path: "/ready", want: http.StatusOK},
		{path: "/live", want: http.StatusOK},
		{path: "/api/v1/tasks", want: http.StatusOK},
		{path: "/", want: http.StatusOK},
		{path: "/nope", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
			if w.Header().Get(middleware.HeaderRequestID) == "" {
				t.Error("expected request id header")
			}
		})
	}
}

func TestSwaggerHiddenInProduction(t *testing.T) {
	tests := map[string]int{
		"development": http.StatusOK,
		"production":  http.StatusNotFound,
	}
	for env, want := range tests {
		t.Run(env, func(t *testing.T) {
			srv := newTestServerIn(t, env, nil)
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
			if w.Code != want {
				t.Errorf("expected %d, got %d", want, w.Code)
			}
		})
	}
}

func TestNoRouteIsJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("expected JSON body, got %q", ct)
	}
}

func TestPanicIsRecovered(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.gin.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Something went wrong") {
		t.Errorf("expected generic error body, got %s", w.Body.String())
	}
}

func TestReadyFailure(t *testing.T) {
	srv := newTestServer(t, func(context.Context) error { return errors.New("store down") })

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestNewValidation(t *testing.T) {
	l := log.NewNop()
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "No port", cfg: Config{Mode: gin.TestMode}},
		{name: "No mode", cfg: Config{Port: 8080}},
		{name: "No handlers", cfg: Config{Port: 8080, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(l, tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	l := log.NewNop()
	srv, err := New(l, Config{
		Port:       18089,
		Mode:       gin.TestMode,
		Middleware: middleware.New(l, 0),
		WebHandler: web.New(l, board.New(l, usecase.New(l, kv.New(kvstore.NewMemory(), "", time.UTC, l), mustParser(t), nil)), web.Config{}),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(ShutdownTimeout):
		t.Fatal("Run did not return after cancel")
	}
}

func mustParser(t *testing.T) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}
