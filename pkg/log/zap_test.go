package log_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"task-list-manager/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInitWritesToOutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := log.Init(log.ZapConfig{
		Level:       "debug",
		Mode:        log.ModeProduction,
		Encoding:    log.EncodingJSON,
		OutputPaths: []string{path},
	})
	l.Infof(log.WithRequestID(context.Background(), "abc"), "hello %s", "world")

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), "hello world") {
		t.Errorf("expected message in log file, got %s", b)
	}
	if !strings.Contains(string(b), `"request_id":"abc"`) {
		t.Errorf("expected request_id field, got %s", b)
	}
}

func TestInitUnknownLevel(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "verbose", Mode: log.ModeDevelopment})
	// Should not panic on any level.
	l.Debug(context.Background(), "debug")
	l.Warn(context.Background(), "warn")
}
