package web

import (
	"embed"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-list-manager/internal/board"
	"task-list-manager/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Defaults for Config zero values.
const (
	DefaultCookieName = "task_session"
	DefaultMaxEntries = 1000
	DefaultSessionTTL = 24 * time.Hour
)

// Handler is the public interface for the server-rendered task page.
type Handler interface {
	Index(c *gin.Context)
	Submit(c *gin.Context)
	Edit(c *gin.Context)
	CancelEdit(c *gin.Context)
	Toggle(c *gin.Context)
	DeletePrompt(c *gin.Context)
	Delete(c *gin.Context)
	Filter(c *gin.Context)
}

// Config configures the page sessions.
type Config struct {
	CookieName         string
	MaxEntries         int
	SessionTTL         time.Duration
	NotificationExpiry time.Duration
}

type handler struct {
	l          log.Logger
	board      *board.Board
	tpl        *template.Template
	sessions   *expirable.LRU[string, *board.Session]
	cookieName string
	ttl        time.Duration
	notifyFor  time.Duration
}

// New creates the web handler. Sessions live in an expiring LRU keyed by a cookie.
func New(l log.Logger, b *board.Board, cfg Config) *handler {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}

	tpl := template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"))

	return &handler{
		l:     l,
		board: b,
		tpl:   tpl,
		sessions: expirable.NewLRU(cfg.MaxEntries, func(_ string, s *board.Session) {
			s.Close()
		}, cfg.SessionTTL),
		cookieName: cfg.CookieName,
		ttl:        cfg.SessionTTL,
		notifyFor:  cfg.NotificationExpiry,
	}
}
