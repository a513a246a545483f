package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-list-manager/internal/board"
	"task-list-manager/pkg/notify"
)

// session returns the caller's board session, creating one and setting the
// cookie when the cookie is missing or its session expired.
func (h *handler) session(c *gin.Context) *board.Session {
	if id, err := c.Cookie(h.cookieName); err == nil {
		if s, ok := h.sessions.Get(id); ok {
			return s
		}
	}

	id := uuid.NewString()
	s := h.board.NewSession(notify.New(h.notifyFor))
	h.sessions.Add(id, s)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, id, int(h.ttl.Seconds()), "/", "", false, true)
	return s
}
