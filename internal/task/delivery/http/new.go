package http

import (
	"github.com/gin-gonic/gin"

	"task-list-manager/internal/task"
	"task-list-manager/pkg/log"
)

// Handler is the public interface for the task JSON API.
type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Toggle(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain. Dates are parsed and
// decorated by the use case.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
