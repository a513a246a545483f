package httpserver

import (
	"context"

	taskHTTP "task-list-manager/internal/task/delivery/http"
	"task-list-manager/internal/task/delivery/web"
)

// setupTaskDomain registers the JSON API under /api/v1 and the page at /.
func (srv HTTPServer) setupTaskDomain(ctx context.Context) error {
	if srv.taskHandler != nil {
		taskHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), srv.taskHandler)
		srv.l.Infof(ctx, "Task API registered at /api/v1/tasks")
	} else {
		srv.l.Infof(ctx, "Task API handler not configured, skipping /api/v1/tasks")
	}

	if srv.webHandler != nil {
		web.RegisterRoutes(srv.gin, srv.webHandler)
		srv.l.Infof(ctx, "Task page registered at /")
	} else {
		srv.l.Infof(ctx, "Web handler not configured, skipping page routes")
	}

	return nil
}
