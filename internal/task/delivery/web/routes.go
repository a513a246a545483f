package web

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the page and its form actions.
func RegisterRoutes(r gin.IRouter, h Handler) {
	r.GET("/", h.Index)
	r.GET("/filter/:filter", h.Filter)
	r.POST("/edit/cancel", h.CancelEdit)

	tasks := r.Group("/tasks")
	{
		tasks.POST("", h.Submit)
		tasks.GET("/:id/edit", h.Edit)
		tasks.POST("/:id/toggle", h.Toggle)
		tasks.GET("/:id/delete", h.DeletePrompt)
		tasks.POST("/:id/delete", h.Delete)
	}
}
