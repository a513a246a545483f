package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"task-list-manager/internal/board"
	"task-list-manager/internal/model"
	"task-list-manager/internal/task"
)

type submitForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	DueDate     string `form:"dueDate"`
}

// Index renders the full page for the caller's session.
func (h *handler) Index(c *gin.Context) {
	h.render(c, h.session(c), http.StatusOK)
}

// Submit adds or updates a task from the form. Rejected input re-renders the
// page with the entered values and a 422.
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	s := h.session(c)

	var form submitForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	err := s.Dispatch(ctx, board.Submit{Form: board.Form{
		Title:       form.Title,
		Description: form.Description,
		DueDate:     form.DueDate,
	}})
	if task.IsValidationError(err) {
		h.render(c, s, http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "web.Submit: %v", err)
	}
	h.redirectHome(c)
}

// Edit loads a task into the form.
func (h *handler) Edit(c *gin.Context) {
	h.dispatchByID(c, func(id int64) board.Action { return board.BeginEdit{ID: id} })
}

// CancelEdit leaves edit mode without saving.
func (h *handler) CancelEdit(c *gin.Context) {
	h.dispatch(c, board.CancelEdit{})
}

// Toggle flips a task between pending and completed.
func (h *handler) Toggle(c *gin.Context) {
	h.dispatchByID(c, func(id int64) board.Action { return board.ToggleComplete{ID: id} })
}

// DeletePrompt renders the page with the delete confirmation for a task.
func (h *handler) DeletePrompt(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.processID(c)
	if !ok {
		return
	}

	s := h.session(c)
	if err := s.Dispatch(ctx, board.RequestDelete{ID: id}); err != nil {
		h.l.Errorf(ctx, "web.DeletePrompt: %v", err)
	}
	if !s.State().Confirming() {
		h.redirectHome(c)
		return
	}
	h.render(c, s, http.StatusOK)
}

// Delete answers the confirmation: confirm=yes removes the task, anything else keeps it.
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.processID(c)
	if !ok {
		return
	}

	// Only the task shown on the confirmation page can be removed.
	s := h.session(c)
	if s.State().PendingDelete != id {
		h.redirectHome(c)
		return
	}

	var answer board.Action = board.DeclineDelete{}
	if c.PostForm("confirm") == "yes" {
		answer = board.ConfirmDelete{}
	}
	if err := s.Dispatch(ctx, answer); err != nil {
		h.l.Errorf(ctx, "web.Delete: %v", err)
	}
	h.redirectHome(c)
}

// Filter switches the visible subset.
func (h *handler) Filter(c *gin.Context) {
	ctx := c.Request.Context()
	s := h.session(c)

	if err := s.Dispatch(ctx, board.SetFilter{Filter: model.Filter(c.Param("filter"))}); err != nil {
		c.String(http.StatusBadRequest, "unknown filter")
		return
	}
	h.redirectHome(c)
}

func (h *handler) dispatch(c *gin.Context, a board.Action) {
	ctx := c.Request.Context()
	if err := h.session(c).Dispatch(ctx, a); err != nil {
		h.l.Errorf(ctx, "web.dispatch %T: %v", a, err)
	}
	h.redirectHome(c)
}

func (h *handler) dispatchByID(c *gin.Context, build func(id int64) board.Action) {
	id, ok := h.processID(c)
	if !ok {
		return
	}
	h.dispatch(c, build(id))
}

func (h *handler) processID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "invalid task id")
		return 0, false
	}
	return id, true
}

func (h *handler) render(c *gin.Context, s *board.Session, status int) {
	ctx := c.Request.Context()

	v, err := s.View(ctx)
	if err != nil {
		h.l.Errorf(ctx, "web.render: %v", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.Render(status, render.HTML{Template: h.tpl, Name: "page", Data: newPageData(v)})
}

func (h *handler) redirectHome(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}
