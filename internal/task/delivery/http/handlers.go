package http

import (

	"github.com/gin-gonic/gin"

	"task-list-manager/internal/task"
	"task-list-manager/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns the tasks visible under a filter, sorted by due date ascending.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       filter query string false "all (default), pending or completed"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a pending task. dueDate accepts YYYY-MM-DD or a relative phrase such as "tomorrow".
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201  {object} mutationResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Missing title or due date"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		if !task.IsValidationError(err) {
			h.l.Errorf(ctx, "uc.Add: %v", err)
		}
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newMutationResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	row, err := h.uc.DetailRow(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(row))
}

// Update godoc
// @Summary     Update a task
// @Description Replaces title, description and due date. Id, completion and creation time are kept.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "New values"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Missing title or due date"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		if !task.IsValidationError(err) {
			h.l.Errorf(ctx, "uc.Update: %v", err)
		}
		response.Error(c, h.mapError(err))
		return
	}
	if !output.Found {
		response.Error(c, h.mapError(task.ErrTaskNotFound))
		return
	}

	response.OK(c, h.newMutationResp(output.Task))
}

// Toggle godoc
// @Summary     Toggle completion
// @Description Flips a task between pending and completed.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ToggleCompletion(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleCompletion: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	if !output.Found {
		response.Error(c, h.mapError(task.ErrTaskNotFound))
		return
	}

	response.OK(c, h.newMutationResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Remove(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Remove: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	if !output.Found {
		response.Error(c, h.mapError(task.ErrTaskNotFound))
		return
	}

	response.OK(c, h.newMutationResp(output.Task))
}
