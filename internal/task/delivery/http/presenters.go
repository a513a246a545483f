package http

import (
	"task-list-manager/internal/model"
	"task-list-manager/internal/task"
	"task-list-manager/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Filter string `form:"filter"`
}

func (r listReq) validate() error {
	if r.Filter != "" && !model.Filter(r.Filter).IsValid() {
		return task.ErrInvalidFilter
	}
	return nil
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Filter: model.Filter(r.Filter)}
}

// ---

type createReq struct {
	Title       string `json:"title"       binding:"max=255"`
	Description string `json:"description" binding:"max=2000"`
	DueDate     string `json:"dueDate"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.AddInput {
	return task.AddInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
	}
}

// ---

type updateReq struct {
	ID          int64  `json:"-"` // populated from URI param
	Title       string `json:"title"       binding:"max=255"`
	Description string `json:"description" binding:"max=2000"`
	DueDate     string `json:"dueDate"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DueDate     response.Date     `json:"dueDate"`
	Completed   bool              `json:"completed"`
	CreatedAt   response.DateTime `json:"createdAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     response.Date(t.DueDate),
		Completed:   t.Completed,
		CreatedAt:   response.DateTime(t.CreatedAt),
	}
}

type rowResp struct {
	taskResp
	Overdue     bool   `json:"overdue"`
	ShowOverdue bool   `json:"showOverdue"`
	ToggleLabel string `json:"toggleLabel"`
	DueLabel    string `json:"dueLabel"`
}

type listResp struct {
	Filter string         `json:"filter"`
	Tasks  []rowResp      `json:"tasks"`
	Empty  bool           `json:"empty"`
	Counts map[string]int `json:"counts"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	rows := make([]rowResp, len(out.Rows))
	for i, r := range out.Rows {
		rows[i] = rowResp{
			taskResp:    newTaskResp(r.Task),
			Overdue:     r.Overdue,
			ShowOverdue: r.ShowOverdue,
			ToggleLabel: r.ToggleLabel,
			DueLabel:    r.DueLabel,
		}
	}
	counts := make(map[string]int, len(model.Filters))
	for _, f := range model.Filters {
		counts[string(f)] = out.Counts[f]
	}
	return listResp{
		Filter: string(out.Filter),
		Tasks:  rows,
		Empty:  out.Empty,
		Counts: counts,
	}
}

type detailResp struct {
	Task     taskResp `json:"task"`
	Overdue  bool     `json:"overdue"`
	DueLabel string   `json:"dueLabel"`
}

func (h *handler) newDetailResp(r task.Row) detailResp {
	return detailResp{
		Task:     newTaskResp(r.Task),
		Overdue:  r.Overdue,
		DueLabel: r.DueLabel,
	}
}

type mutationResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newMutationResp(t model.Task) mutationResp {
	return mutationResp{Task: newTaskResp(t)}
}
