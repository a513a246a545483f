package task

import (
	"time"

	"task-list-manager/internal/model"
)

// Row toggle labels.
const (
	LabelMarkCompleted = "Mark Completed"
	LabelMarkPending   = "Mark Pending"
)

// --- UseCase Inputs ---

// AddInput carries raw form values. DueDate is YYYY-MM-DD or a relative phrase.
type AddInput struct {
	Title       string
	Description string
	DueDate     string
}

type UpdateInput struct {
	ID          int64
	Title       string
	Description string
	DueDate     string
}

// ListInput selects and decorates the visible tasks. A zero Now means the use case clock.
type ListInput struct {
	Filter model.Filter
	Now    time.Time
}

// --- UseCase Outputs ---

// MutationOutput reports the task after a mutation. Found is false when the id
// was unknown and nothing changed.
type MutationOutput struct {
	Task  model.Task
	Found bool
}

// Row is one visible task with its display decorations.
type Row struct {
	Task        model.Task
	Overdue     bool // due day strictly before today
	ShowOverdue bool // Overdue and not completed
	ToggleLabel string
	DueDate     string // YYYY-MM-DD
	DueLabel    string // e.g. "Friday, January 5, 2024"
}

// ListOutput is the rendered list for one filter.
type ListOutput struct {
	Filter model.Filter
	Rows   []Row
	Empty  bool
	Counts map[model.Filter]int
}
