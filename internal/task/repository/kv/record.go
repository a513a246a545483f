package kv

import (
	"time"

	"task-list-manager/internal/model"
)

const (
	dueDateLayout   = "2006-01-02"
	createdAtLayout = "2006-01-02T15:04:05.000Z07:00"
)

// taskRecord is the stored shape of a task.
type taskRecord struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
}

func newTaskRecord(t model.Task) taskRecord {
	rec := taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
	if !t.DueDate.IsZero() {
		rec.DueDate = t.DueDate.Format(dueDateLayout)
	}
	if !t.CreatedAt.IsZero() {
		rec.CreatedAt = t.CreatedAt.UTC().Format(createdAtLayout)
	}
	return rec
}

// toModel converts without validation; unparsable dates become zero times.
func (rec taskRecord) toModel(loc *time.Location) model.Task {
	return model.Task{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		DueDate:     parseDueDate(rec.DueDate, loc),
		Completed:   rec.Completed,
		CreatedAt:   parseCreatedAt(rec.CreatedAt),
	}
}

func parseDueDate(s string, loc *time.Location) time.Time {
	if t, err := time.ParseInLocation(dueDateLayout, s, loc); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t = t.In(loc)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
	return time.Time{}
}

func parseCreatedAt(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
