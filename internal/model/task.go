package model

import "time"

// Task is a user-created item with a due date and a completion flag.
// ID and CreatedAt never change after creation.
type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     time.Time // midnight of the due day
	Completed   bool
	CreatedAt   time.Time
}

// Filter selects a subset of tasks for display.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterPending, FilterCompleted}

// IsValid reports whether f is one of the known filters.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterPending, FilterCompleted:
		return true
	}
	return false
}

// Match reports whether t belongs in f.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterPending:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}
