package board

import "task-list-manager/internal/model"

// Action is a user intent fed to Board.Dispatch.
type Action interface {
	action()
}

// Submit saves the form: Update while editing, Add otherwise.
type Submit struct {
	Form Form
}

// BeginEdit loads a task into the form.
type BeginEdit struct {
	ID int64
}

// CancelEdit clears the form and returns to Idle.
type CancelEdit struct{}

// ToggleComplete flips a task's completion flag.
type ToggleComplete struct {
	ID int64
}

// RequestDelete asks for confirmation before removing a task.
type RequestDelete struct {
	ID int64
}

// ConfirmDelete removes the task awaiting confirmation.
type ConfirmDelete struct{}

// DeclineDelete dismisses the confirmation.
type DeclineDelete struct{}

// SetFilter changes the visible subset.
type SetFilter struct {
	Filter model.Filter
}

func (Submit) action()         {}
func (BeginEdit) action()      {}
func (CancelEdit) action()     {}
func (ToggleComplete) action() {}
func (RequestDelete) action()  {}
func (ConfirmDelete) action()  {}
func (DeclineDelete) action()  {}
func (SetFilter) action()      {}
