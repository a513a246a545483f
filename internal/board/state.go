package board

import "task-list-manager/internal/model"

// Labels shown by the front-ends.
const (
	LabelSaveTask      = "Save Task"
	LabelUpdateTask    = "Update Task"
	LabelCancel        = "Cancel"
	LabelNoTasks       = "No tasks to show."
	LabelConfirmDelete = "Are you sure you want to delete this task?"
)

// Notification messages.
const (
	MsgRequiredFields = "Please fill in all required fields"
	MsgInvalidDueDate = "Invalid due date"
	MsgTaskAdded      = "Task added successfully"
	MsgTaskUpdated    = "Task updated successfully"
	MsgTaskDeleted    = "Task deleted"
	MsgSaveFailed     = "Could not save tasks"
)

// Field identifies a form input.
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
	FieldDueDate
)

// Form holds the raw form values.
type Form struct {
	Title       string
	Description string
	DueDate     string
}

// EditSession is Idle when ID is zero, otherwise Editing(ID).
type EditSession struct {
	ID int64
}

// Editing reports whether a task is loaded into the form.
func (e EditSession) Editing() bool {
	return e.ID != 0
}

// State is everything a front-end needs besides the task collection.
type State struct {
	Filter        model.Filter
	Edit          EditSession
	Form          Form
	Focus         Field
	PendingDelete int64
}

// NewState returns the initial state: filter all, Idle, empty form.
func NewState() State {
	return State{Filter: model.FilterAll, Focus: FieldTitle}
}

// PrimaryLabel is the submit control text.
func (s State) PrimaryLabel() string {
	if s.Edit.Editing() {
		return LabelUpdateTask
	}
	return LabelSaveTask
}

// CancelVisible reports whether the cancel control is shown.
func (s State) CancelVisible() bool {
	return s.Edit.Editing()
}

// Confirming reports whether a delete is awaiting confirmation.
func (s State) Confirming() bool {
	return s.PendingDelete != 0
}

func (s State) idle() State {
	s.Edit = EditSession{}
	s.Form = Form{}
	s.Focus = FieldTitle
	return s
}
