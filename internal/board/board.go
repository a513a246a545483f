// Package board holds the application state and the reducer that turns user
// actions into task mutations and notifications.
package board

import (
	"context"
	"errors"
	"fmt"

	"task-list-manager/internal/model"
	"task-list-manager/internal/task"
	"task-list-manager/pkg/datemath"
	pkgLog "task-list-manager/pkg/log"
	"task-list-manager/pkg/notify"
)

// Notice is a notification produced by an action.
type Notice struct {
	Message  string
	Severity notify.Severity
}

// Result is the outcome of one Dispatch. Dismiss asks the front-end to hide
// the visible notification; a Notice, when present, is shown after it.
type Result struct {
	State   State
	Notice  *Notice
	Dismiss bool
}

// Board reduces actions against the task use case. It holds no per-user state.
type Board struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a Board.
func New(l pkgLog.Logger, uc task.UseCase) *Board {
	if uc == nil {
		panic("board: task use case is required")
	}
	return &Board{l: l, uc: uc}
}

// Dispatch applies a to s. The returned error is a validation error (the form
// is kept) or a persistence error (the in-memory change is kept).
func (b *Board) Dispatch(ctx context.Context, s State, a Action) (Result, error) {
	switch a := a.(type) {
	case Submit:
		return b.submit(ctx, s, a.Form)
	case BeginEdit:
		return b.beginEdit(ctx, s, a.ID)
	case CancelEdit:
		return Result{State: s.idle(), Dismiss: true}, nil
	case ToggleComplete:
		return b.toggle(ctx, s, a.ID)
	case RequestDelete:
		return b.requestDelete(ctx, s, a.ID)
	case ConfirmDelete:
		return b.confirmDelete(ctx, s)
	case DeclineDelete:
		s.PendingDelete = 0
		return Result{State: s}, nil
	case SetFilter:
		if !a.Filter.IsValid() {
			return Result{State: s}, task.ErrInvalidFilter
		}
		s.Filter = a.Filter
		return Result{State: s}, nil
	default:
		return Result{State: s}, fmt.Errorf("board: unknown action %T", a)
	}
}

func (b *Board) submit(ctx context.Context, s State, form Form) (Result, error) {
	s.Form = form

	var (
		err     error
		success string
	)
	found := true
	if s.Edit.Editing() {
		var out task.MutationOutput
		out, err = b.uc.Update(ctx, task.UpdateInput{
			ID:          s.Edit.ID,
			Title:       form.Title,
			Description: form.Description,
			DueDate:     form.DueDate,
		})
		found = out.Found
		success = MsgTaskUpdated
	} else {
		_, err = b.uc.Add(ctx, task.AddInput{
			Title:       form.Title,
			Description: form.Description,
			DueDate:     form.DueDate,
		})
		success = MsgTaskAdded
	}

	if task.IsValidationError(err) {
		msg := MsgRequiredFields
		if errors.Is(err, task.ErrInvalidDueDate) {
			msg = MsgInvalidDueDate
		}
		return Result{State: s, Notice: &Notice{Message: msg, Severity: notify.SeverityError}}, err
	}
	if err != nil {
		b.l.Errorf(ctx, "board.submit: %v", err)
		return Result{State: s.idle(), Notice: saveFailed()}, err
	}
	if !found {
		b.l.Infof(ctx, "board.submit: task %d is gone, leaving edit", s.Edit.ID)
		return Result{State: s.idle(), Dismiss: true}, nil
	}

	return Result{State: s.idle(), Notice: &Notice{Message: success, Severity: notify.SeveritySuccess}}, nil
}

func (b *Board) beginEdit(ctx context.Context, s State, id int64) (Result, error) {
	t, err := b.uc.Detail(ctx, id)
	if errors.Is(err, task.ErrTaskNotFound) {
		return Result{State: s}, nil
	}
	if err != nil {
		return Result{State: s}, err
	}

	s.Edit = EditSession{ID: t.ID}
	s.Form = FormFromTask(t)
	s.Focus = FieldTitle
	s.PendingDelete = 0
	return Result{State: s}, nil
}

func (b *Board) toggle(ctx context.Context, s State, id int64) (Result, error) {
	if _, err := b.uc.ToggleCompletion(ctx, id); err != nil {
		b.l.Errorf(ctx, "board.toggle: %v", err)
		return Result{State: s, Notice: saveFailed()}, err
	}
	return Result{State: s}, nil
}

func (b *Board) requestDelete(ctx context.Context, s State, id int64) (Result, error) {
	if _, err := b.uc.Detail(ctx, id); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return Result{State: s}, nil
		}
		return Result{State: s}, err
	}
	s.PendingDelete = id
	return Result{State: s}, nil
}

func (b *Board) confirmDelete(ctx context.Context, s State) (Result, error) {
	id := s.PendingDelete
	if id == 0 {
		return Result{State: s}, nil
	}
	s.PendingDelete = 0

	out, err := b.uc.Remove(ctx, id)
	if s.Edit.ID == id {
		s = s.idle()
	}
	if err != nil {
		b.l.Errorf(ctx, "board.confirmDelete: %v", err)
		return Result{State: s, Notice: saveFailed()}, err
	}
	if !out.Found {
		return Result{State: s}, nil
	}
	return Result{State: s, Notice: &Notice{Message: MsgTaskDeleted, Severity: notify.SeverityWarning}}, nil
}

// FormFromTask fills the form with a task's editable fields.
func FormFromTask(t model.Task) Form {
	f := Form{Title: t.Title, Description: t.Description}
	if !t.DueDate.IsZero() {
		f.DueDate = t.DueDate.Format(datemath.DateLayout)
	}
	return f
}

func saveFailed() *Notice {
	return &Notice{Message: MsgSaveFailed, Severity: notify.SeverityError}
}
