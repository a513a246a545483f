package board_test

import (
	"context"
	"testing"
	"time"

	"task-list-manager/internal/board"
	"task-list-manager/internal/task"
	"task-list-manager/pkg/notify"
)

type stubTimer struct{}

func (stubTimer) Stop() bool { return true }

func newSession(t *testing.T, now *time.Time) (*board.Session, task.UseCase) {
	t.Helper()
	b, uc := newBoard(t)
	n := notify.New(notify.DefaultDuration,
		notify.WithClock(func() time.Time { return *now }),
		notify.WithAfterFunc(func(time.Duration, func()) notify.Timer { return stubTimer{} }),
	)
	s := b.NewSession(n)
	t.Cleanup(s.Close)
	return s, uc
}

func TestSessionView(t *testing.T) {
	ctx := context.Background()
	now := fixedNow
	s, _ := newSession(t, &now)

	v, err := s.View(ctx)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if !v.List.Empty || v.PrimaryLabel != board.LabelSaveTask || v.CancelVisible || v.Notification != nil {
		t.Errorf("unexpected initial view %+v", v)
	}

	if err := s.Dispatch(ctx, board.Submit{Form: board.Form{Title: "Pay rent", DueDate: "2024-01-01"}}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	v, _ = s.View(ctx)
	if len(v.List.Rows) != 1 || !v.List.Rows[0].ShowOverdue {
		t.Errorf("expected one overdue row, got %+v", v.List.Rows)
	}
	if v.Notification == nil || v.Notification.Message != board.MsgTaskAdded {
		t.Errorf("expected added notification, got %+v", v.Notification)
	}

	now = now.Add(notify.DefaultDuration)
	v, _ = s.View(ctx)
	if v.Notification != nil {
		t.Errorf("expected notification hidden after its duration, got %+v", v.Notification)
	}
}

func TestSessionViewPendingDelete(t *testing.T) {
	ctx := context.Background()
	now := fixedNow
	s, uc := newSession(t, &now)
	created, _ := uc.Add(ctx, task.AddInput{Title: "Pay rent", DueDate: "2024-01-01"})

	_ = s.Dispatch(ctx, board.RequestDelete{ID: created.ID})
	v, err := s.View(ctx)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if v.Pending == nil || v.Pending.ID != created.ID {
		t.Errorf("expected pending task, got %+v", v.Pending)
	}

	_ = s.Dispatch(ctx, board.ConfirmDelete{})
	v, _ = s.View(ctx)
	if v.Pending != nil || !v.List.Empty {
		t.Errorf("expected empty list after delete, got %+v", v)
	}
	if v.Notification == nil || v.Notification.Severity != notify.SeverityWarning {
		t.Errorf("expected warning notification, got %+v", v.Notification)
	}
}

func TestSessionValidationKeepsForm(t *testing.T) {
	ctx := context.Background()
	now := fixedNow
	s, _ := newSession(t, &now)

	form := board.Form{Title: "", Description: "draft", DueDate: "2024-01-01"}
	if err := s.Dispatch(ctx, board.Submit{Form: form}); !task.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if s.State().Form != form {
		t.Errorf("expected form kept, got %+v", s.State().Form)
	}
}

func TestSessionCancelDismissesNotification(t *testing.T) {
	ctx := context.Background()
	now := fixedNow
	s, _ := newSession(t, &now)

	_ = s.Dispatch(ctx, board.Submit{Form: board.Form{Title: "Pay rent"}})
	v, _ := s.View(ctx)
	if v.Notification == nil || v.Notification.Message != board.MsgRequiredFields {
		t.Fatalf("expected validation notification, got %+v", v.Notification)
	}

	if err := s.Dispatch(ctx, board.CancelEdit{}); err != nil {
		t.Fatalf("CancelEdit: %v", err)
	}
	v, _ = s.View(ctx)
	if v.Notification != nil {
		t.Errorf("expected notification dismissed, got %+v", v.Notification)
	}
	if v.State.Form != (board.Form{}) {
		t.Errorf("expected cleared form, got %+v", v.State.Form)
	}
}
