package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-list-manager/internal/model"
	"task-list-manager/internal/task"
	"task-list-manager/internal/task/usecase"
	"task-list-manager/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo records every saved snapshot.
type mockRepo struct {
	stored  []model.Task
	loadErr error
	saveErr error
	saves   int
}

func (m *mockRepo) Load(ctx context.Context) ([]model.Task, error) {
	if m.loadErr != nil {
		return []model.Task{}, m.loadErr
	}
	out := make([]model.Task, len(m.stored))
	copy(out, m.stored)
	return out, nil
}

func (m *mockRepo) Save(ctx context.Context, tasks []model.Task) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stored = make([]model.Task, len(tasks))
	copy(m.stored, tasks)
	return nil
}

var errDisk = errors.New("disk full")

// fixedNow is Friday, January 5, 2024 10:00 UTC.
var fixedNow = time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, repo *mockRepo) (task.UseCase, *time.Time) {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	now := fixedNow
	uc := usecase.New(&mockLogger{}, repo, dates, func() time.Time { return now })
	if err := uc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return uc, &now
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
