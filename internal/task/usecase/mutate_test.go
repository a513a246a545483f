package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-list-manager/internal/model"
	"task-list-manager/internal/task"
)

func TestAdd(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   task.AddInput
		wantErr error
		wantDue time.Time
	}{
		{name: "Valid", input: task.AddInput{Title: "Pay rent", DueDate: "2024-01-01"}, wantDue: day(2024, 1, 1)},
		{name: "Trims fields", input: task.AddInput{Title: "  Pay rent ", Description: " monthly ", DueDate: "2024-01-01"}, wantDue: day(2024, 1, 1)},
		{name: "Relative due date", input: task.AddInput{Title: "Pay rent", DueDate: "tomorrow"}, wantDue: day(2024, 1, 6)},
		{name: "Empty title", input: task.AddInput{Title: "", DueDate: "2024-01-01"}, wantErr: task.ErrEmptyTitle},
		{name: "Whitespace title", input: task.AddInput{Title: "   ", DueDate: "2024-01-01"}, wantErr: task.ErrEmptyTitle},
		{name: "Empty due date", input: task.AddInput{Title: "Pay rent", DueDate: " "}, wantErr: task.ErrEmptyDueDate},
		{name: "Invalid due date", input: task.AddInput{Title: "Pay rent", DueDate: "someday"}, wantErr: task.ErrInvalidDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			uc, _ := newTestUseCase(t, repo)

			got, err := uc.Add(ctx, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if repo.saves != 0 || len(repo.stored) != 0 {
					t.Errorf("rejected input must not persist, saves=%d", repo.saves)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got.Title != "Pay rent" || got.Completed {
				t.Errorf("unexpected task: %+v", got)
			}
			if !got.DueDate.Equal(tt.wantDue) {
				t.Errorf("expected due %v, got %v", tt.wantDue, got.DueDate)
			}
			if !got.CreatedAt.Equal(fixedNow) {
				t.Errorf("expected createdAt %v, got %v", fixedNow, got.CreatedAt)
			}
			if len(repo.stored) != 1 || repo.stored[0].ID != got.ID {
				t.Errorf("expected the new task persisted, got %+v", repo.stored)
			}
		})
	}
}

func TestAddIssuesUniqueIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{stored: []model.Task{{ID: fixedNow.UnixMilli() + 10, Title: "old", DueDate: day(2024, 1, 1)}}}
	uc, _ := newTestUseCase(t, repo)

	seen := map[int64]bool{fixedNow.UnixMilli() + 10: true}
	var last int64 = fixedNow.UnixMilli() + 10
	for i := 0; i < 5; i++ {
		got, err := uc.Add(ctx, task.AddInput{Title: "same millisecond", DueDate: "2024-01-09"})
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if seen[got.ID] {
			t.Fatalf("duplicate id %d", got.ID)
		}
		if got.ID <= last {
			t.Errorf("expected id above %d, got %d", last, got.ID)
		}
		seen[got.ID] = true
		last = got.ID
	}
	if len(repo.stored) != 6 {
		t.Errorf("expected 6 stored tasks, got %d", len(repo.stored))
	}
}

func TestUpdateDueDateOnly(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, _ := newTestUseCase(t, repo)

	created, err := uc.Add(ctx, task.AddInput{Title: "Pay rent", Description: "flat 3", DueDate: "2024-01-01"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	out, err := uc.Update(ctx, task.UpdateInput{
		ID:          created.ID,
		Title:       created.Title,
		Description: created.Description,
		DueDate:     "2024-02-01",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !out.Found {
		t.Fatal("expected task found")
	}

	stored := repo.stored[0]
	if stored.ID != created.ID || !stored.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("id and createdAt must not change: %+v vs %+v", stored, created)
	}
	if stored.Title != "Pay rent" || stored.Description != "flat 3" {
		t.Errorf("title/description must not change: %+v", stored)
	}
	if !stored.DueDate.Equal(day(2024, 2, 1)) {
		t.Errorf("expected due date updated, got %v", stored.DueDate)
	}
}

func TestUpdateValidation(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, _ := newTestUseCase(t, repo)
	created, _ := uc.Add(ctx, task.AddInput{Title: "Pay rent", DueDate: "2024-01-01"})
	saves := repo.saves

	_, err := uc.Update(ctx, task.UpdateInput{ID: created.ID, Title: "", DueDate: "2024-01-02"})
	if !errors.Is(err, task.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if repo.saves != saves || repo.stored[0].Title != "Pay rent" {
		t.Error("rejected update must not mutate or persist")
	}
}

func TestUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, _ := newTestUseCase(t, repo)
	created, _ := uc.Add(ctx, task.AddInput{Title: "Pay rent", DueDate: "2024-01-01"})

	out, err := uc.Update(ctx, task.UpdateInput{ID: 999, Title: "x", DueDate: "2024-01-02"})
	if err != nil || out.Found {
		t.Errorf("Update unknown: found=%v err=%v", out.Found, err)
	}
	out, err = uc.ToggleCompletion(ctx, 999)
	if err != nil || out.Found {
		t.Errorf("Toggle unknown: found=%v err=%v", out.Found, err)
	}
	out, err = uc.Remove(ctx, 999)
	if err != nil || out.Found {
		t.Errorf("Remove unknown: found=%v err=%v", out.Found, err)
	}

	if len(repo.stored) != 1 || repo.stored[0].ID != created.ID || repo.stored[0].Title != created.Title || repo.stored[0].Completed {
		t.Errorf("collection must be unchanged, got %+v", repo.stored)
	}
}

func TestToggleCompletion(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, _ := newTestUseCase(t, repo)
	created, _ := uc.Add(ctx, task.AddInput{Title: "Pay rent", DueDate: "2024-01-01"})

	out, err := uc.ToggleCompletion(ctx, created.ID)
	if err != nil || !out.Found || !out.Task.Completed {
		t.Fatalf("expected completed, got %+v %v", out, err)
	}
	if !repo.stored[0].Completed {
		t.Error("expected completion persisted")
	}

	out, _ = uc.ToggleCompletion(ctx, created.ID)
	if out.Task.Completed || repo.stored[0].Completed {
		t.Error("expected toggled back to pending")
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, _ := newTestUseCase(t, repo)
	a, _ := uc.Add(ctx, task.AddInput{Title: "A", DueDate: "2024-01-01"})
	b, _ := uc.Add(ctx, task.AddInput{Title: "B", DueDate: "2024-01-02"})

	out, err := uc.Remove(ctx, a.ID)
	if err != nil || !out.Found || out.Task.ID != a.ID {
		t.Fatalf("unexpected remove result %+v %v", out, err)
	}
	if len(repo.stored) != 1 || repo.stored[0].ID != b.ID {
		t.Errorf("expected only B stored, got %+v", repo.stored)
	}
	if _, err := uc.Detail(ctx, a.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestPersistFailureIsReported(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, _ := newTestUseCase(t, repo)
	repo.saveErr = errDisk

	got, err := uc.Add(ctx, task.AddInput{Title: "Pay rent", DueDate: "2024-01-01"})
	if !errors.Is(err, errDisk) {
		t.Fatalf("expected wrapped disk error, got %v", err)
	}
	if _, err := uc.Detail(ctx, got.ID); err != nil {
		t.Errorf("in-memory task should be kept, got %v", err)
	}
}
