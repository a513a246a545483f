package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"task-list-manager/internal/model"
	"task-list-manager/internal/task"
	"task-list-manager/pkg/datemath"
)

// validateForm trims the inputs and resolves the due date.
func (uc *implUseCase) validateForm(title, description, dueDate string) (string, string, time.Time, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return "", "", time.Time{}, task.ErrEmptyTitle
	}
	due, err := uc.dates.ParseDueDate(dueDate, uc.now())
	if errors.Is(err, datemath.ErrEmptyDate) {
		return "", "", time.Time{}, task.ErrEmptyDueDate
	}
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("%w: %v", task.ErrInvalidDueDate, err)
	}
	return title, description, due, nil
}

// indexOf returns the position of id in the collection or -1. Caller holds mu.
func (uc *implUseCase) indexOf(id int64) int {
	for i, t := range uc.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the whole collection. Caller holds mu.
// The in-memory change is kept when the write fails.
func (uc *implUseCase) persist(ctx context.Context, method string) error {
	snapshot := make([]model.Task, len(uc.tasks))
	copy(snapshot, uc.tasks)

	if err := uc.repo.Save(ctx, snapshot); err != nil {
		uc.l.Errorf(ctx, "uc.%s repo.Save: %v", method, err)
		return fmt.Errorf("persist: %w", err)
	}
	return nil
}
