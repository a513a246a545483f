package usecase

import (
	"context"
	"errors"

	"task-list-manager/internal/task/repository"
)

// Load replaces the collection with the stored one. Corrupt data is logged and
// treated as an empty collection.
func (uc *implUseCase) Load(ctx context.Context) error {
	tasks, err := uc.repo.Load(ctx)
	if errors.Is(err, repository.ErrCorruptData) {
		uc.l.Warnf(ctx, "uc.Load: stored tasks unreadable, starting empty: %v", err)
		err = nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Load repo.Load: %v", err)
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.tasks = tasks
	for _, t := range tasks {
		uc.ids.observe(t.ID)
	}
	uc.l.Infof(ctx, "Loaded %d tasks", len(tasks))
	return nil
}
