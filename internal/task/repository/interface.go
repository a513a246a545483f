package repository

import (
	"context"

	"task-list-manager/internal/model"
)

// Repository stores the whole task collection in one slot.
type Repository interface {
	// Load returns the stored tasks in storage order. A missing slot yields an
	// empty collection; unparsable data yields an empty collection and ErrCorruptData.
	Load(ctx context.Context) ([]model.Task, error)
	// Save overwrites the slot with tasks.
	Save(ctx context.Context, tasks []model.Task) error
}
