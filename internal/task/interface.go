package task

import (
	"context"

	"task-list-manager/internal/model"
)

// UseCase owns the task collection. Every mutation persists the whole collection
// before returning; unknown ids are silent no-ops reported through MutationOutput.Found.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Load replaces the in-memory collection with the stored one.
	// Missing or unreadable data yields an empty collection.
	Load(ctx context.Context) error

	Add(ctx context.Context, input AddInput) (model.Task, error)
	Update(ctx context.Context, input UpdateInput) (MutationOutput, error)
	ToggleCompletion(ctx context.Context, id int64) (MutationOutput, error)
	Remove(ctx context.Context, id int64) (MutationOutput, error)

	Detail(ctx context.Context, id int64) (model.Task, error)
	// DetailRow is Detail decorated like a List row, relative to the use case clock.
	DetailRow(ctx context.Context, id int64) (Row, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
}
