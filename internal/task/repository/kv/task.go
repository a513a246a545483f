package kv

import (
	"context"
	"encoding/json"
	"errors"

	"task-list-manager/internal/model"
	"task-list-manager/internal/task/repository"
	"task-list-manager/pkg/kvstore"
)

// Load reads and decodes the slot. Records are not validated.
func (r *implRepository) Load(ctx context.Context) ([]model.Task, error) {
	raw, err := r.store.Get(ctx, r.key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Load"), err)
		return nil, repository.ErrFailedToLoad
	}

	var records []taskRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		r.l.Warnf(ctx, "%s: decode %q: %v", r.dsn("Load"), r.key, err)
		return []model.Task{}, repository.ErrCorruptData
	}

	tasks := make([]model.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, rec.toModel(r.location))
	}
	return tasks, nil
}

// Save overwrites the slot with the full collection.
func (r *implRepository) Save(ctx context.Context, tasks []model.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, newTaskRecord(t))
	}

	raw, err := json.Marshal(records)
	if err != nil {
		r.l.Errorf(ctx, "%s: encode: %v", r.dsn("Save"), err)
		return repository.ErrFailedToSave
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return repository.ErrFailedToSave
	}
	return nil
}
