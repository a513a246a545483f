package kv

import (
	"fmt"
	"time"

	"task-list-manager/internal/task/repository"
	"task-list-manager/pkg/kvstore"
	"task-list-manager/pkg/log"
)

// DefaultKey is the slot the collection lives in.
const DefaultKey = "tasks"

type implRepository struct {
	store    kvstore.Store
	key      string
	location *time.Location
	l        log.Logger
}

// New creates a Repository that keeps the collection as a JSON array under key.
// Due dates are read back as midnight in loc.
func New(store kvstore.Store, key string, loc *time.Location, l log.Logger) repository.Repository {
	if store == nil {
		panic("task/repository/kv: store is required")
	}
	if key == "" {
		key = DefaultKey
	}
	if loc == nil {
		loc = time.Local
	}
	return &implRepository{store: store, key: key, location: loc, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/kv.%s", method)
}
