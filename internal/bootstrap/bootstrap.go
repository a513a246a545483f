// Package bootstrap wires the task core shared by the binaries.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"task-list-manager/config"
	"task-list-manager/internal/board"
	"task-list-manager/internal/task"
	"task-list-manager/internal/task/repository/kv"
	"task-list-manager/internal/task/usecase"
	"task-list-manager/pkg/datemath"
	"task-list-manager/pkg/kvstore"
	"task-list-manager/pkg/log"
)

// Core is the loaded task store plus what the front-ends need around it.
type Core struct {
	UseCase task.UseCase
	Board   *board.Board
	Dates   *datemath.Parser
	Store   kvstore.Store

	key string
}

// Close releases the storage backend.
func (c *Core) Close() error {
	return c.Store.Close()
}

// Ready reports whether the storage slot can be read.
func (c *Core) Ready(ctx context.Context) error {
	_, err := c.Store.Get(ctx, c.key)
	if err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		return err
	}
	return nil
}

// NewCore opens storage, loads the collection and builds the board.
func NewCore(ctx context.Context, l log.Logger, cfg *config.Config) (*Core, error) {
	dates, err := datemath.NewParser(cfg.Locale.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to local time: %v", cfg.Locale.Timezone, err)
		dates, _ = datemath.NewParser("")
	}

	store, err := kvstore.Open(ctx, kvstore.Config{
		Driver: cfg.Storage.Driver,
		Path:   storagePath(cfg.Storage),
		DSN:    cfg.Storage.DSN,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	l.Infof(ctx, "Storage: driver=%s key=%s", cfg.Storage.Driver, cfg.Storage.Key)

	repo := kv.New(store, cfg.Storage.Key, dates.Location(), l)
	uc := usecase.New(l, repo, dates, nil)
	if err := uc.Load(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	return &Core{
		UseCase: uc,
		Board:   board.New(l, uc),
		Dates:   dates,
		Store:   store,
		key:     cfg.Storage.Key,
	}, nil
}

// storagePath points sqlite at a database file inside a configured directory.
func storagePath(cfg config.StorageConfig) string {
	if cfg.Driver == kvstore.DriverSQLite && cfg.Path != ":memory:" && filepath.Ext(cfg.Path) == "" {
		return filepath.Join(cfg.Path, "tasks.db")
	}
	return cfg.Path
}
