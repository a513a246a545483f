// Package kvstore provides a durable key-value slot store with file, sqlite and mysql backends.
package kvstore

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("kvstore: key not found")
	ErrInvalidKey = errors.New("kvstore: invalid key")
	ErrClosed     = errors.New("kvstore: store closed")
)

// Store holds opaque values under string keys. Set overwrites the whole value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
