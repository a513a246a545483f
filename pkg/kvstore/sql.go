package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Dialect selects the SQL flavour used by the sql-backed Store.
type Dialect string

const (
	DialectSQLite Dialect = "sqlite"
	DialectMySQL  Dialect = "mysql"
)

type dialectQueries struct {
	schema string
	get    string
	upsert string
}

var queries = map[Dialect]dialectQueries{
	DialectSQLite: {
		schema: `CREATE TABLE IF NOT EXISTS kv_slots (
			slot TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		get: `SELECT value FROM kv_slots WHERE slot = ?`,
		upsert: `INSERT INTO kv_slots (slot, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
	},
	DialectMySQL: {
		schema: `CREATE TABLE IF NOT EXISTS kv_slots (
			slot VARCHAR(191) PRIMARY KEY,
			value LONGBLOB NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		get: `SELECT value FROM kv_slots WHERE slot = ?`,
		upsert: `INSERT INTO kv_slots (slot, value, updated_at) VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = VALUES(updated_at)`,
	},
}

type sqlStore struct {
	db *sql.DB
	q  dialectQueries
}

// NewSQL wraps db as a Store and creates the kv_slots table if needed.
// The Store takes ownership of db and closes it on Close.
func NewSQL(ctx context.Context, db *sql.DB, dialect Dialect) (Store, error) {
	if db == nil {
		panic("kvstore: db is required")
	}
	q, ok := queries[dialect]
	if !ok {
		return nil, fmt.Errorf("kvstore: unsupported dialect %q", dialect)
	}
	if _, err := db.ExecContext(ctx, q.schema); err != nil {
		return nil, fmt.Errorf("kvstore: init schema: %w", err)
	}
	return &sqlStore{db: db, q: q}, nil
}

func (s *sqlStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, s.q.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore: get %q: %w", key, err)
	}
	return value, nil
}

func (s *sqlStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrInvalidKey
	}
	if _, err := s.db.ExecContext(ctx, s.q.upsert, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("kvstore: set %q: %w", key, err)
	}
	return nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}
