package kvstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config selects and configures a backend.
type Config struct {
	Driver string
	// Path is a directory for the file driver and a database file for sqlite.
	Path string
	// DSN is the mysql data source name.
	DSN string
}

// Open builds the Store described by cfg.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile, "":
		return NewFile(cfg.Path)
	case DriverSQLite:
		return openSQLite(ctx, cfg.Path)
	case DriverMySQL:
		return openMySQL(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("kvstore: unknown driver %q", cfg.Driver)
	}
}

func openSQLite(ctx context.Context, path string) (Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("kvstore: create directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("kvstore: open sqlite: %w", err)
	}
	// ":memory:" databases are per connection.
	db.SetMaxOpenConns(1)

	s, err := NewSQL(ctx, db, DialectSQLite)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func openMySQL(ctx context.Context, dsn string) (Store, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("kvstore: open mysql: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("kvstore: ping mysql: %w", err)
	}

	s, err := NewSQL(ctx, db, DialectMySQL)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}
