// Package store opens and migrates the embedded SQLite database backing
// every entity collection. The handle is constructed explicitly and passed
// to each repository; there is no package-level singleton.
package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type Config struct {
	Path          string
	BusyTimeoutMS int
	ForeignKeys   bool
}

// Open connects to the database file and verifies the connection. The
// caller owns the handle and must Close it on teardown.
func Open(cfg *Config) (*sqlx.DB, error) {
	timeout := cfg.BusyTimeoutMS
	if timeout <= 0 {
		timeout = 5000
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d", cfg.Path, timeout)
	if cfg.ForeignKeys {
		dsn += "&_foreign_keys=on"
	}

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// An in-memory database exists per connection, so the pool must be
	// pinned to a single one.
	if cfg.Path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return db, nil
}
