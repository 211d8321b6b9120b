// Package store mirrors loaded reports into an in-memory SQLite database so
// that rows can be looked up by column value, and keeps the session's load
// history.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ibstat/cli/internal/domain"
	"github.com/ibstat/cli/internal/store/migrations"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Store implements domain.ReportStore on SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New opens the database at dsn and applies the schema.
func New(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return NewWithDB(db), nil
}

// NewWithDB wraps a database that already has the schema applied.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// DB returns the underlying connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

var _ domain.ReportStore = (*Store)(nil)
