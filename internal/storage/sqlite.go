// Package storage provides the data persistence layer backing the
// prediction history. The history is a single JSON collection stored
// under one well-known key in a local SQLite key-value table,
// mirroring the browser-local storage layout it replaces.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// HistoryKey is the well-known key the prediction collection lives
// under.
const HistoryKey = "sport_ai_predictions_history"

// RetentionCap bounds the stored collection; the oldest entries are
// silently dropped beyond it.
const RetentionCap = 100

// SQLiteStore implements the service.HistoryStore interface using
// SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
	cap    int
	now    func() time.Time
	newID  func() string
}

// StoreOption customizes a SQLiteStore.
type StoreOption func(*SQLiteStore)

// WithRetentionCap overrides the default retention cap.
func WithRetentionCap(cap int) StoreOption {
	return func(s *SQLiteStore) {
		if cap > 0 {
			s.cap = cap
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *SQLiteStore) {
		s.now = now
	}
}

// NewSQLiteStore creates a new SQLite-backed history store.
func NewSQLiteStore(dbPath string, opts ...StoreOption) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{
		db:     db,
		dbPath: dbPath,
		cap:    RetentionCap,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store, nil
}

// Migrate creates the backing table if it does not exist.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return ctx.Err()
}

func validateString(value, name string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}
