package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Dxne-Dev/Bet-predict/internal/common"
	"github.com/Dxne-Dev/Bet-predict/internal/model"
)

// loadTx reads the full history collection inside a transaction. A
// missing row is an empty collection, not an error.
func (s *SQLiteStore) loadTx(ctx context.Context, tx *sql.Tx) ([]model.HistoryEntry, error) {
	var value string
	err := tx.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, HistoryKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var entries []model.HistoryEntry
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		return nil, fmt.Errorf("%w: history payload: %v", common.ErrDatabaseCorrupted, err)
	}
	return entries, nil
}

// saveTx writes the full collection back under the well-known key.
func (s *SQLiteStore) saveTx(ctx context.Context, tx *sql.Tx, entries []model.HistoryEntry) error {
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, HistoryKey, string(payload))
	if err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// mutate runs one read-modify-write cycle over the collection inside a
// single transaction, which is the atomicity discipline Update needs
// to avoid lost updates at single-writer scale.
func (s *SQLiteStore) mutate(ctx context.Context, fn func([]model.HistoryEntry) ([]model.HistoryEntry, error)) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	entries, err := s.loadTx(ctx, tx)
	if err != nil {
		return err
	}

	updated, err := fn(entries)
	if err != nil {
		return err
	}

	if err := s.saveTx(ctx, tx, updated); err != nil {
		return err
	}
	return tx.Commit()
}

// Append assigns identity and a timestamp, prepends the entry
// (most-recent-first) and truncates the collection to the retention
// cap.
func (s *SQLiteStore) Append(ctx context.Context, entry model.HistoryEntry) (model.HistoryEntry, error) {
	if !entry.Mode.Valid() {
		return model.HistoryEntry{}, fmt.Errorf("%w: unknown mode %q", common.ErrInvalidInput, entry.Mode)
	}

	entry.ID = s.newID()
	entry.Timestamp = s.now().UnixMilli()

	err := s.mutate(ctx, func(entries []model.HistoryEntry) ([]model.HistoryEntry, error) {
		updated := append([]model.HistoryEntry{entry}, entries...)
		if len(updated) > s.cap {
			updated = updated[:s.cap]
		}
		return updated, nil
	})
	if err != nil {
		return model.HistoryEntry{}, err
	}
	return entry, nil
}

// ListByMode returns entries matching mode in store order, without
// re-sorting.
func (s *SQLiteStore) ListByMode(ctx context.Context, mode model.Mode) ([]model.HistoryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	entries, err := s.loadTx(ctx, tx)
	if err != nil {
		return nil, err
	}

	matched := make([]model.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.Mode == mode {
			matched = append(matched, e)
		}
	}
	return matched, tx.Commit()
}

// Get returns the entry with the given id.
func (s *SQLiteStore) Get(ctx context.Context, id string) (model.HistoryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return model.HistoryEntry{}, err
	}
	if err := validateString(id, "id"); err != nil {
		return model.HistoryEntry{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.HistoryEntry{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	entries, err := s.loadTx(ctx, tx)
	if err != nil {
		return model.HistoryEntry{}, err
	}

	for _, e := range entries {
		if e.ID == id {
			return e, tx.Commit()
		}
	}
	return model.HistoryEntry{}, common.ErrNotFound
}

// Update merges the partial update into the matching entry. An absent
// id is a no-op, not an error.
func (s *SQLiteStore) Update(ctx context.Context, id string, update model.HistoryUpdate) error {
	if err := validateString(id, "id"); err != nil {
		return err
	}

	return s.mutate(ctx, func(entries []model.HistoryEntry) ([]model.HistoryEntry, error) {
		for i := range entries {
			if entries[i].ID != id {
				continue
			}
			if update.Label != nil {
				entries[i].Label = *update.Label
			}
			if update.Data != nil {
				entries[i].Data = update.Data
			}
			if update.Verification != nil {
				entries[i].Verification = update.Verification
			}
			break
		}
		return entries, nil
	})
}

// Delete removes the matching entry; no-op if absent.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if err := validateString(id, "id"); err != nil {
		return err
	}

	return s.mutate(ctx, func(entries []model.HistoryEntry) ([]model.HistoryEntry, error) {
		kept := entries[:0:0]
		for _, e := range entries {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		return kept, nil
	})
}

// ClearByMode removes all entries matching mode, retaining the others.
func (s *SQLiteStore) ClearByMode(ctx context.Context, mode model.Mode) error {
	return s.mutate(ctx, func(entries []model.HistoryEntry) ([]model.HistoryEntry, error) {
		kept := entries[:0:0]
		for _, e := range entries {
			if e.Mode != mode {
				kept = append(kept, e)
			}
		}
		return kept, nil
	})
}

// ClearAll destroys the history and every other key of persisted
// application state. This is the factory reset: irreversible.
func (s *SQLiteStore) ClearAll(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv`); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	return nil
}
