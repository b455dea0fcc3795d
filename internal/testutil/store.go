// Package testutil provides test utilities shared across packages.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Dxne-Dev/Bet-predict/internal/common"
	"github.com/Dxne-Dev/Bet-predict/internal/model"
)

// MemoryStore is an in-memory service.HistoryStore for tests. It
// mirrors the SQLite adapter's semantics: most-recent-first order,
// retention cap, no-op updates and deletes on absent ids.
type MemoryStore struct {
	mu      sync.Mutex
	entries []model.HistoryEntry
	cap     int
	Now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store with the default
// retention cap.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cap: 100, Now: time.Now}
}

// NewMemoryStoreWithCap creates a store with a custom retention cap.
func NewMemoryStoreWithCap(cap int) *MemoryStore {
	s := NewMemoryStore()
	s.cap = cap
	return s
}

// Append implements service.HistoryStore.
func (s *MemoryStore) Append(_ context.Context, entry model.HistoryEntry) (model.HistoryEntry, error) {
	if !entry.Mode.Valid() {
		return model.HistoryEntry{}, fmt.Errorf("%w: unknown mode %q", common.ErrInvalidInput, entry.Mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uuid.NewString()
	entry.Timestamp = s.Now().UnixMilli()

	s.entries = append([]model.HistoryEntry{entry}, s.entries...)
	if len(s.entries) > s.cap {
		s.entries = s.entries[:s.cap]
	}
	return entry, nil
}

// ListByMode implements service.HistoryStore.
func (s *MemoryStore) ListByMode(_ context.Context, mode model.Mode) ([]model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]model.HistoryEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.Mode == mode {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// Get implements service.HistoryStore.
func (s *MemoryStore) Get(_ context.Context, id string) (model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return model.HistoryEntry{}, common.ErrNotFound
}

// Update implements service.HistoryStore.
func (s *MemoryStore) Update(_ context.Context, id string, update model.HistoryUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		if update.Label != nil {
			s.entries[i].Label = *update.Label
		}
		if update.Data != nil {
			s.entries[i].Data = update.Data
		}
		if update.Verification != nil {
			s.entries[i].Verification = update.Verification
		}
		break
	}
	return nil
}

// Delete implements service.HistoryStore.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0:0]
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	return nil
}

// ClearByMode implements service.HistoryStore.
func (s *MemoryStore) ClearByMode(_ context.Context, mode model.Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0:0]
	for _, e := range s.entries {
		if e.Mode != mode {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	return nil
}

// ClearAll implements service.HistoryStore.
func (s *MemoryStore) ClearAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}

// Close implements service.HistoryStore.
func (s *MemoryStore) Close() error {
	return nil
}

// Len returns the number of stored entries across all modes.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
