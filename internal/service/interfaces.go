// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/schema"
)

// InferRequest describes one schema-constrained call to the inference
// provider. Task is the full natural-language instruction; Schema is
// the declared shape of the structured response. AllowSearch permits
// the provider to consult its retrieval capability before answering,
// which every task needing real-world grounding must request.
type InferRequest struct {
	Task        string
	Schema      schema.Ref
	AllowSearch bool
	Model       string
}

// Inferencer is the external inference collaborator. Implementations
// perform exactly one outbound call per Infer invocation and propagate
// transport failures unchanged; retry policy belongs to the caller.
type Inferencer interface {
	Infer(ctx context.Context, req InferRequest) (json.RawMessage, error)
}

// HistoryStore is the persistence capability for prediction records.
// The store exclusively owns entry identity and ordering: entries are
// kept most-recent-first and the collection is truncated to a fixed
// retention cap on append.
type HistoryStore interface {
	// Append assigns a unique id and the current timestamp, prepends
	// the entry and persists the capped collection, returning the
	// fully materialized record.
	Append(ctx context.Context, entry model.HistoryEntry) (model.HistoryEntry, error)
	// ListByMode returns entries matching mode in store order.
	ListByMode(ctx context.Context, mode model.Mode) ([]model.HistoryEntry, error)
	// Get returns the entry with the given id, or common.ErrNotFound.
	Get(ctx context.Context, id string) (model.HistoryEntry, error)
	// Update merges the partial update into the matching entry.
	// An absent id is a no-op, not an error.
	Update(ctx context.Context, id string, update model.HistoryUpdate) error
	// Delete removes the matching entry; no-op if absent.
	Delete(ctx context.Context, id string) error
	// ClearByMode removes all entries matching mode, retaining others.
	ClearByMode(ctx context.Context, mode model.Mode) error
	// ClearAll destroys all stored records and every other piece of
	// persisted application state. Irreversible.
	ClearAll(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
