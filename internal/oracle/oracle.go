// Package oracle is the prediction-request orchestration core: it
// builds task instructions, issues schema-constrained inference calls,
// validates and classifies responses, and runs the post-hoc
// verification workflow against the history store.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Dxne-Dev/Bet-predict/internal/common"
	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/service"
)

// Service orchestrates prediction requests against the inference
// collaborator and the history store.
type Service struct {
	inferencer service.Inferencer
	store      service.HistoryStore
	retryOpts  service.RetryOptions
	now        func() time.Time
	group      singleflight.Group
}

// Option customizes a Service.
type Option func(*Service)

// WithRetryOptions overrides the default retry policy for provider
// failures.
func WithRetryOptions(opts service.RetryOptions) Option {
	return func(s *Service) {
		s.retryOpts = opts
	}
}

// WithClock overrides the time source. Used by tests to pin the
// temporal guard.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates the orchestration service.
func New(inferencer service.Inferencer, store service.HistoryStore, opts ...Option) *Service {
	s := &Service{
		inferencer: inferencer,
		store:      store,
		retryOpts: service.RetryOptions{
			MaxAttempts:  2,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     5 * time.Second,
			Multiplier:   2.0,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// infer issues the outbound call through the per-surface single-flight
// group: a second identical submission while one is outstanding shares
// its result instead of racing a duplicate call. Provider failures are
// retried per the service policy; schema violations never are.
func (s *Service) infer(ctx context.Context, surface string, req service.InferRequest) (json.RawMessage, error) {
	v, err, shared := s.group.Do(surface, func() (any, error) {
		var raw json.RawMessage
		retryErr := common.WithRetry(ctx, func() error {
			r, inferErr := s.inferencer.Infer(ctx, req)
			if inferErr != nil {
				return inferErr
			}
			raw = r
			return nil
		}, s.retryOpts)
		return raw, retryErr
	})
	if shared {
		slog.Debug("joined in-flight inference call", "surface", surface)
	}
	if err != nil {
		return nil, err
	}
	raw, ok := v.(json.RawMessage)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected in-flight result type", common.ErrProviderFailure)
	}
	return raw, nil
}

// Record persists a generated result in the history store and returns
// the materialized entry.
func (s *Service) Record(ctx context.Context, sport string, mode model.Mode, typ model.EntryType, label string, data any) (model.HistoryEntry, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return model.HistoryEntry{}, fmt.Errorf("failed to marshal result: %w", err)
	}

	entry, err := s.store.Append(ctx, model.HistoryEntry{
		Sport: sport,
		Mode:  mode,
		Type:  typ,
		Label: label,
		Data:  payload,
	})
	if err != nil {
		return model.HistoryEntry{}, fmt.Errorf("failed to record prediction: %w", err)
	}

	slog.Info("prediction recorded", "id", entry.ID, "type", typ, "mode", mode)
	return entry, nil
}

// ValidateEvent enforces the event preconditions callers must satisfy
// before any request is constructed.
func ValidateEvent(event model.Event) error {
	if event.Sport == "" {
		return fmt.Errorf("%w: sport is required", common.ErrInvalidInput)
	}
	if event.Date == "" {
		return fmt.Errorf("%w: date is required", common.ErrInvalidInput)
	}
	if _, err := time.Parse("2006-01-02", event.Date); err != nil {
		return fmt.Errorf("%w: date must be an ISO calendar date (YYYY-MM-DD)", common.ErrInvalidInput)
	}
	if event.TeamA.Name == "" || event.TeamB.Name == "" {
		return fmt.Errorf("%w: both team names are required", common.ErrInvalidInput)
	}
	if event.TeamA.ID == event.TeamB.ID || strings.EqualFold(event.TeamA.Name, event.TeamB.Name) {
		return fmt.Errorf("%w: a team cannot play itself", common.ErrInvalidInput)
	}
	return nil
}

// ValidateEventCount enforces the [2,10] accumulator bound.
func ValidateEventCount(count int) error {
	if count < 2 || count > 10 {
		return fmt.Errorf("%w: event count must be between 2 and 10, got %d", common.ErrInvalidInput, count)
	}
	return nil
}
