package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dxne-Dev/Bet-predict/internal/common"
	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/schema"
	"github.com/Dxne-Dev/Bet-predict/internal/service"
)

type verificationPayload struct {
	ActualResults string `json:"actualResults"`
	Comparison    string `json:"comparison"`
	IsSuccess     *bool  `json:"isSuccess"`
}

// Verify audits a stored prediction against real-world results and
// persists the tri-state verdict into the entry.
//
// Temporal guard: when the event date extracted from the entry label
// is strictly in the future, no truth determination is requested from
// the provider. The verdict is forced indeterminate, because a
// prediction cannot be right or wrong before the event exists.
//
// Verification is all-or-nothing: a provider or store failure leaves
// the entry untouched and is reported to the caller.
func (s *Service) Verify(ctx context.Context, entry model.HistoryEntry) (model.Verification, error) {
	if entry.ID == "" {
		return model.Verification{}, fmt.Errorf("%w: entry id is required", common.ErrInvalidInput)
	}

	if dateStr := common.ExtractDate(entry.Label); dateStr != "" {
		eventDate, err := time.Parse("2006-01-02", dateStr)
		if err == nil && eventDate.After(s.now()) {
			verification := model.Verification{
				ActualResults: fmt.Sprintf("The event dated %s has not occurred yet; no result exists to audit.", dateStr),
				Comparison:    "Verdict deferred until the event has been played.",
				IsSuccess:     nil,
				VerifiedAt:    s.now().UnixMilli(),
			}
			if err := s.store.Update(ctx, entry.ID, model.HistoryUpdate{Verification: &verification}); err != nil {
				return model.Verification{}, fmt.Errorf("failed to persist verification: %w", err)
			}
			slog.Info("verification deferred for future event", "id", entry.ID, "event_date", dateStr)
			return verification, nil
		}
	}

	raw, err := s.infer(ctx, "verify:"+entry.ID, service.InferRequest{
		Task:        verificationTask(entry),
		Schema:      schema.Verification,
		AllowSearch: true,
		Model:       modelFlash,
	})
	if err != nil {
		return model.Verification{}, err
	}

	payload, err := decodeAs[verificationPayload](raw, schema.Verification)
	if err != nil {
		return model.Verification{}, err
	}

	verification := model.Verification{
		ActualResults: payload.ActualResults,
		Comparison:    payload.Comparison,
		IsSuccess:     payload.IsSuccess,
		VerifiedAt:    s.now().UnixMilli(),
	}

	if err := s.store.Update(ctx, entry.ID, model.HistoryUpdate{Verification: &verification}); err != nil {
		return model.Verification{}, fmt.Errorf("failed to persist verification: %w", err)
	}

	slog.Info("verification recorded", "id", entry.ID, "is_success", payload.IsSuccess)
	return verification, nil
}
