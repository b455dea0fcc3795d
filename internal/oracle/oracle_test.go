package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dxne-Dev/Bet-predict/internal/common"
	"github.com/Dxne-Dev/Bet-predict/internal/model"
	"github.com/Dxne-Dev/Bet-predict/internal/service"
	"github.com/Dxne-Dev/Bet-predict/internal/testutil"
)

func fastRetry() service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func newTestService(inf *testutil.MockInferencer, store *testutil.MemoryStore, opts ...Option) *Service {
	opts = append([]Option{WithRetryOptions(fastRetry())}, opts...)
	return New(inf, store, opts...)
}

func testEvent() model.Event {
	return model.Event{
		ID:    "arsenal-vs-chelsea",
		Sport: "Football",
		Date:  "2026-09-05",
		TeamA: model.Team{ID: "arsenal", Name: "Arsenal"},
		TeamB: model.Team{ID: "chelsea", Name: "Chelsea"},
	}
}

func TestSingleEventPredictions(t *testing.T) {
	inf := &testutil.MockInferencer{
		Response: json.RawMessage(`[
			{"market": "Match Result", "prediction": "Arsenal wins", "confidence": "High", "justification": "Strong home form"},
			{"market": "Total Goals", "prediction": "Over 2.5", "confidence": "Medium", "justification": "Both attack well"}
		]`),
	}
	svc := newTestService(inf, testutil.NewMemoryStore())

	outcome, err := svc.SingleEventPredictions(context.Background(), testEvent())
	require.NoError(t, err)
	require.True(t, outcome.IsFound())
	require.Len(t, outcome.Data, 2)
	assert.Equal(t, "Match Result", outcome.Data[0].Market)
	assert.Equal(t, model.ConfidenceHigh, outcome.Data[0].Confidence)
	assert.Equal(t, 1, inf.CallCount())
}

func TestSingleEventPredictionsDropsPlaceholders(t *testing.T) {
	// One element is missing its prediction text. The payload is still
	// accepted and the bad element is dropped, never rendered.
	inf := &testutil.MockInferencer{
		Response: json.RawMessage(`[
			{"market": "Match Result", "prediction": "Draw", "confidence": "Low", "justification": "Evenly matched"},
			{"market": "Corners", "prediction": "", "confidence": "Low", "justification": ""}
		]`),
	}
	svc := newTestService(inf, testutil.NewMemoryStore())

	outcome, err := svc.SingleEventPredictions(context.Background(), testEvent())
	require.NoError(t, err)
	require.True(t, outcome.IsFound())
	require.Len(t, outcome.Data, 1)
	assert.Equal(t, "Match Result", outcome.Data[0].Market)
}

func TestSingleEventPredictionsEmptyList(t *testing.T) {
	// A well-formed empty list means nothing qualified. That is a
	// normal outcome, not an error, and nothing gets fabricated.
	inf := &testutil.MockInferencer{Response: json.RawMessage(`[]`)}
	svc := newTestService(inf, testutil.NewMemoryStore())

	outcome, err := svc.SingleEventPredictions(context.Background(), testEvent())
	require.NoError(t, err)
	assert.False(t, outcome.IsFound())
	assert.Empty(t, outcome.Data)
}

func TestSingleEventPredictionsMalformedPayload(t *testing.T) {
	inf := &testutil.MockInferencer{Response: json.RawMessage(`{not json`)}
	svc := newTestService(inf, testutil.NewMemoryStore())

	_, err := svc.SingleEventPredictions(context.Background(), testEvent())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSchemaViolation)
	// Contract breaches are terminal for the request: no retry.
	assert.Equal(t, 1, inf.CallCount())
}

func TestSingleEventPredictionsWrongShape(t *testing.T) {
	// Valid JSON of the wrong shape is as much a breach as junk bytes.
	inf := &testutil.MockInferencer{Response: json.RawMessage(`{"market": "Match Result"}`)}
	svc := newTestService(inf, testutil.NewMemoryStore())

	_, err := svc.SingleEventPredictions(context.Background(), testEvent())
	assert.ErrorIs(t, err, common.ErrSchemaViolation)
}

func TestFirstHalfPredictions(t *testing.T) {
	inf := &testutil.MockInferencer{
		Response: json.RawMessage(`[
			{"market": "1st Half Result", "prediction": "Draw", "confidence": "Medium", "justification": "Slow starters"}
		]`),
	}
	svc := newTestService(inf, testutil.NewMemoryStore())

	outcome, err := svc.FirstHalfPredictions(context.Background(), testEvent())
	require.NoError(t, err)
	require.True(t, outcome.IsFound())
	require.Len(t, inf.Requests, 1)
	assert.True(t, inf.Requests[0].AllowSearch)
}

func TestInferRetriesProviderFailures(t *testing.T) {
	inf := &testutil.MockInferencer{
		Err: fmt.Errorf("%w: upstream timeout", common.ErrProviderFailure),
	}
	svc := newTestService(inf, testutil.NewMemoryStore())

	_, err := svc.SingleEventPredictions(context.Background(), testEvent())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMaxRetries)
	assert.Equal(t, 2, inf.CallCount())
}

func TestInferRecoversOnSecondAttempt(t *testing.T) {
	calls := 0
	inf := &testutil.MockInferencer{
		Handler: func(service.InferRequest) (json.RawMessage, error) {
			calls++
			if calls == 1 {
				return nil, fmt.Errorf("%w: connection reset", common.ErrProviderFailure)
			}
			return json.RawMessage(`[{"market": "Match Result", "prediction": "Arsenal wins", "confidence": "High", "justification": "ok"}]`), nil
		},
	}
	svc := newTestService(inf, testutil.NewMemoryStore())

	outcome, err := svc.SingleEventPredictions(context.Background(), testEvent())
	require.NoError(t, err)
	assert.True(t, outcome.IsFound())
	assert.Equal(t, 2, calls)
}

func TestRecord(t *testing.T) {
	store := testutil.NewMemoryStore()
	svc := newTestService(&testutil.MockInferencer{}, store)

	predictions := []model.Prediction{
		{Market: "Match Result", Prediction: "Arsenal wins", Confidence: model.ConfidenceHigh},
	}
	entry, err := svc.Record(context.Background(), "Football", model.ModePro, model.EntrySingleEvent, "Arsenal vs Chelsea (2026-09-05)", predictions)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.NotZero(t, entry.Timestamp)
	assert.Equal(t, model.EntrySingleEvent, entry.Type)

	stored, err := store.Get(context.Background(), entry.ID)
	require.NoError(t, err)

	var decoded []model.Prediction
	require.NoError(t, json.Unmarshal(stored.Data, &decoded))
	assert.Equal(t, predictions, decoded)
}

func TestRecordRejectsUnknownMode(t *testing.T) {
	svc := newTestService(&testutil.MockInferencer{}, testutil.NewMemoryStore())

	_, err := svc.Record(context.Background(), "Football", model.Mode("free"), model.EntrySingleEvent, "label", nil)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestValidateEvent(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Event)
		wantErr bool
	}{
		{"valid", func(*model.Event) {}, false},
		{"missing sport", func(e *model.Event) { e.Sport = "" }, true},
		{"missing date", func(e *model.Event) { e.Date = "" }, true},
		{"bad date format", func(e *model.Event) { e.Date = "05/09/2026" }, true},
		{"missing team name", func(e *model.Event) { e.TeamB.Name = "" }, true},
		{"same team id", func(e *model.Event) { e.TeamB.ID = e.TeamA.ID }, true},
		{"same team name different case", func(e *model.Event) {
			e.TeamB = model.Team{ID: "arsenal2", Name: "ARSENAL"}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := testEvent()
			tt.mutate(&event)
			err := ValidateEvent(event)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEventCount(t *testing.T) {
	assert.Error(t, ValidateEventCount(1))
	assert.NoError(t, ValidateEventCount(2))
	assert.NoError(t, ValidateEventCount(10))
	assert.Error(t, ValidateEventCount(11))
}
