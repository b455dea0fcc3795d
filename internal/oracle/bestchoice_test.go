package oracle

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dxne-Dev/Bet-predict/internal/testutil"
)

func TestBestChoice(t *testing.T) {
	inf := &testutil.MockInferencer{
		Response: json.RawMessage(`{
			"dataFound": true,
			"intro": "Three fixtures cleared the composite threshold today.",
			"recommendations": [
				{"match": "Arsenal vs Chelsea", "market": "Corners", "choice": "Over 9.5", "confidence": 82, "reasoning": "Both sides attack wide"}
			],
			"conclusion": "Stake conservatively."
		}`),
	}
	svc := newTestService(inf, testutil.NewMemoryStore())

	outcome, err := svc.BestChoice(context.Background(), "Football", "2026-09-05")
	require.NoError(t, err)
	require.True(t, outcome.IsFound())
	require.Len(t, outcome.Data.Recommendations, 1)
	assert.Equal(t, float64(82), outcome.Data.Recommendations[0].Confidence)
}

func TestBestChoiceProviderReportsNoData(t *testing.T) {
	inf := &testutil.MockInferencer{
		Response: json.RawMessage(`{
			"dataFound": false,
			"intro": "No confirmed fixtures.",
			"recommendations": [],
			"conclusion": ""
		}`),
	}
	svc := newTestService(inf, testutil.NewMemoryStore())

	outcome, err := svc.BestChoice(context.Background(), "Tennis", "2026-09-05")
	require.NoError(t, err)
	assert.False(t, outcome.IsFound())
}

func TestBestChoiceDataFoundButNothingUsable(t *testing.T) {
	// The local emptiness derivation is authoritative: a dataFound=true
	// flag over an unusable list still yields the not-found outcome.
	inf := &testutil.MockInferencer{
		Response: json.RawMessage(`{
			"dataFound": true,
			"intro": "Analysis follows.",
			"recommendations": [
				{"match": "A vs B", "market": "", "choice": "", "confidence": 0, "reasoning": "incomplete"}
			],
			"conclusion": "n/a"
		}`),
	}
	svc := newTestService(inf, testutil.NewMemoryStore())

	outcome, err := svc.BestChoice(context.Background(), "Football", "2026-09-05")
	require.NoError(t, err)
	assert.False(t, outcome.IsFound())
}
