package oracle

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dxne-Dev/Bet-predict/internal/testutil"
)

func TestDigitAnalysis(t *testing.T) {
	inf := &testutil.MockInferencer{
		Response: json.RawMessage(`{
			"date": "2026-09-05",
			"globalTrend": "Totals trending high this week.",
			"predictions": [
				{"match": "Lakers vs Celtics", "homeTeam": "Lakers", "awayTeam": "Celtics", "predictedDigit": "7", "predictedTotalScore": "227", "confidence": "Medium", "reasoning": "Pace-up matchup", "recentScores": ["117-110", "121-107"]}
			]
		}`),
	}
	svc := newTestService(inf, testutil.NewMemoryStore())

	outcome, err := svc.DigitAnalysis(context.Background(), "2026-09-05")
	require.NoError(t, err)
	require.True(t, outcome.IsFound())
	require.Len(t, outcome.Data.Predictions, 1)
	assert.Equal(t, "7", outcome.Data.Predictions[0].PredictedDigit)
	assert.Equal(t, "Totals trending high this week.", outcome.Data.GlobalTrend)
}

func TestDigitAnalysisNoGames(t *testing.T) {
	inf := &testutil.MockInferencer{
		Response: json.RawMessage(`{"date": "2026-07-15", "predictions": []}`),
	}
	svc := newTestService(inf, testutil.NewMemoryStore())

	outcome, err := svc.DigitAnalysis(context.Background(), "2026-07-15")
	require.NoError(t, err)
	assert.False(t, outcome.IsFound())
}
