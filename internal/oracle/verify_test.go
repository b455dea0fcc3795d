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
	"github.com/Dxne-Dev/Bet-predict/internal/testutil"
)

func fixedClock(iso string) func() time.Time {
	at, err := time.Parse("2006-01-02", iso)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return at }
}

func appendEntry(t *testing.T, store *testutil.MemoryStore, label string) model.HistoryEntry {
	t.Helper()
	entry, err := store.Append(context.Background(), model.HistoryEntry{
		Sport: "Football",
		Mode:  model.ModePro,
		Type:  model.EntrySingleEvent,
		Label: label,
		Data:  json.RawMessage(`[{"market": "Match Result", "prediction": "Arsenal wins"}]`),
	})
	require.NoError(t, err)
	return entry
}

func TestVerifyCompletedEvent(t *testing.T) {
	store := testutil.NewMemoryStore()
	entry := appendEntry(t, store, "Arsenal vs Chelsea (2026-08-20)")

	inf := &testutil.MockInferencer{
		Response: json.RawMessage(`{
			"actualResults": "Arsenal won 2-0.",
			"comparison": "The match result forecast was correct.",
			"isSuccess": true
		}`),
	}
	svc := newTestService(inf, store, WithClock(fixedClock("2026-09-01")))

	verification, err := svc.Verify(context.Background(), entry)
	require.NoError(t, err)
	require.NotNil(t, verification.IsSuccess)
	assert.True(t, *verification.IsSuccess)
	assert.Equal(t, 1, inf.CallCount())

	stored, err := store.Get(context.Background(), entry.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Verification)
	assert.Equal(t, "Arsenal won 2-0.", stored.Verification.ActualResults)
}

func TestVerifyFutureEventSkipsProvider(t *testing.T) {
	// The event is dated after "now": no truth determination is
	// requested and the verdict is forced indeterminate, even though
	// the mock would happily return a success.
	store := testutil.NewMemoryStore()
	entry := appendEntry(t, store, "Arsenal vs Chelsea (2026-09-15)")

	inf := &testutil.MockInferencer{
		Response: json.RawMessage(`{"actualResults": "made up", "comparison": "made up", "isSuccess": true}`),
	}
	svc := newTestService(inf, store, WithClock(fixedClock("2026-09-01")))

	verification, err := svc.Verify(context.Background(), entry)
	require.NoError(t, err)
	assert.Nil(t, verification.IsSuccess)
	assert.Zero(t, inf.CallCount())

	stored, err := store.Get(context.Background(), entry.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Verification)
	assert.Nil(t, stored.Verification.IsSuccess)
	assert.NotEmpty(t, stored.Verification.ActualResults)
}

func TestVerifyIndeterminateVerdict(t *testing.T) {
	store := testutil.NewMemoryStore()
	entry := appendEntry(t, store, "Arsenal vs Chelsea (2026-08-20)")

	inf := &testutil.MockInferencer{
		Response: json.RawMessage(`{
			"actualResults": "The match was postponed.",
			"comparison": "No result exists to compare against.",
			"isSuccess": null
		}`),
	}
	svc := newTestService(inf, store, WithClock(fixedClock("2026-09-01")))

	verification, err := svc.Verify(context.Background(), entry)
	require.NoError(t, err)
	assert.Nil(t, verification.IsSuccess)
}

func TestVerifyProviderFailureLeavesEntryUntouched(t *testing.T) {
	store := testutil.NewMemoryStore()
	entry := appendEntry(t, store, "Arsenal vs Chelsea (2026-08-20)")

	inf := &testutil.MockInferencer{Err: fmt.Errorf("%w: upstream 503", common.ErrProviderFailure)}
	svc := newTestService(inf, store, WithClock(fixedClock("2026-09-01")))

	_, err := svc.Verify(context.Background(), entry)
	require.Error(t, err)

	stored, getErr := store.Get(context.Background(), entry.ID)
	require.NoError(t, getErr)
	assert.Nil(t, stored.Verification)
}

func TestVerifyMalformedVerdict(t *testing.T) {
	store := testutil.NewMemoryStore()
	entry := appendEntry(t, store, "Arsenal vs Chelsea (2026-08-20)")

	inf := &testutil.MockInferencer{Response: json.RawMessage(`{"actualResults": "x"}`)}
	svc := newTestService(inf, store, WithClock(fixedClock("2026-09-01")))

	_, err := svc.Verify(context.Background(), entry)
	assert.ErrorIs(t, err, common.ErrSchemaViolation)

	stored, getErr := store.Get(context.Background(), entry.ID)
	require.NoError(t, getErr)
	assert.Nil(t, stored.Verification)
}

func TestVerifyRequiresID(t *testing.T) {
	svc := newTestService(&testutil.MockInferencer{}, testutil.NewMemoryStore())

	_, err := svc.Verify(context.Background(), model.HistoryEntry{})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestVerifyUndatedLabelAsksProvider(t *testing.T) {
	// No extractable date means the temporal guard cannot apply; the
	// provider is consulted normally.
	store := testutil.NewMemoryStore()
	entry := appendEntry(t, store, "AI recommendation")

	inf := &testutil.MockInferencer{
		Response: json.RawMessage(`{"actualResults": "Both legs won.", "comparison": "Slip cashed.", "isSuccess": true}`),
	}
	svc := newTestService(inf, store, WithClock(fixedClock("2026-09-01")))

	verification, err := svc.Verify(context.Background(), entry)
	require.NoError(t, err)
	require.NotNil(t, verification.IsSuccess)
	assert.True(t, *verification.IsSuccess)
	assert.Equal(t, 1, inf.CallCount())
}
