package oracle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dxne-Dev/Bet-predict/internal/model"
)

func TestSingleEventTaskCarriesParameters(t *testing.T) {
	task := singleEventTask(testEvent())
	assert.Contains(t, task, "Arsenal")
	assert.Contains(t, task, "Chelsea")
	assert.Contains(t, task, "2026-09-05")
	assert.Contains(t, task, "Football")
}

func TestBestChoiceTaskSpecializesPerSport(t *testing.T) {
	football := bestChoiceTask("Football", "2026-09-05")
	assert.Contains(t, football, "CORNERS (30%)")
	assert.Contains(t, football, "CARDS (30%)")
	assert.Contains(t, football, "GOALS PER HALF (20%)")
	assert.Contains(t, football, "FINAL RESULT (20%)")

	tennis := bestChoiceTask("Tennis", "2026-09-05")
	assert.Contains(t, tennis, "RAW PERFORMANCE (60%)")
	assert.Contains(t, tennis, "SQUAD STATUS (20%)")
	assert.Contains(t, tennis, "CONTEXT & STAKES (20%)")
	assert.NotContains(t, tennis, "CORNERS (30%)")
}

func TestProphecyTaskStatesAllThreeKeys(t *testing.T) {
	task := prophecyTask("2026-09-05")
	assert.Contains(t, task, "usage rate above 30%")
	assert.Contains(t, task, "bottom 7")
	assert.Contains(t, task, "85%")
	assert.Contains(t, task, "empty picks list")
}

func TestVerificationTaskEmbedsStoredPayload(t *testing.T) {
	entry := model.HistoryEntry{
		ID:        "abc",
		Timestamp: 1756684800000,
		Label:     "Arsenal vs Chelsea (2026-08-20)",
		Data:      json.RawMessage(`[{"market":"Match Result","prediction":"Arsenal wins"}]`),
	}
	task := verificationTask(entry)
	assert.Contains(t, task, entry.Label)
	assert.Contains(t, task, `"Arsenal wins"`)
	assert.Contains(t, task, "isSuccess to null")
}
