package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/Dxne-Dev/Bet-predict/internal/common"
	"github.com/Dxne-Dev/Bet-predict/internal/schema"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), Config{})
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestToGenAISchemaPredictionList(t *testing.T) {
	node, err := schema.Lookup(schema.PredictionList)
	require.NoError(t, err)

	converted := toGenAISchema(node)
	require.NotNil(t, converted)
	assert.Equal(t, genai.TypeArray, converted.Type)

	item := converted.Items
	require.NotNil(t, item)
	assert.Equal(t, genai.TypeObject, item.Type)
	assert.ElementsMatch(t, []string{"market", "prediction", "confidence", "justification"}, item.Required)

	confidence := item.Properties["confidence"]
	require.NotNil(t, confidence)
	assert.Equal(t, genai.TypeString, confidence.Type)
	assert.ElementsMatch(t, []string{"Low", "Medium", "High"}, confidence.Enum)
}

func TestToGenAISchemaNullable(t *testing.T) {
	node, err := schema.Lookup(schema.Verification)
	require.NoError(t, err)

	converted := toGenAISchema(node)
	require.NotNil(t, converted)

	isSuccess := converted.Properties["isSuccess"]
	require.NotNil(t, isSuccess)
	assert.Equal(t, genai.TypeBoolean, isSuccess.Type)
	require.NotNil(t, isSuccess.Nullable)
	assert.True(t, *isSuccess.Nullable)

	actualResults := converted.Properties["actualResults"]
	require.NotNil(t, actualResults)
	assert.Nil(t, actualResults.Nullable)
}

func TestToGenAISchemaNil(t *testing.T) {
	assert.Nil(t, toGenAISchema(nil))
}
