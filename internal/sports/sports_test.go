package sports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 5)

	// All returns a copy, not the backing catalog.
	all[0].Name = "mutated"
	fresh := All()
	assert.Equal(t, "Football", fresh[0].Name)
}

func TestFind(t *testing.T) {
	tests := []struct {
		input  string
		wantID string
		ok     bool
	}{
		{"football", "football", true},
		{"Football", "football", true},
		{"  NHL  ", "nhl", true},
		{"E-Sports", "esports", true},
		{"basketball", "basketball", true},
		{"cricket", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sport, ok := Find(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.wantID, sport.ID)
			}
		})
	}
}
