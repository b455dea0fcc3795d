package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"label with date", "Arsenal vs Chelsea (2026-09-05)", "2026-09-05"},
		{"date only", "2026-01-31", "2026-01-31"},
		{"first of two dates", "from 2026-09-05 to 2026-09-07", "2026-09-05"},
		{"no date", "AI recommendation", ""},
		{"partial date", "season 2026-27", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDate(tt.input))
		})
	}
}
