package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("BETPREDICT_TEST_DIR", "/tmp/betpredict")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "/var/lib/betpredict.db", "/var/lib/betpredict.db"},
		{"tilde prefix", "~/data/betpredict.db", filepath.Join(home, "data/betpredict.db")},
		{"bare tilde", "~", home},
		{"env var", "$BETPREDICT_TEST_DIR/betpredict.db", "/tmp/betpredict/betpredict.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}

func TestGeminiPrefersEnvKey(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()

	viper.Set("gemini.api_key", "from-config")
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg := Gemini()
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "gemini-3-flash-preview", cfg.DefaultModel)
	assert.InDelta(t, 0.3, cfg.Temperature, 0.0001)
}

func TestGeminiFallsBackToConfigKey(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()

	viper.Set("gemini.api_key", "from-config")
	t.Setenv("GEMINI_API_KEY", "")

	cfg := Gemini()
	assert.Equal(t, "from-config", cfg.APIKey)
}
