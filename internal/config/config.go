// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Dxne-Dev/Bet-predict/internal/gemini"
)

// SetDefaults registers the default configuration values.
func SetDefaults() {
	viper.SetDefault("database.path", "$HOME/.local/share/betpredict/betpredict.db")
	viper.SetDefault("gemini.model", "gemini-3-flash-preview")
	viper.SetDefault("gemini.temperature", 0.3)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}

// DatabasePath returns the expanded path to the history database.
func DatabasePath() string {
	return ExpandPath(viper.GetString("database.path"))
}

// Gemini assembles the inference client configuration. The API key is
// read from config or, preferentially, the GEMINI_API_KEY environment
// variable.
func Gemini() gemini.Config {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = viper.GetString("gemini.api_key")
	}
	return gemini.Config{
		APIKey:       apiKey,
		DefaultModel: viper.GetString("gemini.model"),
		Temperature:  viper.GetFloat64("gemini.temperature"),
	}
}

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
