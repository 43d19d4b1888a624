// Package config resolves runtime settings from the environment.
package config

import (
	"os"
	"strconv"
)

// Environment variable names.
const (
	EnvOutputDir     = "CURSOR_KICKSTART_OUTPUT"
	EnvTokenWarn     = "CURSOR_KICKSTART_TOKEN_WARN"
	EnvCharsPerToken = "CURSOR_KICKSTART_CHARS_PER_TOKEN"
	EnvGeminiKey     = "GEMINI_API_KEY"
	EnvPort          = "PORT"
)

// Config holds the resolved runtime settings. Zero values for the
// estimator knobs mean "use the built-in defaults".
type Config struct {
	OutputDir     string
	TokenWarn     int
	CharsPerToken int
	Port          int
}

// Load reads settings from the environment. Unparseable numeric values
// are treated as unset rather than failing startup.
func Load() Config {
	cfg := Config{
		OutputDir: os.Getenv(EnvOutputDir),
		Port:      8080,
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if v := os.Getenv(EnvTokenWarn); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TokenWarn = n
		}
	}
	if v := os.Getenv(EnvCharsPerToken); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CharsPerToken = n
		}
	}
	if v := os.Getenv(EnvPort); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < 65536 {
			cfg.Port = n
		}
	}
	return cfg
}

// HasGeminiKey reports whether an AI collaborator can be constructed.
func HasGeminiKey() bool {
	return os.Getenv(EnvGeminiKey) != ""
}
