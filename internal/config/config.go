// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible word picks.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"HANGMAN_SEED"`

	// RevealDelay is how long the finished word stays up before the next turn.
	RevealDelay time.Duration `env:"HANGMAN_REVEAL_DELAY" envDefault:"2s"`

	DefaultTheme  string `env:"HANGMAN_DEFAULT_THEME"  envDefault:"computer_science"`
	FallbackTheme string `env:"HANGMAN_FALLBACK_THEME"` // empty: unknown themes are rejected

	LogFile  string `env:"HANGMAN_LOG_FILE"  envDefault:"hangman.log"`
	LogLevel string `env:"HANGMAN_LOG_LEVEL" envDefault:"info"`

	HoneycombAPIKey   string `env:"HONEYCOMB_HANGMAN_API_KEY"`
	HoneycombDataset  string `env:"HONEYCOMB_HANGMAN_DATASET" envDefault:"hangman"`
	HoneycombEndpoint string `env:"HONEYCOMB_ENDPOINT"        envDefault:"api.honeycomb.io"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	if c.RevealDelay < 0 {
		return fmt.Errorf("HANGMAN_REVEAL_DELAY must not be negative, got %s", c.RevealDelay)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("HANGMAN_LOG_LEVEL: %w", err)
	}
	if c.DefaultTheme == "" {
		return errors.New("HANGMAN_DEFAULT_THEME must not be empty")
	}
	return nil
}

// TelemetryEnabled reports whether traces should be exported.
func (c Config) TelemetryEnabled() bool {
	return c.HoneycombAPIKey != ""
}
