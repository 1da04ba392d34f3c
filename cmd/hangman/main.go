// Package main is the entry point for Hangman.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/hangman/internal/app"
	"github.com/samdwyer/hangman/internal/config"
	"github.com/samdwyer/hangman/internal/gamedata"
	"github.com/samdwyer/hangman/internal/logging"
	"github.com/samdwyer/hangman/internal/telemetry"
	"github.com/samdwyer/hangman/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := run(context.Background()); err != nil {
		log.Printf("hangman: %v", err)
		os.Exit(1)
	}
}

// run wires the game together and blocks until the player quits.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, logFile, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx = logger.WithContext(ctx)

	if cfg.TelemetryEnabled() {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			Endpoint: cfg.HoneycombEndpoint,
			APIKey:   cfg.HoneycombAPIKey,
			Dataset:  cfg.HoneycombDataset,
		})
		if err != nil {
			// Continue without telemetry - game still works
			logger.Warn().Err(err).Msg("telemetry setup failed")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("telemetry shutdown")
				}
			}()
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	words, err := gamedata.LoadWordBank(rand.New(rand.NewSource(seed)), gamedata.WithFallbackTheme(cfg.FallbackTheme))
	if err != nil {
		return fmt.Errorf("load word bank: %w", err)
	}
	logger.Info().Int64("seed", seed).Int("themes", words.Count()).Msg("starting")

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}

	if err := app.New(cfg, screen, words).Run(ctx); err != nil {
		logger.Error().Err(err).Msg("game error")
		return err
	}
	return nil
}
