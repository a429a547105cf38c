package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-dodge/internal/config"
	"github.com/vovakirdan/neon-dodge/internal/core"
	"github.com/vovakirdan/neon-dodge/internal/games/dodge"
	"github.com/vovakirdan/neon-dodge/internal/registry"
	"github.com/vovakirdan/neon-dodge/internal/sensor"
)

// newLogger builds the session logger. Without a log file, logs go to
// fallback (the terminal host passes io.Discard to keep the alt screen clean).
// The returned close function must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		//nolint:errcheck // Best-effort close on exit
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "neondodge",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig resolves the dodge config from file, preset and flags.
func loadGameConfig() (config.DodgeConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.DodgeConfig{}, err
	}

	cfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		return config.DodgeConfig{}, err
	}

	config.ApplyDodgePreset(&cfg, preset)
	if flagLevel != 0 {
		cfg.Levels.Start = flagLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.DodgeConfig{}, err
	}
	return cfg, nil
}

// newGame configures and creates the dodge game.
func newGame(cfg config.DodgeConfig) (registry.Game, error) {
	dodge.Configure(cfg)
	return registry.Create(dodge.ID)
}

func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	return rt
}

// detectSensor returns the accelerometer under root, or nil when there is none.
func detectSensor(root string) sensor.Source {
	if !sensor.Detect(root) {
		return nil
	}
	return sensor.NewIIO(root)
}
