package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-dodge/internal/config"
	"github.com/vovakirdan/neon-dodge/internal/platform/tui"
	"github.com/vovakirdan/neon-dodge/internal/sensor"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick difficulty and level, then play in the terminal",
	Long: `Start Neon Dodge with an interactive start menu.

Choose a difficulty and a starting level, then play. Quitting a game
returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc          - Back
  Q            - Quit

Examples:
  neondodge menu
  neondodge menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagSensorRoot, "sensor-root", sensor.DefaultIIORoot, "IIO sysfs root to search for an accelerometer")
}

func runMenu(_ *cobra.Command, _ []string) {
	base, err := config.LoadDodge(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	src := detectSensor(flagSensorRoot)

	// Menu loop
	for {
		selection, err := tui.RunStartMenu(base.Levels.Max, width, height)
		if err != nil {
			logger.Error("menu exited with error", "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeLog()
			os.Exit(1)
		}
		if selection == nil {
			break
		}

		cfg := base
		config.ApplyDodgePreset(&cfg, selection.Preset)
		cfg.Levels.Start = selection.Level

		game, err := newGame(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			closeLog()
			os.Exit(1)
		}

		rt := runtimeConfig()
		if rt.Seed == 0 {
			rt.Seed = time.Now().UnixNano()
		}

		opts := tui.Options{
			Config:     cfg,
			Runtime:    rt,
			ViewW:      width,
			ViewH:      height,
			Sensor:     src,
			SensorHint: src != nil,
			Logger:     logger,
		}
		if err := tui.Run(game, opts); err != nil {
			logger.Error("game exited with error", "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			closeLog()
			os.Exit(1)
		}

		// Loop back to menu
	}
}
