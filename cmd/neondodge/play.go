package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-dodge/internal/platform/tui"
	"github.com/vovakirdan/neon-dodge/internal/sensor"
)

var flagSensorRoot string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Neon Dodge in the terminal.

Controls:
  Arrows/WASD  - Move
  Click        - Activate motion sensor (once)
  P            - Pause
  Enter/Esc    - Dismiss message
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower obstacles
  normal - Default speed
  hard   - Faster obstacles
  fixed  - No level progression

Examples:
  neondodge play
  neondodge play --difficulty hard
  neondodge play --level 3 --seed 7
  neondodge play --config ./my-dodge.yaml --log-file dodge.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSensorRoot, "sensor-root", sensor.DefaultIIORoot, "IIO sysfs root to search for an accelerometer")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Logs would corrupt the alt screen unless sent to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := newGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{
		Config:  cfg,
		Runtime: runtimeConfig(),
		ViewW:   width,
		ViewH:   height,
		Logger:  logger,
	}
	if src := detectSensor(flagSensorRoot); src != nil {
		opts.Sensor = src
		opts.SensorHint = true
	}

	if err := tui.Run(game, opts); err != nil {
		logger.Error("game exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
