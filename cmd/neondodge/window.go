package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dodge/internal/platform/desktop"
	"github.com/vovakirdan/neon-dodge/internal/sensor"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Neon Dodge in a desktop window sized to 80% of the monitor.

Controls:
  Arrows/WASD  - Move
  Click        - Activate tilt (accelerometer, or gamepad left stick)
  P            - Pause
  Enter/Esc    - Dismiss message
  Q            - Quit

Examples:
  neondodge window
  neondodge window --difficulty easy --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagSensorRoot, "sensor-root", sensor.DefaultIIORoot, "IIO sysfs root to search for an accelerometer")
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := newGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Without an accelerometer the gamepad stick stands in for tilt. The
	// hint is only shown when one of the two is present.
	opts := desktop.Options{
		Config:     cfg,
		Runtime:    runtimeConfig(),
		Sensor:     detectSensor(flagSensorRoot),
		SensorHint: true,
		Logger:     logger,
	}

	if err := desktop.Run(game, opts); err != nil {
		logger.Error("window exited with error", "error", err)
		closeLog()
		os.Exit(1)
	}
}
