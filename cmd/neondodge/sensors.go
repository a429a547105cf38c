package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dodge/internal/sensor"
)

var (
	flagProbeRoot     string
	flagProbeCount    int
	flagProbeInterval time.Duration
)

var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "Probe motion sensors and print readings",
	Long: `Looks for an IIO accelerometer, requests access and prints readings
as the game would see them (tilt = x, -y).

Examples:
  neondodge sensors
  neondodge sensors --count 20 --interval 250ms
  neondodge sensors --root /tmp/fake-iio`,
	Args: cobra.NoArgs,
	Run:  runSensors,
}

func init() {
	sensorsCmd.Flags().StringVar(&flagProbeRoot, "root", sensor.DefaultIIORoot, "IIO sysfs root")
	sensorsCmd.Flags().IntVar(&flagProbeCount, "count", 5, "Number of readings to print")
	sensorsCmd.Flags().DurationVar(&flagProbeInterval, "interval", 200*time.Millisecond, "Delay between readings")
}

func runSensors(cmd *cobra.Command, args []string) {
	src := sensor.NewIIO(flagProbeRoot)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := src.RequestPermission(ctx); err != nil {
		switch {
		case errors.Is(err, sensor.ErrUnavailable):
			fmt.Println("No motion sensor found.")
			return
		case errors.Is(err, sensor.ErrPermissionDenied):
			fmt.Fprintf(os.Stderr, "Motion sensor permission denied: %v\n", err)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Accelerometer: %s\n\n", src.Device())
	fmt.Printf("  %8s  %8s  %8s  %8s\n", "x m/s²", "y m/s²", "tilt x", "tilt y")

	for i := range flagProbeCount {
		if i > 0 {
			time.Sleep(flagProbeInterval)
		}
		r, err := src.Read(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading sensor: %v\n", err)
			os.Exit(1)
		}
		tilt := r.Tilt()
		fmt.Printf("  %8.3f  %8.3f  %8.3f  %8.3f\n", r.X, r.Y, tilt.X, tilt.Y)
	}
}
