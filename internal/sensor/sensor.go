// Package sensor reads device tilt from motion sensors.
//
// A Source must be granted permission once before it delivers readings.
// Readings are accelerations including gravity, in m/s², on the device's
// x (right) and y (up) axes.
package sensor

import (
	"context"
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrUnavailable is returned when no motion sensor is present.
	ErrUnavailable = errors.New("sensor: no motion sensor available")

	// ErrPermissionDenied is returned when the sensor exists but cannot be read.
	ErrPermissionDenied = errors.New("sensor: permission denied")
)

// Gravity is standard gravity in m/s².
const Gravity = 9.80665

// Reading is one accelerometer sample. Missing axes read as 0.
type Reading struct {
	X float64
	Y float64
}

// Tilt maps the reading onto canvas axes. Canvas y grows downward, so the
// vertical axis is inverted.
func (r Reading) Tilt() r2.Vec {
	return r2.Vec{X: r.X, Y: -r.Y}
}

// Source is a motion sensor the host can poll.
type Source interface {
	// RequestPermission asks for access to the sensor. It must succeed
	// before Read returns data.
	RequestPermission(ctx context.Context) error

	// Read returns the latest sample.
	Read(ctx context.Context) (Reading, error)
}
