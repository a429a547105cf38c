package sensor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// DefaultIIORoot is where Linux exposes industrial I/O devices.
const DefaultIIORoot = "/sys/bus/iio/devices"

const (
	accelX     = "in_accel_x_raw"
	accelY     = "in_accel_y_raw"
	accelScale = "in_accel_scale"
)

// IIO reads a Linux IIO accelerometer through sysfs.
type IIO struct {
	root string

	mu    sync.Mutex
	dev   string  // Device directory, set once permission is granted
	scale float64 // Raw units to m/s²
}

// NewIIO creates a source that looks for an accelerometer under root.
// An empty root means DefaultIIORoot.
func NewIIO(root string) *IIO {
	if root == "" {
		root = DefaultIIORoot
	}
	return &IIO{root: root}
}

// Detect reports whether an accelerometer is present under root.
func Detect(root string) bool {
	if root == "" {
		root = DefaultIIORoot
	}
	_, err := findAccel(root)
	return err == nil
}

// Device returns the device directory in use, or "" before permission.
func (s *IIO) Device() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dev
}

// RequestPermission locates the accelerometer and checks it is readable.
func (s *IIO) RequestPermission(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dev, err := findAccel(s.root)
	if err != nil {
		return err
	}

	// A probe read tells a missing device apart from a locked one.
	if _, err := readValue(filepath.Join(dev, accelX)); err != nil {
		return err
	}

	scale, err := readValue(filepath.Join(dev, accelScale))
	if err != nil {
		return err
	}
	if scale == 0 {
		scale = 1
	}

	s.mu.Lock()
	s.dev = dev
	s.scale = scale
	s.mu.Unlock()
	return nil
}

// Read returns the current acceleration in m/s².
func (s *IIO) Read(ctx context.Context) (Reading, error) {
	if err := ctx.Err(); err != nil {
		return Reading{}, err
	}

	s.mu.Lock()
	dev, scale := s.dev, s.scale
	s.mu.Unlock()
	if dev == "" {
		return Reading{}, fmt.Errorf("%w: permission not requested", ErrPermissionDenied)
	}

	x, err := readValue(filepath.Join(dev, accelX))
	if err != nil {
		return Reading{}, err
	}
	y, err := readValue(filepath.Join(dev, accelY))
	if err != nil {
		return Reading{}, err
	}

	return Reading{X: x * scale, Y: y * scale}, nil
}

// findAccel returns the first iio:device directory exposing an x axis.
func findAccel(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", classify(root, err)
	}

	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "iio:device") {
			continue
		}
		dev := filepath.Join(root, e.Name())
		if _, err := os.Stat(filepath.Join(dev, accelX)); err == nil {
			return dev, nil
		}
	}
	return "", fmt.Errorf("%w: no accelerometer under %s", ErrUnavailable, root)
}

// readValue parses a numeric sysfs attribute. A missing file reads as 0.
func readValue(path string) (float64, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, classify(path, err)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, fmt.Errorf("sensor: parse %s: %w", path, err)
	}
	return v, nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, path)
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrUnavailable, path)
	default:
		return fmt.Errorf("sensor: %s: %w", path, err)
	}
}
