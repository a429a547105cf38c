package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-dodge/internal/sensor"
)

// sensorTimeout bounds a single permission request or read.
const sensorTimeout = 2 * time.Second

// sensorPermissionMsg carries the outcome of a permission request.
type sensorPermissionMsg struct {
	err error
}

// sensorReadingMsg carries one motion-sensor sample.
type sensorReadingMsg struct {
	reading sensor.Reading
	err     error
}

func requestSensorCmd(src sensor.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sensorTimeout)
		defer cancel()
		return sensorPermissionMsg{err: src.RequestPermission(ctx)}
	}
}

func pollSensorCmd(src sensor.Source, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sensorTimeout)
		defer cancel()
		r, err := src.Read(ctx)
		return sensorReadingMsg{reading: r, err: err}
	})
}
