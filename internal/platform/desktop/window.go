package desktop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/neon-dodge/internal/config"
	"github.com/vovakirdan/neon-dodge/internal/core"
	"github.com/vovakirdan/neon-dodge/internal/registry"
	"github.com/vovakirdan/neon-dodge/internal/sensor"
)

const (
	fallbackW = 1024
	fallbackH = 768
	title     = "Neon Dodge"
)

var (
	hudColor    = rl.NewColor(255, 0, 255, 255)
	noticeColor = rl.NewColor(0, 255, 255, 255)
)

// Options configures a window session.
type Options struct {
	Config  config.DodgeConfig
	Runtime core.RuntimeConfig // Canvas size is derived from the monitor

	// Sensor is the tilt source used after a click. Nil uses the gamepad.
	Sensor sensor.Source
	// SensorHint shows the click-to-activate notice at startup when a
	// sensor or gamepad is present.
	SensorHint bool

	Logger *log.Logger
}

// WindowSize returns the canvas size for a monitor, falling back to a
// fixed size when the monitor reports nothing.
func WindowSize(monW, monH int, fraction float64) (w, h int32) {
	if monW <= 0 || monH <= 0 {
		return fallbackW, fallbackH
	}
	return int32(float64(monW) * fraction), int32(float64(monH) * fraction)
}

// Run opens the window and plays until it is closed or Q is pressed.
func Run(game registry.Game, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}

	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(fallbackW, fallbackH, title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("desktop: failed to open window")
	}

	mon := rl.GetCurrentMonitor()
	w, h := WindowSize(rl.GetMonitorWidth(mon), rl.GetMonitorHeight(mon), opts.Config.Display.CanvasFraction)
	rl.SetWindowSize(int(w), int(h))
	rl.SetTargetFPS(int32(rt.TickRate))
	// Escape dismisses notices instead of closing the window.
	rl.SetExitKey(rl.KeyNull)

	rt.CanvasW, rt.CanvasH = float64(w), float64(h)
	game.Reset(rt)

	src := opts.Sensor
	if src == nil {
		src = NewGamepad(0)
	}
	every := time.Duration(opts.Config.Input.SensorPollMS) * time.Millisecond
	s := newSession(game, src, every, logger)
	// Gamepads are detected when the window opens.
	if opts.SensorHint {
		s.offerSensorHint(opts.Sensor != nil || rl.IsGamepadAvailable(0))
	}

	logger.Info("session started", "game", game.ID(), "level", s.state.Level,
		"canvas", fmt.Sprintf("%dx%d", w, h), "seed", rt.Seed)

	canvas := NewCanvas()
	ctx := context.Background()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			s.click(ctx)
		}
		s.poll(ctx, time.Now())

		if _, showing := s.notice(); showing {
			if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEscape) {
				s.dismiss()
			}
		} else {
			in := heldDirections(rl.IsKeyDown)
			in.Pause = rl.IsKeyPressed(rl.KeyP)
			s.step(in)
		}

		if dismissed := draw(game, canvas, s, w, h); dismissed {
			s.dismiss()
		}
	}

	logger.Info("session ended")
	return nil
}

// draw renders one frame and reports whether the notice OK button was clicked.
func draw(game registry.Game, canvas *Canvas, s *session, w, h int32) bool {
	rl.BeginDrawing()

	game.Render(canvas)

	hud := fmt.Sprintf("Level %d  Targets %d/%d", s.state.Level, s.state.Collected, s.state.Required)
	rl.DrawText(hud, 10, 10, 20, hudColor)
	if s.state.Paused {
		rl.DrawText("PAUSED", 10, 35, 20, rl.Yellow)
	}
	rl.DrawText("arrows/wasd move | p pause | q quit | click: motion sensor", 10, h-25, 14, rl.Gray)

	dismissed := false
	if text, ok := s.notice(); ok {
		dismissed = drawNotice(text, w, h)
	}

	rl.EndDrawing()
	return dismissed
}

// drawNotice dims the game and draws a centered message box with an OK button.
func drawNotice(text string, w, h int32) bool {
	rl.DrawRectangle(0, 0, w, h, rl.Fade(rl.Black, 0.6))

	const fontSize = 24
	textW := rl.MeasureText(text, fontSize)
	boxW, boxH := max(textW+80, 240), int32(130)
	x, y := (w-boxW)/2, (h-boxH)/2

	rl.DrawRectangle(x, y, boxW, boxH, background)
	rl.DrawRectangleLines(x, y, boxW, boxH, noticeColor)
	rl.DrawText(text, x+(boxW-textW)/2, y+30, fontSize, rl.White)

	btn := rl.Rectangle{X: float32(x + boxW/2 - 50), Y: float32(y + 80), Width: 100, Height: 30}
	return gui.Button(btn, "OK")
}
