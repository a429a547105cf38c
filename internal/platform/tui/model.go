package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/neon-dodge/internal/config"
	"github.com/vovakirdan/neon-dodge/internal/core"
	"github.com/vovakirdan/neon-dodge/internal/games/dodge"
	"github.com/vovakirdan/neon-dodge/internal/registry"
	"github.com/vovakirdan/neon-dodge/internal/sensor"
)

// hudLines is the number of terminal rows reserved around the canvas:
// HUD line, canvas border (2) and help line.
const hudLines = 4

var (
	canvasStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF"))

	hudStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF"))

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFF00"))
)

// Options configures a terminal session.
type Options struct {
	Config  config.DodgeConfig
	Runtime core.RuntimeConfig // Canvas size is derived from the viewport

	ViewW int // Terminal columns at startup
	ViewH int // Terminal rows at startup

	// Sensor is the motion sensor to poll after a click. Nil disables tilt.
	Sensor sensor.Source
	// SensorHint shows the click-to-activate notice at startup.
	SensorHint bool

	Logger *log.Logger
}

// CanvasCells returns the canvas size in terminal cells for a viewport.
func CanvasCells(viewW, viewH int, d config.DodgeDisplay) (cols, rows int) {
	cols = int(float64(viewW-2) * d.CanvasFraction)
	rows = int(float64(viewH-hudLines) * d.CanvasFraction)
	return core.Max(cols, 1), core.Max(rows, 1)
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	canvas  *core.ScreenCanvas
	runtime core.RuntimeConfig
	cfg     config.DodgeConfig
	logger  *log.Logger

	keys KeyMap
	help help.Model
	held HeldKeys
	now  func() time.Time

	pause      bool // Pause toggle requested for the next frame
	tilt       r2.Vec
	tiltActive bool

	sensor          sensor.Source
	sensorRequested bool

	notices  noticeQueue
	state    core.GameState
	width    int
	height   int
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game. The canvas is
// sized once from the startup viewport.
func NewModel(game registry.Game, opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	d := opts.Config.Display
	cols, rows := CanvasCells(opts.ViewW, opts.ViewH, d)
	rt.CanvasW = float64(cols) * d.CellWidth
	rt.CanvasH = float64(rows) * d.CellHeight

	screen := core.NewScreen(cols, rows)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:    game,
		screen:  screen,
		canvas:  core.NewScreenCanvas(screen, d.CellWidth, d.CellHeight),
		runtime: rt,
		cfg:     opts.Config,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		held:    NewHeldKeys(ms(opts.Config.Input.KeyDelayMS), ms(opts.Config.Input.KeyHoldMS)),
		now:     time.Now,
		sensor:  opts.Sensor,
		width:   opts.ViewW,
		height:  opts.ViewH,
	}

	m.game.Reset(rt)
	m.state = m.game.State()

	if opts.SensorHint && opts.Sensor != nil {
		m.notices = m.notices.push(dodge.NoticeSensorHint)
	}

	m.logger.Info("session started",
		"game", game.ID(),
		"level", m.state.Level,
		"canvas", fmt.Sprintf("%gx%g", rt.CanvasW, rt.CanvasH),
		"seed", rt.Seed)

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()

	case sensorPermissionMsg:
		return m.handleSensorPermission(msg)

	case sensorReadingMsg:
		return m.handleSensorReading(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Unbound keys are ignored.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if _, showing := m.notices.current(); showing {
		if key.Matches(msg, m.keys.Dismiss) {
			m.notices = m.notices.dismiss()
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Pause) {
		m.pause = true
		return m, nil
	}

	if d, ok := m.keys.Direction(msg); ok {
		m.held.Press(d, m.now())
	}
	return m, nil
}

// handleMouse treats the first left click as the permission gesture.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	// A click also acknowledges the startup hint.
	if text, showing := m.notices.current(); showing && text == dodge.NoticeSensorHint {
		m.notices = m.notices.dismiss()
	}

	if m.sensor == nil || m.sensorRequested {
		return m, nil
	}
	m.sensorRequested = true
	m.logger.Debug("requesting motion sensor permission")
	return m, requestSensorCmd(m.sensor)
}

func (m Model) handleSensorPermission(msg sensorPermissionMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("motion sensor unavailable", "error", msg.err,
			"denied", errors.Is(msg.err, sensor.ErrPermissionDenied))
		m.notices = m.notices.push(dodge.NoticeSensorDenied)
		return m, nil
	}

	m.logger.Info("motion sensor permission granted")
	return m, pollSensorCmd(m.sensor, m.pollInterval())
}

func (m Model) handleSensorReading(msg sensorReadingMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Stop polling; keyboard keeps working.
		m.logger.Warn("motion sensor read failed", "error", msg.err)
		return m, nil
	}

	if !m.tiltActive {
		m.tiltActive = true
		m.notices = m.notices.push(dodge.NoticeSensorOn)
		m.logger.Info("motion sensor activated")
	}
	m.tilt = msg.reading.Tilt()

	return m, pollSensorCmd(m.sensor, m.pollInterval())
}

func (m Model) pollInterval() time.Duration {
	return ms(m.cfg.Input.SensorPollMS)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// handleTick runs one frame unless a notice is showing.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if _, showing := m.notices.current(); showing {
		m.held.Release()
		m.pause = false
		return m, tickCmd(m.runtime.TickRate)
	}

	in := core.InputSnapshot{
		Tilt:       m.tilt,
		TiltActive: m.tiltActive,
		Pause:      m.pause,
	}
	m.held.Apply(&in, m.now())
	m.pause = false

	result := m.game.Step(in)
	prev := m.state
	m.state = result.State

	switch result.Phase {
	case core.PhaseGameOver:
		m.logger.Info("lost", "level", m.state.Level)
	case core.PhaseWon:
		m.logger.Info("won", "restart_level", m.state.Level)
	case core.PhaseLevelCleared:
		m.logger.Info("level cleared", "from", prev.Level, "to", m.state.Level)
	}

	if text, ok := dodge.PhaseNotice(result.Phase); ok {
		m.notices = m.notices.push(text)
		m.held.Release()
	}

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if text, showing := m.notices.current(); showing {
		return renderNotice(text, m.width, m.height)
	}

	m.game.Render(m.canvas)

	hud := hudStyle.Render(fmt.Sprintf("NEON DODGE  Level %d  Targets %d/%d",
		m.state.Level, m.state.Collected, m.state.Required))
	if m.state.Paused {
		hud += "  " + pausedStyle.Render("PAUSED")
	}
	if m.tiltActive {
		hud += "  tilt"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		hud,
		canvasStyle.Render(RenderScreen(m.screen)),
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks request motion-sensor permission
	)

	_, err := p.Run()
	return err
}
