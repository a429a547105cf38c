package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/neon-dodge/internal/config"
	"github.com/vovakirdan/neon-dodge/internal/core"
	"github.com/vovakirdan/neon-dodge/internal/games/dodge"
	"github.com/vovakirdan/neon-dodge/internal/sensor"
)

// stubGame records inputs and returns scripted phases.
type stubGame struct {
	reset  core.RuntimeConfig
	inputs []core.InputSnapshot
	phases []core.Phase
	state  core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.reset = cfg
	g.state = core.GameState{Level: 1, Required: 1, Obstacles: 6, Targets: 1}
}

func (g *stubGame) Step(in core.InputSnapshot) core.StepResult {
	g.inputs = append(g.inputs, in)
	phase := core.PhasePlaying
	if len(g.phases) > 0 {
		phase, g.phases = g.phases[0], g.phases[1:]
	}
	return core.StepResult{State: g.state, Phase: phase}
}

func (g *stubGame) Render(dst core.Canvas) {
	dst.Clear()
	dst.FillRect(0, 0, 12, 24, core.Color("#FF00FF"))
}

func (g *stubGame) State() core.GameState { return g.state }

type stubSensor struct {
	permErr error
	reading sensor.Reading
}

func (s *stubSensor) RequestPermission(context.Context) error { return s.permErr }

func (s *stubSensor) Read(context.Context) (sensor.Reading, error) { return s.reading, nil }

func testOptions() Options {
	return Options{
		Config:  config.DefaultDodgeConfig(),
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 1},
		ViewW:   82,
		ViewH:   54,
	}
}

func newTestModel(t *testing.T, g *stubGame, opts Options) Model {
	t.Helper()
	m := NewModel(g, opts)
	base := time.Unix(1000, 0)
	m.now = func() time.Time { return base }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestCanvasSizedFromViewport(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, testOptions())

	// (82-2)*0.8 = 64 columns, (54-4)*0.8 = 40 rows
	if m.screen.Width() != 64 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 64x40", m.screen.Width(), m.screen.Height())
	}
	if g.reset.CanvasW != 64*6 || g.reset.CanvasH != 40*12 {
		t.Errorf("canvas = %gx%g, expected 384x480", g.reset.CanvasW, g.reset.CanvasH)
	}
	if g.reset.Seed != 1 {
		t.Errorf("seed = %d, expected 1", g.reset.Seed)
	}
}

func TestCanvasCellsTinyViewport(t *testing.T) {
	cols, rows := CanvasCells(0, 0, config.DefaultDodgeConfig().Display)
	if cols != 1 || rows != 1 {
		t.Errorf("CanvasCells(0, 0) = %d, %d; expected 1, 1", cols, rows)
	}
}

func TestDirectionKeyHeldOnTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, testOptions())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}

	if len(g.inputs) != 1 {
		t.Fatalf("Step called %d times, expected 1", len(g.inputs))
	}
	in := g.inputs[0]
	if !in.Held(core.DirRight) || in.Held(core.DirLeft) {
		t.Errorf("snapshot should hold only Right: %+v", in)
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, testOptions())

	m, cmd := update(t, m, runeKey('x'))
	if cmd != nil {
		t.Error("unbound key should not produce a command")
	}
	update(t, m, TickMsg{})

	for _, d := range core.Directions {
		if g.inputs[0].Held(d) {
			t.Errorf("%v held after unbound key", d)
		}
	}
}

func TestPauseKeySentOnce(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, testOptions())

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	if !g.inputs[0].Pause {
		t.Error("first frame should carry the pause toggle")
	}
	if g.inputs[1].Pause {
		t.Error("pause toggle should not repeat")
	}
}

func TestQuitKey(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, &stubGame{}, testOptions())
		m, cmd := update(t, m, msg)
		if cmd == nil {
			t.Fatalf("%q should quit", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q should return tea.Quit", msg.String())
		}
		if m.View() != "" {
			t.Error("View should be empty after quitting")
		}
	}
}

func TestLossRaisesNoticeAndBlocks(t *testing.T) {
	g := &stubGame{phases: []core.Phase{core.PhaseGameOver}}
	m := newTestModel(t, g, testOptions())

	m, _ = update(t, m, TickMsg{})
	if text, ok := m.notices.current(); !ok || text != dodge.NoticeLost {
		t.Fatalf("notice = %q, %v; expected %q", text, ok, dodge.NoticeLost)
	}
	if !strings.Contains(m.View(), dodge.NoticeLost) {
		t.Error("View should show the loss notice")
	}

	// Frames are frozen until the notice is dismissed.
	m, _ = update(t, m, TickMsg{})
	if len(g.inputs) != 1 {
		t.Fatalf("Step called %d times while notice showing, expected 1", len(g.inputs))
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	update(t, m, TickMsg{})
	if len(g.inputs) != 2 {
		t.Errorf("Step called %d times after dismiss, expected 2", len(g.inputs))
	}
}

func TestWinRaisesNotice(t *testing.T) {
	g := &stubGame{phases: []core.Phase{core.PhaseLevelCleared, core.PhaseWon}}
	m := newTestModel(t, g, testOptions())

	m, _ = update(t, m, TickMsg{})
	if _, ok := m.notices.current(); ok {
		t.Fatal("level clear should not raise a notice")
	}

	m, _ = update(t, m, TickMsg{})
	if text, _ := m.notices.current(); text != dodge.NoticeWon {
		t.Errorf("notice = %q, expected %q", text, dodge.NoticeWon)
	}
}

func TestSensorHintAtStartup(t *testing.T) {
	opts := testOptions()
	opts.Sensor = &stubSensor{}
	opts.SensorHint = true
	m := newTestModel(t, &stubGame{}, opts)

	if text, _ := m.notices.current(); text != dodge.NoticeSensorHint {
		t.Errorf("startup notice = %q, expected %q", text, dodge.NoticeSensorHint)
	}

	opts.Sensor = nil
	m = newTestModel(t, &stubGame{}, opts)
	if _, ok := m.notices.current(); ok {
		t.Error("no hint expected without a sensor")
	}
}

func leftClick() tea.MouseMsg {
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestClickRequestsPermissionOnce(t *testing.T) {
	opts := testOptions()
	opts.Sensor = &stubSensor{}
	opts.SensorHint = true
	m := newTestModel(t, &stubGame{}, opts)

	m, cmd := update(t, m, leftClick())
	if cmd == nil {
		t.Fatal("first click should request permission")
	}
	if _, ok := m.notices.current(); ok {
		t.Error("click should acknowledge the hint")
	}
	if msg, ok := cmd().(sensorPermissionMsg); !ok || msg.err != nil {
		t.Errorf("permission cmd returned %#v", msg)
	}

	_, cmd = update(t, m, leftClick())
	if cmd != nil {
		t.Error("second click should not request permission again")
	}
}

func TestClickWithoutSensor(t *testing.T) {
	m := newTestModel(t, &stubGame{}, testOptions())
	if _, cmd := update(t, m, leftClick()); cmd != nil {
		t.Error("click without a sensor should do nothing")
	}
}

func TestRightClickIgnored(t *testing.T) {
	opts := testOptions()
	opts.Sensor = &stubSensor{}
	m := newTestModel(t, &stubGame{}, opts)

	msg := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if _, cmd := update(t, m, msg); cmd != nil {
		t.Error("right click should not request permission")
	}
}

func TestPermissionDeniedNotice(t *testing.T) {
	opts := testOptions()
	opts.Sensor = &stubSensor{permErr: sensor.ErrPermissionDenied}
	m := newTestModel(t, &stubGame{}, opts)

	m, cmd := update(t, m, leftClick())
	m, cmd = update(t, m, cmd())
	if cmd != nil {
		t.Error("denied permission should not start polling")
	}
	if text, _ := m.notices.current(); text != dodge.NoticeSensorDenied {
		t.Errorf("notice = %q, expected %q", text, dodge.NoticeSensorDenied)
	}
}

func TestSensorReadingActivatesTilt(t *testing.T) {
	src := &stubSensor{}
	opts := testOptions()
	opts.Sensor = src
	g := &stubGame{}
	m := newTestModel(t, g, opts)

	m, cmd := update(t, m, sensorPermissionMsg{})
	if cmd == nil {
		t.Fatal("granted permission should start polling")
	}

	m, cmd = update(t, m, sensorReadingMsg{reading: sensor.Reading{X: 1, Y: 2}})
	if cmd == nil {
		t.Error("polling should continue after a reading")
	}
	if text, _ := m.notices.current(); text != dodge.NoticeSensorOn {
		t.Fatalf("notice = %q, expected %q", text, dodge.NoticeSensorOn)
	}

	// Only the first reading raises the notice.
	m, _ = update(t, m, sensorReadingMsg{reading: sensor.Reading{X: 3, Y: 4}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.notices.current(); ok {
		t.Fatal("activation notice should be raised once")
	}

	update(t, m, TickMsg{})
	in := g.inputs[0]
	if !in.TiltActive || in.Tilt != (r2.Vec{X: 3, Y: -4}) {
		t.Errorf("snapshot tilt = %+v (active %v), expected {3 -4}", in.Tilt, in.TiltActive)
	}
}

func TestSensorReadErrorStopsPolling(t *testing.T) {
	opts := testOptions()
	opts.Sensor = &stubSensor{}
	m := newTestModel(t, &stubGame{}, opts)

	m, cmd := update(t, m, sensorReadingMsg{err: errors.New("boom")})
	if cmd != nil {
		t.Error("read error should stop polling")
	}
	if m.tiltActive {
		t.Error("failed read should not activate tilt")
	}
}

func TestViewShowsHUD(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, testOptions())
	m, _ = update(t, m, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "Level 1") || !strings.Contains(view, "Targets 0/1") {
		t.Errorf("HUD missing from view:\n%s", view)
	}
	if !strings.Contains(view, string(core.FillRune)) {
		t.Error("rendered canvas should contain the drawn rectangle")
	}
}
