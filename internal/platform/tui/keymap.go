package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-dodge/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Dismiss, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", " ", "esc"),
			key.WithHelp("enter", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction maps a key message to a movement direction.
func (k KeyMap) Direction(msg tea.KeyMsg) (core.Direction, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.DirUp, true
	case key.Matches(msg, k.Down):
		return core.DirDown, true
	case key.Matches(msg, k.Left):
		return core.DirLeft, true
	case key.Matches(msg, k.Right):
		return core.DirRight, true
	}
	return 0, false
}

// HeldKeys tracks which directions count as held.
// Terminals report key presses but never releases. A first press holds
// its direction for delay, long enough for the keyboard's auto-repeat to
// start. Each repeat press then extends the hold by window.
type HeldKeys struct {
	delay  time.Duration
	window time.Duration
	until  [len(core.Directions)]time.Time
}

// NewHeldKeys creates a tracker. delay covers the gap before the first
// auto-repeat; window covers the gap between repeats.
func NewHeldKeys(delay, window time.Duration) HeldKeys {
	return HeldKeys{delay: delay, window: window}
}

// Press marks d as held from now. The opposite direction is released,
// since a terminal cannot report both being down.
func (h *HeldKeys) Press(d core.Direction, now time.Time) {
	hold := h.delay
	if now.Before(h.until[d]) {
		hold = h.window
	}
	if until := now.Add(hold); until.After(h.until[d]) {
		h.until[d] = until
	}
	h.until[d.Opposite()] = time.Time{}
}

// Release drops every held direction.
func (h *HeldKeys) Release() {
	h.until = [len(core.Directions)]time.Time{}
}

// Apply copies the directions still held at now into the snapshot.
func (h *HeldKeys) Apply(in *core.InputSnapshot, now time.Time) {
	for _, d := range core.Directions {
		if now.Before(h.until[d]) {
			in.Hold(d)
		}
	}
}
