// Package desktop runs games in a raylib window.
//
// The window reports real key releases and draws true circles, so it is
// the closest host to the game's intended look. A gamepad stick or a
// motion sensor can stand in for device tilt.
package desktop

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/neon-dodge/internal/core"
	"github.com/vovakirdan/neon-dodge/internal/games/dodge"
	"github.com/vovakirdan/neon-dodge/internal/registry"
	"github.com/vovakirdan/neon-dodge/internal/sensor"
)

// session holds the per-window game state that does not touch raylib.
type session struct {
	game   registry.Game
	logger *log.Logger

	src       sensor.Source
	requested bool
	polling   bool
	every     time.Duration
	lastPoll  time.Time

	tilt       r2.Vec
	tiltActive bool

	notices []string
	state   core.GameState
}

func newSession(game registry.Game, src sensor.Source, every time.Duration, logger *log.Logger) *session {
	return &session{
		game:   game,
		src:    src,
		every:  every,
		logger: logger,
		state:  game.State(),
	}
}

// notice returns the modal message currently showing.
func (s *session) notice() (string, bool) {
	if len(s.notices) == 0 {
		return "", false
	}
	return s.notices[0], true
}

func (s *session) dismiss() {
	if len(s.notices) > 0 {
		s.notices = s.notices[1:]
	}
}

// offerSensorHint queues the click-to-activate notice when a tilt source
// is present to activate.
func (s *session) offerSensorHint(available bool) {
	if !available || s.requested {
		return
	}
	s.notices = append(s.notices, dodge.NoticeSensorHint)
}

// click handles the one-time sensor permission gesture. Notices are left
// to the OK button, which reacts to the release of the same click.
func (s *session) click(ctx context.Context) {
	if s.src == nil || s.requested {
		return
	}
	s.requested = true

	if err := s.src.RequestPermission(ctx); err != nil {
		s.logger.Warn("motion sensor unavailable", "error", err,
			"denied", errors.Is(err, sensor.ErrPermissionDenied))
		s.notices = append(s.notices, dodge.NoticeSensorDenied)
		return
	}
	s.logger.Info("motion sensor permission granted")
	s.polling = true
}

// poll reads the sensor when the poll interval has passed.
func (s *session) poll(ctx context.Context, now time.Time) {
	if !s.polling || now.Sub(s.lastPoll) < s.every {
		return
	}
	s.lastPoll = now

	r, err := s.src.Read(ctx)
	if err != nil {
		s.logger.Warn("motion sensor read failed", "error", err)
		s.polling = false
		return
	}

	if !s.tiltActive {
		s.tiltActive = true
		s.notices = append(s.notices, dodge.NoticeSensorOn)
		s.logger.Info("motion sensor activated")
	}
	s.tilt = r.Tilt()
}

// step runs one frame unless a notice is showing.
func (s *session) step(in core.InputSnapshot) {
	if _, showing := s.notice(); showing {
		return
	}

	in.Tilt = s.tilt
	in.TiltActive = s.tiltActive

	result := s.game.Step(in)
	prev := s.state
	s.state = result.State

	switch result.Phase {
	case core.PhaseGameOver:
		s.logger.Info("lost", "level", s.state.Level)
	case core.PhaseWon:
		s.logger.Info("won", "restart_level", s.state.Level)
	case core.PhaseLevelCleared:
		s.logger.Info("level cleared", "from", prev.Level, "to", s.state.Level)
	}

	if text, ok := dodge.PhaseNotice(result.Phase); ok {
		s.notices = append(s.notices, text)
	}
}
