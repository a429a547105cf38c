// Package dodge implements Neon Dodge: steer a ball around bouncing squares
// and collect every target to clear a level. Clearing the last level wins
// the game and starts over at level 1.
package dodge

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/neon-dodge/internal/config"
	"github.com/vovakirdan/neon-dodge/internal/core"
	"github.com/vovakirdan/neon-dodge/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "dodge"

// randSource is the random source used for spawning.
type randSource interface {
	Float64() float64
	Intn(n int) int
}

// settings is the configuration used by registry-created games.
var settings = config.DefaultDodgeConfig()

// Configure sets the configuration for games created through the registry.
// Call it before registry.Create.
func Configure(cfg config.DodgeConfig) {
	settings = cfg
}

// Game implements the Neon Dodge game loop engine.
type Game struct {
	cfg config.DodgeConfig
	rt  core.RuntimeConfig
	rng randSource

	ball      Ball
	obstacles []Obstacle
	targets   []Target

	level     int // 1-based
	collected int // Targets collected in the current level
	paused    bool
}

// New creates a game using the registry configuration.
func New() *Game {
	return NewWithConfig(settings)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.DodgeConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Dodge"
}

// Reset starts a new session: start level, ball in the center and a fresh
// obstacle and target layout drawn from the seed.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed)) //nolint:gosec // gameplay randomness
	g.level = core.Clamp(g.cfg.Levels.Start, 1, core.Max(g.cfg.Levels.Max, 1))
	g.paused = false
	g.ball = Ball{
		Radius: g.cfg.Ball.Radius,
		Speed:  g.cfg.Ball.Speed,
		Color:  g.cfg.Ball.Color,
	}
	g.resetRound()
}

// resetRound is shared by the loss and level-change paths.
func (g *Game) resetRound() {
	g.ball.Pos = r2.Vec{X: g.rt.CanvasW / 2, Y: g.rt.CanvasH / 2}
	g.collected = 0
	g.spawn()
}

// Step advances the game by one frame: ball, obstacles, collisions.
func (g *Game) Step(in core.InputSnapshot) core.StepResult {
	if in.Pause {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), Phase: core.PhasePlaying}
	}

	g.moveBall(in)
	g.moveObstacles()
	phase := g.resolveCollisions()

	return core.StepResult{State: g.State(), Phase: phase}
}

// resolveCollisions applies loss and pickup rules for the current frame.
func (g *Game) resolveCollisions() core.Phase {
	// A loss rebuilds the obstacle list, so stop at the first hit.
	for _, o := range g.obstacles {
		if o.Hits(g.ball) {
			g.resetRound()
			return core.PhaseGameOver
		}
	}

	for i := 0; i < len(g.targets); {
		if !g.targets[i].Hits(g.ball) {
			i++
			continue
		}
		g.targets = append(g.targets[:i], g.targets[i+1:]...)
		g.collected++
		if g.collected == TargetsRequired(g.level) {
			return g.advance()
		}
	}
	return core.PhasePlaying
}

// advance moves to the next level, wrapping to level 1 after the last one.
func (g *Game) advance() core.Phase {
	phase := core.PhaseLevelCleared
	if g.cfg.Levels.Advance {
		g.level++
		if g.level > g.cfg.Levels.Max {
			g.level = 1
			phase = core.PhaseWon
		}
	}
	g.resetRound()
	return phase
}

// Render draws the ball, then obstacles, then targets.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()

	dst.FillCircle(g.ball.Pos.X, g.ball.Pos.Y, g.ball.Radius, g.ball.Color)
	for _, o := range g.obstacles {
		dst.FillRect(o.Pos.X, o.Pos.Y, o.Size, o.Size, o.Color)
	}
	for _, t := range g.targets {
		dst.FillCircle(t.Pos.X, t.Pos.Y, t.Radius, t.Color)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Level:     g.level,
		Collected: g.collected,
		Required:  TargetsRequired(g.level),
		Obstacles: len(g.obstacles),
		Targets:   len(g.targets),
		Paused:    g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
