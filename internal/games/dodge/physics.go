package dodge

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/neon-dodge/internal/config"
	"github.com/vovakirdan/neon-dodge/internal/core"
)

// moveBall applies keyboard and tilt displacement, then keeps the ball on
// the canvas. Both inputs add up when present together.
// A step that would cross an edge is clamped to the edge rather than
// dropped, so the ball always comes to rest touching the wall.
func (g *Game) moveBall(in core.InputSnapshot) {
	b := &g.ball

	if in.Held(core.DirUp) {
		b.Pos.Y -= b.Speed
	}
	if in.Held(core.DirDown) {
		b.Pos.Y += b.Speed
	}
	if in.Held(core.DirLeft) {
		b.Pos.X -= b.Speed
	}
	if in.Held(core.DirRight) {
		b.Pos.X += b.Speed
	}

	if in.TiltActive {
		b.Pos = r2.Add(b.Pos, r2.Scale(b.Speed*g.cfg.Input.TiltFactor, in.Tilt))
	}

	b.Pos.X = clampAxis(b.Pos.X, b.Radius, g.rt.CanvasW)
	b.Pos.Y = clampAxis(b.Pos.Y, b.Radius, g.rt.CanvasH)
}

// clampAxis keeps a circle of radius r inside [0, size].
// On a canvas narrower than the ball the ball is centered.
func clampAxis(v, r, size float64) float64 {
	if size < 2*r {
		return size / 2
	}
	return core.ClampF(v, r, size-r)
}

// moveObstacles advances every obstacle by its velocity.
func (g *Game) moveObstacles() {
	for i := range g.obstacles {
		g.obstacles[i].Advance(g.rt.CanvasW, g.rt.CanvasH)
	}
}

// spawn regenerates obstacles and targets for the current level.
// Positions are uniform over the canvas; overlaps are allowed.
func (g *Game) spawn() {
	g.obstacles = g.obstacles[:0]
	for range ObstacleCount(g.level) {
		g.obstacles = append(g.obstacles, g.newObstacle())
	}

	g.targets = g.targets[:0]
	for range TargetsRequired(g.level) {
		g.targets = append(g.targets, g.newTarget())
	}
}

func (g *Game) newObstacle() Obstacle {
	o := Obstacle{
		Pos:  g.randomPoint(),
		Size: g.cfg.Obstacles.Size,
	}
	o.Color = g.randomColor()
	o.Vel = r2.Vec{X: g.randomVelocity(), Y: g.randomVelocity()}
	return o
}

func (g *Game) newTarget() Target {
	t := Target{
		Pos:    g.randomPoint(),
		Radius: g.cfg.Targets.Radius,
	}
	t.Color = g.randomColor()
	return t
}

func (g *Game) randomPoint() r2.Vec {
	x := g.rng.Float64() * g.rt.CanvasW
	y := g.rng.Float64() * g.rt.CanvasH
	return r2.Vec{X: x, Y: y}
}

// randomVelocity returns a component in [-max, max] (scaled by difficulty).
func (g *Game) randomVelocity() float64 {
	span := 2 * g.cfg.Obstacles.MaxSpeed * g.cfg.Obstacles.SpeedScale
	return (g.rng.Float64() - 0.5) * span
}

// randomColor draws independently from the palette, repeats allowed.
func (g *Game) randomColor() core.Color {
	palette := g.cfg.Palette
	if len(palette) == 0 {
		palette = config.NeonPalette
	}
	return palette[g.rng.Intn(len(palette))]
}
