package dodge

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/neon-dodge/internal/core"
)

// Ball is the player-controlled avatar.
type Ball struct {
	Pos    r2.Vec // Center
	Radius float64
	Speed  float64 // Canvas units per tick per held direction
	Color  core.Color
}

// Obstacle is a moving square hazard.
type Obstacle struct {
	Pos   r2.Vec // Top-left corner
	Vel   r2.Vec // Canvas units per tick
	Size  float64
	Color core.Color
}

// Center returns the obstacle's center point.
func (o Obstacle) Center() r2.Vec {
	return r2.Add(o.Pos, r2.Vec{X: o.Size / 2, Y: o.Size / 2})
}

// Hits reports whether the obstacle touches the ball.
// The square is treated as a circle of diameter Size.
func (o Obstacle) Hits(b Ball) bool {
	return core.CirclesOverlap(b.Pos, b.Radius, o.Center(), o.Size/2)
}

// Advance moves the obstacle one tick and reflects it off the canvas edges.
// A velocity component flips only while its leading edge is at or past a
// boundary and still heading outward, so an obstacle spawned overlapping an
// edge drifts back in instead of jittering in place.
func (o *Obstacle) Advance(w, h float64) {
	o.Pos = r2.Add(o.Pos, o.Vel)

	if (o.Pos.X <= 0 && o.Vel.X < 0) || (o.Pos.X+o.Size >= w && o.Vel.X > 0) {
		o.Vel.X = -o.Vel.X
	}
	if (o.Pos.Y <= 0 && o.Vel.Y < 0) || (o.Pos.Y+o.Size >= h && o.Vel.Y > 0) {
		o.Vel.Y = -o.Vel.Y
	}
}

// Target is a stationary pickup.
type Target struct {
	Pos    r2.Vec // Center
	Radius float64
	Color  core.Color
}

// Hits reports whether the target touches the ball.
func (t Target) Hits(b Ball) bool {
	return core.CirclesOverlap(b.Pos, b.Radius, t.Pos, t.Radius)
}
