package core

import "gonum.org/v1/gonum/spatial/r2"

// Direction is one of the four tracked movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	numDirections
)

// Directions lists every tracked direction in a stable order.
var Directions = [numDirections]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// InputSnapshot is the input state sampled by the host at the start of a frame.
// Hosts build it from whatever devices they have; games never see raw events.
type InputSnapshot struct {
	held [numDirections]bool

	// Tilt is the motion-sensor vector, already mapped to canvas axes
	// (x right, y down). Ignored unless TiltActive is set.
	Tilt       r2.Vec
	TiltActive bool

	// Pause toggles the pause state when set.
	Pause bool
}

// Hold marks a direction as held for this frame.
func (s *InputSnapshot) Hold(d Direction) {
	if d >= 0 && d < numDirections {
		s.held[d] = true
	}
}

// Held returns true if the given direction is held this frame.
func (s InputSnapshot) Held(d Direction) bool {
	if d < 0 || d >= numDirections {
		return false
	}
	return s.held[d]
}
