package desktop

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/neon-dodge/internal/core"
	"github.com/vovakirdan/neon-dodge/internal/sensor"
)

// directionKeys lists the keys held for each direction.
var directionKeys = [len(core.Directions)][]int32{
	core.DirUp:    {rl.KeyUp, rl.KeyW},
	core.DirDown:  {rl.KeyDown, rl.KeyS},
	core.DirLeft:  {rl.KeyLeft, rl.KeyA},
	core.DirRight: {rl.KeyRight, rl.KeyD},
}

// heldDirections fills a snapshot from a key-down query. The window
// reports real key releases, so no hold window is needed.
func heldDirections(down func(key int32) bool) core.InputSnapshot {
	var in core.InputSnapshot
	for _, d := range core.Directions {
		for _, k := range directionKeys[d] {
			if down(k) {
				in.Hold(d)
				break
			}
		}
	}
	return in
}

// Gamepad uses the left stick of the first gamepad as a tilt source.
// Full deflection reads as one g. It must be used from the window goroutine.
type Gamepad struct {
	id int32
}

// NewGamepad creates a tilt source for gamepad id.
func NewGamepad(id int32) *Gamepad {
	return &Gamepad{id: id}
}

// RequestPermission succeeds when the gamepad is connected.
func (g *Gamepad) RequestPermission(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !rl.IsGamepadAvailable(g.id) {
		return fmt.Errorf("%w: gamepad %d not connected", sensor.ErrUnavailable, g.id)
	}
	return nil
}

// Read returns the stick deflection scaled to m/s².
func (g *Gamepad) Read(ctx context.Context) (sensor.Reading, error) {
	if err := ctx.Err(); err != nil {
		return sensor.Reading{}, err
	}
	if !rl.IsGamepadAvailable(g.id) {
		return sensor.Reading{}, fmt.Errorf("%w: gamepad %d disconnected", sensor.ErrUnavailable, g.id)
	}
	x := rl.GetGamepadAxisMovement(g.id, rl.GamepadAxisLeftX)
	y := rl.GetGamepadAxisMovement(g.id, rl.GamepadAxisLeftY)
	// Stick y grows downward; readings use device axes with y up.
	return sensor.Reading{X: float64(x) * sensor.Gravity, Y: -float64(y) * sensor.Gravity}, nil
}
