package desktop

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/neon-dodge/internal/core"
)

var background = rl.Color{R: 5, G: 5, B: 16, A: 255}

// Canvas draws onto the raylib window. Canvas units are pixels.
// Must be used between rl.BeginDrawing and rl.EndDrawing.
type Canvas struct {
	colors map[core.Color]rl.Color
}

// NewCanvas creates a window canvas.
func NewCanvas() *Canvas {
	return &Canvas{colors: make(map[core.Color]rl.Color)}
}

// Clear fills the window with the background color.
func (c *Canvas) Clear() {
	rl.ClearBackground(background)
}

// FillCircle draws a filled circle centered at (x, y).
func (c *Canvas) FillCircle(x, y, r float64, col core.Color) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(r), c.color(col))
}

// FillRect draws a filled rectangle with its top-left corner at (x, y).
func (c *Canvas) FillRect(x, y, w, h float64, col core.Color) {
	rl.DrawRectangleV(
		rl.NewVector2(float32(x), float32(y)),
		rl.NewVector2(float32(w), float32(h)),
		c.color(col),
	)
}

func (c *Canvas) color(col core.Color) rl.Color {
	if rc, ok := c.colors[col]; ok {
		return rc
	}
	rc := toRaylib(col)
	c.colors[col] = rc
	return rc
}

// toRaylib converts a hex color. Unparseable colors draw white.
func toRaylib(col core.Color) rl.Color {
	r, g, b, err := col.RGB()
	if err != nil {
		return rl.White
	}
	return rl.NewColor(r, g, b, 255)
}
