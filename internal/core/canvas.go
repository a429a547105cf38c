package core

import "math"

// Canvas is the 2D drawing surface games render into.
// Coordinates are canvas units with the origin at the top-left corner.
type Canvas interface {
	Clear()
	FillCircle(x, y, r float64, c Color)
	FillRect(x, y, w, h float64, c Color)
}

// Runes used when rasterizing shapes onto a character Screen.
const (
	FillRune = '█'
	DotRune  = '●'
)

// ScreenCanvas projects canvas units onto a character Screen.
// Each cell covers ScaleX by ScaleY canvas units.
type ScreenCanvas struct {
	screen *Screen
	scaleX float64
	scaleY float64
}

// NewScreenCanvas creates a canvas drawing into s.
// Non-positive scales fall back to one unit per cell.
func NewScreenCanvas(s *Screen, scaleX, scaleY float64) *ScreenCanvas {
	if scaleX <= 0 {
		scaleX = 1
	}
	if scaleY <= 0 {
		scaleY = 1
	}
	return &ScreenCanvas{screen: s, scaleX: scaleX, scaleY: scaleY}
}

// Clear blanks the whole screen.
func (c *ScreenCanvas) Clear() {
	c.screen.Clear()
}

// FillRect fills every cell the rectangle touches.
func (c *ScreenCanvas) FillRect(x, y, w, h float64, col Color) {
	r := c.cellBounds(x, y, x+w, y+h)
	for cy := r.Y; cy < r.Bottom(); cy++ {
		for cx := r.X; cx < r.Right(); cx++ {
			c.screen.SetColored(cx, cy, FillRune, col)
		}
	}
}

// FillCircle fills the cells whose centers lie inside the circle.
// The cell holding the circle's center is always drawn, so small circles
// never vanish at coarse scales.
func (c *ScreenCanvas) FillCircle(x, y, radius float64, col Color) {
	r := c.cellBounds(x-radius, y-radius, x+radius, y+radius)
	filled := 0
	for cy := r.Y; cy < r.Bottom(); cy++ {
		for cx := r.X; cx < r.Right(); cx++ {
			px := (float64(cx) + 0.5) * c.scaleX
			py := (float64(cy) + 0.5) * c.scaleY
			if math.Hypot(px-x, py-y) <= radius {
				c.screen.SetColored(cx, cy, FillRune, col)
				filled++
			}
		}
	}
	if filled == 0 {
		c.screen.SetColored(int(math.Floor(x/c.scaleX)), int(math.Floor(y/c.scaleY)), DotRune, col)
	}
}

// cellBounds converts a canvas-unit box to the covering range of cells.
func (c *ScreenCanvas) cellBounds(x0, y0, x1, y1 float64) Rect {
	cx0 := int(math.Floor(x0 / c.scaleX))
	cy0 := int(math.Floor(y0 / c.scaleY))
	cx1 := int(math.Ceil(x1 / c.scaleX))
	cy1 := int(math.Ceil(y1 / c.scaleY))
	return NewRect(cx0, cy0, cx1-cx0, cy1-cy0)
}
