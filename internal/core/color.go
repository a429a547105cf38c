package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a hex color string in "#RRGGBB" form.
// The zero value means the host's default foreground.
type Color string

// Common colors used outside the game palette.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#FFFFFF"
)

// RGB decodes the color into its components.
// Only the six-digit form is accepted.
func (c Color) RGB() (r, g, b uint8, err error) {
	s := string(c)
	if len(s) != 7 {
		return 0, 0, 0, fmt.Errorf("core: invalid color %q", s)
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	r, g, b = col.RGB255()
	return r, g, b, nil
}

// Valid reports whether the color parses as "#RRGGBB".
func (c Color) Valid() bool {
	_, _, _, err := c.RGB()
	return err == nil
}
