package vrender

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque RGB triple with 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// RGB creates a color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromColor converts a standard color.Color to Color, dropping alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// ParseColor parses a hex color such as "#ff8000" or "#f80".
func ParseColor(s string) (Color, error) {
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("vrender: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// NRGBA converts the color to an opaque color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// String returns the color in #rrggbb notation.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// lerpColor interpolates between a and b at num/den using integer math.
// num is clamped to [0, den].
func lerpColor(a, b Color, num, den int) Color {
	if den <= 0 || num <= 0 {
		return a
	}
	if num >= den {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(int(x) + (int(y)-int(x))*num/den)
	}
	return Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}
