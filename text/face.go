package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// ellipsis is appended to truncated strings.
const ellipsis = "..."

// Face is a Font backed by a golang.org/x/image font.Face.
type Face struct {
	face font.Face
}

var _ Font = (*Face)(nil)

// NewFace wraps an x/image font face.
func NewFace(face font.Face) *Face {
	return &Face{face: face}
}

// Default returns the fixed 7x13 bitmap face.
func Default() *Face {
	return &Face{face: basicfont.Face7x13}
}

// NewGoRegular returns the Go Regular TrueType font at size points and
// 72 DPI.
func NewGoRegular(size float64) (*Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	return &Face{face: face}, nil
}

// Close releases the underlying face.
func (f *Face) Close() error {
	return f.face.Close()
}

// Width returns the advance width of s in pixels.
func (f *Face) Width(s string) int {
	return font.MeasureString(f.face, s).Ceil()
}

// Height returns the line height in pixels.
func (f *Face) Height() int {
	m := f.face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// Truncate shortens s so that it fits width pixels, ending it with "..."
// when anything was removed. It returns "" when not even the ellipsis
// fits.
func (f *Face) Truncate(s string, width int) string {
	if f.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n >= 0; n-- {
		t := string(runes[:n]) + ellipsis
		if f.Width(t) <= width {
			return t
		}
	}
	return ""
}

// DrawString implements Font.
func (f *Face) DrawString(dst draw.Image, s string, area image.Rectangle, c color.Color, alignH HAlign, alignV VAlign, deltaX int, useEllipsis bool, clip image.Rectangle) {
	s = norm.NFC.String(s)
	if useEllipsis {
		s = f.Truncate(s, area.Dx())
	}
	if s == "" {
		return
	}

	x := area.Min.X
	switch alignH {
	case AlignCenter:
		x += (area.Dx() - f.Width(s)) / 2
	case AlignRight:
		x = area.Max.X - f.Width(s)
	}
	x += deltaX

	y := area.Min.Y
	switch alignV {
	case AlignMiddle:
		y += (area.Dy() - f.Height()) / 2
	case AlignBottom:
		y = area.Max.Y - f.Height()
	}

	d := font.Drawer{
		Dst:  clipped{Image: dst, clip: clip},
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(x, y+f.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}
