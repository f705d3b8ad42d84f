// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"github.com/gogpu/vrender/pixfmt"
)

// Surface is a row-major, top-to-bottom buffer of packed pixels.
//
// Pitch is measured in pixels and may exceed Width when rows are padded.
// A Surface does not own any renderer state; whoever creates it manages
// its lifetime. Surfaces are NOT thread-safe.
type Surface[P pixfmt.Pixel] struct {
	Pix    []P
	Width  int
	Height int
	Pitch  int
	Format *pixfmt.Format[P]
}

// New allocates a zeroed surface with Pitch == Width.
// Negative dimensions are treated as zero.
func New[P pixfmt.Pixel](width, height int, format *pixfmt.Format[P]) *Surface[P] {
	width = max(width, 0)
	height = max(height, 0)
	return &Surface[P]{
		Pix:    make([]P, width*height),
		Width:  width,
		Height: height,
		Pitch:  width,
		Format: format,
	}
}

// Wrap exposes an existing pixel buffer as a surface. It returns nil if
// pix is too small for the requested geometry or pitch < width.
func Wrap[P pixfmt.Pixel](pix []P, width, height, pitch int, format *pixfmt.Format[P]) *Surface[P] {
	if width < 0 || height < 0 || pitch < width {
		return nil
	}
	if height > 0 && len(pix) < (height-1)*pitch+width {
		return nil
	}
	return &Surface[P]{Pix: pix, Width: width, Height: height, Pitch: pitch, Format: format}
}

// Offset returns the index in Pix of pixel (x, y). It does not bounds-check.
func (s *Surface[P]) Offset(x, y int) int {
	return y*s.Pitch + x
}

// Rect returns the surface extent as an image rectangle anchored at 0,0.
func (s *Surface[P]) Rect() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// InBounds reports whether (x, y) addresses a pixel of the surface.
func (s *Surface[P]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Width && y < s.Height
}

// Pixel returns the packed pixel at (x, y), or zero outside the surface.
func (s *Surface[P]) Pixel(x, y int) P {
	if !s.InBounds(x, y) {
		return 0
	}
	return s.Pix[s.Offset(x, y)]
}

// SetPixel stores a packed pixel. Out-of-bounds coordinates are ignored.
func (s *Surface[P]) SetPixel(x, y int, p P) {
	if !s.InBounds(x, y) {
		return
	}
	s.Pix[s.Offset(x, y)] = p
}

// BlendPixel mixes p into the pixel at (x, y) with the given coverage.
// Out-of-bounds coordinates are ignored.
func (s *Surface[P]) BlendPixel(x, y int, p P, alpha uint8) {
	if alpha == 0 || !s.InBounds(x, y) {
		return
	}
	i := s.Offset(x, y)
	s.Pix[i] = s.Format.Blend(s.Pix[i], p, alpha)
}

// Fill sets every pixel of r, clipped to the surface, to p.
func (s *Surface[P]) Fill(r image.Rectangle, p P) {
	r = r.Intersect(s.Rect())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := s.Pix[s.Offset(r.Min.X, y):s.Offset(r.Max.X, y)]
		for i := range row {
			row[i] = p
		}
	}
}

// Clear zeroes every pixel of s. Row padding past Width is left untouched,
// so clearing a SubRect view never touches the rest of its parent.
func (s *Surface[P]) Clear() {
	if s.Pitch == s.Width {
		clear(s.Pix)
		return
	}
	for y := 0; y < s.Height; y++ {
		clear(s.Pix[s.Offset(0, y):s.Offset(s.Width, y)])
	}
}

// SubRect returns a surface sharing s's pixels for the region r, clipped to
// s. Drawing to the result modifies s.
func (s *Surface[P]) SubRect(r image.Rectangle) *Surface[P] {
	r = r.Intersect(s.Rect())
	if r.Empty() {
		return &Surface[P]{Pitch: s.Pitch, Format: s.Format}
	}
	start := s.Offset(r.Min.X, r.Min.Y)
	end := s.Offset(r.Max.X-1, r.Max.Y-1) + 1
	return &Surface[P]{
		Pix:    s.Pix[start:end],
		Width:  r.Dx(),
		Height: r.Dy(),
		Pitch:  s.Pitch,
		Format: s.Format,
	}
}
