// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/vrender/pixfmt"
)

// Bounds implements the image.Image interface.
func (s *Surface[P]) Bounds() image.Rectangle {
	return s.Rect()
}

// ColorModel implements the image.Image interface.
func (s *Surface[P]) ColorModel() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return s.Format.Color(s.Format.Convert(c))
	})
}

// At implements the image.Image interface.
func (s *Surface[P]) At(x, y int) color.Color {
	if !s.InBounds(x, y) {
		return color.NRGBA{}
	}
	return s.Format.Color(s.Pix[s.Offset(x, y)])
}

// Set implements the draw.Image interface. Translucent colors are
// composited over the existing pixel.
func (s *Surface[P]) Set(x, y int, c color.Color) {
	if !s.InBounds(x, y) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s.BlendPixel(x, y, s.Format.Pack(n.R, n.G, n.B), n.A)
}

// ToImage converts the surface to an opaque image.RGBA.
func (s *Surface[P]) ToImage() *image.RGBA {
	img := image.NewRGBA(s.Rect())
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			r, g, b := s.Format.Unpack(s.Pix[s.Offset(x, y)])
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}

// SavePNG saves the surface to a PNG file.
func (s *Surface[P]) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("surface: create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, s.ToImage()); err != nil {
		return fmt.Errorf("surface: encode %s: %w", path, err)
	}
	return nil
}

// FromImage creates a surface of the given format holding a copy of img.
// Alpha is dropped.
func FromImage[P pixfmt.Pixel](img image.Image, format *pixfmt.Format[P]) *Surface[P] {
	bounds := img.Bounds()
	s := New(bounds.Dx(), bounds.Dy(), format)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			s.Pix[s.Offset(x, y)] = format.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return s
}
