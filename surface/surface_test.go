// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"

	"github.com/gogpu/vrender/pixfmt"
)

// TestNew tests surface creation.
func TestNew(t *testing.T) {
	s := New(100, 50, pixfmt.ARGB8888)
	if s.Width != 100 || s.Height != 50 {
		t.Errorf("size = %dx%d, want 100x50", s.Width, s.Height)
	}
	if s.Pitch != 100 {
		t.Errorf("Pitch = %d, want 100", s.Pitch)
	}
	if len(s.Pix) != 5000 {
		t.Errorf("len(Pix) = %d, want 5000", len(s.Pix))
	}
}

// TestNewNegativeSize tests handling of invalid dimensions.
func TestNewNegativeSize(t *testing.T) {
	s := New(-4, 10, pixfmt.RGB565)
	if s.Width != 0 || len(s.Pix) != 0 {
		t.Errorf("expected empty surface, got %dx%d with %d pixels", s.Width, s.Height, len(s.Pix))
	}
	// Must not panic.
	s.SetPixel(0, 0, 1)
	s.Fill(image.Rect(0, 0, 10, 10), 1)
}

func TestWrap(t *testing.T) {
	pix := make([]uint16, 16*4)
	s := Wrap(pix, 10, 4, 16, pixfmt.RGB565)
	if s == nil {
		t.Fatal("Wrap returned nil for a valid buffer")
	}
	s.SetPixel(9, 3, 0xFFFF)
	if pix[3*16+9] != 0xFFFF {
		t.Error("SetPixel did not write through the pitch")
	}

	if Wrap(pix, 20, 4, 16, pixfmt.RGB565) != nil {
		t.Error("Wrap accepted pitch < width")
	}
	if Wrap(pix[:40], 10, 4, 16, pixfmt.RGB565) != nil {
		t.Error("Wrap accepted a short buffer")
	}
}

// TestPixelOutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestPixelOutOfBounds(t *testing.T) {
	s := New(10, 10, pixfmt.XRGB8888)
	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		s.SetPixel(c.x, c.y, 0xFFFFFF)
		s.BlendPixel(c.x, c.y, 0xFFFFFF, 128)
		if got := s.Pixel(c.x, c.y); got != 0 {
			t.Errorf("Pixel(%d, %d) = %#x, want 0", c.x, c.y, got)
		}
	}
	for i, v := range s.Pix {
		if v != 0 {
			t.Fatalf("out-of-bounds write modified index %d", i)
		}
	}
}

func TestFillClipsToSurface(t *testing.T) {
	s := New(8, 8, pixfmt.XRGB8888)
	s.Fill(image.Rect(-5, 6, 20, 20), 7)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := uint32(0)
			if y >= 6 {
				want = 7
			}
			if got := s.Pixel(x, y); got != want {
				t.Fatalf("Pixel(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}

	s.Clear()
	for _, v := range s.Pix {
		if v != 0 {
			t.Fatal("Clear left a non-zero pixel")
		}
	}
}

func TestClearSubRectKeepsParent(t *testing.T) {
	s := New(8, 8, pixfmt.XRGB8888)
	s.Fill(s.Rect(), 0xFFFFFF)
	sub := s.SubRect(image.Rect(2, 2, 4, 4))
	sub.Clear()

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := image.Pt(x, y).In(image.Rect(2, 2, 4, 4))
			got := s.Pixel(x, y)
			if inside && got != 0 {
				t.Errorf("pixel (%d,%d) = %#x inside the view, want 0", x, y, got)
			}
			if !inside && got != 0xFFFFFF {
				t.Errorf("pixel (%d,%d) = %#x outside the view, want 0xffffff", x, y, got)
			}
		}
	}
}

func TestSubRectSharesPixels(t *testing.T) {
	s := New(10, 10, pixfmt.RGB565)
	sub := s.SubRect(image.Rect(2, 3, 6, 8))
	if sub.Width != 4 || sub.Height != 5 {
		t.Fatalf("sub size = %dx%d, want 4x5", sub.Width, sub.Height)
	}
	sub.SetPixel(0, 0, 0x1234)
	sub.SetPixel(3, 4, 0x4321)
	if s.Pixel(2, 3) != 0x1234 || s.Pixel(5, 7) != 0x4321 {
		t.Error("SubRect writes not visible in parent")
	}

	empty := s.SubRect(image.Rect(20, 20, 30, 30))
	if empty.Width != 0 || empty.Height != 0 {
		t.Errorf("disjoint SubRect = %dx%d, want 0x0", empty.Width, empty.Height)
	}
}

func TestDrawImageInterface(t *testing.T) {
	s := New(4, 4, pixfmt.ARGB8888)
	var dst draw.Image = s

	draw.Draw(dst, image.Rect(1, 1, 3, 3), image.NewUniform(color.RGBA{R: 255, A: 255}), image.Point{}, draw.Src)
	r, g, b := s.Format.Unpack(s.Pixel(1, 1))
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("pixel = (%d, %d, %d), want (255, 0, 0)", r, g, b)
	}
	if s.Pixel(0, 0) != 0 {
		t.Error("draw.Draw wrote outside its rectangle")
	}

	// Translucent Set blends.
	s.Set(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 128})
	r, _, _ = s.Format.Unpack(s.Pixel(0, 0))
	if r < 126 || r > 130 {
		t.Errorf("blended red = %d, want about 128", r)
	}
}

func TestToImageAndFromImage(t *testing.T) {
	s := New(3, 2, pixfmt.RGB565)
	s.SetPixel(2, 1, pixfmt.RGB565.Pack(0xF8, 0xFC, 0xF8))

	img := s.ToImage()
	if got := img.RGBAAt(2, 1); got != (color.RGBA{0xF8, 0xFC, 0xF8, 0xFF}) {
		t.Errorf("ToImage pixel = %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 0xFF}) {
		t.Errorf("ToImage background = %v, want opaque black", got)
	}

	back := FromImage(img, pixfmt.RGB565)
	for i := range s.Pix {
		if back.Pix[i] != s.Pix[i] {
			t.Fatalf("FromImage mismatch at %d: %#x != %#x", i, back.Pix[i], s.Pix[i])
		}
	}
}

func TestSavePNG(t *testing.T) {
	s := New(5, 5, pixfmt.XRGB8888)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := s.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}
