package vrender

import (
	"testing"

	"github.com/gogpu/vrender/pixfmt"
)

// TestAALineCoverage checks that every column of a shallow AA line splits
// exactly one full pixel of coverage between its two rows.
func TestAALineCoverage(t *testing.T) {
	r, s := newTarget(ModeAntiAlias, 32, 16)
	r.DrawLine(DefaultStyle().WithFgColor(White), 0, 0, 20, 7)

	partial := false
	for x := 0; x <= 20; x++ {
		sum := 0
		for y := 0; y < s.Height; y++ {
			_, _, b := pixfmt.XRGB8888.Unpack(s.Pixel(x, y))
			sum += int(b)
			if b != 0 && b != 255 {
				partial = true
			}
		}
		if sum != 255 {
			t.Errorf("column %d coverage = %d, want 255", x, sum)
		}
	}
	if !partial {
		t.Error("AA line has no partially covered pixels")
	}
}

func TestAASteepLineCoverage(t *testing.T) {
	r, s := newTarget(ModeAntiAlias, 16, 32)
	r.DrawLine(DefaultStyle().WithFgColor(White), 9, 0, 2, 25)
	for y := 0; y <= 25; y++ {
		sum := 0
		for x := 0; x < s.Width; x++ {
			_, _, b := pixfmt.XRGB8888.Unpack(s.Pixel(x, y))
			sum += int(b)
		}
		if sum != 255 {
			t.Errorf("row %d coverage = %d, want 255", y, sum)
		}
	}
}

func TestAAAxisLinesMatchPlain(t *testing.T) {
	for _, l := range [][4]int{{1, 5, 20, 5}, {7, 2, 7, 30}, {3, 3, 13, 13}} {
		a, sa := newTarget(ModeAntiAlias, 32, 32)
		p, sp := newTarget(ModePlain, 32, 32)
		st := DefaultStyle().WithFgColor(White)
		a.DrawLine(st, l[0], l[1], l[2], l[3])
		p.DrawLine(st, l[0], l[1], l[2], l[3])
		for i := range sa.Pix {
			if sa.Pix[i] != sp.Pix[i] {
				t.Errorf("line %v: AA differs from plain at pixel %d", l, i)
				break
			}
		}
	}
}

func TestAACircleFringe(t *testing.T) {
	r, s := newTarget(ModeAntiAlias, 64, 64)
	r.DrawCircle(solidStyle(White), 32, 32, 12)
	if s.Pixel(32, 32) != pack(White) {
		t.Error("AA circle interior not filled")
	}
	partial := 0
	for _, p := range s.Pix {
		if p != 0 && p != pack(White) {
			partial++
		}
	}
	if partial == 0 {
		t.Error("AA circle has no coverage fringe")
	}
	// Nothing beyond the radius plus one fringe pixel.
	if s.Pixel(32+14, 32) != 0 || s.Pixel(32, 32-14) != 0 {
		t.Error("AA circle painted past its fringe")
	}
}

// TestAASharedRasterizer checks that primitives built from lines pick up
// the AA line algorithm.
func TestAASharedRasterizer(t *testing.T) {
	r, s := newTarget(ModeAntiAlias, 32, 32)
	r.DrawCross(DefaultStyle().WithFgColor(White), 0, 0, 20, 7)
	partial := false
	for _, p := range s.Pix {
		if p != 0 && p != pack(White) {
			partial = true
			break
		}
	}
	if !partial {
		t.Error("AA cross has no partially covered pixels")
	}
}
