package vrender

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/vrender/pixfmt"
)

// AA is the anti-aliased renderer. Lines and circles split each edge
// pixel's coverage between the two pixels nearest the ideal edge (Wu's
// method); every other primitive is drawn by the embedded Spec, whose
// straight axis-aligned edges gain nothing from anti-aliasing.
type AA[P pixfmt.Pixel] struct {
	*Spec[P]
}

var _ Renderer[uint32] = (*AA[uint32])(nil)

// NewAA creates an anti-aliased renderer for format.
func NewAA[P pixfmt.Pixel](format *pixfmt.Format[P]) *AA[P] {
	s := NewSpec(format)
	s.algo = aaRaster[P]{}
	return &AA[P]{Spec: s}
}

// aaRaster is the coverage-based rasterizer. Axis-aligned and 45 degree
// lines are exact in the plain rasterizer, so those are delegated.
type aaRaster[P pixfmt.Pixel] struct {
	plain plainRaster[P]
}

// line steps the dominant axis one pixel at a time, keeping the minor
// coordinate in 16.16 fixed point. The fractional part splits coverage
// between the two nearest minor-axis pixels; the two alphas always sum to
// 255. Thick lines fill the pixels between the two edge pixels solid.
func (a aaRaster[P]) line(c *canvas[P], x1, y1, x2, y2, width int, p P) {
	x1, y1, x2, y2 = canonical(x1, y1, x2, y2)
	dx, dy := x2-x1, y2-y1
	if dx == 0 || dy == 0 || abs(dx) == dy {
		a.plain.line(c, x1, y1, x2, y2, width, p)
		return
	}
	width = max(width, 1)

	if adx := abs(dx); adx > dy {
		xstep := 1
		if dx < 0 {
			xstep = -1
		}
		grad := (dy << 16) / adx
		fy := y1 << 16
		for i := 0; i <= adx; i++ {
			if i == adx {
				fy = y2 << 16
			}
			x := x1 + i*xstep
			y := fy >> 16
			frac := uint8(fy >> 8)
			c.blend(x, y, p, 255-frac)
			if width > 1 {
				c.vspan(x, y+1, y+width-1, p)
			}
			c.blend(x, y+width, p, frac)
			fy += grad
		}
		return
	}

	grad := (dx << 16) / dy
	fx := x1 << 16
	for y := y1; y <= y2; y++ {
		if y == y2 {
			fx = x2 << 16
		}
		x := fx >> 16
		frac := uint8(fx >> 8)
		c.blend(x, y, p, 255-frac)
		if width > 1 {
			c.hspan(x+1, x+width-1, y, p)
		}
		c.blend(x+width, y, p, frac)
		fx += grad
	}
}

// edge returns the exact half-width of the circle of squared radius rsq at
// row distance d, split into its integer part and an 8-bit fraction.
func edge(rsq, d int) (int, uint8) {
	v := rsq - d*d
	if v <= 0 {
		return 0, 0
	}
	f := math32.Sqrt(float32(v))
	i := int(math32.Floor(f))
	return i, uint8((f - float32(i)) * 255)
}

// plot4 blends the four mirror images of dx,dy around cx,cy, skipping the
// duplicates on the axes.
func plot4[P pixfmt.Pixel](c *canvas[P], cx, cy, dx, dy int, pt paint[P], alpha uint8) {
	c.blend(cx+dx, cy+dy, pt.at(cy+dy), alpha)
	if dx != 0 {
		c.blend(cx-dx, cy+dy, pt.at(cy+dy), alpha)
	}
	if dy != 0 {
		c.blend(cx+dx, cy-dy, pt.at(cy-dy), alpha)
		if dx != 0 {
			c.blend(cx-dx, cy-dy, pt.at(cy-dy), alpha)
		}
	}
}

// plot8 blends the eight octant images of dx,dy, skipping the duplicates
// on the diagonals.
func plot8[P pixfmt.Pixel](c *canvas[P], cx, cy, dx, dy int, pt paint[P], alpha uint8) {
	plot4(c, cx, cy, dx, dy, pt, alpha)
	if dx != dy {
		plot4(c, cx, cy, dy, dx, pt, alpha)
	}
}

// fillCircle fills every pixel fully inside the circle with spans and adds
// a fringe of partially covered pixels just outside the exact edge.
func (a aaRaster[P]) fillCircle(c *canvas[P], cx, cy, r int, pt paint[P]) {
	if r <= 0 {
		a.plain.fillCircle(c, cx, cy, r, pt)
		return
	}
	rsq := r * r
	for dy := 0; dy <= r; dy++ {
		e, _ := edge(rsq, dy)
		c.hspan(cx-e, cx+e, cy-dy, pt.at(cy-dy))
		if dy > 0 {
			c.hspan(cx-e, cx+e, cy+dy, pt.at(cy+dy))
		}
	}
	for x := 0; ; x++ {
		y, frac := edge(rsq, x)
		if x > y {
			break
		}
		plot8(c, cx, cy, x, y+1, pt, frac)
	}
}

// strokeCircle draws a one pixel ring as Wu pairs straddling the exact
// radius. Thicker rings are solid between the radii r and r-width, with a
// coverage fringe on both edges.
func (a aaRaster[P]) strokeCircle(c *canvas[P], cx, cy, r, width int, p P) {
	if r <= 0 {
		c.put(cx, cy, p)
		return
	}
	pt := solid(p)
	rsq := r * r
	if width <= 1 {
		for x := 0; ; x++ {
			y, frac := edge(rsq, x)
			if x > y {
				break
			}
			plot8(c, cx, cy, x, y, pt, 255-frac)
			plot8(c, cx, cy, x, y+1, pt, frac)
		}
		return
	}

	ri := r - width
	if ri <= 0 {
		a.fillCircle(c, cx, cy, r, pt)
		return
	}
	risq := ri * ri
	for dy := 0; dy <= r; dy++ {
		e, _ := edge(rsq, dy)
		start := 0
		if dy <= ri {
			ie, _ := edge(risq, dy)
			start = min(ie+1, e)
		}
		for _, y := range [2]int{cy - dy, cy + dy} {
			c.hspan(cx-e, cx-start, y, p)
			c.hspan(cx+start, cx+e, y, p)
			if dy == 0 {
				break
			}
		}
	}
	for x := 0; ; x++ {
		y, frac := edge(rsq, x)
		if x > y {
			break
		}
		plot8(c, cx, cy, x, y+1, pt, frac)
	}
	for x := 0; ; x++ {
		y, frac := edge(risq, x)
		if x > y {
			break
		}
		plot8(c, cx, cy, x, y, pt, 255-frac)
	}
}
