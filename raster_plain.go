package vrender

import "github.com/gogpu/vrender/pixfmt"

// plainRaster is the aliased integer rasterizer.
type plainRaster[P pixfmt.Pixel] struct{}

// canonical orders line endpoints top to bottom, then left to right, so a
// line and its reverse are rasterized identically.
func canonical(x1, y1, x2, y2 int) (int, int, int, int) {
	if y1 > y2 || (y1 == y2 && x1 > x2) {
		return x2, y2, x1, y1
	}
	return x1, y1, x2, y2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// line walks the dominant axis one pixel at a time. The error term
// accumulates the minor delta and, once it passes half the major delta,
// advances the minor coordinate and gives back one major delta. Thick
// lines grow along the minor axis.
func (plainRaster[P]) line(c *canvas[P], x1, y1, x2, y2, width int, p P) {
	x1, y1, x2, y2 = canonical(x1, y1, x2, y2)
	dx, dy := x2-x1, y2-y1
	width = max(width, 1)

	switch {
	case dy == 0:
		for i := 0; i < width; i++ {
			c.hspan(x1, x2, y1+i, p)
		}
		return
	case dx == 0:
		for i := 0; i < width; i++ {
			c.vspan(x1+i, y1, y2, p)
		}
		return
	}

	xstep := 1
	if dx < 0 {
		xstep, dx = -1, -dx
	}

	if dx >= dy {
		y, e := y1, 0
		for x := x1; ; x += xstep {
			c.vspan(x, y, y+width-1, p)
			if x == x2 {
				break
			}
			e += dy
			if 2*e >= dx {
				y++
				e -= dx
			}
		}
		return
	}

	x, e := x1, 0
	for y := y1; y <= y2; y++ {
		c.hspan(x, x+width-1, y, p)
		e += dx
		if 2*e >= dy {
			x += xstep
			e -= dy
		}
	}
}

// fillCircle draws one horizontal span per row of the midpoint circle.
func (plainRaster[P]) fillCircle(c *canvas[P], cx, cy, r int, pt paint[P]) {
	c.ext = circleExtents(r, c.ext)
	for dy := 0; dy <= r; dy++ {
		e := c.ext[dy]
		c.hspan(cx-e, cx+e, cy-dy, pt.at(cy-dy))
		if dy > 0 {
			c.hspan(cx-e, cx+e, cy+dy, pt.at(cy+dy))
		}
	}
}

// strokeCircle draws the annulus between radius r and r-width as two spans
// per row.
func (rs plainRaster[P]) strokeCircle(c *canvas[P], cx, cy, r, width int, p P) {
	ri := r - width
	if ri < 0 {
		rs.fillCircle(c, cx, cy, r, solid(p))
		return
	}
	c.ext = circleExtents(r, c.ext)
	c.inner = circleExtents(ri, c.inner)
	for dy := 0; dy <= r; dy++ {
		e := c.ext[dy]
		start := 0
		if dy <= ri {
			start = min(c.inner[dy]+1, e)
		}
		for _, y := range [2]int{cy - dy, cy + dy} {
			c.hspan(cx-e, cx-start, y, p)
			c.hspan(cx+start, cx+e, y, p)
			if dy == 0 {
				break
			}
		}
	}
}
