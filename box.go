package vrender

import "math"

const (
	// maxExactRadius bounds the circles rasterized from precomputed
	// midpoint extents. Larger circles are drawn over the clipped rows only.
	maxExactRadius = 1 << 14
	// maxRadius is the largest radius drawn at all; bounding boxes of
	// circles up to it never overflow.
	maxRadius = math.MaxInt >> 15
)

// box is a rectangle with optionally rounded corners. With openBottom set
// only the top corners are rounded and the outline has no bottom edge.
type box struct {
	x, y, w, h int
	r          int
	openBottom bool
}

// clamped limits the radius so the corner arcs of opposite sides never
// overlap.
func (b box) clamped() box {
	limit := (b.w - 1) / 2
	if b.openBottom {
		limit = min(limit, b.h-1)
	} else {
		limit = min(limit, (b.h-1)/2)
	}
	b.r = max(min(b.r, limit), 0)
	return b
}

// inset shrinks the box by k pixels on every closed side.
func (b box) inset(k int) box {
	b.x += k
	b.y += k
	b.w -= 2 * k
	if b.openBottom {
		b.h -= k
	} else {
		b.h -= 2 * k
	}
	b.r -= k
	return b.clamped()
}

func (b box) empty() bool {
	return b.w <= 0 || b.h <= 0
}

// span returns the horizontal extent of row y, which must lie inside the
// box. ext holds the circle extents of radius b.r.
func (b box) span(y int, ext []int) (x0, x1 int) {
	dy := 0
	if top := b.y + b.r; y < top {
		dy = top - y
	} else if bottom := b.y + b.h - 1 - b.r; y > bottom && !b.openBottom {
		dy = y - bottom
	}
	e := ext[dy]
	return b.x + b.r - e, b.x + b.w - 1 - b.r + e
}

// circleExtents computes, with the midpoint circle algorithm, the
// half-width of the circle of radius r at each row distance 0..r from the
// center. The first octant is stepped and mirrored onto the second, so the
// work is O(r).
func circleExtents(r int, ext []int) []int {
	if cap(ext) < r+1 {
		ext = make([]int, r+1)
	}
	ext = ext[:r+1]
	clear(ext)

	x, y, d := 0, r, 1-r
	for x <= y {
		ext[y] = max(ext[y], x)
		ext[x] = max(ext[x], y)
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
	return ext
}

// drawBox runs the shadow, fill and outline passes of a closed box.
func (c *canvas[P]) drawBox(b box) {
	if c.shadowed() {
		c.boxShadow(b, c.st.shadowOffset)
	}
	if pt, ok := c.fillPaint(b.y, b.h); ok {
		c.fillBox(b, pt)
	}
	if c.outlined() {
		c.strokeBox(b, c.strokeWidth(), c.fg)
	}
}

func (c *canvas[P]) fillBox(b box, pt paint[P]) {
	c.ext = circleExtents(b.r, c.ext)
	for y := b.y; y < b.y+b.h; y++ {
		x0, x1 := b.span(y, c.ext)
		c.hspan(x0, x1, y, pt.at(y))
	}
}

// strokeBox draws the outline of b, sw pixels thick, inside the box.
func (c *canvas[P]) strokeBox(b box, sw int, p P) {
	in := b.inset(sw)
	if in.empty() {
		c.fillBox(b, solid(p))
		return
	}
	c.ext = circleExtents(b.r, c.ext)
	c.inner = circleExtents(in.r, c.inner)
	for y := b.y; y < b.y+b.h; y++ {
		x0, x1 := b.span(y, c.ext)
		if y < in.y || y >= in.y+in.h {
			c.hspan(x0, x1, y, p)
			continue
		}
		i0, i1 := in.span(y, c.inner)
		// At least one pixel per side keeps steep arcs connected.
		c.hspan(x0, max(i0-1, x0), y, p)
		c.hspan(min(i1+1, x1), x1, y, p)
	}
}

// boxShadow casts the soft shadow of b, offset by offset pixels.
func (c *canvas[P]) boxShadow(b box, offset int) {
	sb := b
	sb.x += offset
	sb.y += offset
	bounds := rectOf(sb.x, sb.y, sb.w, sb.h)
	if b.openBottom {
		// A tab sits on its panel: no shadow below its base line.
		bounds.Max.Y = b.y + b.h
	}
	c.castShadow(bounds, offset, func(k int, emit func(y, x0, x1 int)) {
		in := sb.inset(k)
		if in.empty() {
			return
		}
		c.ext = circleExtents(in.r, c.ext)
		for y := in.y; y < in.y+in.h; y++ {
			x0, x1 := in.span(y, c.ext)
			emit(y, x0, x1)
		}
	})
}

// circleShadow casts the soft shadow of the circle at cx,cy.
func (c *canvas[P]) circleShadow(cx, cy, r int) {
	offset := c.st.shadowOffset
	cx += offset
	cy += offset
	bounds := rectOf(cx-r, cy-r, 2*r+1, 2*r+1)
	c.castShadow(bounds, offset, func(k int, emit func(y, x0, x1 int)) {
		rk := r - k
		if rk < 0 {
			return
		}
		c.ext = circleExtents(rk, c.ext)
		for dy := 0; dy <= rk; dy++ {
			e := c.ext[dy]
			emit(cy-dy, cx-e, cx+e)
			if dy > 0 {
				emit(cy+dy, cx-e, cx+e)
			}
		}
	})
}

// rowExtent returns the half-width of the circle of radius r at row
// distance dy from its center, or -1 when the row misses the circle.
func rowExtent(r, dy int) int {
	dy = abs(dy)
	if r < 0 || dy > r {
		return -1
	}
	return int(math.Sqrt(float64(r-dy) * float64(r+dy)))
}

// largeCircle draws a circle of radius above maxExactRadius. Only the rows
// inside the clip are visited, and edges come from the exact square root
// instead of the midpoint stepping.
func (c *canvas[P]) largeCircle(cx, cy, r int) {
	if c.shadowed() {
		off := c.st.shadowOffset
		sx, sy := cx+off, cy+off
		c.castShadow(rectOf(sx-r, sy-r, 2*r+1, 2*r+1), off, func(k int, emit func(y, x0, x1 int)) {
			for y := c.clip.Min.Y; y < c.clip.Max.Y; y++ {
				if e := rowExtent(r-k, y-sy); e >= 0 {
					emit(y, sx-e, sx+e)
				}
			}
		})
	}
	pt, filled := c.fillPaint(cy-r, 2*r+1)
	outlined := c.outlined()
	sw := c.strokeWidth()
	for y := c.clip.Min.Y; y < c.clip.Max.Y; y++ {
		e := rowExtent(r, y-cy)
		if e < 0 {
			continue
		}
		if filled {
			c.hspan(cx-e, cx+e, y, pt.at(y))
		}
		if outlined {
			start := 0
			if ie := rowExtent(r-sw, y-cy); ie >= 0 {
				start = min(ie+1, e)
			}
			c.hspan(cx-e, cx-start, y, c.fg)
			c.hspan(cx+start, cx+e, y, c.fg)
		}
	}
}
