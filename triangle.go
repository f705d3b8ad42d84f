package vrender

// orientation resolves TriangleAuto from the style's dynamic data. Unknown
// values point up.
func orientation(o TriangleOrientation, st Style) TriangleOrientation {
	if o == TriangleAuto {
		o = TriangleOrientation(st.dynamic)
	}
	if o < TriangleUp || o > TriangleRight {
		return TriangleUp
	}
	return o
}

// DrawTriangle draws an isosceles triangle inscribed in the base x height
// box at x,y, pointing in direction orient. The interior is scan-converted
// one span per row, edge to edge; the outline goes through the line
// rasterizer.
func (r *Spec[P]) DrawTriangle(st Style, x, y, base, height int, orient TriangleOrientation) {
	if base <= 0 || height <= 0 {
		return
	}
	cv := r.begin(st)
	if cv == nil {
		return
	}
	orient = orientation(orient, st)
	w, h := base, height
	x1, y1 := x+w-1, y+h-1

	// Vertices: the apex first, then the two base corners.
	var ax, ay, bx, by, cx, cy int
	switch orient {
	case TriangleDown:
		ax, ay = x+(w-1)/2, y1
		bx, by, cx, cy = x, y, x1, y
	case TriangleLeft:
		ax, ay = x, y+(h-1)/2
		bx, by, cx, cy = x1, y, x1, y1
	case TriangleRight:
		ax, ay = x1, y+(h-1)/2
		bx, by, cx, cy = x, y, x, y1
	default:
		ax, ay = x+(w-1)/2, y
		bx, by, cx, cy = x, y1, x1, y1
	}

	if pt, ok := cv.fillPaint(y, h); ok {
		for row := y; row <= y1; row++ {
			sx0, sx1 := triangleSpan(orient, x, y, w, h, ax, ay, row)
			cv.hspan(sx0, sx1, row, pt.at(row))
		}
	}
	if cv.outlined() {
		sw := cv.strokeWidth()
		r.algo.line(cv, ax, ay, bx, by, sw, cv.fg)
		r.algo.line(cv, ax, ay, cx, cy, sw, cv.fg)
		r.algo.line(cv, bx, by, cx, cy, sw, cv.fg)
	}
}

// triangleSpan returns the horizontal extent of row of the triangle with
// apex ax,ay inscribed in the w x h box at x,y.
func triangleSpan(orient TriangleOrientation, x, y, w, h, ax, ay, row int) (int, int) {
	switch orient {
	case TriangleUp, TriangleDown:
		// Distance from the apex row, 0 at the apex, h-1 at the base.
		d := row - ay
		if d < 0 {
			d = -d
		}
		if h == 1 {
			return x, x + w - 1
		}
		return ax - (ax-x)*d/(h-1), ax + (x+w-1-ax)*d/(h-1)
	}

	// Left and right: the row length grows linearly from 1 at the base
	// corners to w at the apex row.
	var n, span int
	if row <= ay {
		n, span = row-y, ay-y
	} else {
		n, span = y+h-1-row, y+h-1-ay
	}
	length := w
	if span > 0 {
		length = 1 + (w-1)*n/span
	}
	if orient == TriangleRight {
		return x, x + length - 1
	}
	return x + w - length, x + w - 1
}
