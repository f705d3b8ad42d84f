package vrender

import "image"

// RadiusAuto makes a step's radius half the smaller side of its rectangle.
const RadiusAuto = -1

// Resolved is the absolute geometry of a step.
type Resolved struct {
	// Rect is the rectangle the primitive is drawn in.
	Rect image.Rectangle
	// Clip is the step clip intersected with the caller clip.
	Clip image.Rectangle
	// OK is false when the step has nothing to draw.
	OK bool
}

// ResolveGeometry computes where the step placed by p is drawn inside area
// and what it may touch. clip is the caller clip; the result never extends
// past it.
func ResolveGeometry(p Placement, area, clip image.Rectangle) Resolved {
	scale := p.Scale
	if scale == 0 {
		scale = FixedOne
	}
	pad := p.Padding
	x, w := resolveAxis(p.X, p.W, p.AutoWidth, p.XAlign,
		area.Min.X, area.Max.X, area.Dy(), pad.Left, pad.Right, scale)
	y, h := resolveAxis(p.Y, p.H, p.AutoHeight, p.YAlign,
		area.Min.Y, area.Max.Y, area.Dx(), pad.Top, pad.Bottom, scale)

	res := Resolved{
		Rect: image.Rect(x, y, x+w, y+h),
		Clip: p.Clip.resolve(area, clip),
	}
	res.OK = w > 0 && h > 0 && !res.Clip.Empty()
	return res
}

// resolveAxis returns the start and extent of a step on the axis spanning
// lo..hi. other is the area extent on the other axis.
func resolveAxis(pos, size int, auto bool, align Alignment, lo, hi, other, padLo, padHi int, scale Fixed) (int, int) {
	if auto {
		return lo + padLo, hi - lo - padLo - padHi
	}
	if size == -1 {
		size = other
	} else {
		size = scale.Mul(size)
	}

	switch align {
	case AlignLeft, AlignTop:
		return lo + padLo, size
	case AlignRight, AlignBottom:
		return hi - size - padHi, size
	case AlignCenter:
		return lo + (hi-lo)/2 - size/2, size
	}
	pos = scale.Mul(pos)
	if pos < 0 {
		return hi + pos - padHi, size
	}
	return lo + pos + padLo, size
}

// resolve applies the step clip edges to the caller clip.
func (e Edges) resolve(area, clip image.Rectangle) image.Rectangle {
	r := clip
	edge := func(v, lo, hi int, dst *int) {
		switch {
		case v > 0:
			*dst = lo + v
		case v < 0:
			*dst = hi + v
		}
	}
	edge(e.Left, area.Min.X, area.Max.X, &r.Min.X)
	edge(e.Top, area.Min.Y, area.Max.Y, &r.Min.Y)
	edge(e.Right, area.Min.X, area.Max.X, &r.Max.X)
	edge(e.Bottom, area.Min.Y, area.Max.Y, &r.Max.Y)
	return r.Intersect(clip)
}

// ResolveRadius returns the corner or circle radius of a step drawn in
// rect. RadiusAuto is half the smaller side, and zero for rectangles one
// pixel thin; literal radii are scaled.
func ResolveRadius(radius int, scale Fixed, rect image.Rectangle) int {
	if radius == RadiusAuto {
		w, h := rect.Dx(), rect.Dy()
		if w <= 1 || h <= 1 {
			return 0
		}
		return min(w, h) / 2
	}
	if scale == 0 {
		scale = FixedOne
	}
	return max(scale.Mul(radius), 0)
}
