package vrender

import "image"

// DrawStep draws one theme step into area.
//
// The step style is base with the step's Paint applied and extra stored
// as dynamic data. clip is intersected with the step's own clip edges and
// with base's clip; an empty clip means the whole surface. Steps whose
// geometry resolves to nothing are skipped.
func (r *Spec[P]) DrawStep(base Style, area, clip image.Rectangle, step Step, extra uint32) {
	if step == nil || r.surf == nil {
		return
	}
	if clip.Empty() {
		clip = r.surf.Rect()
	}
	if bc, ok := base.Clip(); ok {
		clip = clip.Intersect(bc)
	}

	sb := step.common()
	st := sb.Paint.apply(base).WithDynamicData(extra)

	switch s := step.(type) {
	case VoidStep:
		return
	case FillSurfaceStep:
		c := sb.Clip.resolve(area, clip)
		Logger().Debug("vrender: draw step", "kind", s.Kind(), "clip", c)
		r.FillSurface(st.WithClip(c))
		return
	}

	g := ResolveGeometry(sb.Placement, area, clip)
	Logger().Debug("vrender: draw step", "kind", step.Kind(), "rect", g.Rect, "clip", g.Clip, "ok", g.OK)
	if !g.OK {
		return
	}
	st = st.WithClip(g.Clip)
	x, y, w, h := g.Rect.Min.X, g.Rect.Min.Y, g.Rect.Dx(), g.Rect.Dy()

	switch s := step.(type) {
	case LineStep:
		r.DrawLine(st, x, y, x+w-1, y+h-1)
	case CircleStep:
		radius := ResolveRadius(s.Radius, sb.Scale, g.Rect)
		r.DrawCircle(st, x+radius, y+radius, radius)
	case SquareStep:
		r.DrawSquare(st, x, y, w, h)
	case RoundedSquareStep:
		r.DrawRoundedSquare(st, x, y, ResolveRadius(s.Radius, sb.Scale, g.Rect), w, h)
	case TriangleStep:
		r.DrawTriangle(st, x, y, w, h, s.Orientation)
	case BeveledSquareStep:
		r.DrawBeveledSquare(st, x, y, w, h)
	case TabStep:
		r.DrawTab(st, x, y, ResolveRadius(s.Radius, sb.Scale, g.Rect), w, h, st.ShadowOffset())
	case CrossStep:
		r.DrawCross(st, x, y, w-1, h-1)
	case BitmapStep:
		if s.Image == nil {
			return
		}
		r.BlitImage(st, scaleImage(s.Image, w, h, s.Fit), g.Rect.Min, s.Alpha)
	case TextStep:
		r.DrawString(st, s.Font, s.Text, g.Rect, s.AlignH, s.AlignV, s.DeltaX, s.Ellipsis, g.Clip)
	default:
		Logger().Warn("vrender: unknown step kind", "kind", step.Kind())
	}
}
