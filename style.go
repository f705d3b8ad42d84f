package vrender

import "image"

// FillMode specifies whether and how a shape's interior is painted.
type FillMode uint8

const (
	// FillDisabled draws outlines only.
	FillDisabled FillMode = iota
	// FillForeground fills with the foreground color.
	FillForeground
	// FillBackground fills with the background color and strokes with the
	// foreground color.
	FillBackground
	// FillGradient fills with the vertical two-stop gradient and strokes
	// with the foreground color.
	FillGradient
)

// String returns the fill mode name.
func (m FillMode) String() string {
	switch m {
	case FillDisabled:
		return "disabled"
	case FillForeground:
		return "foreground"
	case FillBackground:
		return "background"
	case FillGradient:
		return "gradient"
	default:
		return "unknown"
	}
}

// ShadowFillMode is the falloff curve of a cast shadow.
type ShadowFillMode uint8

const (
	// ShadowLinear fades opacity proportionally to the distance from the
	// silhouette edge.
	ShadowLinear ShadowFillMode = iota
	// ShadowExponential fades opacity with the square of the distance,
	// giving a tighter shadow.
	ShadowExponential
)

// String returns the shadow fill mode name.
func (m ShadowFillMode) String() string {
	switch m {
	case ShadowLinear:
		return "linear"
	case ShadowExponential:
		return "exponential"
	default:
		return "unknown"
	}
}

// Style is the complete drawing state of one primitive call.
//
// Style is an immutable value: every With method returns a modified copy and
// leaves the receiver untouched. Invalid values are ignored with a warning
// and the previous value is kept, so a Style is always fully specified.
type Style struct {
	fg, bg, bevelColor Color
	gradStart, gradEnd Color

	fill       FillMode
	shadowFill ShadowFillMode

	stroke          int
	shadowOffset    int
	bevel           int
	gradientFactor  int
	shadowIntensity Fixed

	clip    image.Rectangle
	clipped bool

	noShadows bool
	dynamic   uint32
}

// DefaultStyle returns the initial renderer style: no fill, a 1 pixel
// stroke, exponential shadows without offset, gradient factor 1 and full
// shadow intensity.
func DefaultStyle() Style {
	return Style{
		fill:            FillDisabled,
		shadowFill:      ShadowExponential,
		stroke:          1,
		gradientFactor:  1,
		shadowIntensity: FixedOne,
	}
}

// Fg returns the foreground color.
func (s Style) Fg() Color { return s.fg }

// Bg returns the background color.
func (s Style) Bg() Color { return s.bg }

// BevelColor returns the light bevel color.
func (s Style) BevelColor() Color { return s.bevelColor }

// Gradient returns the gradient start and end colors.
func (s Style) Gradient() (start, end Color) { return s.gradStart, s.gradEnd }

// FillMode returns the active fill mode.
func (s Style) FillMode() FillMode { return s.fill }

// ShadowFillMode returns the shadow falloff mode.
func (s Style) ShadowFillMode() ShadowFillMode { return s.shadowFill }

// StrokeWidth returns the outline width in pixels.
func (s Style) StrokeWidth() int { return s.stroke }

// ShadowOffset returns the shadow offset in pixels.
func (s Style) ShadowOffset() int { return s.shadowOffset }

// Bevel returns the bevel width in pixels.
func (s Style) Bevel() int { return s.bevel }

// GradientFactor returns the gradient compression factor.
func (s Style) GradientFactor() int { return s.gradientFactor }

// ShadowIntensity returns the 16.16 shadow intensity.
func (s Style) ShadowIntensity() Fixed { return s.shadowIntensity }

// Clip returns the clip rectangle and whether one is set.
func (s Style) Clip() (image.Rectangle, bool) { return s.clip, s.clipped }

// ShadowsEnabled reports whether shadows are drawn at all.
func (s Style) ShadowsEnabled() bool { return !s.noShadows }

// DynamicData returns the per-step extra value (e.g. triangle orientation).
func (s Style) DynamicData() uint32 { return s.dynamic }

// WithFgColor sets the foreground color used for outlines and solid shapes.
func (s Style) WithFgColor(c Color) Style {
	s.fg = c
	return s
}

// WithBgColor sets the background color used for shape interiors.
func (s Style) WithBgColor(c Color) Style {
	s.bg = c
	return s
}

// WithBevelColor sets the light color of beveled squares.
func (s Style) WithBevelColor(c Color) Style {
	s.bevelColor = c
	return s
}

// WithGradient sets the vertical gradient stops.
func (s Style) WithGradient(start, end Color) Style {
	s.gradStart, s.gradEnd = start, end
	return s
}

// WithFillMode sets the fill mode.
func (s Style) WithFillMode(m FillMode) Style {
	if m > FillGradient {
		Logger().Warn("vrender: ignoring unknown fill mode", "mode", int(m))
		return s
	}
	s.fill = m
	return s
}

// WithShadowFillMode sets the shadow falloff mode.
func (s Style) WithShadowFillMode(m ShadowFillMode) Style {
	if m > ShadowExponential {
		Logger().Warn("vrender: ignoring unknown shadow fill mode", "mode", int(m))
		return s
	}
	s.shadowFill = m
	return s
}

// WithStrokeWidth sets the outline width. Zero disables stroking of filled
// shapes; negative widths are ignored.
func (s Style) WithStrokeWidth(w int) Style {
	if w < 0 {
		Logger().Warn("vrender: ignoring negative stroke width", "width", w)
		return s
	}
	s.stroke = w
	return s
}

// WithShadowOffset sets the shadow offset. Zero disables shadows; negative
// offsets are ignored.
func (s Style) WithShadowOffset(offset int) Style {
	if offset < 0 {
		Logger().Warn("vrender: ignoring negative shadow offset", "offset", offset)
		return s
	}
	s.shadowOffset = offset
	return s
}

// WithBevel sets the bevel width. Negative amounts are ignored.
func (s Style) WithBevel(amount int) Style {
	if amount < 0 {
		Logger().Warn("vrender: ignoring negative bevel", "bevel", amount)
		return s
	}
	s.bevel = amount
	return s
}

// WithGradientFactor sets how quickly the gradient reaches its end color.
// A factor of 1 spans the whole shape; larger factors reach the end color
// before the far edge. Factors below 1 are ignored.
func (s Style) WithGradientFactor(factor int) Style {
	if factor <= 0 {
		Logger().Warn("vrender: ignoring non-positive gradient factor", "factor", factor)
		return s
	}
	s.gradientFactor = factor
	return s
}

// WithShadowIntensity scales the maximum shadow opacity. FixedOne is the
// default; zero is ignored.
func (s Style) WithShadowIntensity(intensity Fixed) Style {
	if intensity == 0 {
		Logger().Warn("vrender: ignoring zero shadow intensity")
		return s
	}
	s.shadowIntensity = intensity
	return s
}

// WithClip restricts drawing to r. An empty r suppresses all drawing.
func (s Style) WithClip(r image.Rectangle) Style {
	s.clip = r.Canon()
	s.clipped = true
	return s
}

// WithoutClip removes the clip restriction; drawing is limited only by the
// surface bounds.
func (s Style) WithoutClip() Style {
	s.clip = image.Rectangle{}
	s.clipped = false
	return s
}

// WithShadows enables or disables shadow drawing regardless of the offset.
func (s Style) WithShadows(enabled bool) Style {
	s.noShadows = !enabled
	return s
}

// WithDynamicData sets the per-step extra value.
func (s Style) WithDynamicData(v uint32) Style {
	s.dynamic = v
	return s
}
