package vrender

import (
	"image"

	"github.com/gogpu/vrender/text"
)

// StepKind identifies the primitive a Step draws.
type StepKind uint8

const (
	KindVoid StepKind = iota
	KindLine
	KindCircle
	KindSquare
	KindRoundedSquare
	KindTriangle
	KindBeveledSquare
	KindTab
	KindCross
	KindBitmap
	KindFillSurface
	KindText
)

var kindNames = [...]string{
	KindVoid:          "void",
	KindLine:          "line",
	KindCircle:        "circle",
	KindSquare:        "square",
	KindRoundedSquare: "roundedsq",
	KindTriangle:      "triangle",
	KindBeveledSquare: "bevelsq",
	KindTab:           "tab",
	KindCross:         "cross",
	KindBitmap:        "bitmap",
	KindFillSurface:   "fill",
	KindText:          "text",
}

// String returns the name themes use for the kind.
func (k StepKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseStepKind returns the kind with the given name.
func ParseStepKind(name string) (StepKind, bool) {
	for k, n := range kindNames {
		if n == name {
			return StepKind(k), true
		}
	}
	return KindVoid, false
}

// Alignment positions a step on one axis of its area. AlignLiteral uses
// the step's literal coordinate.
type Alignment uint8

const (
	AlignLiteral Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
	AlignTop
	AlignBottom
)

// Insets is a padding inside the step area.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Edges restricts a step's clip relative to its area. A positive edge is
// an offset from the area's left or top, a negative edge an offset from
// its right or bottom, and a zero edge is left to the caller clip.
type Edges struct {
	Left, Top, Right, Bottom int
}

// Placement is the geometry of a step relative to its widget area.
//
// A literal X or Y is an offset from the area's left/top edge (plus
// padding) or, when negative, from its right/bottom edge (minus padding).
// A literal W or H of -1 takes the area's extent on the other axis, for
// square icons in wide areas.
type Placement struct {
	X, Y, W, H int

	AutoWidth, AutoHeight bool
	XAlign, YAlign        Alignment

	Padding Insets
	Clip    Edges

	// Scale multiplies literal coordinates, sizes and radii. Zero means
	// FixedOne.
	Scale Fixed
}

// Paint is the per-step part of the drawing style. Colors left nil keep
// the base style's colors; the other fields replace the base values and
// are validated like the Style setters. A zero GradientFactor or
// ShadowIntensity keeps the base value.
type Paint struct {
	Fg, Bg, Bevel              *Color
	GradientStart, GradientEnd *Color

	Fill       FillMode
	ShadowFill ShadowFillMode

	Stroke      int
	Shadow      int
	BevelAmount int

	GradientFactor  int
	ShadowIntensity Fixed
}

// apply derives the step style from base.
func (p Paint) apply(st Style) Style {
	if p.Fg != nil {
		st = st.WithFgColor(*p.Fg)
	}
	if p.Bg != nil {
		st = st.WithBgColor(*p.Bg)
	}
	if p.Bevel != nil {
		st = st.WithBevelColor(*p.Bevel)
	}
	if p.GradientStart != nil || p.GradientEnd != nil {
		start, end := st.Gradient()
		if p.GradientStart != nil {
			start = *p.GradientStart
		}
		if p.GradientEnd != nil {
			end = *p.GradientEnd
		}
		st = st.WithGradient(start, end)
	}
	st = st.WithFillMode(p.Fill).
		WithShadowFillMode(p.ShadowFill).
		WithStrokeWidth(p.Stroke).
		WithShadowOffset(p.Shadow).
		WithBevel(p.BevelAmount)
	if p.GradientFactor != 0 {
		st = st.WithGradientFactor(p.GradientFactor)
	}
	if p.ShadowIntensity != 0 {
		st = st.WithShadowIntensity(p.ShadowIntensity)
	}
	return st
}

// StepBase holds the fields every step kind shares.
type StepBase struct {
	Placement
	Paint
}

func (b StepBase) common() StepBase { return b }

// Step is one drawing operation of a widget. The concrete types are the
// *Step structs of this package, passed by value.
type Step interface {
	Kind() StepKind
	common() StepBase
}

// VoidStep draws nothing.
type VoidStep struct{ StepBase }

// LineStep draws the diagonal of its rectangle, from the top-left to the
// bottom-right pixel.
type LineStep struct{ StepBase }

// CircleStep draws the circle of Radius inscribed at the top-left of its
// rectangle.
type CircleStep struct {
	StepBase
	Radius int
}

// SquareStep fills its rectangle.
type SquareStep struct{ StepBase }

// RoundedSquareStep draws its rectangle with rounded corners.
type RoundedSquareStep struct {
	StepBase
	Radius int
}

// TriangleStep draws a triangle inscribed in its rectangle. TriangleAuto
// takes the orientation from the dynamic data passed to DrawStep.
type TriangleStep struct {
	StepBase
	Orientation TriangleOrientation
}

// BeveledSquareStep draws a raised frame.
type BeveledSquareStep struct{ StepBase }

// TabStep draws a tab with rounded top corners. Its shadow size is the
// Paint's Shadow.
type TabStep struct {
	StepBase
	Radius int
}

// CrossStep draws both diagonals of its rectangle.
type CrossStep struct{ StepBase }

// BitmapStep blits Image at the top-left of its rectangle. The step does
// not own the image.
type BitmapStep struct {
	StepBase
	Image image.Image
	Alpha AlphaType
	Fit   AutoScale
}

// FillSurfaceStep fills the whole clipped surface; its placement is
// ignored.
type FillSurfaceStep struct{ StepBase }

// TextStep draws Text with Font inside its rectangle.
type TextStep struct {
	StepBase
	Font     text.Font
	Text     string
	AlignH   text.HAlign
	AlignV   text.VAlign
	DeltaX   int
	Ellipsis bool
}

func (VoidStep) Kind() StepKind          { return KindVoid }
func (LineStep) Kind() StepKind          { return KindLine }
func (CircleStep) Kind() StepKind        { return KindCircle }
func (SquareStep) Kind() StepKind        { return KindSquare }
func (RoundedSquareStep) Kind() StepKind { return KindRoundedSquare }
func (TriangleStep) Kind() StepKind      { return KindTriangle }
func (BeveledSquareStep) Kind() StepKind { return KindBeveledSquare }
func (TabStep) Kind() StepKind           { return KindTab }
func (CrossStep) Kind() StepKind         { return KindCross }
func (BitmapStep) Kind() StepKind        { return KindBitmap }
func (FillSurfaceStep) Kind() StepKind   { return KindFillSurface }
func (TextStep) Kind() StepKind          { return KindText }
