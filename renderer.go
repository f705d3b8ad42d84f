package vrender

import (
	"image"

	"github.com/gogpu/vrender/pixfmt"
	"github.com/gogpu/vrender/surface"
	"github.com/gogpu/vrender/text"
)

// TriangleOrientation selects which way a triangle points.
type TriangleOrientation uint8

const (
	// TriangleAuto takes the orientation from the style's dynamic data,
	// falling back to TriangleUp.
	TriangleAuto TriangleOrientation = iota
	TriangleUp
	TriangleDown
	TriangleLeft
	TriangleRight
)

// AlphaType controls how the alpha channel of a blitted image is used.
type AlphaType uint8

const (
	// AlphaOpaque ignores the source alpha and copies every pixel.
	AlphaOpaque AlphaType = iota
	// AlphaBinary copies pixels whose alpha is at least one half and skips
	// the rest.
	AlphaBinary
	// AlphaFull blends every pixel by its alpha.
	AlphaFull
)

// AutoScale controls how a blitted image is fitted into its step area.
type AutoScale uint8

const (
	// ScaleNone blits the image at its natural size.
	ScaleNone AutoScale = iota
	// ScaleStretch resizes the image to exactly fill the area.
	ScaleStretch
	// ScaleFit resizes the image to fit the area, keeping its aspect ratio.
	ScaleFit
)

// ShadingStyle is a whole-surface effect applied before opening a dialog.
type ShadingStyle uint8

const (
	// ShadingNone leaves the surface unchanged.
	ShadingNone ShadingStyle = iota
	// ShadingDim halves the brightness of every pixel.
	ShadingDim
	// ShadingLuminance converts every pixel to its gray level.
	ShadingLuminance
)

// Mode selects the rasterizer implementation created by New.
type Mode uint8

const (
	// ModePlain uses the aliased Bresenham/midpoint rasterizers.
	ModePlain Mode = iota
	// ModeAntiAlias uses coverage-based lines and circles.
	ModeAntiAlias
)

// Renderer draws vector primitives into the active surface.
//
// Every primitive is a function of its Style, its integer geometry and the
// current surface contents. Pixels outside the style clip and the surface
// bounds are never written; degenerate geometry draws nothing.
//
// A Renderer is not safe for concurrent use.
type Renderer[P pixfmt.Pixel] interface {
	// SetSurface sets the surface all drawing goes to. The renderer keeps a
	// reference but never takes ownership.
	SetSurface(s *surface.Surface[P])
	// Surface returns the active surface, or nil.
	Surface() *surface.Surface[P]
	// Format returns the pixel format the renderer was built for.
	Format() *pixfmt.Format[P]

	PutPixel(st Style, x, y int, c Color)
	BlendPixel(st Style, x, y int, c Color, alpha uint8)

	DrawLine(st Style, x1, y1, x2, y2 int)
	DrawCircle(st Style, x, y, r int)
	DrawSquare(st Style, x, y, w, h int)
	DrawRoundedSquare(st Style, x, y, r, w, h int)
	DrawTriangle(st Style, x, y, base, height int, orient TriangleOrientation)
	DrawBeveledSquare(st Style, x, y, w, h int)
	DrawTab(st Style, x, y, r, w, h, shadow int)
	DrawCross(st Style, x, y, w, h int)

	// FillSurface fills the clipped surface according to the fill mode,
	// using the foreground color when filling is disabled.
	FillSurface(st Style)
	// ClearSurface zeroes the whole surface.
	ClearSurface()
	// BlitSurface copies r from a surface of the same size and format.
	BlitSurface(src *surface.Surface[P], r image.Rectangle)
	// BlitImage draws img with its top-left corner at p.
	BlitImage(st Style, img image.Image, p image.Point, alpha AlphaType)
	// DrawString forwards text drawing to font. It panics if font is nil.
	DrawString(st Style, font text.Font, s string, area image.Rectangle, alignH text.HAlign, alignV text.VAlign, deltaX int, ellipsis bool, drawable image.Rectangle)
	// ApplyScreenShading applies a whole-surface effect.
	ApplyScreenShading(shading ShadingStyle)

	// DrawStep resolves step against area and clip and draws it, using
	// base for everything the step does not set. extra is the per-step
	// dynamic data.
	DrawStep(base Style, area, clip image.Rectangle, step Step, extra uint32)
}

// New creates a renderer for format. The rasterizer is selected once here
// and never per pixel.
func New[P pixfmt.Pixel](format *pixfmt.Format[P], mode Mode) Renderer[P] {
	switch mode {
	case ModeAntiAlias:
		return NewAA(format)
	default:
		return NewSpec(format)
	}
}
