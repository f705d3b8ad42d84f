package vrender

import (
	"image"

	"github.com/gogpu/vrender/pixfmt"
	"github.com/gogpu/vrender/surface"
)

// rasterizer holds the algorithms an anti-aliased renderer replaces. All
// other primitives reach lines and circles through it.
type rasterizer[P pixfmt.Pixel] interface {
	// line draws from x1,y1 to x2,y2 with the given thickness.
	line(c *canvas[P], x1, y1, x2, y2, width int, p P)
	// fillCircle fills the disc of radius r.
	fillCircle(c *canvas[P], cx, cy, r int, pt paint[P])
	// strokeCircle draws the outline of radius r, width pixels thick,
	// growing inwards.
	strokeCircle(c *canvas[P], cx, cy, r, width int, p P)
}

// Spec is the aliased renderer for pixel type P. It rasterizes with integer
// Bresenham lines, midpoint circles and horizontal span fills.
type Spec[P pixfmt.Pixel] struct {
	format *pixfmt.Format[P]
	surf   *surface.Surface[P]
	algo   rasterizer[P]
	cv     canvas[P]
}

var _ Renderer[uint16] = (*Spec[uint16])(nil)

// NewSpec creates an aliased renderer for format.
func NewSpec[P pixfmt.Pixel](format *pixfmt.Format[P]) *Spec[P] {
	return &Spec[P]{
		format: format,
		algo:   plainRaster[P]{},
	}
}

// SetSurface sets the active surface.
func (r *Spec[P]) SetSurface(s *surface.Surface[P]) {
	r.surf = s
}

// Surface returns the active surface.
func (r *Spec[P]) Surface() *surface.Surface[P] {
	return r.surf
}

// Format returns the renderer's pixel format.
func (r *Spec[P]) Format() *pixfmt.Format[P] {
	return r.format
}

// begin starts a primitive call and returns its canvas, or nil when nothing
// can be drawn.
func (r *Spec[P]) begin(st Style) *canvas[P] {
	if !r.cv.begin(r.surf, st) {
		return nil
	}
	return &r.cv
}

// PutPixel writes one pixel in color c.
func (r *Spec[P]) PutPixel(st Style, x, y int, c Color) {
	if cv := r.begin(st); cv != nil {
		cv.put(x, y, cv.f.Pack(c.R, c.G, c.B))
	}
}

// BlendPixel mixes color c into one pixel. Alpha 0 leaves the pixel
// untouched and alpha 255 is identical to PutPixel.
func (r *Spec[P]) BlendPixel(st Style, x, y int, c Color, alpha uint8) {
	if cv := r.begin(st); cv != nil {
		cv.blend(x, y, cv.f.Pack(c.R, c.G, c.B), alpha)
	}
}

// DrawLine draws a line in the foreground color, StrokeWidth pixels thick.
// Both endpoints are included, and swapping them paints the same pixels.
func (r *Spec[P]) DrawLine(st Style, x1, y1, x2, y2 int) {
	cv := r.begin(st)
	if cv == nil {
		return
	}
	r.algo.line(cv, x1, y1, x2, y2, cv.strokeWidth(), cv.fg)
}

// DrawCross draws the two diagonals of the box at x,y.
func (r *Spec[P]) DrawCross(st Style, x, y, w, h int) {
	if w < 0 || h < 0 {
		return
	}
	cv := r.begin(st)
	if cv == nil {
		return
	}
	sw := cv.strokeWidth()
	r.algo.line(cv, x, y, x+w, y+h, sw, cv.fg)
	r.algo.line(cv, x+w, y, x, y+h, sw, cv.fg)
}

// DrawCircle draws a circle centered at x,y with radius r.
func (r *Spec[P]) DrawCircle(st Style, x, y, radius int) {
	if radius < 0 || radius > maxRadius {
		return
	}
	cv := r.begin(st)
	if cv == nil {
		return
	}
	// Anti-aliased fringes reach one pixel past the radius.
	lo, hi := radius+1, radius+2+cv.st.shadowOffset
	if !image.Rect(x-lo, y-lo, x+hi, y+hi).Overlaps(cv.clip) {
		return
	}
	if radius > maxExactRadius {
		cv.largeCircle(x, y, radius)
		return
	}
	if cv.shadowed() {
		cv.circleShadow(x, y, radius)
	}
	if pt, ok := cv.fillPaint(y-radius, 2*radius+1); ok {
		r.algo.fillCircle(cv, x, y, radius, pt)
	}
	if cv.outlined() {
		r.algo.strokeCircle(cv, x, y, radius, cv.strokeWidth(), cv.fg)
	}
}

// DrawSquare draws the w x h rectangle at x,y.
func (r *Spec[P]) DrawSquare(st Style, x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if cv := r.begin(st); cv != nil {
		cv.drawBox(box{x: x, y: y, w: w, h: h})
	}
}

// DrawRoundedSquare draws the w x h rectangle at x,y with corners rounded
// to radius r. The radius is clamped so opposite corners never overlap; a
// radius that ends up non-positive draws nothing.
func (r *Spec[P]) DrawRoundedSquare(st Style, x, y, radius, w, h int) {
	if w <= 0 || h <= 0 || radius <= 0 {
		return
	}
	b := box{x: x, y: y, w: w, h: h, r: radius}.clamped()
	if b.r <= 0 {
		return
	}
	if cv := r.begin(st); cv != nil {
		cv.drawBox(b)
	}
}

// DrawTab draws a tab: a box with rounded top corners, no bottom edge, and
// a shadow of the given size.
func (r *Spec[P]) DrawTab(st Style, x, y, radius, w, h, shadow int) {
	if w <= 0 || h <= 0 {
		return
	}
	cv := r.begin(st)
	if cv == nil {
		return
	}
	b := box{x: x, y: y, w: w, h: h, r: max(radius, 0), openBottom: true}.clamped()
	if shadow > 0 && !cv.st.noShadows && cv.st.fill != FillDisabled {
		cv.boxShadow(b, shadow)
	}
	if pt, ok := cv.fillPaint(b.y, b.h); ok {
		cv.fillBox(b, pt)
	}
	if cv.outlined() {
		cv.strokeBox(b, cv.strokeWidth(), cv.fg)
	}
}

// DrawBeveledSquare draws the classic raised frame: Bevel pixels of the
// bevel color along the top and left edges and of the foreground color
// along the bottom and right edges. The interior is left untouched.
func (r *Spec[P]) DrawBeveledSquare(st Style, x, y, w, h int) {
	if w <= 0 || h <= 0 || st.bevel <= 0 {
		return
	}
	cv := r.begin(st)
	if cv == nil {
		return
	}
	bevel := min(st.bevel, (w+1)/2, (h+1)/2)
	for i := 0; i < bevel; i++ {
		// Light edges stop short of the far corners so the dark edges
		// meet them on a diagonal.
		cv.hspan(x, x+w-1-i, y+i, cv.bevel)
		cv.vspan(x+i, y, y+h-1-i, cv.bevel)
		cv.hspan(x+i+1, x+w-1, y+h-1-i, cv.fg)
		cv.vspan(x+w-1-i, y+i+1, y+h-1, cv.fg)
	}
}

// FillSurface paints the clipped surface with the fill mode's paint. A
// disabled fill mode paints the foreground color.
func (r *Spec[P]) FillSurface(st Style) {
	cv := r.begin(st)
	if cv == nil {
		return
	}
	pt, ok := cv.fillPaint(0, r.surf.Height)
	if !ok {
		pt = solid(cv.fg)
	}
	for y := cv.clip.Min.Y; y < cv.clip.Max.Y; y++ {
		cv.hspan(cv.clip.Min.X, cv.clip.Max.X-1, y, pt.at(y))
	}
}

// ClearSurface zeroes the active surface.
func (r *Spec[P]) ClearSurface() {
	if r.surf != nil {
		r.surf.Clear()
	}
}
