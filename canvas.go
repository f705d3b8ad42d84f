package vrender

import (
	"image"

	"github.com/gogpu/vrender/pixfmt"
	"github.com/gogpu/vrender/surface"
)

// canvas is the per-call drawing pass: the active surface, the effective
// clip and the packed colors of one Style. It also owns the scratch
// buffers reused between calls, so a renderer keeps exactly one.
type canvas[P pixfmt.Pixel] struct {
	pix   []P
	pitch int
	f     *pixfmt.Format[P]
	clip  image.Rectangle

	st Style

	fg, bg, bevel P

	// scratch
	grad  []P
	ext   []int
	inner []int
	mask  []uint8
}

// begin prepares the canvas for one primitive call. It reports false when
// there is nothing visible to draw.
func (c *canvas[P]) begin(s *surface.Surface[P], st Style) bool {
	if s == nil || s.Width <= 0 || s.Height <= 0 {
		return false
	}
	clip := s.Rect()
	if r, ok := st.Clip(); ok {
		clip = clip.Intersect(r)
	}
	if clip.Empty() {
		return false
	}
	c.pix = s.Pix
	c.pitch = s.Pitch
	c.f = s.Format
	c.clip = clip
	c.st = st
	c.fg = c.f.Pack(st.fg.R, st.fg.G, st.fg.B)
	c.bg = c.f.Pack(st.bg.R, st.bg.G, st.bg.B)
	c.bevel = c.f.Pack(st.bevelColor.R, st.bevelColor.G, st.bevelColor.B)
	return true
}

func (c *canvas[P]) visible(x, y int) bool {
	return x >= c.clip.Min.X && x < c.clip.Max.X && y >= c.clip.Min.Y && y < c.clip.Max.Y
}

func (c *canvas[P]) put(x, y int, p P) {
	if c.visible(x, y) {
		c.pix[y*c.pitch+x] = p
	}
}

func (c *canvas[P]) blend(x, y int, p P, alpha uint8) {
	if alpha == 0 || !c.visible(x, y) {
		return
	}
	i := y*c.pitch + x
	c.pix[i] = c.f.Blend(c.pix[i], p, alpha)
}

// hspan fills the pixels x0..x1 (inclusive) of row y.
func (c *canvas[P]) hspan(x0, x1, y int, p P) {
	if y < c.clip.Min.Y || y >= c.clip.Max.Y {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = max(x0, c.clip.Min.X)
	x1 = min(x1, c.clip.Max.X-1)
	if x0 > x1 {
		return
	}
	row := c.pix[y*c.pitch+x0 : y*c.pitch+x1+1]
	for i := range row {
		row[i] = p
	}
}

// vspan fills the pixels y0..y1 (inclusive) of column x.
func (c *canvas[P]) vspan(x, y0, y1 int, p P) {
	if x < c.clip.Min.X || x >= c.clip.Max.X {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0 = max(y0, c.clip.Min.Y)
	y1 = min(y1, c.clip.Max.Y-1)
	for y := y0; y <= y1; y++ {
		c.pix[y*c.pitch+x] = p
	}
}

// blendSpan blends the pixels x0..x1 (inclusive) of row y.
func (c *canvas[P]) blendSpan(x0, x1, y int, p P, alpha uint8) {
	if alpha == 255 {
		c.hspan(x0, x1, y, p)
		return
	}
	if alpha == 0 || y < c.clip.Min.Y || y >= c.clip.Max.Y {
		return
	}
	x0 = max(x0, c.clip.Min.X)
	x1 = min(x1, c.clip.Max.X-1)
	for x := x0; x <= x1; x++ {
		i := y*c.pitch + x
		c.pix[i] = c.f.Blend(c.pix[i], p, alpha)
	}
}

// rect fills the w x h rectangle at x, y.
func (c *canvas[P]) rect(x, y, w, h int, p P) {
	for row := y; row < y+h; row++ {
		c.hspan(x, x+w-1, row, p)
	}
}

// paint is either a solid color or a per-row gradient.
type paint[P pixfmt.Pixel] struct {
	solid P
	rows  []P
	top   int
}

func (p paint[P]) at(y int) P {
	if p.rows == nil {
		return p.solid
	}
	i := y - p.top
	if i < 0 {
		i = 0
	} else if i >= len(p.rows) {
		i = len(p.rows) - 1
	}
	return p.rows[i]
}

func solid[P pixfmt.Pixel](p P) paint[P] {
	return paint[P]{solid: p}
}

// gradient precomputes the vertical gradient of a shape spanning rows
// top..top+height-1. Only the rows inside the clip are computed.
//
// Row i gets the color at i*factor/(height-1) of the way from the start to
// the end stop, so with factor 1 the first row is the start color and the
// last row the end color; larger factors saturate at the end color early.
func (c *canvas[P]) gradient(top, height int) paint[P] {
	height = max(height, 1)
	from := max(top, c.clip.Min.Y)
	to := min(top+height, c.clip.Max.Y)
	if to <= from {
		from, to = top, top+1
	}
	n := to - from
	if cap(c.grad) < n {
		c.grad = make([]P, n)
	}
	c.grad = c.grad[:n]
	start, end := c.st.Gradient()
	factor := c.st.gradientFactor
	for i := range c.grad {
		col := lerpColor(start, end, (from-top+i)*factor, height-1)
		c.grad[i] = c.f.Pack(col.R, col.G, col.B)
	}
	return paint[P]{rows: c.grad, top: from}
}

// fillPaint returns the interior paint of a shape spanning rows
// top..top+height-1 for the style's fill mode, and false when filling is
// disabled.
func (c *canvas[P]) fillPaint(top, height int) (paint[P], bool) {
	switch c.st.fill {
	case FillForeground:
		return solid(c.fg), true
	case FillBackground:
		return solid(c.bg), true
	case FillGradient:
		return c.gradient(top, height), true
	default:
		return paint[P]{}, false
	}
}

// outlined reports whether a filled shape also gets a foreground outline.
// Foreground-filled shapes are solid; disabled fills are outline only.
func (c *canvas[P]) outlined() bool {
	switch c.st.fill {
	case FillDisabled:
		return true
	case FillForeground:
		return false
	default:
		return c.st.stroke > 0
	}
}

// strokeWidth returns the outline width, at least 1.
func (c *canvas[P]) strokeWidth() int {
	return max(c.st.stroke, 1)
}

// shadowed reports whether the current shape casts a shadow.
func (c *canvas[P]) shadowed() bool {
	return c.st.shadowOffset > 0 && !c.st.noShadows && c.st.fill != FillDisabled
}
