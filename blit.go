package vrender

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"

	"github.com/gogpu/vrender/internal/blend"
	"github.com/gogpu/vrender/surface"
	"github.com/gogpu/vrender/text"
)

// BlitSurface copies the region r of src into the same region of the
// active surface. Both surfaces are expected to have the same size; r is
// clipped to both. Pixels are converted when the formats differ.
func (r *Spec[P]) BlitSurface(src *surface.Surface[P], rect image.Rectangle) {
	dst := r.surf
	if dst == nil || src == nil {
		return
	}
	rect = rect.Intersect(dst.Rect()).Intersect(src.Rect())
	if rect.Empty() {
		return
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		from := src.Pix[src.Offset(rect.Min.X, y):src.Offset(rect.Max.X, y)]
		to := dst.Pix[dst.Offset(rect.Min.X, y):dst.Offset(rect.Max.X, y)]
		if src.Format == dst.Format {
			copy(to, from)
			continue
		}
		for i, p := range from {
			cr, cg, cb := src.Format.Unpack(p)
			to[i] = dst.Format.Pack(cr, cg, cb)
		}
	}
}

// BlitImage draws img with its top-left corner at p, honoring the style
// clip. alpha selects how the image's alpha channel is applied.
func (r *Spec[P]) BlitImage(st Style, img image.Image, p image.Point, alpha AlphaType) {
	if img == nil {
		return
	}
	cv := r.begin(st)
	if cv == nil {
		return
	}
	b := img.Bounds()
	dstRect := b.Sub(b.Min).Add(p).Intersect(cv.clip)
	for y := dstRect.Min.Y; y < dstRect.Max.Y; y++ {
		for x := dstRect.Min.X; x < dstRect.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x-p.X+b.Min.X, y-p.Y+b.Min.Y)).(color.NRGBA)
			px := cv.f.Pack(c.R, c.G, c.B)
			switch alpha {
			case AlphaOpaque:
				cv.put(x, y, px)
			case AlphaBinary:
				if c.A >= 0x80 {
					cv.put(x, y, px)
				}
			default:
				cv.blend(x, y, px, c.A)
			}
		}
	}
}

// scaleImage fits img into a w x h area according to mode.
func scaleImage(img image.Image, w, h int, mode AutoScale) image.Image {
	b := img.Bounds()
	if mode == ScaleNone || w <= 0 || h <= 0 || b.Empty() {
		return img
	}
	if mode == ScaleFit {
		// Keep the aspect ratio: shrink the axis that would overflow.
		if b.Dx()*h > b.Dy()*w {
			h = max(b.Dy()*w/b.Dx(), 1)
		} else {
			w = max(b.Dx()*h/b.Dy(), 1)
		}
	}
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// ApplyScreenShading darkens or desaturates the whole active surface.
func (r *Spec[P]) ApplyScreenShading(shading ShadingStyle) {
	s := r.surf
	if s == nil || shading == ShadingNone {
		return
	}
	f := s.Format
	for y := 0; y < s.Height; y++ {
		row := s.Pix[s.Offset(0, y):s.Offset(s.Width, y)]
		for i, p := range row {
			cr, cg, cb := f.Unpack(p)
			switch shading {
			case ShadingDim:
				row[i] = f.Pack(cr>>1, cg>>1, cb>>1)
			case ShadingLuminance:
				l := blend.Luma(cr, cg, cb)
				row[i] = f.Pack(l, l, l)
			}
		}
	}
}

// DrawString draws s with font in the foreground color. The text is
// clipped to drawable, the style clip and the surface. A nil font is a
// wiring error and panics.
func (r *Spec[P]) DrawString(st Style, font text.Font, s string, area image.Rectangle, alignH text.HAlign, alignV text.VAlign, deltaX int, ellipsis bool, drawable image.Rectangle) {
	if font == nil {
		panic("vrender: DrawString called with a nil font")
	}
	cv := r.begin(st)
	if cv == nil {
		return
	}
	clip := cv.clip
	if !drawable.Empty() {
		clip = clip.Intersect(drawable)
	}
	if clip.Empty() {
		return
	}
	font.DrawString(r.surf, s, area, st.fg.NRGBA(), alignH, alignV, deltaX, ellipsis, clip)
}
