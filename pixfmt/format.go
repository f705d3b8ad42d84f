// Package pixfmt describes packed pixel formats and converts RGB triples
// to and from them.
//
// A Format is parameterized on the Go integer type that holds one packed
// pixel, so the renderer can be instantiated once per color depth without
// re-selecting anything per pixel.
package pixfmt

import (
	"image/color"

	"github.com/gogpu/vrender/internal/blend"
)

// Pixel is the set of integer types a packed pixel can be stored in.
type Pixel interface {
	~uint16 | ~uint32
}

// Format describes one packed pixel representation.
//
// Each channel is stored as its most significant (8 - Loss) bits shifted
// left by Shift. A channel with Loss 8 is absent. Formats are immutable once
// constructed; use the package-level descriptors or NewFormat.
type Format[P Pixel] struct {
	name string

	bytesPerPixel int

	rLoss, gLoss, bLoss, aLoss     uint8
	rShift, gShift, bShift, aShift uint8

	// alpha is the fully opaque alpha bits, OR-ed into every packed pixel.
	alpha uint32
}

// NewFormat creates a format descriptor from channel losses and shifts.
// Losses above 8 are treated as 8 (channel absent).
func NewFormat[P Pixel](name string, bytesPerPixel int, rLoss, gLoss, bLoss, aLoss, rShift, gShift, bShift, aShift uint8) *Format[P] {
	f := &Format[P]{
		name:          name,
		bytesPerPixel: bytesPerPixel,
		rLoss:         min(rLoss, 8),
		gLoss:         min(gLoss, 8),
		bLoss:         min(bLoss, 8),
		aLoss:         min(aLoss, 8),
		rShift:        rShift,
		gShift:        gShift,
		bShift:        bShift,
		aShift:        aShift,
	}
	if f.aLoss < 8 {
		f.alpha = (0xFF >> f.aLoss) << f.aShift
	}
	return f
}

// String returns the format name.
func (f *Format[P]) String() string {
	return f.name
}

// BytesPerPixel returns the storage size of one pixel.
func (f *Format[P]) BytesPerPixel() int {
	return f.bytesPerPixel
}

// Bits returns the number of significant bits of the red, green and blue
// channels.
func (f *Format[P]) Bits() (r, g, b int) {
	return 8 - int(f.rLoss), 8 - int(f.gLoss), 8 - int(f.bLoss)
}

// HasAlpha reports whether the format stores an alpha channel.
func (f *Format[P]) HasAlpha() bool {
	return f.aLoss < 8
}

// Pack converts an RGB triple to a packed pixel. Input channels are
// truncated to the format's depth; the alpha channel, if any, is opaque.
func (f *Format[P]) Pack(r, g, b uint8) P {
	return P(uint32(r>>f.rLoss)<<f.rShift |
		uint32(g>>f.gLoss)<<f.gShift |
		uint32(b>>f.bLoss)<<f.bShift |
		f.alpha)
}

// Unpack extracts the RGB triple of a packed pixel. The low bits lost by
// Pack are zero.
func (f *Format[P]) Unpack(p P) (r, g, b uint8) {
	v := uint32(p)
	r = uint8((v>>f.rShift)<<f.rLoss) & (0xFF << f.rLoss)
	g = uint8((v>>f.gShift)<<f.gLoss) & (0xFF << f.gLoss)
	b = uint8((v>>f.bShift)<<f.bLoss) & (0xFF << f.bLoss)
	return r, g, b
}

// Blend mixes src over dst with the given coverage.
//
// Alpha 0 returns dst unchanged and alpha 255 returns src; anything in
// between is a per-channel integer weighted average.
func (f *Format[P]) Blend(dst, src P, alpha uint8) P {
	switch alpha {
	case 0:
		return dst
	case 255:
		return src
	}
	dr, dg, db := f.Unpack(dst)
	sr, sg, sb := f.Unpack(src)
	return f.Pack(
		blend.Lerp(dr, sr, alpha),
		blend.Lerp(dg, sg, alpha),
		blend.Lerp(db, sb, alpha),
	)
}

// Color returns the packed pixel as an opaque color.NRGBA.
func (f *Format[P]) Color(p P) color.NRGBA {
	r, g, b := f.Unpack(p)
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}

// Convert packs any color.Color, ignoring its alpha.
func (f *Format[P]) Convert(c color.Color) P {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return f.Pack(n.R, n.G, n.B)
}
