package vrender

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/gogpu/vrender/pixfmt"
	"github.com/gogpu/vrender/surface"
	"github.com/gogpu/vrender/text"
)

func TestBlitImageAlphaTypes(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 100})
	img.SetNRGBA(2, 0, color.NRGBA{R: 255, A: 0})

	tests := []struct {
		alpha AlphaType
		want  [3]uint8
	}{
		{AlphaOpaque, [3]uint8{255, 255, 255}},
		{AlphaBinary, [3]uint8{255, 0, 0}},
		{AlphaFull, [3]uint8{255, 100, 0}},
	}
	for _, tt := range tests {
		r, s := newTarget(ModePlain, 8, 8)
		r.BlitImage(DefaultStyle(), img, image.Pt(2, 3), tt.alpha)
		for i, want := range tt.want {
			got, _, _ := pixfmt.XRGB8888.Unpack(s.Pixel(2+i, 3))
			if got != want {
				t.Errorf("alpha type %d pixel %d: red = %d, want %d", tt.alpha, i, got, want)
			}
		}
		if n := painted(s, 0); n > 3 {
			t.Errorf("alpha type %d: %d pixels painted, want at most 3", tt.alpha, n)
		}
	}
}

func TestBlitImageOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	img.SetNRGBA(5, 5, color.NRGBA{G: 255, A: 255})
	r, s := newTarget(ModePlain, 4, 4)
	r.BlitImage(DefaultStyle(), img, image.Pt(3, 3), AlphaOpaque)
	if got := s.Pixel(3, 3); got != pixfmt.XRGB8888.Pack(0, 255, 0) {
		t.Errorf("pixel = %#x, want the image's top-left pixel", got)
	}
}

func TestBlitSurface(t *testing.T) {
	src := surface.New(8, 8, pixfmt.ARGB8888)
	src.Fill(src.Rect(), pixfmt.ARGB8888.Pack(255, 0, 0))

	r, dst := newTarget(ModePlain, 8, 8)
	r.BlitSurface(src, image.Rect(2, 2, 4, 4))
	if got := dst.Pixel(2, 2); got != pack(red) {
		t.Errorf("converted pixel = %#x, want %#x", got, pack(red))
	}
	if dst.Pixel(4, 4) != 0 {
		t.Error("pixel outside the blit rectangle was written")
	}

	same := surface.New(8, 8, pixfmt.XRGB8888)
	same.Fill(same.Rect(), pack(gray))
	r.BlitSurface(same, image.Rect(-5, -5, 100, 1))
	if dst.Pixel(7, 0) != pack(gray) || dst.Pixel(7, 1) != 0 {
		t.Error("blit rectangle was not clipped to both surfaces")
	}
}

func TestScaleImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	tests := []struct {
		mode AutoScale
		w, h int
		want image.Point
	}{
		{ScaleNone, 16, 16, image.Pt(4, 2)},
		{ScaleStretch, 16, 16, image.Pt(16, 16)},
		{ScaleFit, 16, 16, image.Pt(16, 8)},
		{ScaleFit, 4, 16, image.Pt(4, 2)},
		{ScaleFit, 20, 5, image.Pt(10, 5)},
	}
	for _, tt := range tests {
		got := scaleImage(img, tt.w, tt.h, tt.mode).Bounds().Size()
		if got != tt.want {
			t.Errorf("scaleImage(%d, %dx%d) size = %v, want %v", tt.mode, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestScreenShading(t *testing.T) {
	r, s := newTarget(ModePlain, 2, 1)
	s.SetPixel(0, 0, pack(White))
	s.SetPixel(1, 0, pack(red))

	r.ApplyScreenShading(ShadingNone)
	if s.Pixel(0, 0) != pack(White) {
		t.Error("ShadingNone changed the surface")
	}

	r.ApplyScreenShading(ShadingLuminance)
	if got := s.Pixel(1, 0); got != pack(RGB(76, 76, 76)) {
		t.Errorf("luminance of red = %#x, want gray 76", got)
	}

	r.ApplyScreenShading(ShadingDim)
	if got := s.Pixel(0, 0); got != pack(RGB(127, 127, 127)) {
		t.Errorf("dimmed white = %#x, want 127 gray", got)
	}
}

type recordingFont struct {
	calls int
	area  image.Rectangle
	clip  image.Rectangle
	text  string
}

func (f *recordingFont) DrawString(dst draw.Image, s string, area image.Rectangle, c color.Color, _ text.HAlign, _ text.VAlign, _ int, _ bool, clip image.Rectangle) {
	f.calls++
	f.text, f.area, f.clip = s, area, clip
}

func TestDrawStringForwardsToFont(t *testing.T) {
	r, _ := newTarget(ModePlain, 64, 64)
	f := &recordingFont{}
	st := DefaultStyle().WithClip(image.Rect(0, 0, 40, 40))
	r.DrawString(st, f, "OK", image.Rect(10, 10, 50, 20), text.AlignCenter, text.AlignMiddle, 0, false, image.Rect(20, 0, 64, 64))
	if f.calls != 1 || f.text != "OK" {
		t.Fatalf("font called %d times with %q", f.calls, f.text)
	}
	if want := image.Rect(20, 0, 40, 40); f.clip != want {
		t.Errorf("clip = %v, want %v", f.clip, want)
	}
}

func TestDrawStringNilFontPanics(t *testing.T) {
	r, _ := newTarget(ModePlain, 8, 8)
	defer func() {
		if recover() == nil {
			t.Error("DrawString with a nil font did not panic")
		}
	}()
	r.DrawString(DefaultStyle(), nil, "x", image.Rect(0, 0, 8, 8), text.AlignLeft, text.AlignTop, 0, false, image.Rectangle{})
}
