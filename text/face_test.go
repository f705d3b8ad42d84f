package text

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inked(img *image.RGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestDefaultMetrics(t *testing.T) {
	f := Default()
	assert.Equal(t, 14, f.Width("Hi"))
	assert.Equal(t, 13, f.Height())
}

func TestTruncate(t *testing.T) {
	f := Default()
	assert.Equal(t, "Hello", f.Truncate("Hello", 100))
	assert.Equal(t, "He...", f.Truncate("Hello world", 35))
	assert.Equal(t, "", f.Truncate("Hello", 10))
	assert.LessOrEqual(t, f.Width(f.Truncate("Load saved game", 60)), 60)
}

func TestDrawStringAlignment(t *testing.T) {
	f := Default()
	area := image.Rect(0, 0, 100, 40)

	left := image.NewRGBA(area)
	f.DrawString(left, "Hi", area, color.White, AlignLeft, AlignTop, 0, false, area)
	right := image.NewRGBA(area)
	f.DrawString(right, "Hi", area, color.White, AlignRight, AlignBottom, 0, false, area)

	l, r := inked(left), inked(right)
	require.False(t, l.Empty(), "left-aligned text drew nothing")
	require.False(t, r.Empty(), "right-aligned text drew nothing")
	assert.Less(t, l.Max.X, 50)
	assert.Less(t, l.Max.Y, 20)
	assert.Greater(t, r.Min.X, 50)
	assert.Greater(t, r.Min.Y, 20)
}

func TestDrawStringDeltaX(t *testing.T) {
	f := Default()
	area := image.Rect(0, 0, 100, 20)
	a := image.NewRGBA(area)
	f.DrawString(a, "Hi", area, color.White, AlignLeft, AlignTop, 0, false, area)
	b := image.NewRGBA(area)
	f.DrawString(b, "Hi", area, color.White, AlignLeft, AlignTop, 10, false, area)
	assert.Equal(t, inked(a).Min.X+10, inked(b).Min.X)
}

func TestDrawStringClip(t *testing.T) {
	f := Default()
	area := image.Rect(0, 0, 100, 20)
	clip := image.Rect(0, 0, 10, 20)
	img := image.NewRGBA(area)
	f.DrawString(img, "Hello world", area, color.White, AlignLeft, AlignTop, 0, false, clip)
	ink := inked(img)
	require.False(t, ink.Empty())
	assert.True(t, ink.In(clip), "ink %v escapes clip %v", ink, clip)
}

func TestDrawStringEllipsis(t *testing.T) {
	f := Default()
	area := image.Rect(0, 0, 35, 20)
	canvas := image.Rect(0, 0, 200, 20)
	img := image.NewRGBA(canvas)
	f.DrawString(img, "Hello world", area, color.White, AlignLeft, AlignTop, 0, true, canvas)
	assert.LessOrEqual(t, inked(img).Max.X, 35)
}

func TestNewGoRegular(t *testing.T) {
	f, err := NewGoRegular(14)
	require.NoError(t, err)
	defer func() { assert.NoError(t, f.Close()) }()

	assert.Greater(t, f.Height(), 10)
	assert.Greater(t, f.Width("Hello"), f.Width("Hi"))

	area := image.Rect(0, 0, 80, 24)
	img := image.NewRGBA(area)
	f.DrawString(img, "Café", area, color.White, AlignCenter, AlignMiddle, 0, false, area)
	assert.False(t, inked(img).Empty())
}
