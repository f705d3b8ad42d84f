package pixfmt

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func truncate(v uint8, bits int) uint8 {
	return v &^ (0xFF >> bits)
}

func testRoundTrip[P Pixel](t *testing.T, f *Format[P]) {
	t.Helper()
	rb, gb, bb := f.Bits()
	for r := 0; r < 256; r += 3 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 7 {
				gr, gg, gbv := f.Unpack(f.Pack(uint8(r), uint8(g), uint8(b)))
				require.Equal(t, truncate(uint8(r), rb), gr, "%s red of (%d,%d,%d)", f, r, g, b)
				require.Equal(t, truncate(uint8(g), gb), gg, "%s green of (%d,%d,%d)", f, r, g, b)
				require.Equal(t, truncate(uint8(b), bb), gbv, "%s blue of (%d,%d,%d)", f, r, g, b)
			}
		}
	}
}

// TestRoundTrip checks Unpack(Pack(c)) reproduces c truncated to the
// channel depth for every standard format.
func TestRoundTrip(t *testing.T) {
	t.Run("RGB565", func(t *testing.T) { testRoundTrip(t, RGB565) })
	t.Run("RGB555", func(t *testing.T) { testRoundTrip(t, RGB555) })
	t.Run("ARGB1555", func(t *testing.T) { testRoundTrip(t, ARGB1555) })
	t.Run("XRGB8888", func(t *testing.T) { testRoundTrip(t, XRGB8888) })
	t.Run("ARGB8888", func(t *testing.T) { testRoundTrip(t, ARGB8888) })
	t.Run("RGBA8888", func(t *testing.T) { testRoundTrip(t, RGBA8888) })
	t.Run("ABGR8888", func(t *testing.T) { testRoundTrip(t, ABGR8888) })
}

func TestPackLayout(t *testing.T) {
	assert.Equal(t, uint16(0xF800), RGB565.Pack(0xFF, 0, 0))
	assert.Equal(t, uint16(0x07E0), RGB565.Pack(0, 0xFF, 0))
	assert.Equal(t, uint16(0x001F), RGB565.Pack(0, 0, 0xFF))
	assert.Equal(t, uint16(0x8000), ARGB1555.Pack(0, 0, 0))
	assert.Equal(t, uint32(0xFF112233), ARGB8888.Pack(0x11, 0x22, 0x33))
	assert.Equal(t, uint32(0x00112233), XRGB8888.Pack(0x11, 0x22, 0x33))
	assert.Equal(t, uint32(0x112233FF), RGBA8888.Pack(0x11, 0x22, 0x33))
	assert.Equal(t, uint32(0xFF332211), ABGR8888.Pack(0x11, 0x22, 0x33))
}

func TestFormatInfo(t *testing.T) {
	assert.Equal(t, 2, RGB565.BytesPerPixel())
	assert.Equal(t, 4, ARGB8888.BytesPerPixel())
	assert.False(t, RGB565.HasAlpha())
	assert.True(t, ARGB8888.HasAlpha())
	assert.Equal(t, "RGB565", RGB565.String())

	r, g, b := RGB565.Bits()
	assert.Equal(t, []int{5, 6, 5}, []int{r, g, b})
}

// TestBlendBoundaries verifies alpha 0 is a no-op and alpha 255 is a plain
// overwrite.
func TestBlendBoundaries(t *testing.T) {
	dst := ARGB8888.Pack(10, 20, 30)
	src := ARGB8888.Pack(200, 100, 50)

	assert.Equal(t, dst, ARGB8888.Blend(dst, src, 0))
	assert.Equal(t, src, ARGB8888.Blend(dst, src, 255))

	d16 := RGB565.Pack(10, 20, 30)
	s16 := RGB565.Pack(200, 100, 50)
	assert.Equal(t, d16, RGB565.Blend(d16, s16, 0))
	assert.Equal(t, s16, RGB565.Blend(d16, s16, 255))
}

func TestBlendMidpoint(t *testing.T) {
	got := ARGB8888.Blend(ARGB8888.Pack(0, 0, 0), ARGB8888.Pack(255, 255, 255), 128)
	r, g, b := ARGB8888.Unpack(got)
	assert.InDelta(t, 128, int(r), 1)
	assert.InDelta(t, 128, int(g), 1)
	assert.InDelta(t, 128, int(b), 1)
}

func TestColorConvert(t *testing.T) {
	p := RGB565.Convert(color.RGBA{R: 0xFF, G: 0x80, B: 0x00, A: 0xFF})
	assert.Equal(t, color.NRGBA{R: 0xF8, G: 0x80, B: 0x00, A: 0xFF}, RGB565.Color(p))

	// Alpha is dropped after un-premultiplying.
	q := ARGB8888.Convert(color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0x80})
	r, _, _ := ARGB8888.Unpack(q)
	assert.InDelta(t, 0x7F, int(r), 1)
}
