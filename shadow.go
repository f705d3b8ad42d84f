package vrender

import (
	"image"

	"github.com/gogpu/vrender/internal/blend"
)

// shadowAlpha is the opacity of the innermost shadow layer at
// ShadowIntensity FixedOne.
const shadowAlpha = 112

func rectOf(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// layerAlpha returns the opacity of shadow layer k of depth, counted from
// the outer edge. Linear shadows grow proportionally to k, exponential
// shadows with its square.
func layerAlpha(mode ShadowFillMode, k, depth int, peak uint8) uint8 {
	n, d := k+1, depth
	if mode == ShadowExponential {
		n, d = n*n, d*d
	}
	return uint8(int(peak) * n / d)
}

// castShadow blends a soft black shadow into bounds.
//
// silhouette(k, emit) must emit the rows of the shadow shape shrunk by k
// pixels. Layers are rasterized into an alpha mask, deeper layers
// overwriting shallower ones, so every pixel is blended exactly once with
// the opacity of the deepest layer that covers it.
func (c *canvas[P]) castShadow(bounds image.Rectangle, depth int, silhouette func(k int, emit func(y, x0, x1 int))) {
	area := bounds.Intersect(c.clip)
	if area.Empty() || depth <= 0 {
		return
	}
	w, h := area.Dx(), area.Dy()
	if cap(c.mask) < w*h {
		c.mask = make([]uint8, w*h)
	}
	mask := c.mask[:w*h]
	clear(mask)

	peak := blend.Scale(shadowAlpha, uint32(c.st.shadowIntensity))
	for k := 0; k < depth; k++ {
		a := layerAlpha(c.st.shadowFill, k, depth, peak)
		silhouette(k, func(y, x0, x1 int) {
			if y < area.Min.Y || y >= area.Max.Y {
				return
			}
			x0 = max(x0, area.Min.X)
			x1 = min(x1, area.Max.X-1)
			row := mask[(y-area.Min.Y)*w:]
			for x := x0; x <= x1; x++ {
				row[x-area.Min.X] = a
			}
		})
	}

	black := c.f.Pack(0, 0, 0)
	for y := 0; y < h; y++ {
		row := mask[y*w : (y+1)*w]
		base := (area.Min.Y+y)*c.pitch + area.Min.X
		for x, a := range row {
			if a != 0 {
				c.pix[base+x] = c.f.Blend(c.pix[base+x], black, a)
			}
		}
	}
}
