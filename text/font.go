package text

import (
	"image"
	"image/color"
	"image/draw"
)

// HAlign is the horizontal placement of a string inside its area.
type HAlign uint8

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical placement of a string inside its area.
type VAlign uint8

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Font draws strings into an image.
type Font interface {
	// DrawString draws s in color c, aligned inside area and shifted
	// right by deltaX pixels. With ellipsis set, a string wider than area
	// is truncated and ends in "...". No pixel outside clip is touched.
	DrawString(dst draw.Image, s string, area image.Rectangle, c color.Color, alignH HAlign, alignV VAlign, deltaX int, ellipsis bool, clip image.Rectangle)
}

// clipped restricts a draw.Image to a rectangle.
type clipped struct {
	draw.Image
	clip image.Rectangle
}

func (c clipped) Bounds() image.Rectangle {
	return c.Image.Bounds().Intersect(c.clip)
}

func (c clipped) Set(x, y int, col color.Color) {
	if image.Pt(x, y).In(c.clip) {
		c.Image.Set(x, y, col)
	}
}
