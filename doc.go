// Package vrender provides a pixel-format-generic 2D vector renderer for
// themed GUI widgets.
//
// # Overview
//
// vrender draws the primitives widget themes are made of (lines,
// circles, squares, rounded squares, triangles, beveled squares, tabs,
// crosses, bitmaps and strings) straight into a caller-owned pixel
// buffer. The renderer is generic over the pixel type, so the same code
// serves 16-bit and 32-bit screens; the channel layout comes from a
// pixfmt.Format.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/vrender"
//	    "github.com/gogpu/vrender/pixfmt"
//	    "github.com/gogpu/vrender/surface"
//	)
//
//	s := surface.New(320, 200, pixfmt.RGB565)
//	r := vrender.New(pixfmt.RGB565, vrender.ModeAntiAlias)
//	r.SetSurface(s)
//
//	st := vrender.DefaultStyle().
//	    WithFgColor(vrender.Black).
//	    WithGradient(vrender.RGB(0xd0, 0xd0, 0xf0), vrender.RGB(0x60, 0x60, 0xa0)).
//	    WithFillMode(vrender.FillGradient).
//	    WithShadowOffset(3)
//	r.DrawRoundedSquare(st, 10, 10, 6, 120, 32)
//
// # Styles
//
// Every primitive takes a Style: colors, fill mode, stroke width, shadow
// and bevel parameters and the clip rectangle. Styles are immutable values
// built with the With* methods; invalid values are ignored and reported
// through the package logger.
//
// # Steps
//
// Themes describe a widget as an ordered list of Steps. DrawStep resolves
// a step's placement against the widget area (auto sizes, alignment,
// padding, clip edges) and dispatches to the primitive.
//
// # Renderers
//
// Spec rasterizes with integer Bresenham lines and midpoint circles. AA
// replaces only the line and circle algorithms with coverage-based ones;
// every other primitive, including the outlines of crosses and triangles,
// picks them up through the shared rasterizer.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left pixel
//   - X increases right, Y increases down
//   - Widths and heights count pixels; line endpoints are inclusive
//
// A Renderer is not safe for concurrent use. Use one renderer per
// goroutine.
package vrender
