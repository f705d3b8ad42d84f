// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the packed-pixel buffer the vector renderer
// draws into.
//
// A Surface is parameterized on its pixel storage type and carries the
// pixfmt.Format that gives meaning to the bits. It is a plain value: the
// renderer references one active surface at a time but never owns it.
//
// # Usage
//
//	s := surface.New(320, 200, pixfmt.RGB565)
//	s.Fill(s.Rect(), pixfmt.RGB565.Pack(0x20, 0x20, 0x40))
//	if err := s.SavePNG("out.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// Surfaces also implement draw.Image, so anything that draws through the
// standard image interfaces (fonts, image/draw) can target them directly.
package surface
