// Package text draws strings into vector renderer surfaces.
//
// The renderer does no text layout of its own: it forwards every string
// to a Font, which positions and rasterizes the glyphs inside a target
// area. Face is the stock Font, backed by any golang.org/x/image/font.Face:
//
//   - Default: the fixed 7x13 bitmap face from x/image/font/basicfont
//   - NewGoRegular: the Go Regular TrueType font at a given size
//
// # Example usage
//
//	face, err := text.NewGoRegular(14)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
//	r.DrawString(style, face, "Load game", area,
//	    text.AlignCenter, text.AlignMiddle, 0, true, area)
//
// Strings are normalized to NFC before drawing so precomposed glyphs are
// used where the font has them.
package text
