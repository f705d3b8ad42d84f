// Package blend provides integer alpha blending math for packed pixels.
//
// The div255 family of functions avoid integer division by using
// bit shifts and addition. They sit on the hot path of every blended
// pixel write, so nothing here touches floating point.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// Div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula, which gives exact results for all
// products of two bytes (0..65025).
func Div255(x uint32) uint32 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// Lerp mixes channel dst towards src by alpha/255.
//
// Lerp(d, s, 0) == d and Lerp(d, s, 255) == s for every d and s.
func Lerp(dst, src, alpha uint8) uint8 {
	return uint8(Div255(uint32(src)*uint32(alpha) + uint32(dst)*uint32(255-alpha)))
}

// Scale multiplies alpha by a 16.16 fixed-point factor and clamps the
// result to the byte range.
func Scale(alpha uint8, factor uint32) uint8 {
	v := (uint64(alpha) * uint64(factor)) >> 16
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Luma returns the integer luminance of an RGB triple using the
// Rec. 601 weights scaled to 1/256.
func Luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*77 + uint32(g)*150 + uint32(b)*29) >> 8)
}
