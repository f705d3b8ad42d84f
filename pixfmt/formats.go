package pixfmt

// Standard 16-bit formats.
var (
	// RGB565 is the common 16-bit format: 5 bits red, 6 green, 5 blue.
	RGB565 = NewFormat[uint16]("RGB565", 2, 3, 2, 3, 8, 11, 5, 0, 0)

	// RGB555 stores 5 bits per channel with the top bit unused.
	RGB555 = NewFormat[uint16]("RGB555", 2, 3, 3, 3, 8, 10, 5, 0, 0)

	// ARGB1555 stores 5 bits per channel and a 1-bit alpha in the top bit.
	ARGB1555 = NewFormat[uint16]("ARGB1555", 2, 3, 3, 3, 7, 10, 5, 0, 15)
)

// Standard 32-bit formats.
var (
	// XRGB8888 stores 8 bits per channel with the top byte unused.
	XRGB8888 = NewFormat[uint32]("XRGB8888", 4, 0, 0, 0, 8, 16, 8, 0, 0)

	// ARGB8888 stores 8 bits per channel with alpha in the top byte.
	ARGB8888 = NewFormat[uint32]("ARGB8888", 4, 0, 0, 0, 0, 16, 8, 0, 24)

	// RGBA8888 stores 8 bits per channel with alpha in the low byte.
	RGBA8888 = NewFormat[uint32]("RGBA8888", 4, 0, 0, 0, 0, 24, 16, 8, 0)

	// ABGR8888 stores red in the low byte. On little-endian machines its
	// memory layout matches image.RGBA.
	ABGR8888 = NewFormat[uint32]("ABGR8888", 4, 0, 0, 0, 0, 0, 8, 16, 24)
)
