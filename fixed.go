package vrender

// Fixed is an unsigned 16.16 fixed-point scalar.
type Fixed uint32

// FixedOne is 1.0 in 16.16 fixed point.
const FixedOne Fixed = 1 << 16

// FixedFromFloat converts f to 16.16, clamping negatives to zero.
func FixedFromFloat(f float64) Fixed {
	if f <= 0 {
		return 0
	}
	return Fixed(f*float64(FixedOne) + 0.5)
}

// Float returns the value as a float64.
func (f Fixed) Float() float64 {
	return float64(f) / float64(FixedOne)
}

// Mul scales the integer v by f, rounding toward negative infinity.
func (f Fixed) Mul(v int) int {
	return int((int64(v) * int64(f)) >> 16)
}
