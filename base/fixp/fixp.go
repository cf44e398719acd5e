// Package fixp provides the saturating fixed-point primitives used by the
// PLL core. All overflow is closed by clamping at the int32 bounds, matching
// the saturating arithmetic of the HDL reference design.
package fixp

import "math"

// Sat32 clamps a 64-bit intermediate sum to the signed 32-bit range.
func Sat32(x int64) int32 {
	if x > math.MaxInt32 {
		return math.MaxInt32
	}
	if x < math.MinInt32 {
		return math.MinInt32
	}
	return int32(x)
}

// MulQ30 multiplies two Q2.30 values into a saturated Q2.30 result. The
// Q4.60 product is narrowed with an arithmetic shift, which truncates toward
// negative infinity; the fixed-point multiplier in the HDL truncates the
// same way, so no rounding may be added here.
func MulQ30(a, b int32) int32 {
	p := int64(a) * int64(b)
	return Sat32(p >> 30)
}
