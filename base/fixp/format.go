package fixp

import "fmt"

// FormatQ renders a signed fixed-point value with fracBits fractional bits
// as a decimal string with six fractional digits. Integer-only, so it is
// usable from code paths that must stay free of floating point.
func FormatQ(x int32, fracBits uint) string {
	v := int64(x)
	neg := v < 0
	if neg {
		v = -v
	}
	ip := v >> fracBits
	fp := uint64(v) & (1<<fracBits - 1)
	frac6 := (fp * 1000000) >> fracBits
	if neg {
		return fmt.Sprintf("-%d.%06d", ip, frac6)
	}
	return fmt.Sprintf("%d.%06d", ip, frac6)
}
