// Package nco implements the table-lookup oscillator of the PLL: it maps a
// phase accumulator value to quadrature Q2.30 sine/cosine samples.
package nco

const (
	// PhaseBits is the number of fractional bits of a phase value. Phase is
	// measured in turns (1.0 = 360 degrees), so valid phases lie in
	// [0, 1<<PhaseBits).
	PhaseBits = 30

	// PhaseMask wraps a phase accumulator back into [0, 1<<PhaseBits).
	PhaseMask = 1<<PhaseBits - 1

	indexShift = PhaseBits - 10 // top 10 bits of the phase select a table entry
)

// SinCos returns the oscillator outputs for theta, a phase in turns with
// PhaseBits fractional bits. The cosine reads the same table a quarter turn
// ahead, using cos(x) = sin(x + 90 degrees).
func SinCos(theta uint32) (sin, cos int32) {
	idx := (theta >> indexShift) & tableMask
	return Sine[idx], Sine[(idx+quarterTurn)&tableMask]
}
