package pll

import "example.com/grid-pll/core/nco"

// Frequency-to-phase-increment conversion. The per-sample increment is
// f/Fs in turns, Q30, computed without a runtime division by multiplying
// with a precomputed reciprocal of the sample rate.
//
// Scaling: recip = round(2^47/Fs), so f_q25 * recip = f * 2^72 / Fs;
// dropping 42 bits leaves f/Fs in Q30. With |f_q25| < 2^31 and
// Fs >= 2^15 the product stays below 2^63.

const (
	recipBits = 47
	incShift  = recipBits + FreqFracBits - nco.PhaseBits
)

func recipQ47(sampleRate int32) int64 {
	return (1<<recipBits + int64(sampleRate)/2) / int64(sampleRate)
}

// phaseIncrement converts a frequency estimate (Hz, Q25) into a per-sample
// phase increment (turns, Q30) by reciprocal multiplication.
func phaseIncrement(outFreq int32, recip int64) int32 {
	return int32((int64(outFreq) * recip) >> incShift)
}

// phaseIncrementDiv is the direct-division reference for phaseIncrement.
// The two must agree within one unit in the last place over the tracking
// range; only the reciprocal path runs per sample.
func phaseIncrementDiv(outFreq, sampleRate int32) int32 {
	return int32((int64(outFreq) << (nco.PhaseBits - FreqFracBits)) / int64(sampleRate))
}
