package pll

import "testing"

func TestPhaseIncrementNominal(t *testing.T) {
	// 50 Hz / 40 kHz = 0.00125 turns per sample, 1342177 in Q30.
	got := phaseIncrement(DefaultNominalFreq<<FreqFracBits, recipQ47(DefaultSampleRate))
	if got != 1342177 {
		t.Errorf("phaseIncrement(50 Hz) = %v, want 1342177", got)
	}
}

func TestPhaseIncrementAgreement(t *testing.T) {
	// Over the tracking range the reciprocal-multiply path must agree with
	// a direct 64-bit division within one unit in the last place.
	const fs = DefaultSampleRate
	recip := recipQ47(fs)
	lo := int32(45) << FreqFracBits
	hi := int32(55) << FreqFracBits
	for f := lo; f <= hi; f += 997 {
		a := phaseIncrement(f, recip)
		b := phaseIncrementDiv(f, fs)
		if d := a - b; d < -1 || d > 1 {
			t.Fatalf("phase increment mismatch at f=%#x: reciprocal %v, division %v", f, a, b)
		}
	}
}

func TestPhaseIncrementAgreementOtherRates(t *testing.T) {
	for _, fs := range []int32{1 << 15, 40000, 44100, 48000, 96000} {
		recip := recipQ47(fs)
		for _, f := range []int32{
			45 << FreqFracBits,
			DefaultNominalFreq << FreqFracBits,
			55 << FreqFracBits,
			63 << FreqFracBits,
		} {
			a := phaseIncrement(f, recip)
			b := phaseIncrementDiv(f, fs)
			if d := a - b; d < -1 || d > 1 {
				t.Errorf("phase increment mismatch at f=%#x fs=%v: reciprocal %v, division %v", f, fs, a, b)
			}
		}
	}
}
