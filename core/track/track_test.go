package track_test

import (
	"testing"

	"go.uber.org/zap"

	"example.com/grid-pll/core/nco"
	"example.com/grid-pll/core/pll"
	"example.com/grid-pll/core/track"
	"example.com/grid-pll/driver/scratch"
	"example.com/grid-pll/driver/signal"
)

func TestRun(t *testing.T) {
	buf := new(scratch.Buffer)
	gen := signal.NewGenerator(buf, pll.DefaultNominalFreq, pll.DefaultSampleRate)

	st := track.Run(zap.NewNop(), track.Config{Steps: 800, LogEvery: 400}, gen)

	if st.Theta() > nco.PhaseMask {
		t.Errorf("theta out of range: %#x", st.Theta())
	}
	freq := float64(st.OutFreq()) / (1 << pll.FreqFracBits)
	if freq < 45 || freq > 55 {
		t.Errorf("frequency estimate %v Hz after 800 samples", freq)
	}
}

func TestRunDeterministic(t *testing.T) {
	run := func() *pll.State {
		buf := new(scratch.Buffer)
		gen := signal.NewGenerator(buf, pll.DefaultNominalFreq, pll.DefaultSampleRate)
		return track.Run(zap.NewNop(), track.Config{Steps: 1000, LogEvery: 1 << 20}, gen)
	}

	a, b := run(), run()
	if *a != *b {
		t.Error("tracking runs with identical input diverged")
	}
}
