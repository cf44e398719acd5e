// Package benchmark measures the per-sample cost of the PLL step, standing
// in for the cycle-count harness of the hardware target.
package benchmark

import (
	"os"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"go.uber.org/zap"

	"example.com/grid-pll/base/fixp"
	"example.com/grid-pll/core/nco"
	"example.com/grid-pll/core/pll"
	"example.com/grid-pll/driver/probe"
	"example.com/grid-pll/driver/scratch"
	"example.com/grid-pll/driver/signal"
)

const (
	settleSamples = 20000 // 0.5 s of signal at the reference rate, excluded from measurement
	windowSamples = 1024
)

// RunStepBenchmark drives the loop with a synthetic input at the nominal
// frequency, then measures per-step latency over a window bracketed by the
// probe marker and prints the percentile distribution.
func RunStepBenchmark(log *zap.Logger, cfg pll.Config, kp, ki int32, pb probe.Probe) {
	cfg = cfg.WithDefaults()

	buf := new(scratch.Buffer)
	if err := buf.Check(); err != nil {
		log.Fatal("scratch buffer self-check failed", zap.Error(err))
	}
	gen := signal.NewGenerator(buf, uint32(cfg.NominalFreq), uint32(cfg.SampleRate))

	st := new(pll.State)
	st.Init(cfg, kp, ki)
	for i := 0; i < settleSamples; i++ {
		st.Step(gen.Next())
	}

	hg := hdrhistogram.New(1, 1_000_000, 5)
	pb.Hi()
	w0 := time.Now()
	for i := 0; i < windowSamples; i++ {
		x := gen.Next()
		t0 := time.Now()
		st.Step(x)
		if err := hg.RecordValue(time.Since(t0).Nanoseconds()); err != nil {
			log.Debug("failed to record histogram value", zap.Error(err))
		}
	}
	elapsed := time.Since(w0)
	pb.Lo()

	hg.PercentilesPrint(os.Stdout, 1, 1.0)
	log.Info("benchmark window",
		zap.Int("samples", windowSamples),
		zap.Duration("elapsed", elapsed),
		zap.Int64("ns_per_sample", elapsed.Nanoseconds()/windowSamples),
	)

	sin, cos := st.SinCos()
	log.Info("end state",
		zap.String("theta", fixp.FormatQ(int32(st.Theta()), nco.PhaseBits)),
		zap.String("sin", fixp.FormatQ(sin, 30)),
		zap.String("cos", fixp.FormatQ(cos, 30)),
		zap.String("freq", fixp.FormatQ(st.OutFreq(), pll.FreqFracBits)),
	)
}
