// Package track drives the per-sample tracking loop: it feeds input samples
// from a source into the PLL and exposes the resulting state for diagnosis.
package track

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"example.com/grid-pll/base/fixp"
	"example.com/grid-pll/base/metrics"
	"example.com/grid-pll/core/nco"
	"example.com/grid-pll/core/pll"
)

const defaultLogEvery = 40000

// A Source yields one Q6.22 input sample per tick.
type Source interface {
	Next() int32
}

// Config selects the loop constants and gains for a tracking run.
type Config struct {
	PLL    pll.Config
	Kp, Ki int32 // Q2.30; zero selects the reference gains

	// Steps is the number of samples to process; 0 runs until the process
	// is stopped.
	Steps int

	// LogEvery is the sample interval between diagnostic log lines.
	LogEvery int
}

var (
	freqGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: metrics.TrackFreqN,
		Help: metrics.TrackFreqH,
	})
	deltaFreqGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: metrics.TrackDeltaFreqN,
		Help: metrics.TrackDeltaFreqH,
	})
	phaseGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: metrics.TrackPhaseN,
		Help: metrics.TrackPhaseH,
	})
	samplesCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: metrics.TrackSamplesN,
		Help: metrics.TrackSamplesH,
	})
)

// Run initializes a tracker and steps it over samples from src. It returns
// the final state for inspection; for Steps == 0 it only returns if src
// panics, mirroring a free-running deployment.
func Run(log *zap.Logger, cfg Config, src Source) *pll.State {
	if cfg.Kp == 0 {
		cfg.Kp = pll.DefaultKp
	}
	if cfg.Ki == 0 {
		cfg.Ki = pll.DefaultKi
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = defaultLogEvery
	}

	st := new(pll.State)
	st.Init(cfg.PLL, cfg.Kp, cfg.Ki)
	for n := 0; cfg.Steps == 0 || n < cfg.Steps; n++ {
		st.Step(src.Next())
		samplesCounter.Inc()
		freqGauge.Set(freqHz(st.OutFreq()))
		deltaFreqGauge.Set(freqHz(st.DeltaFreq()))
		phaseGauge.Set(float64(st.Theta()) / (1 << nco.PhaseBits))
		if (n+1)%cfg.LogEvery == 0 {
			sin, cos := st.SinCos()
			log.Info("tracking",
				zap.Int("samples", n+1),
				zap.String("freq", fixp.FormatQ(st.OutFreq(), pll.FreqFracBits)),
				zap.String("theta", fixp.FormatQ(int32(st.Theta()), nco.PhaseBits)),
				zap.String("sin", fixp.FormatQ(sin, 30)),
				zap.String("cos", fixp.FormatQ(cos, 30)),
			)
		}
	}
	return st
}

// freqHz converts a Q25 frequency for metric export. Diagnostics only; the
// loop itself stays in fixed point.
func freqHz(q int32) float64 {
	return float64(q) / (1 << pll.FreqFracBits)
}
