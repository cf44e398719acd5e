// Driver for quick experiments

package main

import (
	"go.uber.org/zap"

	"example.com/grid-pll/base/fixp"
	"example.com/grid-pll/core/nco"
	"example.com/grid-pll/core/pll"
	"example.com/grid-pll/driver/scratch"
	"example.com/grid-pll/driver/signal"
)

func runX() {
	initLogger(true /* verbose */)

	cfg := pll.Config{}.WithDefaults()
	buf := new(scratch.Buffer)
	gen := signal.NewGenerator(buf, uint32(cfg.NominalFreq), uint32(cfg.SampleRate))

	st := new(pll.State)
	st.Init(cfg, pll.DefaultKp, pll.DefaultKi)
	for i := 0; i < 20000; i++ {
		st.Step(gen.Next())
	}

	sin, cos := st.SinCos()
	log.Debug("pll state",
		zap.String("freq", fixp.FormatQ(st.OutFreq(), pll.FreqFracBits)),
		zap.String("theta", fixp.FormatQ(int32(st.Theta()), nco.PhaseBits)),
		zap.String("sin", fixp.FormatQ(sin, 30)),
		zap.String("cos", fixp.FormatQ(cos, 30)),
	)
}
