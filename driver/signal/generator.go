// Package signal provides the synthetic waveform source that stands in for
// the ADC when exercising the tracking loop.
package signal

import (
	"example.com/grid-pll/core/nco"
	"example.com/grid-pll/driver/scratch"
)

// Generator produces Q6.22 samples of a sine wave at a fixed frequency by
// sweeping a 32-bit phase accumulator over a staged copy of the oscillator
// table. The top 10 bits of the accumulator select the staged word, so the
// source carries the same table quantization as the hardware stimulus.
type Generator struct {
	buf   *scratch.Buffer
	phase uint32
	step  uint32
}

// NewGenerator stages the sine table into buf as Q6.22 and returns a
// generator producing freq Hz at sampleRate samples per second.
func NewGenerator(buf *scratch.Buffer, freq, sampleRate uint32) *Generator {
	if sampleRate == 0 || freq >= sampleRate/2 {
		panic("invalid generator frequency")
	}
	for i := 0; i < nco.TableSize; i++ {
		buf.Store(i, uint32(nco.Sine[i]>>8)) // Q2.30 -> Q6.22
	}
	return &Generator{
		buf:  buf,
		step: uint32((uint64(freq) << 32) / uint64(sampleRate)),
	}
}

// Step returns the phase accumulator increment per sample.
func (g *Generator) Step() uint32 { return g.step }

// Next returns the next input sample and advances the source by one tick.
func (g *Generator) Next() int32 {
	x := int32(g.buf.Load(int(g.phase >> 22)))
	g.phase += g.step
	return x
}
