// Package pll implements a software model of the fixed-point digital
// phase-locked loop used for grid-frequency tracking on the FPGA target.
// It reproduces the numeric behavior of the HDL design exactly: Q2.30
// arithmetic with saturation, a 1024-entry table oscillator, a simplified
// single-multiply phase detector driving a PI controller, and a phase
// accumulator counting turns. The step path is integer-only so state
// trajectories can be compared against hardware captures bit for bit.
package pll

import (
	"example.com/grid-pll/base/fixp"
	"example.com/grid-pll/core/nco"
)

const (
	// DefaultSampleRate is the sample rate of the reference system, in Hz.
	DefaultSampleRate = 40000

	// DefaultNominalFreq is the baseline output frequency of the reference
	// system, in Hz.
	DefaultNominalFreq = 50

	// FreqFracBits is the number of fractional bits of frequency values
	// (OutFreq, DeltaFreq), which are in Hz.
	FreqFracBits = 25

	// DefaultKp and DefaultKi are the reference loop gains, 0.5 and 0.00125
	// in Q2.30.
	DefaultKp = 0x20000000
	DefaultKi = 0x00147AE1
)

// Config carries the design constants of a tracker instance. The reference
// hardware fixes both at synthesis time; here they are per-instance so the
// loop can be exercised at other rates.
type Config struct {
	SampleRate  int32 // samples per second
	NominalFreq int32 // Hz, baseline output frequency
}

// WithDefaults returns c with zero fields replaced by the reference
// configuration (40 kHz sample rate, 50 Hz nominal).
func (c Config) WithDefaults() Config {
	if c.SampleRate == 0 {
		c.SampleRate = DefaultSampleRate
	}
	if c.NominalFreq == 0 {
		c.NominalFreq = DefaultNominalFreq
	}
	return c
}

// State is the complete per-tracker loop state. It is owned by the single
// goroutine driving the sample loop; Step mutates it in place exactly once
// per input sample.
type State struct {
	kp, ki int32 // PI gains, Q2.30

	theta      uint32 // phase accumulator, turns, Q30, always in [0, 1<<30)
	integrator int32  // PI integrator, Q2.30, saturating

	sin, cos int32 // oscillator outputs for theta, Q2.30, derived per step

	outFreq   int32 // output frequency estimate, Hz, Q25
	deltaFreq int32 // PI correction term, Hz, Q25

	nominal int32 // baseline frequency, Hz, Q25
	recip   int64 // reciprocal of the sample rate, see increment.go
}

// Init resets st to its initial tracking state: phase and integrator zero,
// frequency at the nominal baseline. Gains are Q2.30. A nil st is a no-op.
func (st *State) Init(cfg Config, kp, ki int32) {
	if st == nil {
		return
	}
	cfg = cfg.WithDefaults()
	// The sample rate floor keeps the 64-bit reciprocal product from
	// overflowing even for a saturated frequency estimate; see increment.go.
	if cfg.SampleRate < 1<<15 {
		panic("invalid sample rate")
	}
	if cfg.NominalFreq <= 0 || cfg.NominalFreq >= 1<<(31-FreqFracBits) {
		panic("invalid nominal frequency")
	}
	*st = State{
		kp:      kp,
		ki:      ki,
		nominal: cfg.NominalFreq << FreqFracBits,
		recip:   recipQ47(cfg.SampleRate),
	}
	st.outFreq = st.nominal
}

// Step advances the loop by one input sample x, a Q6.22 value. It is the
// only mutator of st after Init. The step path has no failure modes: every
// arithmetic bound is closed by saturation.
func (st *State) Step(x int32) {
	st.sin, st.cos = nco.SinCos(st.theta)

	x30 := x << 8 // Q6.22 -> Q2.30, lossless widening

	// Simplified phase detector: a single multiply against the in-phase
	// oscillator output, not an SRF/Park chain. Steady state settles at
	// quadrature with a double-frequency ripple; callers must not assume
	// zero instantaneous error.
	qerr := -fixp.MulQ30(x30, st.sin)

	p := fixp.MulQ30(st.kp, qerr)
	st.integrator = fixp.Sat32(int64(st.integrator) + int64(fixp.MulQ30(st.ki, qerr)))
	u := fixp.Sat32(int64(p) + int64(st.integrator))

	// Q2.30 -> Q25 Hz: exact bit shift, truncating.
	st.deltaFreq = fixp.Sat32(int64(u) >> 5)
	st.outFreq = fixp.Sat32(int64(st.nominal) + int64(st.deltaFreq))

	st.theta = (st.theta + uint32(phaseIncrement(st.outFreq, st.recip))) & nco.PhaseMask
}

// Theta returns the oscillator phase in turns, Q30.
func (st *State) Theta() uint32 { return st.theta }

// SinCos returns the quadrature outputs computed from theta during the most
// recent Step, in Q2.30.
func (st *State) SinCos() (sin, cos int32) { return st.sin, st.cos }

// OutFreq returns the frequency estimate in Hz, Q25.
func (st *State) OutFreq() int32 { return st.outFreq }

// DeltaFreq returns the PI correction term in Hz, Q25.
func (st *State) DeltaFreq() int32 { return st.deltaFreq }

// Integrator returns the PI integrator value, Q2.30.
func (st *State) Integrator() int32 { return st.integrator }
