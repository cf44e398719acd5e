// Package probe models the scope probe line the hardware harness raises
// around a measured region.
package probe

import "go.uber.org/zap"

// A Probe marks the start and end of a measured region.
type Probe interface {
	Hi()
	Lo()
}

// Nop discards probe transitions.
type Nop struct{}

func (Nop) Hi() {}
func (Nop) Lo() {}

// Log records probe transitions in the log so benchmark windows can be
// correlated with external observations.
type Log struct {
	Log *zap.Logger
}

func (p Log) Hi() { p.Log.Info("probe high") }
func (p Log) Lo() { p.Log.Info("probe low") }
