package scratch_test

import (
	"testing"

	"example.com/grid-pll/driver/scratch"
)

func TestCheck(t *testing.T) {
	b := new(scratch.Buffer)
	if err := b.Check(); err != nil {
		t.Errorf("Check() = %v, want nil", err)
	}
}

func TestLoadStore(t *testing.T) {
	b := new(scratch.Buffer)
	b.Store(0, 0xA5A50000)
	b.Store(scratch.Words-1, 0xDEADBEEF)
	if got := b.Load(0); got != 0xA5A50000 {
		t.Errorf("Load(0) = %#x, want 0xA5A50000", got)
	}
	if got := b.Load(scratch.Words - 1); got != 0xDEADBEEF {
		t.Errorf("Load(%v) = %#x, want 0xDEADBEEF", scratch.Words-1, got)
	}
}
