package nco_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"example.com/grid-pll/core/nco"
)

func TestTableBoundaries(t *testing.T) {
	assert.Equal(t, int32(0), nco.Sine[0])
	assert.Equal(t, int32(1<<30), nco.Sine[256])
	assert.Equal(t, int32(0), nco.Sine[512])
	assert.Equal(t, int32(-1<<30), nco.Sine[768])
}

func TestSinCosQuarterTurns(t *testing.T) {
	tests := []struct {
		theta    uint32
		sin, cos int32
	}{
		{0, nco.Sine[0], nco.Sine[256]},
		{1 << 28, nco.Sine[256], nco.Sine[512]},
		{1 << 29, nco.Sine[512], nco.Sine[768]},
		{3 << 28, nco.Sine[768], nco.Sine[0]},
	}

	for _, tt := range tests {
		sin, cos := nco.SinCos(tt.theta)
		assert.Equal(t, tt.sin, sin, "sin for theta %#x", tt.theta)
		assert.Equal(t, tt.cos, cos, "cos for theta %#x", tt.theta)
	}
}

func TestQuadratureOffset(t *testing.T) {
	for i := 0; i < nco.TableSize; i++ {
		_, cos := nco.SinCos(uint32(i) << 20)
		assert.Equal(t, nco.Sine[(i+256)%nco.TableSize], cos, "cos at index %d", i)
	}
}

func TestIndexTruncation(t *testing.T) {
	// Phase bits below the table index must not affect the outputs.
	sin0, cos0 := nco.SinCos(5 << 20)
	sin1, cos1 := nco.SinCos(5<<20 + (1<<20 - 1))
	assert.Equal(t, sin0, sin1)
	assert.Equal(t, cos0, cos1)
}
