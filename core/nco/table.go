package nco

import "math"

const (
	// TableSize is the number of entries covering one full turn.
	TableSize = 1024

	tableMask   = TableSize - 1
	quarterTurn = TableSize / 4
)

// Sine holds one full turn of sin(2*pi*i/TableSize) in Q2.30. It reproduces
// the table asset consumed by the HDL design, including its quantization
// error; entries must not be interpolated or refined.
var Sine [TableSize]int32

func init() {
	for i := range Sine {
		Sine[i] = int32(math.Round(math.Sin(2*math.Pi*float64(i)/TableSize) * (1 << 30)))
	}
}
