// Package scratch models the word-addressed staging memory the hardware
// harness uses to hold the synthetic input waveform.
package scratch

import "fmt"

// Words is the buffer capacity. It matches the oscillator table so one
// full-turn waveform can be staged.
const Words = 1024

// Buffer is a fixed-size array of 32-bit words. Indexing out of range is a
// programmer error and panics.
type Buffer struct {
	words [Words]uint32
}

func (b *Buffer) Load(i int) uint32 { return b.words[i] }

func (b *Buffer) Store(i int, v uint32) { b.words[i] = v }

// Check writes an address-derived pattern through the first words of the
// buffer and reads it back, reporting the first mismatch. The hardware
// harness runs the same sanity pass before staging the waveform.
func (b *Buffer) Check() error {
	const pattern = 0xA5A50000
	for i := 0; i < 16; i++ {
		b.words[i] = pattern + uint32(i)
	}
	for i := 0; i < 16; i++ {
		if v := b.words[i]; v != pattern+uint32(i) {
			return fmt.Errorf("scratch word %d: got %#08x, want %#08x", i, v, pattern+uint32(i))
		}
	}
	return nil
}
