package adder

import (
	"context"
	"testing"

	"github.com/agbru/bitadd/internal/bitvec"
)

// FuzzParallelConsistency verifies that the fork-join adder produces results
// consistent with the sequential ripple-carry reference for arbitrary operand
// bytes and barrier values. This helps catch split/merge edge cases that unit
// tests might miss.
func FuzzParallelConsistency(f *testing.F) {
	// Seed corpus with boundary shapes
	f.Add([]byte{}, uint8(0))
	f.Add([]byte{0x00}, uint8(0))
	f.Add([]byte{0xff}, uint8(1))
	f.Add([]byte{0xff, 0xff, 0x01}, uint8(3))
	f.Add([]byte{0xaa, 0x55, 0xaa, 0x55}, uint8(2))
	f.Add([]byte{0x80, 0x00, 0x00, 0x01}, uint8(63))

	f.Fuzz(func(t *testing.T, data []byte, barrier uint8) {
		// Limit width to keep iterations fast
		if len(data) > 512 {
			data = data[:512]
		}

		// Derive two equal-width operands from the fuzz bytes: operand one
		// from the low nibbles, operand two from the high nibbles.
		width := len(data) * 4
		b1 := make(bitvec.Vector, width)
		b2 := make(bitvec.Vector, width)
		for i, b := range data {
			for j := 0; j < 4; j++ {
				b1[i*4+j] = b>>uint(j)&1 == 1
				b2[i*4+j] = b>>uint(4+j)&1 == 1
			}
		}

		seq, err := AddSequential(b1, b2)
		if err != nil {
			t.Fatalf("AddSequential failed for width %d: %v", width, err)
		}

		par, err := AddParallel(context.Background(), b1, b2, int(barrier))
		if err != nil {
			t.Fatalf("AddParallel failed for width %d barrier %d: %v", width, barrier, err)
		}

		if par.Carry != seq.Carry {
			t.Errorf("inconsistent carry for width %d barrier %d: parallel=%v sequential=%v",
				width, barrier, par.Carry, seq.Carry)
		}
		if par.Sum.String() != seq.Sum.String() {
			t.Errorf("inconsistent sum for width %d barrier %d:\n  parallel:   %s\n  sequential: %s",
				width, barrier, par.Sum, seq.Sum)
		}
	})
}
