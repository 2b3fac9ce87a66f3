package adder

import (
	"testing"

	"github.com/agbru/bitadd/internal/bitvec"
)

func TestPropagateIdentityWithoutCarry(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "0", "1", "1010", "1111", "0000"} {
		v := mustParse(t, s)
		original := v.Clone()

		if overflow := propagate(v, false); overflow {
			t.Errorf("propagate(%q, false) overflowed", s)
		}
		if got := v.String(); got != original.String() {
			t.Errorf("propagate(%q, false) mutated vector to %q", s, got)
		}
	}
}

func TestPropagateOverflowAllOnes(t *testing.T) {
	t.Parallel()
	for _, width := range []int{1, 2, 7, 64, 1024} {
		v := make(bitvec.Vector, width)
		for i := range v {
			v[i] = true
		}

		overflow := propagate(v, true)
		if !overflow {
			t.Errorf("width %d: all-ones plus carry should overflow", width)
		}
		for i, bit := range v {
			if bit {
				t.Fatalf("width %d: bit %d should be zero after rollover", width, i)
			}
		}
	}
}

func TestPropagatePartialRipple(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string // MSB-first
		want string
	}{
		{"absorbed at index 0", "1010", "1011"},
		{"ripples through one 1", "1001", "1010"},
		{"ripples through run of 1s", "10111", "11000"},
		{"absorbed below high 1s", "1100", "1101"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := mustParse(t, tt.in)

			if overflow := propagate(v, true); overflow {
				t.Fatalf("propagate(%q, true) should not overflow", tt.in)
			}
			if got := v.String(); got != tt.want {
				t.Errorf("propagate(%q, true) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPropagateEmptyVectorOverflows(t *testing.T) {
	t.Parallel()
	// A zero-width vector has no position to absorb the carry.
	if !propagate(bitvec.Vector{}, true) {
		t.Error("carry into an empty vector should overflow")
	}
}
