package adder

import "github.com/agbru/bitadd/internal/bitvec"

// propagate adds a single incoming carry bit to v in place and reports whether
// the carry overflowed past the top position. v already holds a computed sum;
// this is the splice step that corrects a high half computed without knowledge
// of its low half's carry-out.
//
// With carryIn false this is a no-op. Otherwise bits are flipped from the
// least significant position upward: a bit that becomes 1 absorbs the carry
// and stops the scan, a bit that becomes 0 ripples it forward. An all-ones
// vector rolls over to all zeros and returns true.
//
// Expected O(1) for sums with roughly uniform low-order bits (the run of
// leading 1s is geometric with mean ~1); worst case O(len(v)).
func propagate(v bitvec.Vector, carryIn bool) bool {
	if !carryIn {
		return false
	}
	for i := range v {
		v[i] = !v[i]
		if v[i] {
			return false
		}
	}
	return true
}
