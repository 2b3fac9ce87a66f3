// Package adder implements fixed-width binary addition over LSB-first bit
// vectors: a sequential ripple-carry adder and a recursive fork-join adder
// that splits the operands at the midpoint, adds the halves concurrently and
// splices the low half's carry into the high half on merge.
//
// Both adders produce the same Result for the same operands; the recursion
// barrier of the parallel adder is a pure tuning parameter and never changes
// the outcome.
package adder

import (
	apperrors "github.com/agbru/bitadd/internal/errors"
	"github.com/agbru/bitadd/internal/bitvec"
)

// Result is the outcome of adding two equal-width bit vectors: the sum at the
// operand width and a carry flag signaling that the true sum reached 2^width.
type Result struct {
	// Carry reports arithmetic overflow beyond the operand width.
	Carry bool
	// Sum holds the sum truncated to the operand width, LSB first.
	Sum bitvec.Vector
}

// checkOperands validates the shared adder contract: both operands must have
// the same width. Zero-width operands are trivially valid.
func checkOperands(b1, b2 bitvec.Vector) error {
	if len(b1) != len(b2) {
		return apperrors.LengthMismatchError{LeftLen: len(b1), RightLen: len(b2)}
	}
	return nil
}
