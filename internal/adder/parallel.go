package adder

import (
	"context"
	"math"

	"github.com/agbru/bitadd/internal/bitvec"
	apperrors "github.com/agbru/bitadd/internal/errors"
	"github.com/agbru/bitadd/internal/parallel"
)

// AddParallel adds two equal-width bit vectors with a recursive fork-join
// strategy. While both operands are at least 2^barrier bits wide, each call
// splits them at the midpoint into a low half (less significant bits) and a
// high half, adds the two halves concurrently, then splices the low half's
// carry-out into the high half's sum. Below the barrier it delegates to the
// sequential ripple-carry path.
//
// The result is bit-for-bit identical to AddSequential for every valid
// barrier: the split is a pure re-association of the same addition. The task
// tree has depth log2(n) - barrier with O(1)-amortized merge work per node,
// so total work stays O(n) with parallel depth O(log n).
//
// Parameters:
//   - ctx: Cancellation context, checked before each split.
//   - b1: The first operand, LSB first.
//   - b2: The second operand, same width as b1.
//   - barrier: log2 of the minimum width at which splitting is attempted.
//     Negative values are rejected; a barrier too large for any representable
//     width simply forces the sequential path.
//
// Returns:
//   - Result: The sum at the operand width plus the final carry-out.
//   - error: A LengthMismatchError or InvalidBarrierError on contract
//     violation, or the context error if ctx was canceled mid-recursion.
func AddParallel(ctx context.Context, b1, b2 bitvec.Vector, barrier int) (Result, error) {
	if err := checkOperands(b1, b2); err != nil {
		return Result{}, err
	}
	if barrier < 0 {
		return Result{}, apperrors.InvalidBarrierError{Barrier: barrier}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	sum := bitvec.New(len(b1))
	carry, err := addParInto(ctx, sum, b1, b2, minSplitWidth(barrier))
	if err != nil {
		return Result{}, err
	}
	return Result{Carry: carry, Sum: sum}, nil
}

// minSplitWidth converts the barrier exponent into the minimum operand width
// eligible for splitting.
func minSplitWidth(barrier int) int {
	if barrier > maxSplitBarrier {
		return math.MaxInt
	}
	return 1 << barrier
}

// addParInto is the recursive worker. It writes the sum of b1 and b2 into
// dst, which must have the same length as the operands, and returns the
// carry out of the top position.
//
// Each recursion level operates on disjoint regions of dst and read-only
// views of the operands, so sibling branches never touch the same memory.
// The single-bit floor keeps a barrier of 0 or 1 from splitting off an empty
// low half forever.
func addParInto(ctx context.Context, dst, b1, b2 bitvec.Vector, minSplit int) (bool, error) {
	if len(b1) < minSplit || len(b1) < 2 {
		return addSeqInto(dst, b1, b2), nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	// Split both operands at the same index so the halves line up
	// positionally. The low half carries the less significant bits; its
	// carry-out feeds the high half, never the reverse.
	mid := len(b1) / 2
	low1, high1 := b1.Split(mid)
	low2, high2 := b2.Split(mid)
	dstLow, dstHigh := dst[:mid:mid], dst[mid:]

	var carryLow, carryHigh bool
	err := parallel.Pair(
		func() error {
			c, err := addParInto(ctx, dstLow, low1, low2, minSplit)
			carryLow = c
			return err
		},
		func() error {
			c, err := addParInto(ctx, dstHigh, high1, high2, minSplit)
			carryHigh = c
			return err
		},
	)
	if err != nil {
		return false, err
	}

	// The high half was summed without knowledge of the low half's carry;
	// ripple it in now. Overflow occurs if the high half overflowed on its
	// own or the splice pushed it over.
	carryMerge := propagate(dstHigh, carryLow)
	return carryHigh || carryMerge, nil
}
