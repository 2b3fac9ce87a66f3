package adder

import "github.com/agbru/bitadd/internal/bitvec"

// AddSequential adds two equal-width bit vectors with a linear ripple-carry
// fold, processing positions from the least significant bit upward. It runs in
// O(n) time with O(1) auxiliary state besides the output vector.
//
// Parameters:
//   - b1: The first operand, LSB first.
//   - b2: The second operand, same width as b1.
//
// Returns:
//   - Result: The sum at the operand width plus the final carry-out.
//   - error: A LengthMismatchError if the operands differ in width.
func AddSequential(b1, b2 bitvec.Vector) (Result, error) {
	if err := checkOperands(b1, b2); err != nil {
		return Result{}, err
	}

	sum := bitvec.New(len(b1))
	carry := addSeqInto(sum, b1, b2)
	return Result{Carry: carry, Sum: sum}, nil
}

// addSeqInto performs the ripple-carry fold into dst, which must have the same
// length as the operands, and returns the carry out of the top position.
// It is the leaf computation of the parallel adder.
func addSeqInto(dst, b1, b2 bitvec.Vector) bool {
	carry := false
	for i := range b1 {
		total := 0
		if carry {
			total++
		}
		if b1[i] {
			total++
		}
		if b2[i] {
			total++
		}
		dst[i] = total&1 == 1
		carry = total > 1
	}
	return carry
}
