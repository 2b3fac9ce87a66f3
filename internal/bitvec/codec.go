// This file implements the textual codec: MSB-first binary strings in,
// LSB-first Vectors out, plus the padding step that equalizes operand widths
// before they reach the adders.

package bitvec

import (
	apperrors "github.com/agbru/bitadd/internal/errors"
)

// ParseBinary converts a binary string written most-significant digit first
// (e.g. "101" for five) into its LSB-first Vector form. The empty string
// parses to the empty Vector. Any character other than '0' or '1' is a
// configuration error.
func ParseBinary(s string) (Vector, error) {
	v := make(Vector, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			// already false
		case '1':
			v[len(s)-1-i] = true
		default:
			return nil, apperrors.NewConfigError("invalid binary digit %q at position %d (only '0' and '1' are allowed)", s[i], i)
		}
	}
	return v, nil
}

// PadToEqual zero-extends the shorter of a and b so both have the same width.
// Padding adds high-order zero bits, which leaves the represented value
// unchanged. The inputs are not modified; the returned vectors are copies
// when extension was needed.
func PadToEqual(a, b Vector) (Vector, Vector) {
	switch {
	case len(a) < len(b):
		return extend(a, len(b)), b
	case len(b) < len(a):
		return a, extend(b, len(a))
	default:
		return a, b
	}
}

// extend returns a copy of v widened to n bits with high-order zeros.
func extend(v Vector, n int) Vector {
	out := make(Vector, n)
	copy(out, v)
	return out
}
