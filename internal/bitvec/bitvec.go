// Package bitvec provides the fixed-width binary vector representation used
// by the adders, together with the textual codec that converts between
// MSB-first binary strings and the LSB-first in-memory form.
package bitvec

import (
	"math/big"
	"math/rand"
	"strings"
)

// Vector is an ordered, fixed-length sequence of bits indexed from the least
// significant bit (index 0) to the most significant bit (index len-1).
//
// A Vector returned by any operation in this module is never mutated after it
// is returned. Subslices obtained via Split share backing memory with the
// parent and must be treated as read-only views.
type Vector []bool

// New returns an all-zero Vector of width n.
func New(n int) Vector {
	return make(Vector, n)
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Equal reports whether v and other have the same width and the same bits.
func (v Vector) Equal(other Vector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// Split divides v at index mid into a low half [0, mid) and a high half
// [mid, len). Both halves are views into v's backing array; callers must not
// write through them.
func (v Vector) Split(mid int) (low, high Vector) {
	return v[:mid:mid], v[mid:]
}

// String renders v as a binary string with the most significant digit first,
// matching the conventional human-readable notation. The empty vector renders
// as the empty string.
func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(len(v))
	for i := len(v) - 1; i >= 0; i-- {
		if v[i] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ToBigInt interprets v as an unsigned integer where bit i has weight 2^i.
func (v Vector) ToBigInt() *big.Int {
	out := new(big.Int)
	for i := len(v) - 1; i >= 0; i-- {
		out.Lsh(out, 1)
		if v[i] {
			out.SetBit(out, 0, 1)
		}
	}
	return out
}

// FromBigInt converts a non-negative big.Int into a Vector of exactly width
// bits. Bits above the requested width are discarded.
func FromBigInt(x *big.Int, width int) Vector {
	v := make(Vector, width)
	for i := 0; i < width; i++ {
		v[i] = x.Bit(i) == 1
	}
	return v
}

// FromUint64 converts x into a Vector of exactly width bits. Bits above the
// requested width are discarded.
func FromUint64(x uint64, width int) Vector {
	v := make(Vector, width)
	for i := 0; i < width && i < 64; i++ {
		v[i] = x>>uint(i)&1 == 1
	}
	return v
}

// Random returns a Vector of width n with uniformly random bits drawn from rng.
func Random(rng *rand.Rand, n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = rng.Intn(2) == 1
	}
	return v
}
