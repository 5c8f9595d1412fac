package bitx

import (
	"golang.org/x/exp/constraints"
)

// BFindNone is returned by BFind when no bit of the operand is set. It is
// returned in both position and shift-amount modes.
const BFindNone = ^uint(0)

// width returns the size of v's type in bits. Stepping by whole bytes keeps
// the loop clear of arithmetic-shift behaviour on signed types.
func width[T constraints.Integer](v T) uint {
	n := uint(8)
	step := uint(8)
	for v = T(1) << step; v != 0; v <<= step {
		n += 8
	}
	return n
}

// IsPowerOfTwo reports whether exactly one bit of v is set. Zero and
// negative values are not powers of two.
func IsPowerOfTwo[T constraints.Integer](v T) bool {
	return v > 0 && v&(v-1) == 0
}

// ModPowerOfTwo returns x mod m for a modulus m that is a positive power of
// two. Any other modulus is a caller bug and panics.
//
// For signed x the result is x masked with m-1, which is non-negative and
// in [0, m).
func ModPowerOfTwo[T constraints.Integer](x, m T) T {
	if !IsPowerOfTwo(m) {
		panic("bitx: modulus is not a power of two")
	}
	return x & (m - 1)
}

// PowerOfTwo returns the smallest power of two >= v. PowerOfTwo(0) == 0 and
// PowerOfTwo(1) == 1. When the next power of two does not fit in v's width
// the result wraps to 0.
func PowerOfTwo[U constraints.Unsigned](v U) U {
	w := width(v)
	v--
	for shift := uint(1); shift < w; shift <<= 1 {
		v |= v >> shift
	}
	v++
	return v
}

// CountLeadingZeros returns the number of leading zero bits of v within its
// width. Zero input returns the full width.
func CountLeadingZeros[U constraints.Unsigned](v U) uint {
	max := width(v)
	mask := U(1) << (max - 1)

	var count uint
	for count < max && v&mask == 0 {
		count++
		v <<= 1
	}
	return count
}

// Popc returns the number of set bits in v.
func Popc[U constraints.Unsigned](v U) uint {
	var count uint
	for v != 0 {
		if v&1 != 0 {
			count++
		}
		v >>= 1
	}
	return count
}

// BFind returns the 0-based index of the most significant set bit of v.
// When shiftAmount is true the result is instead the number of bits above
// the most significant set bit, i.e. width-1-index.
//
// Zero input returns BFindNone in both modes; the shift-amount transform
// never applies to the sentinel.
func BFind[U constraints.Unsigned](v U, shiftAmount bool) uint {
	found := BFindNone
	msb := width(v) - 1

	for i := int(msb); i >= 0; i-- {
		if v&(U(1)<<uint(i)) != 0 {
			found = uint(i)
			break
		}
	}

	if shiftAmount && found != BFindNone {
		found = msb - found
	}
	return found
}

// BitExtract returns v with every bit cleared except the bit at pos, which
// keeps its original position. It is not a right-justifying "get".
func BitExtract[U constraints.Unsigned](v U, pos uint) U {
	return ((v >> pos) & 1) << pos
}

// BitInsert returns v with the bit at pos replaced by the low bit of bit.
// All other bits of v are preserved.
func BitInsert[U constraints.Unsigned](v U, bit U, pos uint) U {
	return (v &^ (U(1) << pos)) | ((bit & 1) << pos)
}

// Brev reverses the bits of v within its width, so Brev(Brev(v)) == v.
func Brev[U constraints.Unsigned](v U) U {
	msb := width(v) - 1

	var result U
	for i := uint(0); i <= msb; i++ {
		result = BitInsert(result, (v>>(msb-i))&1, i)
	}
	return result
}
