package bitx

import (
	"golang.org/x/exp/constraints"
)

// MulHiLo returns the signed 2N-bit product of two N-bit operands as a
// (hi, lo) pair of N-bit halves, where N is the width of T. The pair reads
// as (hi << N) | lo under an unsigned interpretation and equals the
// mathematical product in two's-complement 2N-bit form for every input,
// including MinT * MinT.
//
// U must be the unsigned companion type of T; a width mismatch panics.
//
// The product is formed from single-width operations only: the operand
// magnitudes are split into N/2-bit halves, the four half-products are
// recombined with explicit carry tracking, and the sign is applied to the
// assembled 2N-bit value at the end.
func MulHiLo[T constraints.Signed, U constraints.Unsigned](a, b T) (hi, lo T) {
	w := width(a)
	if w != width(U(0)) {
		panic("bitx: MulHiLo companion type width mismatch")
	}

	aNeg, bNeg := a < 0, b < 0
	if aNeg {
		// MinT negates to itself, but its bit pattern already equals the
		// magnitude modulo 2^N, which is all the unsigned math below needs.
		a = -a
	}
	if bNeg {
		b = -b
	}
	negative := aNeg != bNeg

	half := w / 2
	halfMask := (U(1) << half) - 1

	// a = A<<half | B
	// b = C<<half | D
	//
	//      DA DB
	//   CA CB
	ua, ub := U(a)>>half, U(a)&halfMask
	uc, ud := U(b)>>half, U(b)&halfMask

	da := ud * ua
	db := ud * ub
	ca := uc * ua
	cb := uc * ub

	msb := w - 1
	lowerMask := (U(1) << msb) - 1

	// Carry out of each N-bit sum is the sum of the operands' top bits plus
	// the carry out of their lower N-1 bits. Comparing the wrapped result
	// against one operand misses the case where both top bits are set.
	xCarry := ((da >> msb) + (cb >> msb) + (((da & lowerMask) + (cb & lowerMask)) >> msb)) >> 1
	x := da + cb

	yCarry := ((x >> msb) + (((x & lowerMask) + (db >> half)) >> msb)) >> 1
	y := (db >> half) + x

	ulo := (db & halfMask) | ((y & halfMask) << half)
	uhi := (y >> half) + ca + ((yCarry + xCarry) << half)

	if negative {
		// 2N-bit negation in halves: lo negates alone; hi complements and
		// absorbs the carry, which exists only when lo was zero.
		var carry U
		if ulo == 0 {
			carry = 1
		}
		ulo = -ulo
		uhi = ^uhi + carry
	}

	return T(uhi), T(ulo)
}

// AddHiLo adds the N-bit addend r into the 2N-bit value held in (hi, lo)
// and returns the new pair. The addend is treated as unsigned for carry
// propagation; hi increments by at most one, since a single N-bit addend
// cannot carry twice.
func AddHiLo[U constraints.Unsigned](hi, lo, r U) (U, U) {
	loResult := lo + r
	if loResult < r {
		hi++
	}
	return hi, loResult
}
