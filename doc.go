/*
Package bitx provides bit-manipulation and extended-precision integer
primitives, plus a handful of byte-oriented text helpers.

All numeric routines are pure functions, generic over the fixed widths 8,
16, 32 and 64 bits. The half-width used by the extended-precision multiply
is derived from the operand width, so a single implementation serves every
width:

	hi, lo := bitx.MulHiLo[int32, uint32](-2, 3)
	// hi == -1 (0xFFFFFFFF), lo == -6 (0xFFFFFFFA)

The second type parameter is the unsigned companion of the first; the two
must be the same width.

Bit utilities:

	IsPowerOfTwo[T constraints.Integer](v T) bool
	ModPowerOfTwo[T constraints.Integer](x, m T) T
	PowerOfTwo[U constraints.Unsigned](v U) U
	CountLeadingZeros[U constraints.Unsigned](v U) uint
	Popc[U constraints.Unsigned](v U) uint
	BFind[U constraints.Unsigned](v U, shiftAmount bool) uint
	BitExtract[U constraints.Unsigned](v U, pos uint) U
	BitInsert[U constraints.Unsigned](v U, bit U, pos uint) U
	Brev[U constraints.Unsigned](v U) U

Extended-precision arithmetic, producing and consuming 2N-bit values held
as (hi, lo) pairs of N-bit words:

	MulHiLo[T constraints.Signed, U constraints.Unsigned](a, b T) (hi, lo T)
	AddHiLo[U constraints.Unsigned](hi, lo, r U) (U, U)

Text helpers with byte-exact output contracts:

	Strlcpy(dst []byte, src string)
	Format(input, firstPrefix, prefix string, width uint) string
	BinaryToUint(s string) uint64
	ToGraphVizParsableLabel(s string) string
	AddLineNumbers(s string) string

The library keeps no state between calls and is safe for concurrent use
from any number of goroutines.
*/
package bitx
