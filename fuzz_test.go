package bitx

import (
	"fmt"
	"math/bits"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/shabbyrobe/golib/assert"
	"golang.org/x/exp/constraints"
)

type fuzzOp string
type fuzzWidth string

// This is the equivalent of passing -bitx.fuzziter=10000 to 'go test':
const fuzzDefaultIterations = 10000

// These ops are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-bitx.fuzzop=mulhilo -bitx.fuzzop=popc', or
// using the short form '-bitx.fuzzop=mulhilo,addhilo,brev'.
const (
	fuzzAddHiLo    fuzzOp = "addhilo"
	fuzzBFind      fuzzOp = "bfind"
	fuzzBitExtract fuzzOp = "bitextract"
	fuzzBitInsert  fuzzOp = "bitinsert"
	fuzzBrev       fuzzOp = "brev"
	fuzzClz        fuzzOp = "clz"
	fuzzMulHiLo    fuzzOp = "mulhilo"
	fuzzPopc       fuzzOp = "popc"
	fuzzPowerOfTwo fuzzOp = "pow2"
)

var allFuzzOps = []fuzzOp{
	fuzzAddHiLo,
	fuzzBFind,
	fuzzBitExtract,
	fuzzBitInsert,
	fuzzBrev,
	fuzzClz,
	fuzzMulHiLo,
	fuzzPopc,
	fuzzPowerOfTwo,
}

// These widths are all enabled by default. You can instead pass them
// explicitly on the command line like so: '-bitx.fuzzwidth=32,64'.
const (
	fuzzWidth8  fuzzWidth = "8"
	fuzzWidth16 fuzzWidth = "16"
	fuzzWidth32 fuzzWidth = "32"
	fuzzWidth64 fuzzWidth = "64"
)

var allFuzzWidths = []fuzzWidth{fuzzWidth8, fuzzWidth16, fuzzWidth32, fuzzWidth64}

func TestFuzz(t *testing.T) {
	for _, op := range fuzzOpsActive {
		for _, w := range fuzzWidthsActive {
			t.Run(fmt.Sprintf("%s/%s", op, w), func(t *testing.T) {
				switch w {
				case fuzzWidth8:
					fuzzOpRun[int8, uint8](t, op)
				case fuzzWidth16:
					fuzzOpRun[int16, uint16](t, op)
				case fuzzWidth32:
					fuzzOpRun[int32, uint32](t, op)
				case fuzzWidth64:
					fuzzOpRun[int64, uint64](t, op)
				default:
					panic(fmt.Errorf("unsupported fuzz width %q", w))
				}
			})
		}
	}
}

func fuzzOpRun[T constraints.Signed, U constraints.Unsigned](t *testing.T, op fuzzOp) {
	tt := assert.WrapTB(t)
	n := width(U(0))

	for i := 0; i < fuzzIterations; i++ {
		switch op {
		case fuzzMulHiLo:
			a, b := T(globalRNG.Uint64()), T(globalRNG.Uint64())
			checkMulHiLo[T, U](tt, a, b)

		case fuzzAddHiLo:
			hi, lo, r := U(globalRNG.Uint64()), U(globalRNG.Uint64()), U(globalRNG.Uint64())
			checkAddHiLo(tt, hi, lo, r)

		case fuzzPopc:
			v := U(globalRNG.Uint64())
			if !tt.Equals(uint(bits.OnesCount64(uint64(v))), Popc(v)) {
				tt.Fatal(spew.Sdump(v))
			}

		case fuzzClz:
			v := U(globalRNG.Uint64())
			exp := n
			if v != 0 {
				exp = uint(bits.LeadingZeros64(uint64(v))) - (64 - n)
			}
			if !tt.Equals(exp, CountLeadingZeros(v)) {
				tt.Fatal(spew.Sdump(v))
			}

		case fuzzBFind:
			v := U(globalRNG.Uint64())
			expPos, expShift := BFindNone, BFindNone
			if v != 0 {
				expPos = n - 1 - CountLeadingZeros(v)
				expShift = n - 1 - expPos
			}
			if !tt.Equals(expPos, BFind(v, false)) || !tt.Equals(expShift, BFind(v, true)) {
				tt.Fatal(spew.Sdump(v))
			}

		case fuzzBrev:
			v := U(globalRNG.Uint64())
			exp := U(bits.Reverse64(uint64(v)) >> (64 - n))
			if !tt.Equals(exp, Brev(v)) || !tt.Equals(v, Brev(Brev(v))) {
				tt.Fatal(spew.Sdump(v))
			}

		case fuzzBitExtract:
			v := U(globalRNG.Uint64())
			pos := uint(globalRNG.Intn(int(n)))
			if !tt.Equals(v&(U(1)<<pos), BitExtract(v, pos)) {
				tt.Fatal(spew.Sdump(v, pos))
			}

		case fuzzBitInsert:
			v, bit := U(globalRNG.Uint64()), U(globalRNG.Uint64())
			pos := uint(globalRNG.Intn(int(n)))
			exp := v &^ (U(1) << pos)
			if bit&1 != 0 {
				exp |= U(1) << pos
			}
			if !tt.Equals(exp, BitInsert(v, bit, pos)) {
				tt.Fatal(spew.Sdump(v, bit, pos))
			}

		case fuzzPowerOfTwo:
			v := U(globalRNG.Uint64())
			checkPowerOfTwo(tt, v)

		default:
			panic(fmt.Errorf("unsupported fuzz op %q", op))
		}
	}
}

func checkPowerOfTwo[U constraints.Unsigned](tt assert.T, v U) {
	tt.Helper()
	p := PowerOfTwo(v)
	n := width(v)

	switch {
	case v == 0:
		tt.MustEqual(U(0), p)

	case v > U(1)<<(n-1):
		// No representable power of two >= v; the fill ladder wraps to zero.
		tt.MustEqual(U(0), p, "PowerOfTwo(%d)", v)

	default:
		ok := tt.Assert(IsPowerOfTwo(p), "PowerOfTwo(%d) = %d is not a power of two", v, p)
		ok = ok && tt.Assert(p >= v, "PowerOfTwo(%d) = %d < operand", v, p)
		if v > 1 {
			ok = ok && tt.Assert(p>>1 < v, "PowerOfTwo(%d) = %d not minimal", v, p)
		}
		if !ok {
			tt.Fatal(spew.Sdump(v))
		}
	}
}
