package monosat

import (
	"fmt"
	"math"
	"math/big"
)

// Weight is the capability set a bit-vector's scalar domain must
// provide: a totally ordered ring, closed under addition and
// subtraction, with best-effort ceiling and floor division by a
// small divisor (only ever divided by 2, for the midpoint split a
// BV-to-BV comparison reason needs). Implementations are value types
// so that Core[W] can keep under/over approximations in plain slices
// without boxing.
//
// CeilDiv and FloorDiv report ok=false rather than rounding silently when
// the underlying representation cannot support exact integer
// division — see BigRat below.
type Weight[W any] interface {
	Add(W) W
	Sub(W) W
	Less(other W) bool
	LessEq(other W) bool
	IsZero() bool
	CeilDiv(d W) (W, bool)
	FloorDiv(d W) (W, bool)
	String() string
}

// bitWeights lazily computes and caches 2^i for i in [0, n) by
// repeated doubling starting from one, so that interval refresh never
// multiplies by an out-of-range small integer.
type bitWeights[W Weight[W]] struct {
	zero, one W
	pow       []W // pow[i] = 2^i
}

func newBitWeights[W Weight[W]](zero, one W) *bitWeights[W] {
	return &bitWeights[W]{zero: zero, one: one, pow: []W{one}}
}

func (bw *bitWeights[W]) at(i int) W {
	for len(bw.pow) <= i {
		last := bw.pow[len(bw.pow)-1]
		bw.pow = append(bw.pow, last.Add(last))
	}
	return bw.pow[i]
}

// --- native unsigned integer instantiations ---

// Uint64 is a Weight over the native uint64 domain.
type Uint64 uint64

func (w Uint64) Add(o Uint64) Uint64     { return w + o }
func (w Uint64) Sub(o Uint64) Uint64     { return w - o }
func (w Uint64) Less(o Uint64) bool      { return w < o }
func (w Uint64) LessEq(o Uint64) bool    { return w <= o }
func (w Uint64) IsZero() bool            { return w == 0 }
func (w Uint64) String() string          { return fmt.Sprintf("%d", uint64(w)) }
func (w Uint64) CeilDiv(d Uint64) (Uint64, bool) {
	if d == 0 {
		return 0, false
	}
	return (w + d - 1) / d, true
}
func (w Uint64) FloorDiv(d Uint64) (Uint64, bool) {
	if d == 0 {
		return 0, false
	}
	return w / d, true
}

// Uint32 is a Weight over the native uint32 domain, for narrower
// bit-vectors where a smaller backing type is worth the instantiation.
type Uint32 uint32

func (w Uint32) Add(o Uint32) Uint32  { return w + o }
func (w Uint32) Sub(o Uint32) Uint32  { return w - o }
func (w Uint32) Less(o Uint32) bool   { return w < o }
func (w Uint32) LessEq(o Uint32) bool { return w <= o }
func (w Uint32) IsZero() bool         { return w == 0 }
func (w Uint32) String() string       { return fmt.Sprintf("%d", uint32(w)) }
func (w Uint32) CeilDiv(d Uint32) (Uint32, bool) {
	if d == 0 {
		return 0, false
	}
	return (w + d - 1) / d, true
}
func (w Uint32) FloorDiv(d Uint32) (Uint32, bool) {
	if d == 0 {
		return 0, false
	}
	return w / d, true
}

// Uint16 is a Weight over the native uint16 domain.
type Uint16 uint16

func (w Uint16) Add(o Uint16) Uint16  { return w + o }
func (w Uint16) Sub(o Uint16) Uint16  { return w - o }
func (w Uint16) Less(o Uint16) bool   { return w < o }
func (w Uint16) LessEq(o Uint16) bool { return w <= o }
func (w Uint16) IsZero() bool         { return w == 0 }
func (w Uint16) String() string       { return fmt.Sprintf("%d", uint16(w)) }
func (w Uint16) CeilDiv(d Uint16) (Uint16, bool) {
	if d == 0 {
		return 0, false
	}
	return (w + d - 1) / d, true
}
func (w Uint16) FloorDiv(d Uint16) (Uint16, bool) {
	if d == 0 {
		return 0, false
	}
	return w / d, true
}

// Uint8 is a Weight over the native uint8 domain, suitable for
// bit-vectors of width 8 or less.
type Uint8 uint8

func (w Uint8) Add(o Uint8) Uint8  { return w + o }
func (w Uint8) Sub(o Uint8) Uint8  { return w - o }
func (w Uint8) Less(o Uint8) bool  { return w < o }
func (w Uint8) LessEq(o Uint8) bool { return w <= o }
func (w Uint8) IsZero() bool        { return w == 0 }
func (w Uint8) String() string      { return fmt.Sprintf("%d", uint8(w)) }
func (w Uint8) CeilDiv(d Uint8) (Uint8, bool) {
	if d == 0 {
		return 0, false
	}
	return (w + d - 1) / d, true
}
func (w Uint8) FloorDiv(d Uint8) (Uint8, bool) {
	if d == 0 {
		return 0, false
	}
	return w / d, true
}

// --- arbitrary precision rational instantiation ---

// BigRat is a Weight backed by math/big's arbitrary-precision
// rationals. Exact ceiling/floor division is deliberately NOT
// implemented here rather than silently rounding (CeilDiv/FloorDiv
// return ok=false). A host that needs the midpoint split over
// BV-to-BV comparisons with a BigRat weight must use Float64 instead.
type BigRat struct {
	r *big.Rat
}

// NewBigRat wraps a *big.Rat as a Weight. A nil r is treated as zero.
func NewBigRat(r *big.Rat) BigRat {
	if r == nil {
		r = new(big.Rat)
	}
	return BigRat{r: r}
}

func (w BigRat) rat() *big.Rat {
	if w.r == nil {
		return new(big.Rat)
	}
	return w.r
}

func (w BigRat) Add(o BigRat) BigRat {
	return BigRat{r: new(big.Rat).Add(w.rat(), o.rat())}
}
func (w BigRat) Sub(o BigRat) BigRat {
	return BigRat{r: new(big.Rat).Sub(w.rat(), o.rat())}
}
func (w BigRat) Less(o BigRat) bool   { return w.rat().Cmp(o.rat()) < 0 }
func (w BigRat) LessEq(o BigRat) bool { return w.rat().Cmp(o.rat()) <= 0 }
func (w BigRat) IsZero() bool         { return w.rat().Sign() == 0 }
func (w BigRat) String() string       { return w.rat().RatString() }

func (w BigRat) CeilDiv(BigRat) (BigRat, bool) { return BigRat{}, false }
func (w BigRat) FloorDiv(BigRat) (BigRat, bool) { return BigRat{}, false }

// --- best-effort floating point instantiation ---

// Float64 is a Weight backed by a plain float64, offering best-effort
// ceiling/floor division via math.Ceil/math.Floor.
type Float64 float64

func (w Float64) Add(o Float64) Float64  { return w + o }
func (w Float64) Sub(o Float64) Float64  { return w - o }
func (w Float64) Less(o Float64) bool    { return w < o }
func (w Float64) LessEq(o Float64) bool  { return w <= o }
func (w Float64) IsZero() bool           { return w == 0 }
func (w Float64) String() string         { return fmt.Sprintf("%g", float64(w)) }
func (w Float64) CeilDiv(d Float64) (Float64, bool) {
	if d == 0 {
		return 0, false
	}
	return Float64(math.Ceil(float64(w) / float64(d))), true
}
func (w Float64) FloorDiv(d Float64) (Float64, bool) {
	if d == 0 {
		return 0, false
	}
	return Float64(math.Floor(float64(w) / float64(d))), true
}
