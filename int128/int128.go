package int128

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"lukechampine.com/uint128"
)

var (
	// Zero is a zero-valued Int128.
	Zero Int128

	// Min is the smallest possible Int128 value.
	Min = New(0, math.MinInt64)

	// Max is the largest possible Int128 value.
	Max = New(math.MaxUint64, math.MaxInt64)
)

// ErrRange is returned when a value does not fit into 128 signed bits.
var ErrRange = errors.New("value overflows Int128")

// signBit flips the ordering of the two's complement halves so that unsigned
// comparison of the flipped bits matches signed comparison of the values.
var signBit = uint128.New(0, 1<<63)

// An Int128 is a signed 128-bit number. Hi carries the sign.
type Int128 struct {
	Lo uint64
	Hi int64
}

// New returns the Int128 value (lo,hi).
func New(lo uint64, hi int64) Int128 {
	return Int128{Lo: lo, Hi: hi}
}

// From64 sign-extends v to an Int128 value.
func From64(v int64) Int128 {
	return New(uint64(v), v>>63)
}

// FromBits reinterprets the bits of u as an Int128.
func FromBits(u uint128.Uint128) Int128 {
	return New(u.Lo, int64(u.Hi))
}

// Bits returns the raw two's complement bits of i.
func (i Int128) Bits() uint128.Uint128 {
	return uint128.New(i.Lo, uint64(i.Hi))
}

// IsZero returns true if i == 0.
func (i Int128) IsZero() bool {
	return i == Int128{}
}

// Equals returns true if i == v.
func (i Int128) Equals(v Int128) bool {
	return i == v
}

// Sign returns -1, 0 or +1 depending on the sign of i.
func (i Int128) Sign() int {
	switch {
	case i.Hi < 0:
		return -1
	case i.IsZero():
		return 0
	default:
		return 1
	}
}

// Cmp compares i and v and returns -1, 0 or +1.
func (i Int128) Cmp(v Int128) int {
	return i.Bits().Xor(signBit).Cmp(v.Bits().Xor(signBit))
}

// Less returns true if i < v.
func (i Int128) Less(v Int128) bool {
	return i.Cmp(v) < 0
}

// Big returns i as a *big.Int.
func (i Int128) Big() *big.Int {
	b := i.Bits().Big()
	if i.Hi < 0 {
		// two's complement: value = bits - 2^128
		b.Sub(b, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return b
}

// String returns the base-10 representation of i as a string.
func (i Int128) String() string {
	if i.Hi >= 0 {
		return i.Bits().String()
	}
	// Negation wraps for Min, whose magnitude is still correct as an unsigned value.
	return "-" + uint128.Zero.SubWrap(i.Bits()).String()
}

// FromBig converts b to an Int128 value. It returns ErrRange if b does not fit.
func FromBig(b *big.Int) (Int128, error) {
	if b.Cmp(Min.Big()) < 0 || b.Cmp(Max.Big()) > 0 {
		return Zero, fmt.Errorf("int128: %s: %w", b, ErrRange)
	}
	v := new(big.Int).Set(b)
	if v.Sign() < 0 {
		v.Add(v, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return FromBits(uint128.FromBig(v)), nil
}

// FromString parses s as a base-10 Int128 value.
func FromString(s string) (Int128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Zero, fmt.Errorf("int128: invalid syntax %q", s)
	}
	return FromBig(b)
}
