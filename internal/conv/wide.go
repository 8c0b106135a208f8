package conv

import (
	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"

	"github.com/hupe1980/truncate/int128"
)

// TryU128 converts a 128-bit unsigned v to D if D represents it exactly.
func TryU128[D constraints.Integer](v uint128.Uint128) (D, bool) {
	if v.Hi != 0 {
		return 0, false
	}
	return Try[D](v.Lo)
}

// TryI128 converts a 128-bit signed v to D if D represents it exactly.
func TryI128[D constraints.Integer](v int128.Int128) (D, bool) {
	if v.Hi == 0 {
		return Try[D](v.Lo)
	}
	if x, ok := toInt64(v); ok {
		return Try[D](x)
	}
	return 0, false
}

// toInt64 narrows v when its high half is the sign extension of its low half.
func toInt64(v int128.Int128) (int64, bool) {
	x := int64(v.Lo)
	if v.Hi != x>>63 {
		return 0, false
	}
	return x, true
}

// BelowI128 reports whether v is smaller than the minimum of D.
func BelowI128[D constraints.Integer](v int128.Int128) bool {
	lo, _ := Bounds[D]()
	return v.Less(Widen(lo))
}

// UncheckedU128 keeps the low-order bits of v that fit into D.
func UncheckedU128[D constraints.Integer](v uint128.Uint128) D {
	return D(v.Lo)
}

// TryU128ToI128 reinterprets v as signed when its top bit is clear.
func TryU128ToI128(v uint128.Uint128) (int128.Int128, bool) {
	if v.Hi>>63 != 0 {
		return int128.Zero, false
	}
	return int128.FromBits(v), true
}

// TryI128ToU128 reinterprets v as unsigned when it is not negative.
func TryI128ToU128(v int128.Int128) (uint128.Uint128, bool) {
	if v.Hi < 0 {
		return uint128.Zero, false
	}
	return v.Bits(), true
}

// UncheckedU128ToI128 reinterprets the bits of v as signed.
func UncheckedU128ToI128(v uint128.Uint128) int128.Int128 {
	return int128.FromBits(v)
}
