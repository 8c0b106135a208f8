package conv

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/truncate/int128"
)

// Try converts v to D if D represents v exactly.
func Try[D, S constraints.Integer](v S) (D, bool) {
	d := D(v)
	// A round trip catches lost high bits; the sign check catches values that
	// survive the round trip but change meaning, e.g. uint64(1<<63) as int64.
	if S(d) != v || (d < 0) != (v < 0) {
		return 0, false
	}
	return d, true
}

// Unchecked keeps the low-order bits of v that fit into D.
func Unchecked[D constraints.Integer, S constraints.Unsigned](v S) D {
	return D(v)
}

// Bounds returns the smallest and largest values of T.
func Bounds[T constraints.Integer]() (lo, hi T) {
	var zero T
	if ^zero > 0 {
		return 0, ^zero
	}
	bits := unsafe.Sizeof(zero) * 8
	lo = T(1) << (bits - 1)
	return lo, ^lo
}

// Widen returns v in the common comparison domain.
func Widen[T constraints.Integer](v T) int128.Int128 {
	if v < 0 {
		return int128.From64(int64(v))
	}
	return int128.New(uint64(v), 0)
}

// Below reports whether v is smaller than the minimum of D.
func Below[D, S constraints.Integer](v S) bool {
	lo, _ := Bounds[D]()
	return Widen(v).Less(Widen(lo))
}
