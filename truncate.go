package truncate

import (
	"github.com/hupe1980/truncate/internal/conv"
)

// Unsigned is the set of builtin unsigned types that take part in truncation.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64 | uint
}

// Signed is the set of builtin signed types that take part in truncation.
type Signed interface {
	int8 | int16 | int32 | int64
}

// Integer is the set of builtin types that take part in truncation. int and
// uintptr are not part of it; 128-bit values use the per-pair functions.
type Integer interface {
	Unsigned | Signed
}

// TryTruncate converts v to D if D represents v exactly. Otherwise it returns
// the zero value and false.
//
// S to D must be a truncation (see Pairs), or TryTruncate panics with
// *ErrUnsupportedPair.
func TryTruncate[S, D Integer](v S) (D, bool) {
	checkPair[S, D]()
	return conv.Try[D](v)
}

// Chop converts v to D and panics with ErrOverflow if D cannot represent v.
func Chop[S, D Integer](v S) D {
	d, ok := TryTruncate[S, D](v)
	if !ok {
		panic(ErrOverflow)
	}
	return d
}

// Shrink converts v to D, returning the minimum of D for values below its range
// and the maximum of D for values above it.
func Shrink[S, D Integer](v S) D {
	if d, ok := TryTruncate[S, D](v); ok {
		return d
	}
	return bound[D](v)
}

// TruncateUnchecked returns the low-order bits of v reinterpreted as D. It is
// the same as the conversion D(v), spelled out. Only unsigned sources are
// accepted.
func TruncateUnchecked[S Unsigned, D Integer](v S) D {
	checkPair[S, D]()
	return conv.Unchecked[D](v)
}

// TryTruncateFrom is TryTruncate with the destination named first, so the
// source type is inferred: TryTruncateFrom[uint8](x).
func TryTruncateFrom[D, S Integer](v S) (D, bool) {
	return TryTruncate[S, D](v)
}

// ChopFrom is Chop with the destination named first.
func ChopFrom[D, S Integer](v S) D {
	return Chop[S, D](v)
}

// ShrinkFrom is Shrink with the destination named first.
func ShrinkFrom[D, S Integer](v S) D {
	return Shrink[S, D](v)
}
