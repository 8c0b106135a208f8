package truncate

import (
	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"

	"github.com/hupe1980/truncate/int128"
	"github.com/hupe1980/truncate/internal/conv"
)

func must[D any](d D, ok bool) D {
	if !ok {
		panic(ErrOverflow)
	}
	return d
}

func chop[D, S constraints.Integer](v S) D {
	d, ok := conv.Try[D](v)
	return must(d, ok)
}

func shrink[D, S constraints.Integer](v S) D {
	if d, ok := conv.Try[D](v); ok {
		return d
	}
	return bound[D](v)
}

// bound returns the boundary of D for a v outside its range. Out of range is
// either below the minimum or above the maximum, so checking the minimum alone
// picks the boundary.
func bound[D, S constraints.Integer](v S) D {
	lo, hi := conv.Bounds[D]()
	if conv.Below[D](v) {
		return lo
	}
	return hi
}

func chopU128[D constraints.Integer](v uint128.Uint128) D {
	d, ok := conv.TryU128[D](v)
	return must(d, ok)
}

func shrinkU128[D constraints.Integer](v uint128.Uint128) D {
	if d, ok := conv.TryU128[D](v); ok {
		return d
	}
	// unsigned values can only leave a range upward
	_, hi := conv.Bounds[D]()
	return hi
}

func chopI128[D constraints.Integer](v int128.Int128) D {
	d, ok := conv.TryI128[D](v)
	return must(d, ok)
}

func shrinkI128[D constraints.Integer](v int128.Int128) D {
	if d, ok := conv.TryI128[D](v); ok {
		return d
	}
	lo, hi := conv.Bounds[D]()
	if conv.BelowI128[D](v) {
		return lo
	}
	return hi
}

func chopU128ToI128(v uint128.Uint128) int128.Int128 {
	d, ok := conv.TryU128ToI128(v)
	return must(d, ok)
}

func shrinkU128ToI128(v uint128.Uint128) int128.Int128 {
	if d, ok := conv.TryU128ToI128(v); ok {
		return d
	}
	return int128.Max
}

func chopI128ToU128(v int128.Int128) uint128.Uint128 {
	d, ok := conv.TryI128ToU128(v)
	return must(d, ok)
}

func shrinkI128ToU128(v int128.Int128) uint128.Uint128 {
	if d, ok := conv.TryI128ToU128(v); ok {
		return d
	}
	// Every Int128 outside the Uint128 range is negative.
	return uint128.Zero
}
