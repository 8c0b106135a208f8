package truncate_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/truncate"
	"github.com/hupe1980/truncate/internal/kind"
	"github.com/hupe1980/truncate/testutil"
)

const randomSamples = 256

func bigOf[T truncate.Integer](v T) *big.Int {
	if v < 0 {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

func bigBounds(k kind.Kind) (lo, hi *big.Int) {
	one := big.NewInt(1)
	if k.Signed() {
		half := new(big.Int).Lsh(one, uint(k.Bits()-1))
		return new(big.Int).Neg(half), new(big.Int).Sub(half, one)
	}
	return big.NewInt(0), new(big.Int).Sub(new(big.Int).Lsh(one, uint(k.Bits())), one)
}

func fromBig[T truncate.Integer](b *big.Int) T {
	if b.Sign() < 0 {
		return T(b.Int64())
	}
	return T(b.Uint64())
}

// wrapBig reduces b modulo 2^bits and reads the result in k's signedness.
func wrapBig(b *big.Int, k kind.Kind) *big.Int {
	mod := new(big.Int).Lsh(big.NewInt(1), uint(k.Bits()))
	m := new(big.Int).Mod(b, mod)
	if k.Signed() && m.Cmp(new(big.Int).Rsh(mod, 1)) >= 0 {
		m.Sub(m, mod)
	}
	return m
}

// checkPair verifies every family of S to D against an arbitrary-precision model.
func checkPair[S, D truncate.Integer](t *testing.T) {
	rng := testutil.NewRNG(4711)
	dk := kind.Of[D]()
	lo, hi := bigBounds(dk)
	minD, maxD := fromBig[D](lo), fromBig[D](hi)

	for _, v := range testutil.Samples[S](rng, randomSamples) {
		bv := bigOf(v)

		got, ok := truncate.TryTruncate[S, D](v)
		gotFrom, okFrom := truncate.TryTruncateFrom[D](v)
		require.Equal(t, ok, okFrom, "v=%d", v)
		require.Equal(t, got, gotFrom, "v=%d", v)
		require.Equal(t, truncate.Shrink[S, D](v), truncate.ShrinkFrom[D](v), "v=%d", v)

		switch {
		case bv.Cmp(lo) < 0:
			require.False(t, ok, "v=%d", v)
			require.Equal(t, minD, truncate.Shrink[S, D](v), "v=%d", v)
			require.PanicsWithError(t, "chop overflow", func() { truncate.Chop[S, D](v) }, "v=%d", v)
			require.PanicsWithError(t, "chop overflow", func() { truncate.ChopFrom[D](v) }, "v=%d", v)
		case bv.Cmp(hi) > 0:
			require.False(t, ok, "v=%d", v)
			require.Equal(t, maxD, truncate.Shrink[S, D](v), "v=%d", v)
			require.PanicsWithError(t, "chop overflow", func() { truncate.Chop[S, D](v) }, "v=%d", v)
		default:
			require.True(t, ok, "v=%d", v)
			require.Equal(t, 0, bigOf(got).Cmp(bv), "v=%d got=%d", v, got)
			require.Equal(t, got, truncate.Chop[S, D](v), "v=%d", v)
			require.Equal(t, got, truncate.ChopFrom[D](v), "v=%d", v)
			require.Equal(t, got, truncate.Shrink[S, D](v), "v=%d", v)
		}
	}
}

// checkUnchecked verifies the bitwise family of S to D.
func checkUnchecked[S truncate.Unsigned, D truncate.Integer](t *testing.T) {
	rng := testutil.NewRNG(4711)
	dk := kind.Of[D]()

	for _, v := range testutil.Samples[S](rng, randomSamples) {
		want := wrapBig(bigOf(v), dk)
		got := truncate.TruncateUnchecked[S, D](v)
		require.Equal(t, 0, bigOf(got).Cmp(want), "v=%d got=%d want=%s", v, got, want)
	}
}

func unsignedCase[S truncate.Unsigned, D truncate.Integer]() func(t *testing.T) {
	return func(t *testing.T) {
		checkPair[S, D](t)
		checkUnchecked[S, D](t)
	}
}

func signedCase[S truncate.Signed, D truncate.Integer]() func(t *testing.T) {
	return func(t *testing.T) {
		checkPair[S, D](t)
	}
}

var builtinCases = map[kind.Pair]func(t *testing.T){
	{Source: kind.Uint, Dest: kind.Uint32}: unsignedCase[uint, uint32](),
	{Source: kind.Uint, Dest: kind.Uint16}: unsignedCase[uint, uint16](),
	{Source: kind.Uint, Dest: kind.Uint8}:  unsignedCase[uint, uint8](),
	{Source: kind.Uint, Dest: kind.Int32}:  unsignedCase[uint, int32](),
	{Source: kind.Uint, Dest: kind.Int16}:  unsignedCase[uint, int16](),
	{Source: kind.Uint, Dest: kind.Int8}:   unsignedCase[uint, int8](),

	{Source: kind.Uint64, Dest: kind.Uint32}: unsignedCase[uint64, uint32](),
	{Source: kind.Uint64, Dest: kind.Uint16}: unsignedCase[uint64, uint16](),
	{Source: kind.Uint64, Dest: kind.Uint8}:  unsignedCase[uint64, uint8](),
	{Source: kind.Uint64, Dest: kind.Int64}:  unsignedCase[uint64, int64](),
	{Source: kind.Uint64, Dest: kind.Int32}:  unsignedCase[uint64, int32](),
	{Source: kind.Uint64, Dest: kind.Int16}:  unsignedCase[uint64, int16](),
	{Source: kind.Uint64, Dest: kind.Int8}:   unsignedCase[uint64, int8](),
	{Source: kind.Uint32, Dest: kind.Uint16}: unsignedCase[uint32, uint16](),
	{Source: kind.Uint32, Dest: kind.Uint8}:  unsignedCase[uint32, uint8](),
	{Source: kind.Uint32, Dest: kind.Int32}:  unsignedCase[uint32, int32](),
	{Source: kind.Uint32, Dest: kind.Int16}:  unsignedCase[uint32, int16](),
	{Source: kind.Uint32, Dest: kind.Int8}:   unsignedCase[uint32, int8](),
	{Source: kind.Uint16, Dest: kind.Uint8}:  unsignedCase[uint16, uint8](),
	{Source: kind.Uint16, Dest: kind.Int16}:  unsignedCase[uint16, int16](),
	{Source: kind.Uint16, Dest: kind.Int8}:   unsignedCase[uint16, int8](),
	{Source: kind.Uint8, Dest: kind.Int8}:    unsignedCase[uint8, int8](),

	{Source: kind.Int64, Dest: kind.Uint64}: signedCase[int64, uint64](),
	{Source: kind.Int64, Dest: kind.Uint32}: signedCase[int64, uint32](),
	{Source: kind.Int64, Dest: kind.Uint16}: signedCase[int64, uint16](),
	{Source: kind.Int64, Dest: kind.Uint8}:  signedCase[int64, uint8](),
	{Source: kind.Int64, Dest: kind.Int32}:  signedCase[int64, int32](),
	{Source: kind.Int64, Dest: kind.Int16}:  signedCase[int64, int16](),
	{Source: kind.Int64, Dest: kind.Int8}:   signedCase[int64, int8](),
	{Source: kind.Int32, Dest: kind.Uint32}: signedCase[int32, uint32](),
	{Source: kind.Int32, Dest: kind.Uint16}: signedCase[int32, uint16](),
	{Source: kind.Int32, Dest: kind.Uint8}:  signedCase[int32, uint8](),
	{Source: kind.Int32, Dest: kind.Int16}:  signedCase[int32, int16](),
	{Source: kind.Int32, Dest: kind.Int8}:   signedCase[int32, int8](),
	{Source: kind.Int16, Dest: kind.Uint16}: signedCase[int16, uint16](),
	{Source: kind.Int16, Dest: kind.Uint8}:  signedCase[int16, uint8](),
	{Source: kind.Int16, Dest: kind.Int8}:   signedCase[int16, int8](),
	{Source: kind.Int8, Dest: kind.Uint8}:   signedCase[int8, uint8](),
}

func TestBuiltinMatrix(t *testing.T) {
	var covered int
	for _, p := range kind.Pairs() {
		if p.Source.Wide() || p.Dest.Wide() {
			continue
		}
		covered++

		fn, ok := builtinCases[p]
		require.True(t, ok, "no case for %s", p)
		t.Run(p.Name(), fn)
	}
	assert.Equal(t, len(builtinCases), covered)
}
