package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"lukechampine.com/uint128"

	"github.com/hupe1980/truncate/int128"
)

func TestTryU128(t *testing.T) {
	got, ok := TryU128[uint64](uint128.From64(math.MaxUint64))
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), got)

	_, ok = TryU128[uint64](uint128.New(0, 1))
	assert.False(t, ok)

	_, ok = TryU128[int64](uint128.From64(1 << 63))
	assert.False(t, ok)

	i8, ok := TryU128[int8](uint128.From64(127))
	assert.True(t, ok)
	assert.Equal(t, int8(127), i8)
}

func TestTryI128(t *testing.T) {
	got, ok := TryI128[int64](int128.From64(math.MinInt64))
	assert.True(t, ok)
	assert.Equal(t, int64(math.MinInt64), got)

	// -2^64 has a valid sign extension in neither half.
	_, ok = TryI128[int64](int128.New(0, -1))
	assert.False(t, ok)

	_, ok = TryI128[int64](int128.New(1<<63, 0))
	assert.False(t, ok)

	_, ok = TryI128[uint8](int128.From64(-1))
	assert.False(t, ok)

	u64, ok := TryI128[uint64](int128.New(math.MaxUint64, 0))
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), u64)

	_, ok = TryI128[int64](int128.New(math.MaxUint64, 0))
	assert.False(t, ok)
}

func TestBelowI128(t *testing.T) {
	assert.True(t, BelowI128[uint64](int128.From64(-1)))
	assert.True(t, BelowI128[int64](int128.Min))
	assert.False(t, BelowI128[int64](int128.Max))
	assert.False(t, BelowI128[uint8](int128.Zero))
}

func TestUncheckedU128(t *testing.T) {
	assert.Equal(t, uint8(1), UncheckedU128[uint8](uint128.New(257, 99)))
	assert.Equal(t, int64(-1), UncheckedU128[int64](uint128.Max))
}

func TestU128I128(t *testing.T) {
	v, ok := TryU128ToI128(uint128.New(math.MaxUint64, math.MaxInt64))
	assert.True(t, ok)
	assert.Equal(t, int128.Max, v)

	_, ok = TryU128ToI128(uint128.New(0, 1<<63))
	assert.False(t, ok)

	u, ok := TryI128ToU128(int128.Max)
	assert.True(t, ok)
	assert.Equal(t, uint128.New(math.MaxUint64, math.MaxInt64), u)

	_, ok = TryI128ToU128(int128.From64(-1))
	assert.False(t, ok)

	assert.Equal(t, int128.From64(-1), UncheckedU128ToI128(uint128.Max))
}
