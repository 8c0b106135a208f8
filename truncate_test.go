package truncate_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/truncate"
)

func TestTryTruncate(t *testing.T) {
	t.Run("too large", func(t *testing.T) {
		_, ok := truncate.TryTruncate[uint16, uint8](257)
		assert.False(t, ok)
	})

	t.Run("negative into unsigned", func(t *testing.T) {
		_, ok := truncate.TryTruncate[int16, uint8](-1)
		assert.False(t, ok)
	})

	t.Run("in range", func(t *testing.T) {
		got, ok := truncate.TryTruncate[int64, int8](-128)
		assert.True(t, ok)
		assert.Equal(t, int8(-128), got)
	})

	t.Run("dual", func(t *testing.T) {
		_, ok := truncate.TryTruncateFrom[uint8](uint16(257))
		assert.False(t, ok)

		got, ok := truncate.TryTruncateFrom[uint8](uint16(255))
		assert.True(t, ok)
		assert.Equal(t, uint8(255), got)
	})

	t.Run("typed", func(t *testing.T) {
		_, ok := truncate.TryUint16ToUint8(257)
		assert.False(t, ok)
		_, ok = truncate.TryInt16ToUint8(-1)
		assert.False(t, ok)
	})
}

func TestShrink(t *testing.T) {
	assert.Equal(t, uint8(255), truncate.Shrink[uint16, uint8](257))
	assert.Equal(t, uint8(0), truncate.Shrink[int16, uint8](-1))
	assert.Equal(t, uint8(255), truncate.ShrinkUint16ToUint8(257))
	assert.Equal(t, uint8(0), truncate.ShrinkInt16ToUint8(-1))
	assert.Equal(t, uint8(255), truncate.ShrinkFrom[uint8](uint16(257)))

	// Unsigned values above the signed range saturate upward, whatever their bits.
	assert.Equal(t, int8(math.MaxInt8), truncate.Shrink[uint16, int8](200))
	assert.Equal(t, int8(math.MaxInt8), truncate.Shrink[uint16, int8](0xff80))
	assert.Equal(t, int64(math.MaxInt64), truncate.Shrink[uint64, int64](math.MaxUint64))

	assert.Equal(t, int32(math.MinInt32), truncate.Shrink[int64, int32](math.MinInt64))
	assert.Equal(t, int32(math.MaxInt32), truncate.Shrink[int64, int32](math.MaxInt64))
	assert.Equal(t, uint64(0), truncate.Shrink[int64, uint64](math.MinInt64))
}

func TestTruncateUnchecked(t *testing.T) {
	assert.Equal(t, uint8(1), truncate.TruncateUnchecked[uint16, uint8](257))
	assert.Equal(t, uint8(1), truncate.UncheckedUint16ToUint8(257))
	assert.Equal(t, int8(-1), truncate.TruncateUnchecked[uint32, int8](0x1ff))
	assert.Equal(t, int64(math.MinInt64), truncate.TruncateUnchecked[uint64, int64](1<<63))
}

func TestChop(t *testing.T) {
	assert.Equal(t, uint8(200), truncate.Chop[uint16, uint8](200))
	assert.Equal(t, uint8(200), truncate.ChopFrom[uint8](uint16(200)))
	assert.Equal(t, int8(-5), truncate.ChopInt64ToInt8(-5))

	assert.PanicsWithError(t, "chop overflow", func() {
		truncate.Chop[uint16, uint8](257)
	})
	assert.PanicsWithError(t, "chop overflow", func() {
		truncate.ChopFrom[uint8](int16(-1))
	})
	assert.PanicsWithError(t, "chop overflow", func() {
		truncate.ChopUint16ToUint8(257)
	})
}

func TestChopPanicValue(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, truncate.ErrOverflow))
	}()

	truncate.ChopUint64ToUint32(math.MaxUint32 + 1)
}

func TestUnsupportedPair(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		msg  string
	}{
		{"widening", func() { truncate.TryTruncate[uint8, uint16](1) }, "truncate: uint8 to uint16 is not a truncation"},
		{"identity", func() { truncate.Shrink[int32, int32](1) }, "truncate: int32 to int32 is not a truncation"},
		{"signed widening", func() { truncate.ChopFrom[int64](int8(1)) }, "truncate: int8 to int64 is not a truncation"},
		{"platform widening", func() { truncate.TruncateUnchecked[uint, uint64](1) }, "truncate: uint to uint64 is not a truncation"},
		{"platform destination", func() { truncate.TryTruncateFrom[uint](uint64(1)) }, "truncate: uint64 to uint is not a truncation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(*truncate.ErrUnsupportedPair)
				require.True(t, ok, "panic value %T", r)
				assert.Equal(t, tt.msg, err.Error())
				assert.False(t, truncate.Supported(err.Source, err.Dest))
			}()
			tt.fn()
		})
	}
}

func TestPairs(t *testing.T) {
	pairs := truncate.Pairs()
	assert.Len(t, pairs, 56)
	assert.Contains(t, pairs, truncate.Pair{Source: truncate.Uint128, Dest: truncate.Int128})
	assert.True(t, truncate.Supported(truncate.Uint, truncate.Int32))
	assert.False(t, truncate.Supported(truncate.Uint8, truncate.Uint16))
}
