package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdges(t *testing.T) {
	e8 := Edges[int8]()
	assert.Contains(t, e8, int8(math.MinInt8))
	assert.Contains(t, e8, int8(math.MaxInt8))
	assert.Contains(t, e8, int8(-1))
	assert.Contains(t, e8, int8(0))

	e64 := Edges[uint64]()
	assert.Contains(t, e64, uint64(math.MaxUint64))
	assert.Contains(t, e64, uint64(math.MaxUint32)+1)
	assert.Contains(t, e64, uint64(1<<63))

	seen := map[uint16]bool{}
	for _, v := range Edges[uint16]() {
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}
}

func TestSamplesDeterministic(t *testing.T) {
	a := Samples[int32](NewRNG(4711), 64)
	b := Samples[int32](NewRNG(4711), 64)
	assert.Equal(t, a, b)
	assert.Len(t, a, len(Edges[int32]())+64)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	first := rng.Uint64()
	rng.Reset()
	assert.Equal(t, first, rng.Uint64())
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestWideSamples(t *testing.T) {
	rng := NewRNG(4711)
	u := Uint128Samples(rng, 16)
	i := Int128Samples(rng, 16)
	assert.NotEmpty(t, u)
	assert.NotEmpty(t, i)
}
