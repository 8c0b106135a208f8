package testutil

import (
	"math/rand"
	"sync"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"

	"github.com/hupe1980/truncate/int128"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint128 returns a pseudo-random uint128.
func (r *RNG) Uint128() uint128.Uint128 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint128.New(r.rand.Uint64(), r.rand.Uint64())
}

// edges are the bit patterns around every power of two that bounds a type of the
// lattice, together with their two's complement negations.
var edges = func() []uint64 {
	out := []uint64{0, 1, 2, 1<<64 - 1}
	for _, k := range []uint{7, 8, 15, 16, 31, 32, 63} {
		p := uint64(1) << k
		out = append(out, p-1, p, p+1)
	}
	for _, v := range out[1:] {
		out = append(out, -v)
	}
	return out
}()

// Edges returns the boundary samples of T in a stable order, without duplicates.
func Edges[T constraints.Integer]() []T {
	seen := make(map[T]bool, len(edges))
	out := make([]T, 0, len(edges))
	for _, e := range edges {
		v := T(e)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Samples returns the boundary samples of T followed by n random values of T.
func Samples[T constraints.Integer](r *RNG, n int) []T {
	out := Edges[T]()
	for i := 0; i < n; i++ {
		// Shift by a random amount so small magnitudes are as common as large ones.
		out = append(out, T(r.Uint64()>>uint(r.Intn(64))))
	}
	return out
}

// Uint128Samples returns uint128 boundary samples followed by n random values.
func Uint128Samples(r *RNG, n int) []uint128.Uint128 {
	var out []uint128.Uint128
	for _, e := range edges {
		out = append(out, uint128.From64(e), uint128.New(e, 1), uint128.New(e, 1<<63), uint128.New(e, 1<<63-1))
	}
	out = append(out, uint128.Zero, uint128.Max)
	for i := 0; i < n; i++ {
		out = append(out, r.Uint128().Rsh(uint(r.Intn(128))))
	}
	return out
}

// Int128Samples returns int128 boundary samples followed by n random values.
func Int128Samples(r *RNG, n int) []int128.Int128 {
	var out []int128.Int128
	for _, e := range edges {
		out = append(out, int128.New(e, 0), int128.New(e, -1), int128.From64(int64(e)))
	}
	out = append(out, int128.Min, int128.Max, int128.New(0, 1), int128.New(0, -2))
	for i := 0; i < n; i++ {
		v := int128.FromBits(r.Uint128())
		out = append(out, v)
		out = append(out, int128.From64(int64(r.Uint64())>>uint(r.Intn(64))))
	}
	return out
}
