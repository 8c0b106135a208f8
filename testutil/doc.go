// Package testutil provides testing utilities for truncate.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator and integer samples that
// concentrate on the values where truncations change behavior.
//
// # Samples
//
//	rng := testutil.NewRNG(seed)
//	for _, v := range testutil.Samples[int32](rng, 100) {
//	    // boundary values of every width, then 100 random int32 values
//	}
package testutil
