// Package conv provides the range checks behind every truncation.
//
// The functions here work on any integer types; the caller decides which pairs
// are legal. Failed conversions return the zero value of the destination and
// false, never a partially converted value.
//
// Range comparisons between types of different signedness are done in a common
// lossless domain, int128.Int128, which holds every 64-bit signed and unsigned
// value.
package conv
