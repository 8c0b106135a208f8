// Package truncate provides explicit, intention-revealing integer truncation.
//
// A plain Go conversion such as uint8(x) keeps the low-order bits of x and drops
// the rest. That is sometimes what a call site wants, and often it is not. This
// package names the four ways of narrowing an integer so the intent is visible:
//
//   - Unchecked: keep the low-order bits (same as the conversion, spelled out).
//   - Try: return the value and true if it fits, otherwise false.
//   - Chop: return the value if it fits, otherwise panic with ErrOverflow.
//   - Shrink: return the value if it fits, otherwise the nearest bound.
//
// # Quick Start
//
//	x := uint16(257)
//
//	truncate.TruncateUnchecked[uint16, uint8](x) // 1
//	truncate.TryTruncate[uint16, uint8](x)       // 0, false
//	truncate.Shrink[uint16, uint8](x)            // 255
//	truncate.Chop[uint16, uint8](x)              // panic: chop overflow
//
// If uint8(x) and a manual range check are good enough, you don't need this
// package.
//
// # Destination-first Forms
//
// Generic code that is constrained on the destination type can name only the
// destination and let the source be inferred:
//
//	v, ok := truncate.TryTruncateFrom[uint8](x)
//	v = truncate.ChopFrom[uint8](x)
//	v = truncate.ShrinkFrom[uint8](x)
//
// There is no unchecked form with the destination first.
//
// # Supported Pairs
//
// Truncations are defined from a type to every narrower type, and between types
// of the same width and different signedness. The platform-width uint narrows to
// 32 bits and below. Widening and identity conversions are not truncations: the
// generic functions panic with *ErrUnsupportedPair when given one. Unchecked
// truncation is only defined for unsigned sources, since the right result for a
// negative input is not obvious.
//
// Pairs lists the matrix. Every pair also has typed functions named after it,
// e.g. TryUint16ToUint8, ChopInt64ToUint32, ShrinkUintToInt16 and
// UncheckedUint64ToInt8. These are the only entry points for 128-bit values,
// which use lukechampine.com/uint128 and the int128 package of this module:
//
//	v, ok := truncate.TryUint128ToUint64(uint128.From64(42))
//	w := truncate.ShrinkInt128ToInt32(int128.Min) // math.MinInt32
//
// All functions are pure and safe for concurrent use.
package truncate
