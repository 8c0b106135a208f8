// Package int128 provides a signed two's complement 128-bit integer.
//
// Int128 is the signed counterpart of lukechampine.com/uint128.Uint128 and shares
// its layout: the raw bits of an Int128 are exactly a Uint128, so conversions
// between the two are free reinterpretations.
//
//	v := int128.From64(-1)
//	fmt.Println(v.Sign(), v.Bits()) // -1 340282366920938463463374607431768211455
package int128
