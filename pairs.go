package truncate

import "github.com/hupe1980/truncate/internal/kind"

//go:generate go run ./internal/cmd/pairgen -o pairs_gen.go -test pairs_gen_test.go

// Kind identifies an integer type taking part in truncation.
type Kind = kind.Kind

// Pair is an ordered (source, destination) truncation.
type Pair = kind.Pair

// Kinds of the lattice.
const (
	Uint8   = kind.Uint8
	Uint16  = kind.Uint16
	Uint32  = kind.Uint32
	Uint64  = kind.Uint64
	Uint128 = kind.Uint128
	Int8    = kind.Int8
	Int16   = kind.Int16
	Int32   = kind.Int32
	Int64   = kind.Int64
	Int128  = kind.Int128
	Uint    = kind.Uint
)

// Pairs returns every defined truncation. Each pair has Try, Chop and Shrink
// functions; pairs with an unsigned source also have an Unchecked function.
func Pairs() []Pair {
	return kind.Pairs()
}

// Supported reports whether src to dst is a defined truncation.
func Supported(src, dst Kind) bool {
	return kind.IsTruncation(src, dst)
}
