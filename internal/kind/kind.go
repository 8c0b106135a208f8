package kind

import (
	"fmt"
	"strconv"
)

// Kind identifies one integer type of the lattice.
type Kind uint8

const (
	Invalid Kind = iota
	Uint8
	Uint16
	Uint32
	Uint64
	Uint128
	Int8
	Int16
	Int32
	Int64
	Int128
	// Uint is the platform-width unsigned integer.
	Uint
)

// All lists every valid kind in generation order.
var All = []Kind{
	Uint, Uint128, Uint64, Uint32, Uint16, Uint8,
	Int128, Int64, Int32, Int16, Int8,
}

type info struct {
	title  string
	goType string
	bits   int
	signed bool
}

var infos = [...]info{
	Invalid: {"Invalid", "invalid", 0, false},
	Uint8:   {"Uint8", "uint8", 8, false},
	Uint16:  {"Uint16", "uint16", 16, false},
	Uint32:  {"Uint32", "uint32", 32, false},
	Uint64:  {"Uint64", "uint64", 64, false},
	Uint128: {"Uint128", "uint128.Uint128", 128, false},
	Int8:    {"Int8", "int8", 8, true},
	Int16:   {"Int16", "int16", 16, true},
	Int32:   {"Int32", "int32", 32, true},
	Int64:   {"Int64", "int64", 64, true},
	Int128:  {"Int128", "int128.Int128", 128, true},
	Uint:    {"Uint", "uint", strconv.IntSize, false},
}

func (k Kind) info() info {
	if int(k) >= len(infos) {
		return infos[Invalid]
	}
	return infos[k]
}

// Valid reports whether k names a lattice type.
func (k Kind) Valid() bool { return k != Invalid && int(k) < len(infos) }

// Title is the exported-identifier form of the kind, e.g. "Uint16".
func (k Kind) Title() string { return k.info().title }

// GoType is the Go type expression for the kind, qualified for 128-bit kinds.
func (k Kind) GoType() string { return k.info().goType }

// Bits is the width of the kind. For Uint it is the width on the running platform.
func (k Kind) Bits() int { return k.info().bits }

// Signed reports whether the kind is two's complement signed.
func (k Kind) Signed() bool { return k.info().signed }

// Platform reports whether the width of the kind depends on the target.
func (k Kind) Platform() bool { return k == Uint }

// Wide reports whether the kind has no builtin Go counterpart.
func (k Kind) Wide() bool { return k == Uint128 || k == Int128 }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return k.GoType()
}

// platformDests are the destinations reachable from Uint. They are those that are
// narrower than, or as wide as, Uint on every supported platform.
var platformDests = map[Kind]bool{
	Uint8: true, Uint16: true, Uint32: true,
	Int8: true, Int16: true, Int32: true,
}

// IsTruncation reports whether narrowing src into dst is a defined operation.
// Identity and widening conversions are never truncations.
func IsTruncation(src, dst Kind) bool {
	if !src.Valid() || !dst.Valid() || src == dst {
		return false
	}
	if dst.Platform() {
		return false
	}
	if src.Platform() {
		return platformDests[dst]
	}
	if dst.Bits() < src.Bits() {
		return true
	}
	return dst.Bits() == src.Bits() && dst.Signed() != src.Signed()
}

// HasUnchecked reports whether the bitwise form is defined for the pair. It is
// offered for unsigned sources only, since the right answer for negative inputs
// is not obvious.
func HasUnchecked(src, dst Kind) bool {
	return IsTruncation(src, dst) && !src.Signed()
}

// Pair is an ordered (source, destination) truncation.
type Pair struct {
	Source Kind
	Dest   Kind
}

// Name is the identifier suffix used by the per-pair API, e.g. "Uint16ToUint8".
func (p Pair) Name() string { return p.Source.Title() + "To" + p.Dest.Title() }

// Unchecked reports whether the pair has a bitwise form.
func (p Pair) Unchecked() bool { return HasUnchecked(p.Source, p.Dest) }

func (p Pair) String() string { return p.Source.String() + " -> " + p.Dest.String() }

// Pairs returns every defined pair, ordered by source then destination as in All.
func Pairs() []Pair {
	var out []Pair
	for _, src := range All {
		for _, dst := range All {
			if IsTruncation(src, dst) {
				out = append(out, Pair{Source: src, Dest: dst})
			}
		}
	}
	return out
}
