package truncate

import (
	"errors"
	"fmt"

	"github.com/hupe1980/truncate/internal/kind"
)

var (
	// ErrOverflow is the panic value of every Chop function. A recovered value can
	// be matched with errors.Is.
	ErrOverflow = errors.New("chop overflow")
)

// ErrUnsupportedPair is the panic value of a generic function called with an
// ordered pair of types that is not a truncation, e.g. a widening or identity
// conversion.
type ErrUnsupportedPair struct {
	Source Kind
	Dest   Kind
}

func (e *ErrUnsupportedPair) Error() string {
	return fmt.Sprintf("truncate: %s to %s is not a truncation", e.Source, e.Dest)
}

func checkPair[S, D Integer]() {
	src, dst := kind.Of[S](), kind.Of[D]()
	if !kind.IsTruncation(src, dst) {
		panic(&ErrUnsupportedPair{Source: src, Dest: dst})
	}
}
