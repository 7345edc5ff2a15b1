package loop

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConverged indicates that the flow did not settle below Tolerance
	// within the iteration ceiling, or that it diverged to NaN/Inf.
	ErrNotConverged = errors.New("loop: accumulation did not converge")

	// ErrInvalidSize indicates a vector/matrix size other than 5 or 10.
	ErrInvalidSize = errors.New("loop: size must be 5 or 10")
)

const (
	opAccumulate          = "Accumulate"
	opAccumulateWithInput = "AccumulateWithInput"
	opExact               = "Exact"
	opScalarInput         = "FromScalarInput"
	opVectorInput         = "FromVectorInput"
)

// loopErrorf wraps err with an operation tag, preserving it for errors.Is.
func loopErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
