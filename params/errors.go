package params

import (
	"errors"
	"fmt"
)

var (
	// ErrModuleSlots indicates more modules than the machine has slots.
	ErrModuleSlots = errors.New("params: module count exceeds available slots")

	// ErrInvalidParams indicates a field that failed struct validation.
	ErrInvalidParams = errors.New("params: invalid machine parameters")
)

const (
	opRecycler      = "Recycler.Rows"
	opCrusher       = "AsteroidCrusher.Rows"
	opAssembler     = "Assembler.Rows"
	opRecyclerLoop  = "RecyclerLoop"
	opCrusherLoop   = "CrusherLoop"
	opCompositeLoop = "RecyclerAssemblerLoop"
	opSweep         = "RecyclerSweep"
)

// paramsErrorf wraps err with an operation tag, preserving it for errors.Is.
func paramsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
