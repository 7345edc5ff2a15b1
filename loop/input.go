package loop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qualityloop/matrix"
	"github.com/katalvlaran/qualityloop/quality"
)

// FromScalarInput returns a flow vector of the given size with amount placed
// at index 0 (normal-quality input, or normal ingredients in a composite
// chain) and zeros elsewhere.
func FromScalarInput(amount float64, size int) ([]float64, error) {
	if err := validateSize(size); err != nil {
		return nil, loopErrorf(opScalarInput, err)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, loopErrorf(opScalarInput, matrix.ErrNaNInf)
	}
	v := make([]float64, size)
	v[0] = amount

	return v, nil
}

// FromVectorInput returns a copy of v as a flow vector of the given size.
// v must have length size, or NumTiers when size is CompositeSize, in which
// case it fills the ingredient half and the item half is zero.
func FromVectorInput(v []float64, size int) ([]float64, error) {
	if err := validateSize(size); err != nil {
		return nil, loopErrorf(opVectorInput, err)
	}
	if len(v) != size && len(v) != quality.NumTiers {
		return nil, loopErrorf(opVectorInput, fmt.Errorf("len %d for size %d: %w", len(v), size, matrix.ErrDimensionMismatch))
	}
	if err := validateFinite(v); err != nil {
		return nil, loopErrorf(opVectorInput, err)
	}
	out := make([]float64, size)
	copy(out, v)

	return out, nil
}

func validateSize(size int) error {
	if size != quality.NumTiers && size != quality.CompositeSize {
		return fmt.Errorf("size %d: %w", size, ErrInvalidSize)
	}

	return nil
}

func validateFinite(v []float64) error {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("component %d: %w", i, matrix.ErrNaNInf)
		}
	}

	return nil
}
