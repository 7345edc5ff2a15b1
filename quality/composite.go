package quality

import (
	"github.com/katalvlaran/qualityloop/matrix"
)

// CompositeMatrix couples two single-stage matrices into one 10×10 chain.
//
// Indices 0..4 are the ingredient tiers, 5..9 the item tiers:
//
//	┌                     ┐
//	│   0      forward    │   forward:  ingredients → items (assembler)
//	│ backward    0       │   backward: items → ingredients (recycler)
//	└                     ┘
//
// The diagonal blocks are zero: flow never stays in its own space for one
// step, it always crosses to the other space.
//
// Errors:
//   - matrix.ErrNilMatrix if either stage is nil.
//   - matrix.ErrDimensionMismatch if either stage is not 5×5.
//
// Complexity: O(100).
func CompositeMatrix(forward, backward matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateShape(forward, NumTiers, NumTiers); err != nil {
		return nil, qualityErrorf(opComposite, err)
	}
	if err := matrix.ValidateShape(backward, NumTiers, NumTiers); err != nil {
		return nil, qualityErrorf(opComposite, err)
	}
	res, err := matrix.NewDense(CompositeSize, CompositeSize)
	if err != nil {
		return nil, qualityErrorf(opComposite, err)
	}
	if err = matrix.SetBlock(res, 0, NumTiers, forward); err != nil {
		return nil, qualityErrorf(opComposite, err)
	}
	if err = matrix.SetBlock(res, NumTiers, 0, backward); err != nil {
		return nil, qualityErrorf(opComposite, err)
	}

	return res, nil
}
