package loop

import (
	"github.com/katalvlaran/qualityloop/matrix"
)

// Exact returns the closed form of the accumulation:
//
//	Σ_{k≥1} v0·M^k = v0·M·(I − M)^{-1}
//
// and, when includeInput is set, v0·(I + M·(I − M)^{-1}). It agrees with Accumulate /
// AccumulateWithInput up to the iterative tail below Tolerance.
//
// Errors:
//   - Same validation errors as Accumulate.
//   - matrix.ErrSingular when I − M is singular (a non-contracting chain).
//
// Notes:
//   - A non-contracting chain whose I − M happens to be invertible yields a
//     meaningless (often negative) vector here; Accumulate reports those as
//     ErrNotConverged.
//
// Complexity: O(n³).
func Exact(v0 []float64, m matrix.Matrix, includeInput bool) ([]float64, error) {
	if err := validateChain(v0, m); err != nil {
		return nil, loopErrorf(opExact, err)
	}
	n := m.Rows()
	I, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, loopErrorf(opExact, err)
	}
	fundamental, err := matrix.Sub(I, m)
	if err != nil {
		return nil, loopErrorf(opExact, err)
	}
	inv, err := matrix.Inverse(fundamental)
	if err != nil {
		return nil, loopErrorf(opExact, err)
	}
	transfer, err := matrix.Mul(m, inv)
	if err != nil {
		return nil, loopErrorf(opExact, err)
	}
	if includeInput {
		if transfer, err = matrix.Add(transfer, I); err != nil {
			return nil, loopErrorf(opExact, err)
		}
	}
	out, err := matrix.VecMat(v0, transfer)
	if err != nil {
		return nil, loopErrorf(opExact, err)
	}

	return out, nil
}
