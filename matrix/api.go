// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks (identity, blocks, row sums, comparison).
//   - Avoid logic duplication: each facade delegates to a canonical kernel or validator.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

import (
	"fmt"
	"math"
)

const (
	opIdentity = "NewIdentity"
	opSetBlock = "SetBlock"
	opBlock    = "Block"
	opRowSums  = "RowSums"
	opAllClose = "AllClose"
)

// NewIdentity returns I_n (n×n identity).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// SetBlock copies src into dst with its top-left corner at (r0, c0).
// The block must fit entirely; dst is mutated in place, src is untouched.
//
// Errors:
//   - ErrNilMatrix (either side), ErrOutOfRange (negative corner),
//     ErrDimensionMismatch (block overflows dst).
//
// Complexity: O(src.Rows()*src.Cols()).
func SetBlock(dst Matrix, r0, c0 int, src Matrix) error {
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opSetBlock, err)
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opSetBlock, err)
	}
	if r0 < 0 || c0 < 0 {
		return matrixErrorf(opSetBlock, fmt.Errorf("corner (%d,%d): %w", r0, c0, ErrOutOfRange))
	}
	h, w := src.Rows(), src.Cols()
	if r0+h > dst.Rows() || c0+w > dst.Cols() {
		return matrixErrorf(opSetBlock, ErrDimensionMismatch)
	}

	if dd, okD := dst.(*Dense); okD {
		if sd, okS := src.(*Dense); okS {
			for i := 0; i < h; i++ {
				copy(dd.data[(r0+i)*dd.c+c0:(r0+i)*dd.c+c0+w], sd.data[i*w:(i+1)*w])
			}

			return nil
		}
	}

	var v float64
	var err error
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if v, err = src.At(i, j); err != nil {
				return atErr(opSetBlock, i, j, err)
			}
			if err = dst.Set(r0+i, c0+j, v); err != nil {
				return setErr(opSetBlock, r0+i, c0+j, err)
			}
		}
	}

	return nil
}

// Block returns a copy of the h×w window of m starting at (r0, c0).
// Complexity: O(h*w).
func Block(m Matrix, r0, c0, h, w int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opBlock, err)
	}
	if r0 < 0 || c0 < 0 {
		return nil, matrixErrorf(opBlock, ErrOutOfRange)
	}
	if r0+h > m.Rows() || c0+w > m.Cols() {
		return nil, matrixErrorf(opBlock, ErrDimensionMismatch)
	}
	out, err := NewDense(h, w)
	if err != nil {
		return nil, matrixErrorf(opBlock, err)
	}
	var v float64
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			if v, err = m.At(r0+i, c0+j); err != nil {
				return nil, atErr(opBlock, r0+i, c0+j, err)
			}
			out.data[i*w+j] = v
		}
	}

	return out, nil
}

// RowSums returns r where r[i] = Σ_j m[i,j].
// Implementation: MatVec(m, ones(cols)). No custom loops.
// Complexity: O(r*c).
//
// Used to check that transition rows are (sub-)stochastic.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}

	return MatVec(m, ones)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if every element satisfies the relation; NaN never matches.
//
// Policy:
//   - a and b must be non-nil and share a shape.
//   - rtol, atol must be finite; negative values are normalized to |x|.
//
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var (
		av, bv float64
		err    error
	)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, atErr(opAllClose, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, atErr(opAllClose, i, j, err)
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil // early exit on first violation (NaN included)
			}
		}
	}

	return true, nil
}
