// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the loop model:
// element-wise add/sub, matrix product, matrix-vector and vector-matrix
// products, and Doolittle LU with inversion. All functions
// perform strict fail-fast validation and return clear errors on mismatch.
//
// Notes:
//   - Every kernel has a flat-slice fast path for *Dense and a generic
//     At/Set fallback; both walk the same loop order, so results agree bitwise.
//   - Kernels never mutate their inputs; results are freshly allocated *Dense.

package matrix

import "fmt"

// ZeroSum is the initial value for dot products and substitutions.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opMul     = "Mul"
	opMatVec  = "MatVec"
	opVecMat  = "VecMat"
	opLU      = "LU"
	opInverse = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErr / setErr decorate accessor failures inside generic fallbacks.
func atErr(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

func setErr(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate result.
//   - Stage 2: flat loop when both are *Dense, otherwise i→j via At/Set.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range res.data {
				res.data[k] = da.data[k] + sign*db.data[k]
			}

			return res, nil
		}
	}

	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErr(opTag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErr(opTag, i, j, err)
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, setErr(opTag, i, j, err)
			}
		}
	}

	return res, nil
}

// Add returns a + b. Shapes must match.
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b. Shapes must match.
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a × b.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate r×c result.
//   - Stage 2: i→k→j accumulation (fast path skips zero a[i,k]);
//     fallback is i→j→k via At.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErr(opMul, i, k, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErr(opMul, k, j, err)
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, setErr(opMul, i, j, err)
			}
		}
	}

	return res, nil
}

// MatVec returns y = m·x (column-vector convention; len(x) == Cols).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		y[i] = ZeroSum
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, atErr(opMatVec, i, j, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// VecMat returns the row-vector product y = x·m (len(x) == Rows, len(y) == Cols).
// This is the propagation step of a Markov flow: y[j] = Σ_i x[i]·m[i,j].
//
// Implementation:
//   - Stage 1: validate m non-nil and len(x) == Rows.
//   - Stage 2: for each output column j accumulate over i in ascending order.
//
// Determinism:
//   - Fixed j→i order; the sum for y[j] always starts from ZeroSum and adds
//     x[0]·m[0,j], x[1]·m[1,j], … in that order.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func VecMat(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	if d, ok := m.(*Dense); ok {
		var i, j int
		var acc float64
		for j = 0; j < cols; j++ {
			acc = ZeroSum
			for i = 0; i < rows; i++ {
				acc += x[i] * d.data[i*cols+j]
			}
			y[j] = acc
		}

		return y, nil
	}

	var (
		mv  float64
		acc float64
		err error
	)
	for j := 0; j < cols; j++ {
		acc = ZeroSum
		for i := 0; i < rows; i++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, atErr(opVecMat, i, j, err)
			}
			acc += x[i] * mv
		}
		y[j] = acc
	}

	return y, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: validate square input; allocate L (diag 1) and U.
//   - Stage 2: for i=0..n-1 build row i of U, guard the pivot, then column i of L.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (U[i,i]==0).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - I − M for an absorbing chain is diagonally dominant by rows in practice,
//     so the missing pivoting is not a concern for this module's inputs.
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	// Materialize A as a flat buffer once; the fallback only differs in how it is read.
	a := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(a, d.data)
	} else {
		var v float64
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, nil, atErr(opLU, i, j, err)
				}
				a[i*n+j] = v
			}
		}
	}
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}

	var (
		i, j, k int
		sum     float64
		pivot   float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = a[i*n+j] - sum
		}

		pivot = U.data[i*n+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (a[j*n+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// Inverse returns A^{-1} via LU and n forward/backward substitutions.
// Implementation:
//   - Stage 1: LU(m).
//   - Stage 2: for each unit column e_col solve L*y = e_col, then U*x = y.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular; ErrNaNInf if the
//     solution overflows.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (*Dense, error) {
	L, U, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := L.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum       float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = ZeroSum - sum // keeps +0 on zero sums
			}
		}
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += U.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / U.data[i*n+i] // pivots were guarded in LU
		}
		for i = 0; i < n; i++ {
			if err = inv.Set(i, col, x[i]); err != nil {
				return nil, setErr(opInverse, i, col, err)
			}
		}
	}

	return inv, nil
}
