// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qualityloop/matrix"
)

func TestAddSub(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireClose(t, MustFromRows(t, [][]float64{{11, 22}, {33, 44}}), sum)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	requireClose(t, MustFromRows(t, [][]float64{{9, 18}, {27, 36}}), diff)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{5, 6}, {7, 8}})
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireClose(t, MustFromRows(t, [][]float64{{19, 22}, {43, 50}}), got)

	rect := MustFromRows(t, [][]float64{{1, 0, 2}})
	_, err = matrix.Mul(rect, rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVecVecMat(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	y, err := matrix.MatVec(m, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 15}, y)

	x, err := matrix.VecMat([]float64{1, 2}, m)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 12, 15}, x)

	_, err = matrix.VecMat([]float64{1, 2, 3}, m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.VecMat(nil, m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLU(t *testing.T) {
	a := MustFromRows(t, [][]float64{{4, 3}, {6, 3}})
	L, U, err := matrix.LU(a)
	require.NoError(t, err)
	assert.True(t, L.Equal(MustFromRows(t, [][]float64{{1, 0}, {1.5, 1}})), "L:\n%v", L)
	assert.True(t, U.Equal(MustFromRows(t, [][]float64{{4, 3}, {0, -1.5}})), "U:\n%v", U)

	prod, err := matrix.Mul(L, U)
	require.NoError(t, err)
	requireClose(t, a, prod)
}

func TestLU_Errors(t *testing.T) {
	for name, m := range map[string]*matrix.Dense{
		"zero leading pivot": MustFromRows(t, [][]float64{{0, 1}, {1, 0}}),
		"rank deficient":     MustFromRows(t, [][]float64{{1, 2}, {2, 4}}),
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := matrix.LU(m)
			require.ErrorIs(t, err, matrix.ErrSingular)
			_, err = matrix.Inverse(m)
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}

	_, _, err := matrix.LU(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, _, err = matrix.LU(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverse(t *testing.T) {
	inv, err := matrix.Inverse(fixture2x2(t))
	require.NoError(t, err)
	requireClose(t, MustFromRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}), inv)

	// A·A⁻¹ = I on a larger, diagonally dominant system.
	a := MustFromRows(t, [][]float64{
		{10, 1, 0, 2},
		{1, 12, 3, 0},
		{0, 2, 9, 1},
		{3, 0, 1, 11},
	})
	inv, err = matrix.Inverse(a)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	requireClose(t, I, prod)
}

// TestHelpers_InterfaceHiding_Fallback ensures that hiding the concrete type
// forces the interface paths and yields the same results as *Dense.
func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{2, 1, 0}, {1, 3, 1}, {0, 1, 4}})
	b := MustFromRows(t, [][]float64{{1, 0, 2}, {0, 1, 0}, {3, 0, 1}})
	x := []float64{0.5, -1, 2}
	wa := hide{a}

	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add(wa, b)
	require.NoError(t, err)
	assert.True(t, fast.Equal(slow), "Add")

	fast, err = matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err = matrix.Mul(wa, b)
	require.NoError(t, err)
	assert.True(t, fast.Equal(slow), "Mul")

	vf, err := matrix.VecMat(x, a)
	require.NoError(t, err)
	vs, err := matrix.VecMat(x, wa)
	require.NoError(t, err)
	assert.Equal(t, vf, vs, "VecMat")

	vf, err = matrix.MatVec(a, x)
	require.NoError(t, err)
	vs, err = matrix.MatVec(wa, x)
	require.NoError(t, err)
	assert.Equal(t, vf, vs, "MatVec")

	fast, err = matrix.Inverse(a)
	require.NoError(t, err)
	slow, err = matrix.Inverse(wa)
	require.NoError(t, err)
	assert.True(t, fast.Equal(slow), "Inverse")
}
