// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qualityloop/matrix"
)

func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.Equal(t, want, MustAt(t, I, i, j))
		}
	}

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestSetBlockAndBlock(t *testing.T) {
	dst := MustDense(t, 4, 4)
	src := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, matrix.SetBlock(dst, 0, 2, src))
	require.NoError(t, matrix.SetBlock(dst, 2, 0, src))

	want := MustFromRows(t, [][]float64{
		{0, 0, 1, 2},
		{0, 0, 3, 4},
		{1, 2, 0, 0},
		{3, 4, 0, 0},
	})
	assert.True(t, dst.Equal(want), "got:\n%v", dst)

	got, err := matrix.Block(dst, 0, 2, 2, 2)
	require.NoError(t, err)
	assert.True(t, got.Equal(src))

	// Through the interface path as well.
	got, err = matrix.Block(hide{dst}, 2, 0, 2, 2)
	require.NoError(t, err)
	assert.True(t, got.Equal(src))
}

func TestSetBlock_Errors(t *testing.T) {
	dst := MustDense(t, 3, 3)
	src := MustDense(t, 2, 2)

	require.ErrorIs(t, matrix.SetBlock(dst, 2, 0, src), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.SetBlock(dst, 0, 2, src), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.SetBlock(dst, -1, 0, src), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.SetBlock(nil, 0, 0, src), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.SetBlock(dst, 0, 0, nil), matrix.ErrNilMatrix)

	_, err := matrix.Block(dst, 2, 2, 2, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestRowSums(t *testing.T) {
	m := MustFromRows(t, [][]float64{{0.5, 0.25, 0.25}, {0, 0, 0}, {1, 2, 3}})
	sums, err := matrix.RowSums(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 6}, sums)
}

func TestAllClose(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1 + 1e-13, 2}, {3, 4 - 1e-13}})

	ok, err := matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-14)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, MustDense(t, 3, 2), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
