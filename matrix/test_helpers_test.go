// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for the kernels.
//   • Keep all data finite so numeric-policy checks stay isolated.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qualityloop/matrix"
)

// Shared tolerances for floating-point comparisons.
const (
	rtol = 1e-12
	atol = 1e-12
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the interface (non-*Dense) paths of a kernel.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFromRows builds a *Dense from a literal or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireClose asserts AllClose(got, want) with the shared tolerances.
func requireClose(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// fixture2x2 is an invertible matrix with a non-zero leading pivot.
func fixture2x2(t testing.TB) *matrix.Dense {
	return MustFromRows(t, [][]float64{
		{4, 7},
		{2, 6},
	})
}
