package loop_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qualityloop/matrix"
	"github.com/katalvlaran/qualityloop/quality"
)

// recyclerMatrix is a recycler at chance% keeping legendaries.
func recyclerMatrix(t testing.TB, chance float64) *matrix.Dense {
	t.Helper()
	m, err := quality.UniformMatrix(chance, 0.25, quality.Legendary)
	require.NoError(t, err)

	return m
}

func unit(size int) []float64 {
	v := make([]float64, size)
	v[0] = 1

	return v
}

// requireRelClose compares component-wise with a relative tolerance.
func requireRelClose(t testing.TB, want, got []float64, rel float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		tol := rel * math.Max(math.Abs(want[i]), 1e-300)
		require.InDeltaf(t, want[i], got[i], tol, "component %d", i)
	}
}
