package loop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qualityloop/loop"
	"github.com/katalvlaran/qualityloop/matrix"
	"github.com/katalvlaran/qualityloop/quality"
)

func TestExact_RecyclerReference(t *testing.T) {
	got, err := loop.Exact(unit(quality.NumTiers), recyclerMatrix(t, 25), false)
	require.NoError(t, err)

	want := []float64{
		3.0 / 13.0,
		0.08520710059171596,
		0.014419663177059628,
		0.0024402506915023985,
		0.00037281607786842193,
	}
	requireRelClose(t, want, got, 1e-12)
}

func TestExact_MatchesIterative(t *testing.T) {
	forward, err := quality.UniformMatrix(12.4, 1.2, quality.Epic)
	require.NoError(t, err)
	backward := recyclerMatrix(t, 18.6)
	composite, err := quality.CompositeMatrix(forward, backward)
	require.NoError(t, err)

	tests := []struct {
		name string
		m    matrix.Matrix
		v0   []float64
	}{
		{"recycler", recyclerMatrix(t, 24.8), []float64{1000, 0, 0, 0, 0}},
		{"recycler mixed input", recyclerMatrix(t, 6.2), []float64{10, 5, 2, 1, 0}},
		{"composite", composite, append([]float64{100, 0, 0, 0, 0}, make([]float64, 5)...)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, include := range []bool{false, true} {
				exact, err := loop.Exact(tc.v0, tc.m, include)
				require.NoError(t, err)

				var res loop.Result
				if include {
					res, err = loop.AccumulateWithInput(tc.v0, tc.m)
				} else {
					res, err = loop.Accumulate(tc.v0, tc.m)
				}
				require.NoError(t, err)
				for i := range exact {
					assert.InDeltaf(t, exact[i], res.Output[i], 1e-8, "include=%v component %d", include, i)
				}
			}
		})
	}
}

func TestExact_Singular(t *testing.T) {
	// Nothing kept and nothing lost: I − M is singular.
	m, err := quality.ProbabilityMatrix(10)
	require.NoError(t, err)

	_, err = loop.Exact(unit(quality.NumTiers), m, false)
	require.ErrorIs(t, err, matrix.ErrSingular)
}
