package params_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/qualityloop/loop"
	"github.com/katalvlaran/qualityloop/matrix"
	"github.com/katalvlaran/qualityloop/params"
	"github.com/katalvlaran/qualityloop/quality"
)

func TestCalculator_RecyclerLoopMatchesExact(t *testing.T) {
	calc := params.NewCalculator(nil)
	r := params.DefaultRecycler()

	res, err := calc.RecyclerLoop(1000, r)
	require.NoError(t, err)
	exact, err := calc.RecyclerExact(1000, r)
	require.NoError(t, err)

	require.Len(t, res.Output, quality.NumTiers)
	for i := range exact {
		assert.InDelta(t, exact[i], res.Output[i], 1e-7)
	}
	assert.Greater(t, res.Output[quality.Legendary], 0.0)
	assert.Equal(t, quality.CacheStats{Hits: 1, Misses: 1}, calc.Builder().Stats())
}

func TestCalculator_CrusherLoop(t *testing.T) {
	calc := params.NewCalculator(nil)
	res, err := calc.CrusherLoop(1, params.DefaultAsteroidCrusher())
	require.NoError(t, err)

	// With 80% yield and 12.4% quality, normal flow is r/(1−r), r = 0.8·0.876.
	r := 0.8 * (1 - 0.124)
	assert.InDelta(t, r/(1-r), res.Output[quality.Normal], 1e-9)
	assert.Greater(t, res.Output[quality.Legendary], 0.0)
}

// Quality modules only, every ingredient tier assembled, legendary items kept.
func TestCalculator_RecyclerAssemblerLoop(t *testing.T) {
	calc := params.NewCalculator(nil)
	a := params.DefaultAssembler(0, 4)
	a.KeepFrom = quality.NoKeep

	res, err := calc.RecyclerAssemblerLoop([]float64{100}, a, params.DefaultRecycler())
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch, "a one-element vector is rejected")
	require.Empty(t, res.Output)

	res, err = calc.RecyclerAssemblerLoop([]float64{100, 0, 0, 0, 0}, a, params.DefaultRecycler())
	require.NoError(t, err)
	require.Len(t, res.Output, quality.CompositeSize)
	assert.InDelta(t, 116.46541443053071, res.Output[0], 1e-9)
	assert.InDelta(t, 0.6463127993737495, res.Output[quality.CompositeSize-1], 1e-9)
	assert.Equal(t, 37, res.Iterations)
}

func TestCalculator_LoopOptions(t *testing.T) {
	calc := params.NewCalculator(nil, loop.WithMaxIterations(3))
	_, err := calc.RecyclerLoop(1000, params.DefaultRecycler())
	require.ErrorIs(t, err, loop.ErrNotConverged)
}

func TestCalculator_RecyclerSweep(t *testing.T) {
	defer goleak.VerifyNone(t)

	calc := params.NewCalculator(nil)
	chances := []float64{24.8, 6.2, 0, 12.4}
	points, err := calc.RecyclerSweep(context.Background(), chances, 1)
	require.NoError(t, err)
	require.Len(t, points, len(chances))

	for i, p := range points {
		assert.Equal(t, chances[i], p.Chance, "points keep input order")
	}
	assert.True(t, math.IsInf(points[2].InputPerLegendary, 1))
	assert.Zero(t, points[2].Output[quality.Legendary])

	// Higher quality chance means fewer normal items per legendary.
	assert.Less(t, points[0].InputPerLegendary, points[3].InputPerLegendary)
	assert.Less(t, points[3].InputPerLegendary, points[1].InputPerLegendary)
	assert.InDelta(t, 1/points[0].Output[quality.Legendary], points[0].InputPerLegendary, 1e-9)
}

func TestCalculator_RecyclerSweepErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	calc := params.NewCalculator(nil)
	_, err := calc.RecyclerSweep(context.Background(), []float64{10, 150, 20}, 1)
	require.ErrorIs(t, err, quality.ErrInvalidChance)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = calc.RecyclerSweep(ctx, []float64{10, 20}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCalculator_SharedBuilder(t *testing.T) {
	b := quality.NewBuilder()
	first := params.NewCalculator(b)
	second := params.NewCalculator(b)

	_, err := first.RecyclerLoop(10, params.DefaultRecycler())
	require.NoError(t, err)
	_, err = second.RecyclerLoop(20, params.DefaultRecycler())
	require.NoError(t, err)
	assert.Equal(t, quality.CacheStats{Hits: 1, Misses: 1}, b.Stats())
}
