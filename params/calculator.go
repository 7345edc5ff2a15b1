package params

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qualityloop/loop"
	"github.com/katalvlaran/qualityloop/quality"
)

// Calculator runs derived machine setups through a shared matrix Builder.
// It is safe for concurrent use.
type Calculator struct {
	builder  *quality.Builder
	loopOpts []loop.Option
}

// NewCalculator returns a Calculator memoizing through b (a fresh Builder
// when b is nil) and passing loopOpts to every accumulation.
func NewCalculator(b *quality.Builder, loopOpts ...loop.Option) *Calculator {
	if b == nil {
		b = quality.NewBuilder()
	}

	return &Calculator{builder: b, loopOpts: loopOpts}
}

// Builder returns the Calculator's matrix Builder.
func (c *Calculator) Builder() *quality.Builder { return c.builder }

// RecyclerLoop feeds input normal-quality items into a pure recycler loop
// and returns the produced flow, input excluded. Output[k] is the production
// rate of tier k for kept tiers and the internal flow for recycled ones.
func (c *Calculator) RecyclerLoop(input float64, r Recycler) (loop.Result, error) {
	rows, err := r.Rows()
	if err != nil {
		return loop.Result{}, paramsErrorf(opRecyclerLoop, err)
	}

	return c.singleStage(opRecyclerLoop, input, rows)
}

// CrusherLoop is RecyclerLoop for an asteroid crusher.
func (c *Calculator) CrusherLoop(input float64, cr AsteroidCrusher) (loop.Result, error) {
	rows, err := cr.Rows()
	if err != nil {
		return loop.Result{}, paramsErrorf(opCrusherLoop, err)
	}

	return c.singleStage(opCrusherLoop, input, rows)
}

func (c *Calculator) singleStage(tag string, input float64, rows quality.RowParams) (loop.Result, error) {
	m, err := c.builder.Build(rows)
	if err != nil {
		return loop.Result{}, paramsErrorf(tag, err)
	}
	v0, err := loop.FromScalarInput(input, quality.NumTiers)
	if err != nil {
		return loop.Result{}, paramsErrorf(tag, err)
	}
	res, err := loop.Accumulate(v0, m, c.loopOpts...)
	if err != nil {
		return loop.Result{}, paramsErrorf(tag, err)
	}

	return res, nil
}

// RecyclerAssemblerLoop couples an assembler (ingredients → items) with a
// recycler (items → ingredients) and accumulates from v0, input included.
// v0 has 10 components (ingredients 0..4, items 5..9) or 5 ingredient
// components. Output[5+k] is the production rate of kept tier-k items.
func (c *Calculator) RecyclerAssemblerLoop(v0 []float64, a Assembler, r Recycler) (loop.Result, error) {
	aRows, err := a.Rows()
	if err != nil {
		return loop.Result{}, paramsErrorf(opCompositeLoop, err)
	}
	rRows, err := r.Rows()
	if err != nil {
		return loop.Result{}, paramsErrorf(opCompositeLoop, err)
	}
	assembler, err := c.builder.Build(aRows)
	if err != nil {
		return loop.Result{}, paramsErrorf(opCompositeLoop, err)
	}
	recycler, err := c.builder.Build(rRows)
	if err != nil {
		return loop.Result{}, paramsErrorf(opCompositeLoop, err)
	}
	m, err := quality.CompositeMatrix(assembler, recycler)
	if err != nil {
		return loop.Result{}, paramsErrorf(opCompositeLoop, err)
	}
	in, err := loop.FromVectorInput(v0, quality.CompositeSize)
	if err != nil {
		return loop.Result{}, paramsErrorf(opCompositeLoop, err)
	}
	res, err := loop.AccumulateWithInput(in, m, c.loopOpts...)
	if err != nil {
		return loop.Result{}, paramsErrorf(opCompositeLoop, err)
	}

	return res, nil
}

// SweepPoint is one chance of a recycler sweep.
type SweepPoint struct {
	Chance float64
	Output []float64
	// InputPerLegendary is input / Output[Legendary]: how many normal items
	// one legendary costs. +Inf when nothing reaches legendary.
	InputPerLegendary float64
}

// RecyclerSweep evaluates a pure recycler loop (keep legendary, recipe ratio
// 1) for every chance concurrently and returns the points in input order.
// The first failure cancels the remaining evaluations.
func (c *Calculator) RecyclerSweep(ctx context.Context, chances []float64, input float64) ([]SweepPoint, error) {
	points := make([]SweepPoint, len(chances))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, chance := range chances {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, err := RecyclerRows(chance, quality.Legendary, 1)
			if err != nil {
				return fmt.Errorf("chance %v: %w", chance, err)
			}
			res, err := c.singleStage(opSweep, input, rows)
			if err != nil {
				return fmt.Errorf("chance %v: %w", chance, err)
			}
			perLegendary := math.Inf(1)
			if legendary := res.Output[quality.Legendary]; legendary > 0 {
				perLegendary = input / legendary
			}
			points[i] = SweepPoint{Chance: chance, Output: res.Output, InputPerLegendary: perLegendary}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, paramsErrorf(opSweep, err)
	}

	return points, nil
}

// RecyclerExact is the closed-form counterpart of RecyclerLoop.
func (c *Calculator) RecyclerExact(input float64, r Recycler) ([]float64, error) {
	rows, err := r.Rows()
	if err != nil {
		return nil, paramsErrorf(opRecyclerLoop, err)
	}
	m, err := c.builder.Build(rows)
	if err != nil {
		return nil, paramsErrorf(opRecyclerLoop, err)
	}
	v0, err := loop.FromScalarInput(input, quality.NumTiers)
	if err != nil {
		return nil, paramsErrorf(opRecyclerLoop, err)
	}
	out, err := loop.Exact(v0, m, false)
	if err != nil {
		return nil, paramsErrorf(opRecyclerLoop, err)
	}

	return out, nil
}
