package loop

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/qualityloop/matrix"
)

// Result is the outcome of an accumulation.
type Result struct {
	// Output holds one total per index of the input vector.
	Output []float64
	// Iterations is the number of matrix applications performed.
	Iterations int
	// Residual is Σ|v_k − v_{k−1}| at the last iteration (< Tolerance).
	Residual float64
}

// Accumulate returns Σ_{k≥1} v0·M^k: every flow produced by the loop, without
// the injected input itself. For a recycler loop fed at Normal quality this
// is the output-per-input view.
//
// Implementation:
//   - Stage 1: validate M square of size 5 or 10 and len(v0) == size, v0 finite.
//   - Stage 2: iterate next = prev·M, add next to the total, stop once
//     Σ|next − prev| < Tolerance.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf, ErrInvalidSize.
//   - ErrNotConverged after the iteration ceiling or on NaN/Inf flow.
//
// Precondition:
//   - M must drain: every flow eventually reaches a kept (zero) row or is
//     lost to a ratio below 1. The stop rule only compares consecutive
//     vectors, so a chain with a fixed point (v·M = v ≠ 0, e.g. the identity
//     from UniformMatrix(0, 1, quality.NoKeep)) settles after one step with a
//     finite total although the true sum diverges. Exact reports such chains
//     as matrix.ErrSingular.
//
// Complexity:
//   - Time O(k·n²) for k iterations, Space O(n).
func Accumulate(v0 []float64, m matrix.Matrix, opts ...Option) (Result, error) {
	return accumulate(opAccumulate, v0, m, false, gatherOptions(opts...))
}

// AccumulateWithInput returns v0 + Σ_{k≥1} v0·M^k: the injected input is
// counted as flow present in the loop. For composite chains this is the view
// where the ingredient half includes the raw feed.
//
// Same validation, stop rule and errors as Accumulate.
func AccumulateWithInput(v0 []float64, m matrix.Matrix, opts ...Option) (Result, error) {
	return accumulate(opAccumulateWithInput, v0, m, true, gatherOptions(opts...))
}

func accumulate(tag string, v0 []float64, m matrix.Matrix, includeInput bool, o options) (Result, error) {
	if err := validateChain(v0, m); err != nil {
		return Result{}, loopErrorf(tag, err)
	}
	n := len(v0)

	prev := make([]float64, n)
	copy(prev, v0)
	total := make([]float64, n)
	if includeInput {
		copy(total, v0)
	}

	var (
		next     []float64
		residual float64
		err      error
	)
	for it := 1; it <= o.maxIterations; it++ {
		if next, err = matrix.VecMat(prev, m); err != nil {
			return Result{}, loopErrorf(tag, err)
		}
		residual = 0
		for j := 0; j < n; j++ {
			total[j] += next[j]
			residual += math.Abs(next[j] - prev[j])
		}
		if math.IsNaN(residual) || math.IsInf(residual, 0) {
			return Result{}, loopErrorf(tag, fmt.Errorf("flow diverged after %d iterations: %w", it, ErrNotConverged))
		}
		if residual < Tolerance {
			o.logger.Debug("loop settled",
				zap.String("op", tag),
				zap.Int("iterations", it),
				zap.Float64("residual", residual),
			)

			return Result{Output: total, Iterations: it, Residual: residual}, nil
		}
		prev = next
	}

	o.logger.Warn("loop did not settle",
		zap.String("op", tag),
		zap.Int("max_iterations", o.maxIterations),
		zap.Float64("residual", residual),
	)

	return Result{}, loopErrorf(tag, fmt.Errorf("residual %g after %d iterations: %w", residual, o.maxIterations, ErrNotConverged))
}

func validateChain(v0 []float64, m matrix.Matrix) error {
	if err := matrix.ValidateSquare(m); err != nil {
		return err
	}
	if err := validateSize(m.Rows()); err != nil {
		return err
	}
	if err := matrix.ValidateVecLen(v0, m.Rows()); err != nil {
		return err
	}

	return validateFinite(v0)
}
