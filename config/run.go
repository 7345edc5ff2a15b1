package config

import (
	"fmt"

	"github.com/katalvlaran/qualityloop/loop"
	"github.com/katalvlaran/qualityloop/params"
	"github.com/katalvlaran/qualityloop/quality"
)

// Outcome is the evaluated scenario.
type Outcome struct {
	Scenario   Scenario
	Output     []float64
	Iterations int // 0 for exact evaluations
}

// Run evaluates s with calc.
func (s Scenario) Run(calc *params.Calculator) (Outcome, error) {
	out := Outcome{Scenario: s}
	var (
		res loop.Result
		err error
	)
	switch s.Kind {
	case KindRecycler:
		if s.Exact {
			out.Output, err = calc.RecyclerExact(s.Input, s.Recycler)
			return out, err
		}
		res, err = calc.RecyclerLoop(s.Input, s.Recycler)
	case KindCrusher:
		res, err = calc.CrusherLoop(s.Input, s.Crusher)
	case KindRecyclerAssembler:
		v0 := s.InputVector
		if v0 == nil {
			if v0, err = loop.FromScalarInput(s.Input, quality.CompositeSize); err != nil {
				return out, err
			}
		}
		res, err = calc.RecyclerAssemblerLoop(v0, s.Assembler, s.Recycler)
	default:
		return out, fmt.Errorf("kind %q: %w", s.Kind, ErrInvalidScenario)
	}
	if err != nil {
		return out, err
	}
	out.Output, out.Iterations = res.Output, res.Iterations

	return out, nil
}

// LoopOptions returns the loop options implied by the scenario.
func (s Scenario) LoopOptions() []loop.Option {
	if s.MaxIterations > 0 {
		return []loop.Option{loop.WithMaxIterations(s.MaxIterations)}
	}

	return nil
}
