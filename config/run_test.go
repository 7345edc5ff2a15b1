package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qualityloop/config"
	"github.com/katalvlaran/qualityloop/loop"
	"github.com/katalvlaran/qualityloop/params"
	"github.com/katalvlaran/qualityloop/quality"
)

func mustParse(t *testing.T, doc string) config.Scenario {
	t.Helper()
	s, err := config.Parse([]byte(doc))
	require.NoError(t, err)

	return s
}

func TestRun_Kinds(t *testing.T) {
	calc := params.NewCalculator(nil)

	rec, err := mustParse(t, "kind: recycler\ninput: 1000\n").Run(calc)
	require.NoError(t, err)
	require.Len(t, rec.Output, quality.NumTiers)
	assert.Positive(t, rec.Iterations)

	exact, err := mustParse(t, "kind: recycler\ninput: 1000\nexact: true\n").Run(calc)
	require.NoError(t, err)
	assert.Zero(t, exact.Iterations)
	for i := range exact.Output {
		assert.InDelta(t, exact.Output[i], rec.Output[i], 1e-7)
	}

	crush, err := mustParse(t, "kind: crusher\ninput: 1\n").Run(calc)
	require.NoError(t, err)
	assert.Greater(t, crush.Output[quality.Legendary], 0.0)

	comp, err := mustParse(t, `
kind: recycler-assembler
input: 100
assembler:
  keep_from: none
`).Run(calc)
	require.NoError(t, err)
	require.Len(t, comp.Output, quality.CompositeSize)
	assert.InDelta(t, 0.6463127993737495, comp.Output[9], 1e-9)

	vec, err := mustParse(t, `
kind: recycler-assembler
input_vector: [100, 0, 0, 0, 0]
assembler:
  keep_from: none
`).Run(calc)
	require.NoError(t, err)
	assert.Equal(t, comp.Output, vec.Output)
}

func TestRun_MachineErrors(t *testing.T) {
	s := mustParse(t, "recycler:\n  modules: 9\n")
	_, err := s.Run(params.NewCalculator(nil))
	require.ErrorIs(t, err, params.ErrModuleSlots)
}

func TestRun_UnknownKindFromCode(t *testing.T) {
	s := config.Default()
	s.Kind = "smelter"
	_, err := s.Run(params.NewCalculator(nil))
	require.ErrorIs(t, err, config.ErrInvalidScenario)
}

func TestScenario_LoopOptions(t *testing.T) {
	assert.Empty(t, config.Default().LoopOptions())

	s := mustParse(t, "max_iterations: 2\n")
	_, err := s.Run(params.NewCalculator(nil, s.LoopOptions()...))
	require.ErrorIs(t, err, loop.ErrNotConverged)
}
