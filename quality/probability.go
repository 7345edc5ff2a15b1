package quality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qualityloop/matrix"
)

// percent normalizes a quality chance given in %.
const percent = 100.0

// TransitionProbability returns the probability that one craft with the given
// quality chance (in %) turns tier-in ingredients into a tier-out product.
//
// The law (empirical, reproduced exactly):
//
//	c = chance/100
//	out <  in                  → 0            (no downgrades)
//	in  == Legendary           → 1            (legendary stays legendary)
//	out == in                  → 1 − c
//	out == Legendary           → c / 10^(3−in)
//	otherwise                  → (c·9/10) / 10^(out−in−1)
//
// For every chance in [0,100] and every input tier the probabilities over
// all output tiers sum to 1.
//
// Errors:
//   - ErrInvalidChance if chance is NaN or outside [0,100].
//   - ErrInvalidTier if in or out is not a tier.
//
// Complexity: O(1).
func TransitionProbability(chance float64, in, out Tier) (float64, error) {
	if err := validateChance(chance); err != nil {
		return 0, qualityErrorf(opProbability, err)
	}
	if !in.Valid() || !out.Valid() {
		return 0, qualityErrorf(opProbability, fmt.Errorf("%d→%d: %w", in, out, ErrInvalidTier))
	}

	return probability(chance/percent, in, out), nil
}

// probability is the unchecked law; c is already normalized to [0,1].
func probability(c float64, in, out Tier) float64 {
	switch {
	case out < in:
		return 0
	case in == Legendary:
		return 1
	case out == in:
		return 1 - c
	case out == Legendary:
		return c / math.Pow10(int(Legendary-1-in))
	default:
		return (c * 9 / 10) / math.Pow10(int(out-in-1))
	}
}

// ProbabilityMatrix returns the 5×5 matrix of TransitionProbability values
// (row = input tier, column = output tier) with no yield and no kept rows.
//
// Complexity: O(25).
func ProbabilityMatrix(chance float64) (*matrix.Dense, error) {
	return UniformMatrix(chance, 1, NoKeep)
}

func validateChance(chance float64) error {
	if math.IsNaN(chance) || chance < 0 || chance > percent {
		return fmt.Errorf("chance %v: %w", chance, ErrInvalidChance)
	}

	return nil
}

func validateRatio(ratio float64) error {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio < 0 {
		return fmt.Errorf("ratio %v: %w", ratio, ErrInvalidRatio)
	}

	return nil
}
