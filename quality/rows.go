package quality

import "fmt"

// RowParam configures one row of a transition matrix: the quality chance (%)
// applied to that input tier and the yield ratio (outputs per input).
// The zero value (0, 0) is an absorbing row.
type RowParam struct {
	Chance float64 `yaml:"chance" json:"chance"`
	Ratio  float64 `yaml:"ratio" json:"ratio"`
}

// Absorbing reports whether the row removes its flow from circulation.
func (p RowParam) Absorbing() bool { return p.Ratio == 0 }

// RowParams holds one RowParam per input tier. The array length fixes the
// parameter count at NumTiers; it is comparable and serves as a cache key.
type RowParams [NumTiers]RowParam

// Validate checks every row: chance within [0,100], ratio finite and >= 0.
func (rp RowParams) Validate() error {
	for i, p := range rp {
		if err := validateChance(p.Chance); err != nil {
			return qualityErrorf(opRows, fmt.Errorf("row %d: %w", i, err))
		}
		if err := validateRatio(p.Ratio); err != nil {
			return qualityErrorf(opRows, fmt.Errorf("row %d: %w", i, err))
		}
	}

	return nil
}

// RowParamsFromSlice converts a caller-supplied list into RowParams.
// The list must hold exactly NumTiers entries.
func RowParamsFromSlice(ps []RowParam) (RowParams, error) {
	var rp RowParams
	if len(ps) != NumTiers {
		return rp, qualityErrorf(opRows, fmt.Errorf("got %d: %w", len(ps), ErrInvalidParamCount))
	}
	copy(rp[:], ps)

	return rp, rp.Validate()
}

// UniformRows returns (chance, ratio) for every tier below keep and (0, 0)
// for tiers at or above it. keep == NoKeep circulates every row; keep ==
// Normal absorbs everything.
func UniformRows(chance, ratio float64, keep Tier) (RowParams, error) {
	var rp RowParams
	if !keep.ValidKeep() {
		return rp, qualityErrorf(opRows, fmt.Errorf("keep %d: %w", keep, ErrInvalidTier))
	}
	for t := Normal; t < keep; t++ {
		rp[t] = RowParam{Chance: chance, Ratio: ratio}
	}

	return rp, rp.Validate()
}

// WithKept returns a copy of rp where rows at or above keep are absorbing.
func (rp RowParams) WithKept(keep Tier) (RowParams, error) {
	if !keep.ValidKeep() {
		return rp, qualityErrorf(opRows, fmt.Errorf("keep %d: %w", keep, ErrInvalidTier))
	}
	out := rp
	for t := keep; t < NoKeep; t++ {
		out[t] = RowParam{}
	}

	return out, nil
}
