package quality

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChance indicates a quality chance that is NaN or outside [0,100].
	ErrInvalidChance = errors.New("quality: chance must be within [0,100]")

	// ErrInvalidTier indicates a tier (or keep threshold) outside its range.
	ErrInvalidTier = errors.New("quality: tier out of range")

	// ErrInvalidRatio indicates a negative or non-finite production ratio.
	ErrInvalidRatio = errors.New("quality: ratio must be finite and >= 0")

	// ErrInvalidParamCount indicates a row parameter list whose length is not NumTiers.
	ErrInvalidParamCount = errors.New("quality: exactly 5 row parameters required")

	// ErrInvalidCacheSize indicates a non-positive LRU capacity.
	ErrInvalidCacheSize = errors.New("quality: cache size must be > 0")
)

// Operation tags for error wrapping.
const (
	opProbability = "TransitionProbability"
	opBuild       = "BuildMatrix"
	opUniform     = "UniformMatrix"
	opRows        = "RowParams"
	opComposite   = "CompositeMatrix"
	opParseTier   = "ParseTier"
	opLRU         = "NewLRUCache"
)

// qualityErrorf wraps err with an operation tag, preserving it for errors.Is.
func qualityErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
