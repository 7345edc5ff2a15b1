package loop

import (
	"strconv"

	"go.uber.org/zap"
)

const (
	// Tolerance is the absolute-sum residual below which the loop is settled.
	// It is a fixed tuning constant, not an option.
	Tolerance = 1e-10

	// DefaultMaxIterations caps the number of matrix applications per call.
	DefaultMaxIterations = 100000
)

const panicMaxIterations = "loop: WithMaxIterations: n must be > 0, got "

// Option configures an accumulation call.
type Option func(*options)

type options struct {
	maxIterations int
	logger        *zap.Logger
}

// WithMaxIterations overrides the iteration ceiling. Panics if n <= 0
// (programmer error).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterations + strconv.Itoa(n))
	}

	return func(o *options) { o.maxIterations = n }
}

// WithLogger sets the logger receiving one debug record per accumulation.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(user ...Option) options {
	o := options{
		maxIterations: DefaultMaxIterations,
		logger:        zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
