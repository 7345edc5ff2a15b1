package quality

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	metricsNamespace = "qualityloop"
	metricsSubsystem = "matrix_cache"
)

// Option configures a Builder. Options are applied in order (last writer wins).
type Option func(*options)

type options struct {
	cache       Cache
	logger      *zap.Logger
	constLabels prometheus.Labels
}

// WithCache injects the cache a Builder memoizes into. Passing nil panics:
// that is a programmer error, use NoCache to disable memoization.
func WithCache(c Cache) Option {
	if c == nil {
		panic("quality: WithCache: cache must not be nil")
	}

	return func(o *options) { o.cache = c }
}

// WithLogger sets the logger used for debug records on cache misses.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricLabels attaches constant labels to the Builder's counters so
// several Builders can share one registry.
func WithMetricLabels(labels prometheus.Labels) Option {
	return func(o *options) { o.constLabels = labels }
}

func gatherOptions(user ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, set := range user {
		set(&o)
	}
	if o.cache == nil {
		o.cache = NewMapCache()
	}

	return o
}
