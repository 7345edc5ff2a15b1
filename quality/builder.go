package quality

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/qualityloop/matrix"
)

// BuildMatrix returns the 5×5 transition matrix for per-row parameters:
//
//	M[row][col] = TransitionProbability(rows[row].Chance, row, col) · rows[row].Ratio
//
// Implementation:
//   - Stage 1: validate every row (chance, ratio).
//   - Stage 2: fill row by row in fixed row→col order.
//
// Determinism:
//   - Pure; equal parameters yield bit-identical matrices.
//
// Complexity: O(25).
func BuildMatrix(rows RowParams) (*matrix.Dense, error) {
	if err := rows.Validate(); err != nil {
		return nil, qualityErrorf(opBuild, err)
	}
	m, err := matrix.NewDense(NumTiers, NumTiers)
	if err != nil {
		return nil, qualityErrorf(opBuild, err)
	}
	var row, col Tier
	for row = Normal; row <= Legendary; row++ {
		p := rows[row]
		if p.Absorbing() {
			continue // zero row
		}
		c := p.Chance / percent
		for col = Normal; col <= Legendary; col++ {
			if err = m.Set(int(row), int(col), probability(c, row, col)*p.Ratio); err != nil {
				return nil, qualityErrorf(opBuild, err)
			}
		}
	}

	return m, nil
}

// UniformMatrix builds a matrix where every row below keep uses (chance,
// ratio) and rows at or above keep are absorbing. It is BuildMatrix over
// UniformRows.
func UniformMatrix(chance, ratio float64, keep Tier) (*matrix.Dense, error) {
	rows, err := UniformRows(chance, ratio, keep)
	if err != nil {
		return nil, qualityErrorf(opUniform, err)
	}

	return BuildMatrix(rows)
}

// CacheStats is a snapshot of a Builder's cache counters.
type CacheStats struct {
	Hits   uint64
	Misses uint64
}

// Builder memoizes BuildMatrix through an injected Cache. Returned matrices
// are clones, so callers may mutate them without corrupting the cache.
// A Builder is safe for concurrent use when its Cache is.
type Builder struct {
	cache  Cache
	logger *zap.Logger

	hits, misses       atomic.Uint64
	hitsCtr, missesCtr prometheus.Counter
}

// NewBuilder returns a Builder configured by opts. Without WithCache it
// memoizes into a fresh unbounded MapCache.
func NewBuilder(opts ...Option) *Builder {
	o := gatherOptions(opts...)

	return &Builder{
		cache:  o.cache,
		logger: o.logger,
		hitsCtr: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "hits_total",
			Help:        "Transition matrices served from the cache.",
			ConstLabels: o.constLabels,
		}),
		missesCtr: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "misses_total",
			Help:        "Transition matrices built because the cache had no entry.",
			ConstLabels: o.constLabels,
		}),
	}
}

// Build returns the matrix for rows, from the cache when possible.
func (b *Builder) Build(rows RowParams) (*matrix.Dense, error) {
	if m, ok := b.cache.Get(rows); ok {
		b.hits.Add(1)
		b.hitsCtr.Inc()

		return m.Clone().(*matrix.Dense), nil
	}

	m, err := BuildMatrix(rows)
	if err != nil {
		return nil, err
	}
	b.misses.Add(1)
	b.missesCtr.Inc()
	b.cache.Add(rows, m)
	b.logger.Debug("built transition matrix", zap.Any("rows", rows))

	return m.Clone().(*matrix.Dense), nil
}

// Uniform is the cached counterpart of UniformMatrix.
func (b *Builder) Uniform(chance, ratio float64, keep Tier) (*matrix.Dense, error) {
	rows, err := UniformRows(chance, ratio, keep)
	if err != nil {
		return nil, qualityErrorf(opUniform, err)
	}

	return b.Build(rows)
}

// Stats returns the hit/miss counters accumulated so far.
func (b *Builder) Stats() CacheStats {
	return CacheStats{Hits: b.hits.Load(), Misses: b.misses.Load()}
}

// Collectors exposes the cache counters for registration with a prometheus
// Registerer. The Builder never registers them itself.
func (b *Builder) Collectors() []prometheus.Collector {
	return []prometheus.Collector{b.hitsCtr, b.missesCtr}
}
