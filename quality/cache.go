package quality

import (
	"fmt"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/qualityloop/matrix"
)

// Cache stores built transition matrices keyed by their row parameters.
// Implementations must be safe for concurrent use. Entries are write-once
// and idempotent: storing the same key twice stores an identical matrix.
type Cache interface {
	Get(key RowParams) (*matrix.Dense, bool)
	Add(key RowParams, m *matrix.Dense)
	Len() int
}

// MapCache is an unbounded concurrent cache backed by sync.Map.
type MapCache struct {
	m sync.Map
	n atomic.Int64
}

// NewMapCache returns an empty unbounded cache.
func NewMapCache() *MapCache { return &MapCache{} }

// Get implements Cache.
func (c *MapCache) Get(key RowParams) (*matrix.Dense, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}

	return v.(*matrix.Dense), true
}

// Add implements Cache. The first stored matrix for a key wins.
func (c *MapCache) Add(key RowParams, m *matrix.Dense) {
	if _, loaded := c.m.LoadOrStore(key, m); !loaded {
		c.n.Add(1)
	}
}

// Len implements Cache.
func (c *MapCache) Len() int { return int(c.n.Load()) }

// LRUCache is a bounded cache evicting the least recently used matrix.
type LRUCache struct {
	c *lru.Cache[RowParams, *matrix.Dense]
}

// NewLRUCache returns a cache holding at most size matrices.
func NewLRUCache(size int) (*LRUCache, error) {
	if size <= 0 {
		return nil, qualityErrorf(opLRU, fmt.Errorf("size %d: %w", size, ErrInvalidCacheSize))
	}
	c, err := lru.New[RowParams, *matrix.Dense](size)
	if err != nil {
		return nil, qualityErrorf(opLRU, err)
	}

	return &LRUCache{c: c}, nil
}

// Get implements Cache.
func (c *LRUCache) Get(key RowParams) (*matrix.Dense, bool) { return c.c.Get(key) }

// Add implements Cache.
func (c *LRUCache) Add(key RowParams, m *matrix.Dense) { c.c.Add(key, m) }

// Len implements Cache.
func (c *LRUCache) Len() int { return c.c.Len() }

// NoCache never stores anything; every Build is a miss.
type NoCache struct{}

// Get implements Cache.
func (NoCache) Get(RowParams) (*matrix.Dense, bool) { return nil, false }

// Add implements Cache.
func (NoCache) Add(RowParams, *matrix.Dense) {}

// Len implements Cache.
func (NoCache) Len() int { return 0 }
