// Package cache provides a bounded, process-wide cache of expanded
// query tokens, replacing the teacher's unbounded map+mutex cache
// manager (internal/cache/cache_manager.go in the teacher) with a
// size-aware ristretto cache suited to the "read-only process-wide
// state, initialized once" role spec §9 describes for the synonym
// table.
package cache

import (
	"fmt"

	"github.com/deepsearch-labs/deepsearch/internal/search"
	"github.com/dgraph-io/ristretto/v2"
)

// ExpansionCache defines the cache operations a decorator needs,
// mirroring the teacher's CacheManager interface shape.
type ExpansionCache interface {
	Get(rawQuery string) (search.ExpansionResult, bool)
	Set(rawQuery string, result search.ExpansionResult)
}

// RistrettoExpansionCache is the default ExpansionCache, backed by
// github.com/dgraph-io/ristretto/v2.
type RistrettoExpansionCache struct {
	store *ristretto.Cache[string, search.ExpansionResult]
}

// NewRistrettoExpansionCache builds a cache sized for maxEntries
// expansion results.
func NewRistrettoExpansionCache(maxEntries int64) (*RistrettoExpansionCache, error) {
	store, err := ristretto.NewCache(&ristretto.Config[string, search.ExpansionResult]{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("deepsearch/cache: constructing ristretto cache: %w", err)
	}
	return &RistrettoExpansionCache{store: store}, nil
}

func (c *RistrettoExpansionCache) Get(rawQuery string) (search.ExpansionResult, bool) {
	return c.store.Get(rawQuery)
}

func (c *RistrettoExpansionCache) Set(rawQuery string, result search.ExpansionResult) {
	c.store.Set(rawQuery, result, 1)
}

// Close releases ristretto's background goroutines.
func (c *RistrettoExpansionCache) Close() {
	c.store.Close()
}

// CachedExpansionService decorates an search.ExpansionService with a
// cache lookup, so repeated identical queries (a user retyping, a
// debounced live-search UI re-issuing the same prefix) skip the fuzzy
// matching pass entirely.
type CachedExpansionService struct {
	underlying search.ExpansionService
	cache      ExpansionCache
}

// NewCachedExpansionService wraps underlying with cache.
func NewCachedExpansionService(underlying search.ExpansionService, cache ExpansionCache) *CachedExpansionService {
	return &CachedExpansionService{underlying: underlying, cache: cache}
}

func (s *CachedExpansionService) Expand(rawQuery string) (search.ExpansionResult, error) {
	if cached, ok := s.cache.Get(rawQuery); ok {
		return cached, nil
	}
	result, err := s.underlying.Expand(rawQuery)
	if err != nil {
		return search.ExpansionResult{}, err
	}
	s.cache.Set(rawQuery, result)
	return result, nil
}
