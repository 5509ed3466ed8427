package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsearch-labs/deepsearch/internal/search"
)

type countingExpansionService struct {
	calls int
}

func (s *countingExpansionService) Expand(rawQuery string) (search.ExpansionResult, error) {
	s.calls++
	return search.ExpansionResult{Original: search.Tokenize(rawQuery)}, nil
}

type erroringExpansionService struct{}

func (erroringExpansionService) Expand(rawQuery string) (search.ExpansionResult, error) {
	return search.ExpansionResult{}, errors.New("boom")
}

func TestCachedExpansionServiceCachesRepeatedQueries(t *testing.T) {
	underlying := &countingExpansionService{}
	c, err := NewRistrettoExpansionCache(16)
	require.NoError(t, err)
	defer c.Close()

	svc := NewCachedExpansionService(underlying, c)

	_, err = svc.Expand("github pull")
	require.NoError(t, err)
	// Ristretto's write path is asynchronous; give the buffer a moment
	// to land before asserting the cache hit.
	time.Sleep(10 * time.Millisecond)

	_, err = svc.Expand("github pull")
	require.NoError(t, err)

	assert.Equal(t, 1, underlying.calls)
}

func TestCachedExpansionServicePropagatesUnderlyingError(t *testing.T) {
	c, err := NewRistrettoExpansionCache(16)
	require.NoError(t, err)
	defer c.Close()

	svc := NewCachedExpansionService(erroringExpansionService{}, c)
	_, err = svc.Expand("anything")
	assert.Error(t, err)
}
