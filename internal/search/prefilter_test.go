package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/deepsearch-labs/deepsearch/pkg/models"
)

func TestPassesPreFilter(t *testing.T) {
	r := &models.IndexedRecord{
		Title: "GitHub Pull Requests",
		URL:   "github.com/pulls",
	}
	ctx := &models.QueryContext{RawQuery: "github pull", OriginalTokens: []string{"github", "pull"}}
	assert.True(t, PassesPreFilter(r, ctx))

	noOverlap := &models.QueryContext{RawQuery: "zzzzz", OriginalTokens: []string{"zzzzz"}}
	assert.False(t, PassesPreFilter(r, noOverlap))

	rawQuerySubstring := &models.QueryContext{RawQuery: "pull requests", OriginalTokens: []string{"nomatch"}}
	assert.True(t, PassesPreFilter(r, rawQuerySubstring))
}

func TestHaystackIncludesMetaWhenPresent(t *testing.T) {
	r := &models.IndexedRecord{
		Title:           "Plan",
		URL:             "example.com/plan",
		HasMeta:         true,
		MetaDescription: "quarterly roadmap",
		MetaKeywords:    []string{"okr", "strategy"},
	}
	h := Haystack(r)
	assert.Contains(t, h, "roadmap")
	assert.Contains(t, h, "okr")
	assert.Contains(t, h, "strategy")
}

func TestHaystackOmitsMetaWhenAbsent(t *testing.T) {
	r := &models.IndexedRecord{Title: "Plan", URL: "example.com/plan", MetaDescription: "should not appear"}
	h := Haystack(r)
	assert.NotContains(t, h, "should not appear")
}
