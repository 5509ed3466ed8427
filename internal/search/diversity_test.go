package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/deepsearch-labs/deepsearch/pkg/models"
)

func TestApplyDiversityFilterKeepsHighestScoring(t *testing.T) {
	e := &models.IndexedRecord{URL: "https://notion.so/page?pvs=12", Title: "Plan"}
	f := &models.IndexedRecord{URL: "https://notion.so/page?pvs=25", Title: "Plan"}

	results := []models.ScoredRecord{
		{Record: e, FinalScore: 0.4},
		{Record: f, FinalScore: 0.9},
	}

	kept := applyDiversityFilter(results)
	assert.Len(t, kept, 1)
	assert.Equal(t, f.URL, kept[0].Record.URL)
}

func TestApplyDiversityFilterTieBreaksOnLastVisit(t *testing.T) {
	e := &models.IndexedRecord{URL: "https://example.com/a?x=1", LastVisit: 100}
	f := &models.IndexedRecord{URL: "https://example.com/a?x=2", LastVisit: 200}

	results := []models.ScoredRecord{
		{Record: e, FinalScore: 0.5},
		{Record: f, FinalScore: 0.5},
	}

	kept := applyDiversityFilter(results)
	assert.Len(t, kept, 1)
	assert.Equal(t, f.URL, kept[0].Record.URL)
}

// Diversity idempotence (spec §8): applying the filter twice yields the
// same set as applying it once.
func TestApplyDiversityFilterIdempotent(t *testing.T) {
	a := &models.IndexedRecord{URL: "https://example.com/a", LastVisit: 100}
	b := &models.IndexedRecord{URL: "https://example.com/a/", LastVisit: 50}
	c := &models.IndexedRecord{URL: "https://other.com/b", LastVisit: 10}

	results := []models.ScoredRecord{
		{Record: a, FinalScore: 0.7},
		{Record: b, FinalScore: 0.3},
		{Record: c, FinalScore: 0.2},
	}

	once := applyDiversityFilter(results)
	twice := applyDiversityFilter(once)
	assert.ElementsMatch(t, urlsOf(once), urlsOf(twice))
}

func urlsOf(results []models.ScoredRecord) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Record.URL
	}
	return out
}
