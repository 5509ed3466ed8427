package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/deepsearch-labs/deepsearch/pkg/models"
)

func TestScoreRecencyDecay(t *testing.T) {
	w := DefaultWeights()
	now := int64(1000) * millisPerDay

	fresh := &models.IndexedRecord{LastVisit: now}
	assert.Equal(t, 1.0, scoreRecency(fresh, nil, &w, &searchAux{nowMillis: now}))

	halfLifeAgo := &models.IndexedRecord{LastVisit: now - int64(w.RecencyHalfLifeDays)*millisPerDay}
	assert.InDelta(t, 0.5, scoreRecency(halfLifeAgo, nil, &w, &searchAux{nowMillis: now}), 1e-9)

	future := &models.IndexedRecord{LastVisit: now + millisPerDay}
	assert.Equal(t, 1.0, scoreRecency(future, nil, &w, &searchAux{nowMillis: now}))
}

func TestScoreVisitCount(t *testing.T) {
	w := DefaultWeights()
	zero := &models.IndexedRecord{VisitCount: 0}
	assert.Equal(t, 0.0, scoreVisitCount(zero, nil, &w, nil))

	atCap := &models.IndexedRecord{VisitCount: int(w.VisitCountCap)}
	assert.InDelta(t, 1.0, scoreVisitCount(atCap, nil, &w, nil), 1e-9)

	beyondCap := &models.IndexedRecord{VisitCount: int(w.VisitCountCap) * 10}
	assert.Equal(t, 1.0, scoreVisitCount(beyondCap, nil, &w, nil))
}

func TestScoreDomainFamiliarity(t *testing.T) {
	aux := &searchAux{hostCounts: map[string]int{"github.com": 4, "example.com": 1}, totalRecords: 5}
	r := &models.IndexedRecord{Host: "github.com"}
	assert.InDelta(t, 0.8, scoreDomainFamiliarity(r, nil, nil, aux), 1e-9)

	unknown := &models.IndexedRecord{Host: "nowhere.com"}
	assert.Equal(t, 0.0, scoreDomainFamiliarity(unknown, nil, nil, aux))
}

func TestScoreCrossDimensional(t *testing.T) {
	r := &models.IndexedRecord{
		Title:           "GitHub Dashboard",
		URL:             "github.com/pulls",
		HasMeta:         true,
		MetaDescription: "github pull requests",
	}
	ctx := &models.QueryContext{OriginalTokens: []string{"github", "pull"}}
	// "github" appears in title, url and meta (3 fields); "pull" only in
	// url and meta (2 fields). Both cross the >=2 threshold.
	assert.Equal(t, 1.0, scoreCrossDimensional(r, ctx, nil, nil))
}

func TestScoreMetaAbsentVsPresent(t *testing.T) {
	ctx := &models.QueryContext{OriginalTokens: []string{"github"}}
	absent := &models.IndexedRecord{HasMeta: false}
	assert.Equal(t, 0.0, scoreMeta(absent, ctx, nil, nil))

	present := &models.IndexedRecord{HasMeta: true, MetaDescription: "github repositories"}
	assert.Greater(t, scoreMeta(present, ctx, nil, nil), 0.0)
}

func TestScoreURL(t *testing.T) {
	r := &models.IndexedRecord{URL: "https://github.com/user/repo"}
	ctx := &models.QueryContext{OriginalTokens: []string{"github"}}
	got := scoreURL(r, ctx, nil, nil)
	assert.Greater(t, got, 0.0)
}

func TestScoreEmbeddingRequiresSemanticAndVectors(t *testing.T) {
	r := &models.IndexedRecord{Embedding: []float64{1, 0, 0}}
	ctxNoSemantic := &models.QueryContext{Flags: models.Flags{SemanticEnabled: false}, QueryEmbedding: []float64{1, 0, 0}}
	assert.Equal(t, 0.0, scoreEmbedding(r, ctxNoSemantic, nil, nil))

	ctxMissingRecordVector := &models.QueryContext{Flags: models.Flags{SemanticEnabled: true}, QueryEmbedding: []float64{1, 0, 0}}
	rNoEmbed := &models.IndexedRecord{}
	assert.Equal(t, 0.0, scoreEmbedding(rNoEmbed, ctxMissingRecordVector, nil, nil))

	ctxOK := &models.QueryContext{Flags: models.Flags{SemanticEnabled: true}, QueryEmbedding: []float64{1, 0, 0}}
	assert.Equal(t, 1.0, scoreEmbedding(r, ctxOK, nil, nil))
}

func TestRunScorersHandlesZeroHalfLifeGuard(t *testing.T) {
	w := DefaultWeights()
	w.RecencyHalfLifeDays = 0 // exercises scoreRecency's zero-halfLife guard
	aux := &searchAux{nowMillis: 1000 * millisPerDay, hostCounts: map[string]int{}, totalRecords: 0}
	r := &models.IndexedRecord{Title: "Dashboard", URL: "example.com", LastVisit: 0}
	ctx := &models.QueryContext{RawQuery: "dashboard", OriginalTokens: []string{"dashboard"}, ExpandedTokens: []models.ExpandedToken{{Token: "dashboard", Origin: models.OriginOriginal}}}

	values, base := runScorers(r, ctx, &w, aux, nil)
	assert.Equal(t, 0.0, values["recency"])
	assert.GreaterOrEqual(t, base, 0.0)
}
