package search

import (
	"context"
	"time"

	"github.com/deepsearch-labs/deepsearch/pkg/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Params bundles a Search call's inputs beyond the record source and
// collaborators, per spec §6's search call surface.
type Params struct {
	RawQuery   string
	Flags      models.Flags
	MaxResults int // <= 100; 0 means "use the default of 100"
	Weights    *Weights
	Log        *logrus.Entry

	// CorrelationID identifies this call in log output. A caller wanting
	// to trace a specific in-flight search across log lines (and,
	// externally, correlate it with a cancellation) can set this; an
	// empty value gets a fresh one generated per call.
	CorrelationID string
}

// Search runs the full ranking pipeline: tokenize and expand the query,
// materialize the corpus, pre-filter, score, post-boost, apply strict
// matching and the bookmark floor, deduplicate for diversity, sort by
// intent priority, and truncate to MaxResults. It never panics; failures
// surface as one of the sentinel errors in errors.go.
func Search(ctx context.Context, source RecordSource, expansion ExpansionService, embedder EmbeddingService, p Params) ([]models.ResultEntry, error) {
	w := p.Weights
	if w == nil {
		defaults := DefaultWeights()
		w = &defaults
	}
	maxResults := p.MaxResults
	if maxResults <= 0 || maxResults > 100 {
		maxResults = w.MaxResults
	}

	correlationID := p.CorrelationID
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	if p.Log != nil {
		p.Log = p.Log.WithField("correlation_id", correlationID)
	}

	if isBlankQuery(p.RawQuery) {
		return nil, ErrInvalidQuery
	}

	qctx, err := buildQueryContext(p.RawQuery, p.Flags, expansion, embedder)
	if err != nil {
		return nil, wrapError(ErrSourceError, err)
	}

	records, err := source.IterAll()
	if err != nil {
		return nil, wrapError(ErrSourceError, err)
	}

	totalRecords := int(source.TotalCount())
	if totalRecords == 0 {
		totalRecords = len(records)
	}
	aux := &searchAux{
		nowMillis:    time.Now().UnixMilli(),
		hostCounts:   hostCounts(records),
		totalRecords: totalRecords,
	}

	candidates := make([]*models.IndexedRecord, 0, len(records))
	for _, r := range records {
		if PassesPreFilter(r, qctx) {
			candidates = append(candidates, r)
		}
	}

	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}

	scored := make([]models.ScoredRecord, 0, len(candidates))
	for _, r := range candidates {
		values, base := runScorers(r, qctx, w, aux, p.Log)
		d := computeDerived(r, qctx)
		final := applyPostBoost(r, qctx, w, d, base)
		if final < 0 {
			final = 0
		}

		scored = append(scored, models.ScoredRecord{
			Record:           r,
			BaseScore:        base,
			FinalScore:       final,
			IntentTier:       intentTier(len(qctx.OriginalTokens), d),
			TitleURLCoverage: d.titleURLCoverage,
			TitleURLQuality:  d.titleURLQuality,
			SplitField:       d.splitField,
			HasKeywordMatch:  d.hasKeywordMatch,
			HasLiteralMatch:  d.hasLiteralMatch,
			ScorerValues:     values,
		})
	}

	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}

	applyBookmarkFloor(scored, qctx.Flags, w)
	scored = applyMatchFilter(scored, qctx.Flags, w)

	if qctx.Flags.DiverseResults {
		scored = applyDiversityFilter(scored)
	}

	sortByIntentPriority(scored, len(qctx.OriginalTokens) >= 2)

	if err := checkCancelled(ctx); err != nil {
		return nil, err
	}

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}

	return buildResultEntries(scored, qctx), nil
}

func checkCancelled(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ErrCancelled
	default:
		return nil
	}
}

// isBlankQuery reports whether raw contains no alphanumeric rune at
// all — spec §7's "empty or contains only separators".
func isBlankQuery(raw string) bool {
	for _, r := range raw {
		if isAlnum(r) {
			return false
		}
	}
	return true
}

func buildQueryContext(rawQuery string, flags models.Flags, expansion ExpansionService, embedder EmbeddingService) (*models.QueryContext, error) {
	var expanded ExpansionResult
	if expansion != nil {
		var err error
		expanded, err = expansion.Expand(rawQuery)
		if err != nil {
			return nil, err
		}
	} else {
		expanded = ExpansionResult{Original: Tokenize(rawQuery)}
	}

	tokens := make([]models.ExpandedToken, 0, len(expanded.Original)+len(expanded.Synonyms)+len(expanded.AI))
	for _, t := range expanded.Original {
		tokens = append(tokens, models.ExpandedToken{Token: t, Origin: models.OriginOriginal})
	}
	for _, t := range expanded.Synonyms {
		tokens = append(tokens, models.ExpandedToken{Token: t, Origin: models.OriginSynonym})
	}
	for _, t := range expanded.AI {
		tokens = append(tokens, models.ExpandedToken{Token: t, Origin: models.OriginAI})
	}

	qctx := &models.QueryContext{
		RawQuery:       rawQuery,
		OriginalTokens: expanded.Original,
		ExpandedTokens: tokens,
		Flags:          flags,
	}

	if flags.SemanticEnabled && embedder != nil {
		vec, err := embedder.Embed(rawQuery)
		if err == nil {
			qctx.QueryEmbedding = vec
		}
	}

	return qctx, nil
}

func hostCounts(records []*models.IndexedRecord) map[string]int {
	counts := make(map[string]int, len(records))
	for _, r := range records {
		host := r.Host
		if host == "" {
			host, _ = splitURL(r.URL)
		}
		if host == "" {
			continue
		}
		counts[host]++
	}
	return counts
}

// applyMatchFilter implements spec §4.8: strict_matching on drops
// records with neither a keyword nor a literal match; strict_matching
// off instead drops records below the minimum-score threshold.
func applyMatchFilter(scored []models.ScoredRecord, flags models.Flags, w *Weights) []models.ScoredRecord {
	kept := make([]models.ScoredRecord, 0, len(scored))
	for _, s := range scored {
		if flags.StrictMatching {
			if s.HasKeywordMatch || s.HasLiteralMatch {
				kept = append(kept, s)
			}
			continue
		}
		if s.FinalScore >= w.MinScoreThreshold {
			kept = append(kept, s)
		}
	}
	return kept
}

// applyBookmarkFloor implements spec §4.9 step 4: included bookmarks
// never score below BookmarkFloor, so a low-relevance bookmark still
// clears the minimum-score threshold that would otherwise have dropped
// it in applyMatchFilter.
func applyBookmarkFloor(scored []models.ScoredRecord, flags models.Flags, w *Weights) {
	if !flags.IncludeBookmarks {
		return
	}
	for i := range scored {
		if scored[i].Record.IsBookmark && scored[i].FinalScore < w.BookmarkFloor {
			scored[i].FinalScore = w.BookmarkFloor
		}
	}
}

func buildResultEntries(scored []models.ScoredRecord, qctx *models.QueryContext) []models.ResultEntry {
	entries := make([]models.ResultEntry, 0, len(scored))
	for _, s := range scored {
		host := s.Record.Host
		if host == "" {
			host, _ = splitURL(s.Record.URL)
		}
		entries = append(entries, models.ResultEntry{
			URL:        s.Record.URL,
			Title:      s.Record.Title,
			Host:       host,
			Score:      s.FinalScore,
			Tier:       s.IntentTier,
			Highlights: buildHighlights(s.Record, qctx.OriginalTokens),
		})
	}
	return entries
}
