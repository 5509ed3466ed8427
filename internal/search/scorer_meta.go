package search

import "github.com/deepsearch-labs/deepsearch/pkg/models"

// scoreMeta implements spec §4.4's meta scorer: graduated match over
// meta_description + meta_keywords. Returns 0 when no meta is present,
// distinguishing absence (HasMeta false) from an empty meta string —
// both score 0, but only the latter is meaningful to log under debug,
// per spec §9's duck-typed-fields resolution.
func scoreMeta(r *models.IndexedRecord, ctx *models.QueryContext, _ *Weights, _ *searchAux) float64 {
	if !r.HasMeta {
		return 0
	}
	text := metaText(r)
	if text == "" {
		return 0
	}
	return Graduated(ctx.OriginalTokens, text)
}
