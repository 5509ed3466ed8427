package search

import "github.com/deepsearch-labs/deepsearch/pkg/models"

// scoreCrossDimensional implements spec §4.4's cross_dimensional
// scorer: the fraction of original tokens that appear in at least two
// of {title, url, meta}.
func scoreCrossDimensional(r *models.IndexedRecord, ctx *models.QueryContext, _ *Weights, _ *searchAux) float64 {
	tokens := ctx.OriginalTokens
	if len(tokens) == 0 {
		return 0
	}

	meta := metaText(r)
	crossing := 0
	for _, tok := range tokens {
		fields := 0
		if Classify(tok, r.Title) != NONE {
			fields++
		}
		if Classify(tok, r.URL) != NONE {
			fields++
		}
		if meta != "" && Classify(tok, meta) != NONE {
			fields++
		}
		if fields >= 2 {
			crossing++
		}
	}
	return float64(crossing) / float64(len(tokens))
}

func metaText(r *models.IndexedRecord) string {
	if !r.HasMeta {
		return ""
	}
	text := r.MetaDescription
	if len(r.MetaKeywords) > 0 {
		if text != "" {
			text += " "
		}
		for i, k := range r.MetaKeywords {
			if i > 0 {
				text += " "
			}
			text += k
		}
	}
	return text
}
