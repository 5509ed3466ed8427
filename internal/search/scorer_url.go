package search

import "github.com/deepsearch-labs/deepsearch/pkg/models"

// scoreURL implements spec §4.4's url scorer: 0.6·G(original, path) +
// 0.4·G(original, host). Host matches are already favored by the
// classifier's word-boundary rules (a host like "github.com" classifies
// "github" as EXACT), so no extra host weighting is needed here.
func scoreURL(r *models.IndexedRecord, ctx *models.QueryContext, _ *Weights, _ *searchAux) float64 {
	host, path := splitURL(r.URL)
	if host == "" {
		host = r.Host
	}
	return 0.6*Graduated(ctx.OriginalTokens, path) + 0.4*Graduated(ctx.OriginalTokens, host)
}
