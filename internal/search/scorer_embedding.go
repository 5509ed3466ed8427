package search

import "github.com/deepsearch-labs/deepsearch/pkg/models"

// scoreEmbedding implements spec §4.4's embedding scorer: cosine
// similarity between the query embedding and the record's embedding,
// clamped to [0, 1]. Missing inputs — semantic disabled, or this record
// simply has no embedding — score 0 rather than aborting the search
// (spec §4.9's failure modes).
func scoreEmbedding(r *models.IndexedRecord, ctx *models.QueryContext, _ *Weights, _ *searchAux) float64 {
	if !ctx.Flags.SemanticEnabled || ctx.QueryEmbedding == nil || r.Embedding == nil {
		return 0
	}
	return CosineSimilarity(ctx.QueryEmbedding, r.Embedding)
}
