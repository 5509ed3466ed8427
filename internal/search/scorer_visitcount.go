package search

import (
	"math"

	"github.com/deepsearch-labs/deepsearch/pkg/models"
)

// scoreVisitCount implements spec §4.4's visit_count scorer:
// log2(1+visit_count) / log2(1+cap), clamped to 1.
func scoreVisitCount(r *models.IndexedRecord, _ *models.QueryContext, w *Weights, _ *searchAux) float64 {
	if r.VisitCount <= 0 {
		return 0
	}
	limit := w.VisitCountCap
	if limit <= 0 {
		return 0
	}
	v := math.Log2(1+float64(r.VisitCount)) / math.Log2(1+limit)
	if v > 1 {
		return 1
	}
	return v
}
