package search

import (
	"math"

	"github.com/deepsearch-labs/deepsearch/pkg/models"
)

const millisPerDay = 24 * 60 * 60 * 1000

// scoreRecency implements spec §4.4's exponential-decay recency scorer:
// 0.5^(age_days/halfLife). A record visited in the future relative to
// aux.nowMillis (clock skew, bad data) scores 1.0 rather than going
// above it.
func scoreRecency(r *models.IndexedRecord, _ *models.QueryContext, w *Weights, aux *searchAux) float64 {
	ageMillis := aux.nowMillis - r.LastVisit
	if ageMillis <= 0 {
		return 1.0
	}
	ageDays := float64(ageMillis) / millisPerDay
	halfLife := w.RecencyHalfLifeDays
	if halfLife <= 0 {
		return 0
	}
	return math.Pow(0.5, ageDays/halfLife)
}
