package search

import (
	"sort"

	"github.com/deepsearch-labs/deepsearch/pkg/models"
)

// intentTier implements spec §4.6's tier assignment. Single-token
// queries are always tier 0.
func intentTier(originalTokenCount int, d derived) int {
	if originalTokenCount < 2 {
		return 0
	}
	switch {
	case d.titleURLCoverage >= 1.0 && d.splitField:
		return 3
	case d.titleURLCoverage >= 1.0:
		return 2
	case d.titleURLCoverage >= 0.75:
		return 1
	default:
		return 0
	}
}

// sortByIntentPriority sorts records in place by the spec §4.6 key:
// multi-token queries sort by (tier, coverage, quality, score, last
// visit) descending; single-token queries sort by (score, last visit)
// descending. sort.SliceStable preserves the spec §5 ordering guarantee
// that ties beyond the documented key don't reorder nondeterministically
// across runs with identical input.
func sortByIntentPriority(results []models.ScoredRecord, multiToken bool) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if multiToken {
			if a.IntentTier != b.IntentTier {
				return a.IntentTier > b.IntentTier
			}
			if a.TitleURLCoverage != b.TitleURLCoverage {
				return a.TitleURLCoverage > b.TitleURLCoverage
			}
			if a.TitleURLQuality != b.TitleURLQuality {
				return a.TitleURLQuality > b.TitleURLQuality
			}
		}
		if a.FinalScore != b.FinalScore {
			return a.FinalScore > b.FinalScore
		}
		return a.Record.LastVisit > b.Record.LastVisit
	})
}
