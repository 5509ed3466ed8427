package search

import "github.com/deepsearch-labs/deepsearch/pkg/models"

// applyDiversityFilter collapses records sharing a normalized URL key
// (spec §4.7), keeping the highest final_score; ties broken by the
// newer last_visit. Input order does not matter and the result is
// idempotent: running this twice over its own output is a no-op, since
// every surviving key is already unique.
func applyDiversityFilter(results []models.ScoredRecord) []models.ScoredRecord {
	best := make(map[string]int, len(results)) // normalized key -> index into kept
	kept := make([]models.ScoredRecord, 0, len(results))

	for _, r := range results {
		key := normalizeURL(r.Record.URL)
		if idx, ok := best[key]; ok {
			if betterDiversityCandidate(r, kept[idx]) {
				kept[idx] = r
			}
			continue
		}
		best[key] = len(kept)
		kept = append(kept, r)
	}

	return kept
}

func betterDiversityCandidate(candidate, current models.ScoredRecord) bool {
	if candidate.FinalScore != current.FinalScore {
		return candidate.FinalScore > current.FinalScore
	}
	return candidate.Record.LastVisit > current.Record.LastVisit
}
