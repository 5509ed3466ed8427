package search

import "github.com/deepsearch-labs/deepsearch/pkg/models"

// scoreDomainFamiliarity implements spec §4.4's domain_familiarity
// scorer: the fraction of the corpus sharing this record's host. aux's
// hostCounts map is built once per search (spec §5: "a per-search cache
// maps host → domain_familiarity to avoid O(N²) scans") and discarded at
// call end.
func scoreDomainFamiliarity(r *models.IndexedRecord, _ *models.QueryContext, _ *Weights, aux *searchAux) float64 {
	if aux.totalRecords == 0 {
		return 0
	}
	host := r.Host
	if host == "" {
		host, _ = splitURL(r.URL)
	}
	count := aux.hostCounts[host]
	return float64(count) / float64(aux.totalRecords)
}
