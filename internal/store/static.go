package store

import "github.com/deepsearch-labs/deepsearch/pkg/models"

// Static is a pure in-memory RecordSource: a fixed slice of records
// handed to it at construction. It exists for tests and for callers
// that already hold their corpus in memory and don't want BadgerDB's
// disk footprint.
type Static struct {
	records []*models.IndexedRecord
}

// NewStatic wraps records as a RecordSource. The slice is borrowed, not
// copied; callers must not mutate it concurrently with a search.
func NewStatic(records []*models.IndexedRecord) *Static {
	return &Static{records: records}
}

func (s *Static) IterAll() ([]*models.IndexedRecord, error) {
	return s.records, nil
}

func (s *Static) TotalCount() uint64 {
	return uint64(len(s.records))
}
