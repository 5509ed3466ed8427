package search

import "github.com/deepsearch-labs/deepsearch/pkg/models"

// RecordSource yields the corpus for a search, per spec §6. The engine
// materializes it exactly once per call and never interleaves suspension
// with scoring — a streaming source must be fully drained before scoring
// begins.
type RecordSource interface {
	IterAll() ([]*models.IndexedRecord, error)
	TotalCount() uint64
}

// ExpansionResult is the synchronous shape an ExpansionService returns:
// the tokenized original query plus whatever synonym and AI-suggested
// tokens it chose to contribute.
type ExpansionResult struct {
	Original []string
	Synonyms []string
	AI       []string
}

// ExpansionService turns a raw query into original, synonym and
// AI-origin tokens. Implementations that wrap an asynchronous
// underlying call (a remote model, a disk-backed synonym table) must
// present a synchronous interface here, per spec §6.
type ExpansionService interface {
	Expand(rawQuery string) (ExpansionResult, error)
}

// EmbeddingService embeds free text into a dense vector. It is optional:
// Search only calls it when semantic_enabled is set, and a nil service
// simply disables the embedding scorer rather than erroring.
type EmbeddingService interface {
	Embed(text string) ([]float64, error)
}
