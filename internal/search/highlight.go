package search

import (
	"strings"

	"github.com/deepsearch-labs/deepsearch/pkg/models"
)

// buildHighlights locates every original-token match in title and url
// and returns byte-offset spans into those original (un-lowercased)
// strings, per spec §6's highlight contract.
func buildHighlights(r *models.IndexedRecord, tokens []string) []models.Highlight {
	var highlights []models.Highlight
	highlights = append(highlights, fieldHighlights("title", r.Title, tokens)...)
	highlights = append(highlights, fieldHighlights("url", r.URL, tokens)...)
	return highlights
}

func fieldHighlights(field, text string, tokens []string) []models.Highlight {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var spans []models.Highlight
	for _, tok := range tokens {
		start := 0
		for {
			idx := strings.Index(lower[start:], tok)
			if idx < 0 {
				break
			}
			idx += start
			spans = append(spans, models.Highlight{
				Field: field,
				Start: idx,
				End:   idx + len(tok),
			})
			start = idx + len(tok)
		}
	}
	return spans
}
