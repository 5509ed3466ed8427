package search

import (
	"strings"

	"github.com/deepsearch-labs/deepsearch/pkg/models"
)

// Haystack concatenates a record's searchable text fields into one
// lowercased string: title, url, meta description and meta keywords.
func Haystack(r *models.IndexedRecord) string {
	var b strings.Builder
	b.WriteString(r.Title)
	b.WriteByte(' ')
	b.WriteString(r.URL)
	if r.HasMeta {
		b.WriteByte(' ')
		b.WriteString(r.MetaDescription)
		if len(r.MetaKeywords) > 0 {
			b.WriteByte(' ')
			b.WriteString(strings.Join(r.MetaKeywords, " "))
		}
	}
	return strings.ToLower(b.String())
}

// PassesPreFilter cheaply rejects records whose haystack contains none
// of the original query tokens and does not contain the raw query as a
// substring. It never drops a record strict_matching=off would keep.
func PassesPreFilter(r *models.IndexedRecord, ctx *models.QueryContext) bool {
	haystack := Haystack(r)

	if strings.Contains(haystack, strings.ToLower(ctx.RawQuery)) {
		return true
	}
	for _, tok := range ctx.OriginalTokens {
		if strings.Contains(haystack, tok) {
			return true
		}
	}
	return false
}
