// Package store provides RecordSource implementations: a badger-backed
// on-disk store for a real personal-history corpus, and a pure
// in-memory store for tests and callers who already hold their corpus
// in memory.
package store

import (
	"bytes"
	"encoding/gob"

	"github.com/deepsearch-labs/deepsearch/pkg/models"
)

// gobRecord is the gob-serializable mirror of models.IndexedRecord,
// adapted from the teacher's cache.go gob-encoding choice
// (internal/cache/cache.go's SaveBinaryCache/LoadBinaryCache pair).
type gobRecord struct {
	URL             string
	Title           string
	Host            string
	Tokens          []string
	MetaDescription string
	HasMeta         bool
	MetaKeywords    []string
	VisitCount      int
	LastVisit       int64
	Embedding       []float64
	IsBookmark      bool
	BookmarkFolders []string
	BookmarkTitle   string
}

func toGob(r *models.IndexedRecord) gobRecord {
	return gobRecord{
		URL:             r.URL,
		Title:           r.Title,
		Host:            r.Host,
		Tokens:          r.Tokens,
		MetaDescription: r.MetaDescription,
		HasMeta:         r.HasMeta,
		MetaKeywords:    r.MetaKeywords,
		VisitCount:      r.VisitCount,
		LastVisit:       r.LastVisit,
		Embedding:       r.Embedding,
		IsBookmark:      r.IsBookmark,
		BookmarkFolders: r.BookmarkFolders,
		BookmarkTitle:   r.BookmarkTitle,
	}
}

func fromGob(g gobRecord) *models.IndexedRecord {
	return &models.IndexedRecord{
		URL:             g.URL,
		Title:           g.Title,
		Host:            g.Host,
		Tokens:          g.Tokens,
		MetaDescription: g.MetaDescription,
		HasMeta:         g.HasMeta,
		MetaKeywords:    g.MetaKeywords,
		VisitCount:      g.VisitCount,
		LastVisit:       g.LastVisit,
		Embedding:       g.Embedding,
		IsBookmark:      g.IsBookmark,
		BookmarkFolders: g.BookmarkFolders,
		BookmarkTitle:   g.BookmarkTitle,
	}
}

func encodeRecord(r *models.IndexedRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(toGob(r)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeRecord(data []byte) (*models.IndexedRecord, error) {
	var g gobRecord
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return nil, err
	}
	return fromGob(g), nil
}
