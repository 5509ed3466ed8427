package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deepsearch-labs/deepsearch/internal/search"
	"github.com/deepsearch-labs/deepsearch/internal/store"
	"github.com/deepsearch-labs/deepsearch/pkg/models"
)

// importRecord is the JSON shape a history export uses on disk,
// generalizing the teacher's JSON-then-cache ingest flow
// (internal/embedding/loader.go) to deepsearch's record schema.
type importRecord struct {
	URL             string   `json:"url"`
	Title           string   `json:"title"`
	Host            string   `json:"host"`
	MetaDescription string   `json:"meta_description,omitempty"`
	MetaKeywords    []string `json:"meta_keywords,omitempty"`
	VisitCount      int      `json:"visit_count"`
	LastVisit       int64    `json:"last_visit"`
	Embedding       []float64 `json:"embedding,omitempty"`
	IsBookmark      bool     `json:"is_bookmark"`
	BookmarkFolders []string `json:"bookmark_folders,omitempty"`
	BookmarkTitle   string   `json:"bookmark_title,omitempty"`
}

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <export.json>",
		Short: "Ingest a JSON export of browsing-history records into the local store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadExport(args[0])
			if err != nil {
				return err
			}

			s, err := store.Open(store.Options{DataDir: storeDir(cmd)})
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer s.Close()

			if err := s.PutAll(records); err != nil {
				return fmt.Errorf("ingesting records: %w", err)
			}

			log.WithField("count", len(records)).Info("ingested records")
			fmt.Printf("ingested %d records\n", len(records))
			return nil
		},
	}
	return cmd
}

func loadExport(path string) ([]*models.IndexedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}

	var raw []importRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing export: %w", err)
	}

	records := make([]*models.IndexedRecord, 0, len(raw))
	for _, r := range raw {
		records = append(records, &models.IndexedRecord{
			URL:             r.URL,
			Title:           r.Title,
			Host:            r.Host,
			Tokens:          search.Tokenize(r.Title + " " + r.URL + " " + r.MetaDescription),
			MetaDescription: r.MetaDescription,
			HasMeta:         r.MetaDescription != "" || len(r.MetaKeywords) > 0,
			MetaKeywords:    r.MetaKeywords,
			VisitCount:      r.VisitCount,
			LastVisit:       r.LastVisit,
			Embedding:       r.Embedding,
			IsBookmark:      r.IsBookmark,
			BookmarkFolders: r.BookmarkFolders,
			BookmarkTitle:   r.BookmarkTitle,
		})
	}
	return records, nil
}
