package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepsearch-labs/deepsearch/internal/cache"
	"github.com/deepsearch-labs/deepsearch/internal/expansion"
	"github.com/deepsearch-labs/deepsearch/internal/search"
	"github.com/deepsearch-labs/deepsearch/internal/store"
	"github.com/deepsearch-labs/deepsearch/pkg/models"
)

func newSearchCmd() *cobra.Command {
	var (
		jsonOutput bool
		strict     bool
		semantic   bool
		maxResults int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a ranked search against the local store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			s, err := store.Open(store.Options{DataDir: storeDir(cmd)})
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer s.Close()

			expansionCache, err := cache.NewRistrettoExpansionCache(4096)
			if err != nil {
				return fmt.Errorf("building expansion cache: %w", err)
			}
			defer expansionCache.Close()

			expander := cache.NewCachedExpansionService(expansion.New(log.WithField("component", "expansion")), expansionCache)

			flags := cfg.BuildFlags()
			flags.StrictMatching = strict || flags.StrictMatching
			flags.SemanticEnabled = semantic || flags.SemanticEnabled

			results, err := search.Search(context.Background(), s, expander, nil, search.Params{
				RawQuery:   query,
				Flags:      flags,
				MaxResults: maxResults,
				Weights:    weightsPtr(cfg.BuildWeights()),
				Log:        log.WithField("component", "search"),
			})
			if err != nil {
				return err
			}

			if len(results) == 0 {
				if jsonOutput {
					fmt.Println(`{"results": []}`)
				} else {
					fmt.Println("no matches found")
				}
				return nil
			}

			if jsonOutput {
				return printJSON(results)
			}
			printText(results)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output results as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "only return records with an actual keyword or literal match")
	cmd.Flags().BoolVar(&semantic, "semantic", false, "enable the embedding scorer (requires pre-computed embeddings)")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "cap the number of results (default 100)")

	return cmd
}

func weightsPtr(w search.Weights) *search.Weights { return &w }

// printJSON and printText replace the teacher's outputJSON/outputText
// pair (cmd/embeddingsearch/main.go), adapted to ResultEntry's shape.
func printJSON(results []models.ResultEntry) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printText(results []models.ResultEntry) {
	for i, r := range results {
		fmt.Printf("%d. %s (tier %d, score %.3f)\n   %s\n", i+1, r.Title, r.Tier, r.Score, r.URL)
	}
}
