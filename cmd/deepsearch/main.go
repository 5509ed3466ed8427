// Command deepsearch is the CLI entry point for the ranking engine:
// ingest a JSON export of browsing-history records into a local badger
// store, then run ranked searches against it.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/deepsearch-labs/deepsearch/internal/config"
)

var (
	cfg *config.Config
	log *logrus.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deepsearch",
		Short: "A local, multi-signal ranking engine for personal browsing history",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg = loaded

			log = logrus.New()
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				level = logrus.InfoLevel
			}
			log.SetLevel(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().String("store-dir", "", "override the configured badger store directory")

	rootCmd.AddCommand(newIndexCmd())
	rootCmd.AddCommand(newSearchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func storeDir(cmd *cobra.Command) string {
	if override, _ := cmd.Flags().GetString("store-dir"); override != "" {
		return override
	}
	return cfg.StoreDir
}
