// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/listing-engine/internal/adapter"
	"github.com/pdiddy/listing-engine/internal/catalog"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest record source documents into the catalog",
	Long: `Ingest reads publication and people YAML documents from the content
directory, computes search blobs and sort keys, and upserts the records
into the SQLite catalog. Unchanged files are skipped on subsequent runs.`,
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg := catalogConfig(cmd)

	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), adapter.All(), cfg.ContentDir, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d document(s) failed ingestion", summary.Failed)
	}
	return nil
}

func init() {
	ingestCmd.Flags().String("catalog-dir", "", "directory for the catalog database (default from config)")
	ingestCmd.Flags().String("content-dir", "", "base directory for record source documents (default from config)")

	rootCmd.AddCommand(ingestCmd)
}
