// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/listing-engine/internal/catalog"
	"github.com/pdiddy/listing-engine/internal/cite"
	"github.com/pdiddy/listing-engine/pkg/types"
)

var citeCmd = &cobra.Command{
	Use:   "cite [record-id]",
	Short: "Render a citation for a publication record",
	Long: `Cite looks up a publication in the catalog and renders its citation in
the requested style: apa, mla, chicago, or bibtex. Unknown styles fall
back to apa. Missing citation fields render as empty segments.`,
	Args: cobra.ExactArgs(1),
	RunE: runCite,
}

func runCite(cmd *cobra.Command, args []string) error {
	styleFlag, _ := cmd.Flags().GetString("style")

	cfg := catalogConfig(cmd)
	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}
	if rec.Citation == nil {
		return fmt.Errorf("record %s is not a publication", rec.ID)
	}

	fmt.Println(cite.Format(*rec.Citation, types.CitationStyle(styleFlag)))
	return nil
}

func init() {
	citeCmd.Flags().String("style", "apa", "citation style: apa, mla, chicago, or bibtex")
	citeCmd.Flags().String("catalog-dir", "", "directory for the catalog database (default from config)")
	citeCmd.Flags().String("content-dir", "", "base directory for record source documents (default from config)")

	rootCmd.AddCommand(citeCmd)
}
