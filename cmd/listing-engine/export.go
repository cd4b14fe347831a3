// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/listing-engine/internal/catalog"
	"github.com/pdiddy/listing-engine/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the full catalog (or one record kind) to
catalog/export.yaml or catalog/export.json.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	kindFlag, _ := cmd.Flags().GetString("kind")

	var kind types.RecordKind
	switch kindFlag {
	case "":
	case "publications":
		kind = types.KindPublication
	case "people":
		kind = types.KindPerson
	default:
		return fmt.Errorf("unknown kind %q: use publications or people", kindFlag)
	}

	cfg := catalogConfig(cmd)
	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), kind); err != nil {
			return err
		}
		fmt.Println("Exported to", cfg.CatalogDir+"/export.yaml")
	case "json":
		if err := store.ExportJSON(context.Background(), kind); err != nil {
			return err
		}
		fmt.Println("Exported to", cfg.CatalogDir+"/export.json")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("kind", "", "restrict export to one kind: publications or people")
	exportCmd.Flags().String("catalog-dir", "", "directory for the catalog database (default from config)")
	exportCmd.Flags().String("content-dir", "", "base directory for record source documents (default from config)")

	rootCmd.AddCommand(exportCmd)
}
