// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the listing-engine CLI.
// Implements: prd001-records, prd002-filter, prd004-citation (CLI surface).
// See docs/ARCHITECTURE § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the listing-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "listing-engine",
	Short: "Faceted filtering, sorting, and citation for site listings",
	Long: `listing-engine powers the publications and people listing pages of a
research site. It ingests record source documents into a catalog, then
filters them by free-text query and category facet, orders them with a
stable multi-key sort, and renders citations in several styles.

Each operation is a subcommand: ingest, list, cite, and export.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./listing-engine.yaml or ~/.config/listing-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("listing-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "listing-engine"))
		}
	}

	viper.SetDefault("catalog.catalog_dir", "catalog")
	viper.SetDefault("catalog.content_dir", "content")
	viper.SetDefault("engine.default_sort", string(types.DefaultSort))

	viper.SetEnvPrefix("LISTING_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// catalogConfig resolves the catalog settings: command flags win over
// the config file, which wins over the built-in defaults.
func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	cfg := types.CatalogConfig{
		CatalogDir: viper.GetString("catalog.catalog_dir"),
		ContentDir: viper.GetString("catalog.content_dir"),
	}
	if cmd.Flags().Changed("catalog-dir") {
		cfg.CatalogDir, _ = cmd.Flags().GetString("catalog-dir")
	}
	if cmd.Flags().Changed("content-dir") {
		cfg.ContentDir, _ = cmd.Flags().GetString("content-dir")
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
