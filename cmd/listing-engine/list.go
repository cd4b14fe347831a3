// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/listing-engine/internal/catalog"
	"github.com/pdiddy/listing-engine/internal/engine"
	"github.com/pdiddy/listing-engine/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list [publications|people]",
	Short: "List catalog records filtered, sorted, and counted",
	Long: `List loads records of one kind from the catalog, applies the free-text
query and category facet, orders the result with a stable sort, and
prints the visible records with a pluralized result count. An empty
result is a normal state, reported as "No matching records."`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	kind, counter, err := listingSurface(args[0])
	if err != nil {
		return err
	}

	cfg := catalogConfig(cmd)
	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Load(context.Background(), kind)
	if err != nil {
		return err
	}

	state := stateFromFlags(cmd)
	visible := engine.Project(records, state)
	tally := counter.Count(visible)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return engine.FormatJSON(visible, tally, os.Stdout)
	}
	engine.FormatTable(visible, tally, os.Stdout)
	return nil
}

// listingSurface maps the CLI argument to a record kind and its counter.
func listingSurface(arg string) (types.RecordKind, engine.Counter, error) {
	switch arg {
	case "publications":
		return types.KindPublication, engine.PublicationCounter, nil
	case "people":
		return types.KindPerson, engine.PeopleCounter, nil
	default:
		return "", engine.Counter{}, fmt.Errorf("unknown listing %q: use publications or people", arg)
	}
}

// stateFromFlags builds the filter state from command flags. Unknown
// sort keys and view modes fail closed inside the engine, so no flag
// validation happens here.
func stateFromFlags(cmd *cobra.Command) types.FilterState {
	query, _ := cmd.Flags().GetString("query")
	category, _ := cmd.Flags().GetString("category")
	sortKey, _ := cmd.Flags().GetString("sort")
	view, _ := cmd.Flags().GetString("view")

	if sortKey == "" {
		sortKey = viper.GetString("engine.default_sort")
	}

	state := types.NewFilterState()
	state.Query = query
	if category != "" {
		state.Category = category
	}
	state.Sort = types.SortKey(sortKey)
	state.View = types.ViewMode(view)
	return engine.Normalize(state)
}

func init() {
	listCmd.Flags().String("query", "", "free-text query (substring match, case-insensitive)")
	listCmd.Flags().String("category", "", "category facet (default: all)")
	listCmd.Flags().String("sort", "", "sort key: date-desc, date-asc, title-asc, title-desc")
	listCmd.Flags().String("view", "list", "view mode: list or grid (layout only)")
	listCmd.Flags().Bool("json", false, "output records and tally as JSON")
	listCmd.Flags().String("catalog-dir", "", "directory for the catalog database (default from config)")
	listCmd.Flags().String("content-dir", "", "base directory for record source documents (default from config)")

	rootCmd.AddCommand(listCmd)
}
