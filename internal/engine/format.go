// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// FormatTable writes a projected view as a human-readable table to w,
// followed by the tally label. The empty projection renders a distinct
// no-results line, never an error.
func FormatTable(visible []types.Record, tally Tally, w io.Writer) {
	if len(visible) == 0 {
		fmt.Fprintln(w, "No matching records.")
		return
	}

	fmt.Fprintf(w, "%-20s  %-50s  %-14s  %-4s  %s\n",
		"ID", "Title", "Category", "Year", "Tags")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range visible {
		year := ""
		if r.SortKeys.Year != 0 {
			year = fmt.Sprintf("%d", r.SortKeys.Year)
		}
		fmt.Fprintf(w, "%-20s  %-50s  %-14s  %-4s  %s\n",
			truncate(r.ID, 20), truncate(r.Title, 50),
			truncate(r.Category, 14), year,
			truncate(strings.Join(r.Tags, ", "), 30))
	}

	fmt.Fprintf(w, "\n%s\n", tally.Label)
}

// FormatJSON writes a projected view and its tally as indented JSON to w.
func FormatJSON(visible []types.Record, tally Tally, w io.Writer) error {
	out := struct {
		Records []types.Record `json:"records"`
		Tally   Tally          `json:"tally"`
	}{Records: visible, Tally: tally}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
