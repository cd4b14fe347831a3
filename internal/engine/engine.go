// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine filters, orders, and counts listing records.
// Implements: prd002-filter (R1-R4);
//
//	docs/ARCHITECTURE § Engine.
package engine

import (
	"sort"
	"strings"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// Normalize returns a copy of s safe to filter with: the query is
// trimmed and lowercased, an empty category becomes CategoryAll, and
// unknown sort keys and view modes fall back to their defaults. Stale
// or corrupted state fails closed instead of failing the operation.
func Normalize(s types.FilterState) types.FilterState {
	s.Query = strings.ToLower(strings.TrimSpace(s.Query))
	if s.Category == "" {
		s.Category = types.CategoryAll
	}
	switch s.Sort {
	case types.SortDateDesc, types.SortDateAsc, types.SortTitleAsc, types.SortTitleDesc:
	default:
		s.Sort = types.DefaultSort
	}
	switch s.View {
	case types.ViewList, types.ViewGrid:
	default:
		s.View = types.ViewList
	}
	return s
}

// Admits reports whether the record passes the filter state. Both
// clauses are conjunctive: the record must contain the query substring
// and carry the active category. Empty query and CategoryAll are the
// identity values for their clauses. The caller is expected to pass a
// normalized state; SearchBlob and Query are both pre-lowered, so
// containment is case-insensitive.
func Admits(r types.Record, s types.FilterState) bool {
	if s.Query != "" && !strings.Contains(r.SearchBlob, s.Query) {
		return false
	}
	if s.Category != types.CategoryAll && r.Category != s.Category {
		return false
	}
	return true
}

// Less reports whether a orders before b under key. Equal keys report
// false in both directions so that sort.SliceStable preserves the
// records' relative store order; no secondary key exists.
func Less(a, b types.Record, key types.SortKey) bool {
	switch key {
	case types.SortDateAsc:
		return a.SortKeys.Year < b.SortKeys.Year
	case types.SortTitleAsc:
		return a.SortKeys.TitleLower < b.SortKeys.TitleLower
	case types.SortTitleDesc:
		return a.SortKeys.TitleLower > b.SortKeys.TitleLower
	default:
		// date-desc, and the fail-closed fallback for unknown keys.
		return a.SortKeys.Year > b.SortKeys.Year
	}
}

// Project returns the records to show for the given state, in display
// order: filter, then stable sort. The store is never mutated and the
// full projection is recomputed on every call, so identical inputs
// always yield the identical visible sequence. An empty result is a
// normal state, not an error. View mode does not participate:
// membership and order are the same for list and grid layouts.
func Project(store []types.Record, s types.FilterState) []types.Record {
	s = Normalize(s)

	visible := make([]types.Record, 0, len(store))
	for _, r := range store {
		if Admits(r, s) {
			visible = append(visible, r)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return Less(visible[i], visible[j], s.Sort)
	})

	return visible
}

// VisibleIDs returns just the record IDs of a projection, in order.
// The rendering layer uses this to toggle card visibility without the
// engine touching any presentation concern.
func VisibleIDs(visible []types.Record) []string {
	ids := make([]string, len(visible))
	for i, r := range visible {
		ids[i] = r.ID
	}
	return ids
}

// Categories returns the set of primary categories present in the
// store. Sessions validate category changes against this set so a
// stale tab identifier falls back to CategoryAll instead of silently
// filtering everything out.
func Categories(store []types.Record) map[string]bool {
	set := make(map[string]bool, len(store))
	for _, r := range store {
		if r.Category != "" {
			set[r.Category] = true
		}
	}
	return set
}
