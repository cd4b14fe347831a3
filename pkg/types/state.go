// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SortKey selects the comparator ordering for the projected view.
// Per prd002-filter R3.1-R3.4.
type SortKey string

const (
	SortDateDesc  SortKey = "date-desc"
	SortDateAsc   SortKey = "date-asc"
	SortTitleAsc  SortKey = "title-asc"
	SortTitleDesc SortKey = "title-desc"
)

// DefaultSort is the ordering used on page load and the fail-closed
// fallback for unrecognized sort keys.
const DefaultSort = SortDateDesc

// ViewMode selects the listing layout. It affects presentation only:
// membership and order of the projected view never depend on it.
type ViewMode string

const (
	ViewList ViewMode = "list"
	ViewGrid ViewMode = "grid"
)

// CitationStyle selects the citation template.
// Per prd004-citation R2.1-R2.4.
type CitationStyle string

const (
	StyleAPA     CitationStyle = "apa"
	StyleMLA     CitationStyle = "mla"
	StyleChicago CitationStyle = "chicago"
	StyleBibTeX  CitationStyle = "bibtex"
)

// FilterState holds the mutable listing state for one page: the
// debounced free-text query, the active category tab, the sort key,
// and the view mode. One instance exists per page; it is mutated only
// by user interaction handlers and never persisted.
type FilterState struct {
	// Query is the normalized (trimmed, lowercased) free-text query.
	// Empty means no text filtering.
	Query string `json:"query" yaml:"query"`

	// Category is the active facet. CategoryAll (or empty) admits
	// every record.
	Category string `json:"category" yaml:"category"`

	// Sort selects the comparator. Unknown values fall back to
	// DefaultSort.
	Sort SortKey `json:"sort" yaml:"sort"`

	// View is the layout mode. Unknown values fall back to ViewList.
	View ViewMode `json:"view" yaml:"view"`
}

// NewFilterState returns the initial page state: empty query, all
// categories, default sort, list view.
func NewFilterState() FilterState {
	return FilterState{
		Category: CategoryAll,
		Sort:     DefaultSort,
		View:     ViewList,
	}
}
