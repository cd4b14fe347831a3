// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the listing engine.
// Implements: prd001-records (Record, R1.1-R1.5);
//
//	prd002-filter (FilterState, SortKey);
//	prd004-citation (CitationFields, CitationStyle).
//
// See docs/ARCHITECTURE.md § Data Structures.
package types

// RecordKind identifies which listing surface a record belongs to.
type RecordKind string

const (
	KindPublication RecordKind = "publication"
	KindPerson      RecordKind = "person"
)

// CategoryAll is the identity category: it admits every record.
const CategoryAll = "all"

// SortKeys holds the pre-extracted fields the comparators read. They
// are computed once at ingestion and never change afterwards.
type SortKeys struct {
	// Year is the publication year, or the year the person joined.
	// Zero means unknown and sorts after every real year in
	// descending order.
	Year int `json:"year" yaml:"year"`

	// TitleLower is the lowercased display title, used for
	// code-point lexicographic comparison.
	TitleLower string `json:"title_lower" yaml:"title_lower"`
}

// CitationFields holds the minimal fields needed to synthesize a
// citation. Authors is a single opaque string, not a structured list:
// the source data carries it as free text. A missing field renders as
// an empty segment, never as an error.
type CitationFields struct {
	Authors string `json:"authors" yaml:"authors"`
	Title   string `json:"title" yaml:"title"`
	Year    int    `json:"year" yaml:"year"`
}

// Record represents one publication or one person on a listing page.
// Records are immutable once loaded: the engine never inserts, deletes,
// or mutates them, and all derived state (visibility, order, counts)
// is recomputed from scratch on every filter or sort change.
type Record struct {
	// ID is an opaque stable identifier, unique within the catalog.
	ID string `json:"id" yaml:"id"`

	// Kind identifies the listing surface (publication or person).
	Kind RecordKind `json:"kind" yaml:"kind"`

	// Title is the display string: the publication title or the
	// person's name. It is also the primary search key.
	Title string `json:"title" yaml:"title"`

	// SearchBlob is the lowercase concatenation of all searchable
	// text (title, authors or expertise, keywords). Precomputed at
	// ingestion; free-text queries test substring containment
	// against it.
	SearchBlob string `json:"search_blob" yaml:"search_blob"`

	// Category is the single facet tag used by the filter tabs:
	// a publication_type slug or a team_role slug, unified by the
	// adapters. Exactly one primary category per record.
	Category string `json:"category" yaml:"category"`

	// Tags are secondary display-only labels (keywords or expertise
	// areas). They participate in text search through SearchBlob but
	// never in category filtering.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// SortKeys are the pre-extracted comparator inputs.
	SortKeys SortKeys `json:"sort_keys" yaml:"sort_keys"`

	// Citation holds the citation fields for publications. Nil for
	// people.
	Citation *CitationFields `json:"citation,omitempty" yaml:"citation,omitempty"`
}
