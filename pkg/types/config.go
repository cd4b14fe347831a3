package types

import "time"

// EngineConfig holds settings for the filter/sort/projection engine.
type EngineConfig struct {
	// DefaultSort is the sort key applied when a page session starts.
	// Empty uses DefaultSort ("date-desc").
	DefaultSort SortKey `json:"default_sort" yaml:"default_sort"`

	// DebounceWindow is the quiescence window for free-text query
	// input (default 300ms). A keystroke only reaches the filter
	// after this much input silence.
	DebounceWindow time.Duration `json:"debounce_window" yaml:"debounce_window"`
}

// CatalogConfig holds settings for the record catalog.
type CatalogConfig struct {
	// CatalogDir is the directory holding the SQLite catalog and
	// export files (default "catalog").
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// ContentDir is the base directory for record source documents
	// (contains publications/, people/; default "content").
	ContentDir string `json:"content_dir" yaml:"content_dir"`
}

// ListingConfig groups all configuration for the listing engine.
type ListingConfig struct {
	Engine  EngineConfig  `json:"engine" yaml:"engine"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
}
