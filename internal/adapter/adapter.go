// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package adapter maps page-type source documents to engine records.
// One adapter exists per listing surface; the engine itself is
// parameterized only by the unified Record, so platform taxonomy
// details (publication_type vs. team_role) stay here.
// Implements: prd001-records (R2-R4).
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// Adapter converts one page type's source documents into Records.
// Each listing surface (publications, people) implements this
// interface per the Strategy pattern.
type Adapter interface {
	// Kind identifies the listing surface this adapter serves.
	Kind() types.RecordKind

	// Dir is the subdirectory of the content root holding this
	// surface's source documents.
	Dir() string

	// Read parses one YAML source document into a Record, computing
	// the search blob and sort keys.
	Read(path string) (types.Record, error)
}

// All returns the adapters for every built-in listing surface.
func All() []Adapter {
	return []Adapter{PublicationAdapter{}, PersonAdapter{}}
}

// searchBlob lowercases and joins the searchable text fields with
// single spaces. Empty parts are dropped so the blob stays compact.
func searchBlob(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.ToLower(strings.Join(kept, " "))
}

// idFromPath derives a record ID from the source filename when the
// document does not carry one explicitly.
func idFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// readDoc reads and unmarshals one YAML document into out.
func readDoc(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
