// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/listing-engine/pkg/types"
)

// ExportYAML writes the catalog (optionally one kind) to
// catalogDir/export.yaml.
func (s *Store) ExportYAML(ctx context.Context, kind types.RecordKind) error {
	records, err := s.Load(ctx, kind)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.catalogDir, "export.yaml")
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the catalog (optionally one kind) to
// catalogDir/export.json.
func (s *Store) ExportJSON(ctx context.Context, kind types.RecordKind) error {
	records, err := s.Load(ctx, kind)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(s.catalogDir, "export.json")
	return os.WriteFile(path, data, 0o644)
}
