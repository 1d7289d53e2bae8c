// Copyright Zainab Saad, 2026. All rights reserved.

package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ExportEntry holds one block as written to the export files.
type ExportEntry struct {
	ID        string `json:"id" yaml:"id"`
	SheetName string `json:"sheet_name" yaml:"sheet_name"`
	Question  string `json:"question" yaml:"question"`
	Answer    string `json:"answer" yaml:"answer"`
	Source    string `json:"source" yaml:"source"`
	Document  string `json:"document" yaml:"document"`
	Position  int    `json:"position" yaml:"position"`
}

const exportLimit = 100000

// ExportYAML writes the block index to indexDir/export.yaml. It supports the
// same filters as Retrieve.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(filepath.Join(s.indexDir, "export.yaml"), data, 0o644)
}

// ExportJSON writes the block index to indexDir/export.json. It supports the
// same filters as Retrieve.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) error {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(filepath.Join(s.indexDir, "export.json"), data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context, opts QueryOptions) ([]ExportEntry, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = exportLimit
	}
	results, err := s.Retrieve(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(results))
	for i, r := range results {
		entries[i] = ExportEntry{
			ID:        r.ID,
			SheetName: r.SheetName,
			Question:  r.Question,
			Answer:    r.Answer,
			Source:    r.Source,
			Document:  r.DocumentPath,
			Position:  r.Position,
		}
	}

	return entries, nil
}
