// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/hjy895/MegaTempQA/pkg/types"
)

// Export is the serialized form of the knowledge base.
type Export struct {
	Stats         Stats                `json:"stats" yaml:"stats"`
	Events        []types.Event        `json:"events" yaml:"events"`
	People        []types.Person       `json:"people" yaml:"people"`
	Organizations []types.Organization `json:"organizations" yaml:"organizations"`
	Source        string               `json:"source" yaml:"source"`
}

func (b *Base) export() Export {
	return Export{
		Stats:         b.Stats(),
		Events:        b.Events,
		People:        b.People,
		Organizations: b.Organizations,
		Source:        types.SourceCurated,
	}
}

// ExportYAML writes the full knowledge base to path as YAML.
func (b *Base) ExportYAML(path string) error {
	data, err := yaml.Marshal(b.export())
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the full knowledge base to path as JSON.
func (b *Base) ExportJSON(path string) error {
	data, err := json.MarshalIndent(b.export(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
