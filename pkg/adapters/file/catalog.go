// Package file provides filesystem adapters: a reference catalog read from a
// single YAML or JSON document, and a recorder keeping one JSON file per
// organization.
package file

import (
	"fmt"
	"os"

	"github.com/aretw0/logframe/pkg/adapters/memory"
	"github.com/aretw0/logframe/pkg/domain"
	"gopkg.in/yaml.v3"
)

// LoadReferenceData reads a reference data document. JSON documents are
// accepted as YAML. A missing file yields empty tables.
func LoadReferenceData(path string) (domain.ReferenceData, error) {
	var data domain.ReferenceData

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return data, fmt.Errorf("failed to read reference data: %w", err)
	}

	if err := yaml.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("failed to parse reference data %s: %w", path, err)
	}
	return data, nil
}

// NewCatalog loads path into an in-memory catalog.
func NewCatalog(path string) (*memory.Catalog, error) {
	data, err := LoadReferenceData(path)
	if err != nil {
		return nil, err
	}
	return memory.NewCatalog(data), nil
}
