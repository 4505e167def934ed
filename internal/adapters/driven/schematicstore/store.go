// Package schematicstore adapts the schematic parser to the
// SchematicStore port.
package schematicstore

import (
	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driven"
	"github.com/partlink-labs/partlink-cli/internal/schematic"
)

// Ensure Store implements the interface.
var _ driven.SchematicStore = (*Store)(nil)

// Store opens schematic files from the filesystem.
type Store struct{}

// NewStore creates a new schematic store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and parses a schematic file.
func (s *Store) Load(path string, schema domain.SchemaSettings) (driven.SchematicEditor, error) {
	sch, err := schematic.Load(path, schematic.Schema{
		IDProperty:  schema.IDProperty,
		URLProperty: schema.URLProperty,
	})
	if err != nil {
		return nil, err
	}
	return sch, nil
}
