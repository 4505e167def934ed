package driven

import "github.com/partlink-labs/partlink-cli/internal/core/domain"

// SchematicEditor is one parsed schematic held in memory. Edits are
// localized property rewrites; everything the editor did not touch
// serializes back byte-identically.
type SchematicEditor interface {
	// Components extracts the orderable symbol instances in file order.
	Components() []*domain.SymbolComponent

	// Apply writes a decision's assignment into the document. Matched
	// and manual decisions set the identifier and URL properties
	// atomically; skip and leave-unchanged decisions are no-ops.
	Apply(comp *domain.SymbolComponent, d domain.ResolutionDecision, missing domain.MissingPropertyPolicy) error

	// Save writes the serialized document to path, or back to the
	// loaded file when path is empty.
	Save(path string) error

	// Path returns the file the schematic was loaded from.
	Path() string

	// Bytes serializes the document.
	Bytes() []byte
}

// SchematicStore opens schematic files for editing.
type SchematicStore interface {
	// Load reads and parses a schematic file. The schema names the
	// properties supplier assignments are stored under.
	Load(path string, schema domain.SchemaSettings) (SchematicEditor, error)
}
