package driving

import (
	"context"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
)

// FixRequest applies hand-collected part assignments to a schematic
// without searching the catalog.
type FixRequest struct {
	// SchematicPath is the schematic to process.
	SchematicPath string

	// OutputPath is where the edited schematic is written. Empty writes
	// back to SchematicPath.
	OutputPath string

	// DryRun resolves and reports without writing any file.
	DryRun bool

	// Assignments maps reference designators to supplier part numbers.
	Assignments map[string]string

	// MissingProperty says what to do when a target property does not
	// exist on a symbol.
	MissingProperty domain.MissingPropertyPolicy
}

// FixService injects known supplier part numbers into a schematic in
// bulk, for assignments collected outside a search session.
type FixService interface {
	// Fix applies every assignment whose reference exists in the
	// schematic. Unknown references are reported, not fatal.
	Fix(ctx context.Context, req FixRequest) (*domain.RunReport, error)
}
