package driving

import (
	"context"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
)

// LinkRequest configures one resolution run over a schematic file.
type LinkRequest struct {
	// SchematicPath is the schematic to process.
	SchematicPath string

	// OutputPath is where the edited schematic is written. Empty writes
	// back to SchematicPath.
	OutputPath string

	// DryRun resolves and reports without writing any file.
	DryRun bool

	// Policy governs overwriting, interactivity and retry bounds.
	Policy domain.ResolutionPolicy
}

// LinkerService resolves a schematic's components against the supplier
// catalog and writes the decided assignments back.
type LinkerService interface {
	// Run executes the resolution pipeline: locate components, search
	// the catalog, collect decisions, patch the document, save. The
	// returned report covers every located component.
	Run(ctx context.Context, req LinkRequest) (*domain.RunReport, error)
}
