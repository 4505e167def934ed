package driving

import (
	"context"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
)

// BOMRequest configures a bill-of-materials export.
type BOMRequest struct {
	// SchematicPath is the schematic to read.
	SchematicPath string

	// OutputPath is the export target. The extension picks the format.
	OutputPath string

	// IncludeUnlinked keeps groups without a supplier part number in
	// the export.
	IncludeUnlinked bool
}

// BOMService generates grouped bills of materials from schematics.
type BOMService interface {
	// Export groups the schematic's components, writes the export and
	// returns the generated BOM for display.
	Export(ctx context.Context, req BOMRequest) (*domain.BOM, error)
}
