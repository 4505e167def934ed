package driven

import "github.com/partlink-labs/partlink-cli/internal/core/domain"

// BOMWriter persists a bill of materials. Implementations pick the
// format from the target path's extension.
type BOMWriter interface {
	// Write exports the BOM to path.
	Write(bom *domain.BOM, path string) error
}
