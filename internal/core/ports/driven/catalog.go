package driven

import (
	"context"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
)

// CatalogSearcher queries a supplier part catalog.
// Backed by the JLCPCB search API or by a locally imported index.
type CatalogSearcher interface {
	// Search returns candidate parts for a free-text query, best match
	// first. A nil or empty slice means the catalog has nothing for the
	// query; that is not an error.
	Search(ctx context.Context, query string) ([]domain.Candidate, error)

	// Close releases resources.
	Close() error
}

// CatalogImporter builds the local part index from a supplier
// spreadsheet export.
type CatalogImporter interface {
	// ImportSpreadsheet reads a parts spreadsheet and indexes every row.
	// Returns the number of parts indexed.
	ImportSpreadsheet(ctx context.Context, path string) (int, error)

	// Close releases resources.
	Close() error
}
