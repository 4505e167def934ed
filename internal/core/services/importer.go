package services

import (
	"context"
	"fmt"
	"time"

	"github.com/partlink-labs/partlink-cli/internal/core/ports/driven"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driving"
	"github.com/partlink-labs/partlink-cli/internal/logger"
)

// Ensure ImporterService implements the interface.
var _ driving.ImportService = (*ImporterService)(nil)

// ImporterService builds the local part index from supplier
// spreadsheet exports.
type ImporterService struct {
	importer driven.CatalogImporter
}

// NewImporterService creates a new importer service.
func NewImporterService(importer driven.CatalogImporter) *ImporterService {
	return &ImporterService{importer: importer}
}

// Import indexes every part in the spreadsheet at path.
func (s *ImporterService) Import(ctx context.Context, path string) (int, error) {
	logger.Section("Catalog Import")
	logger.Info("Importing parts from %s", path)

	start := time.Now()
	n, err := s.importer.ImportSpreadsheet(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("import spreadsheet: %w", err)
	}

	logger.Info("Indexed %d parts in %s", n, time.Since(start).Round(time.Millisecond))
	return n, nil
}
