package services

import (
	"context"
	"fmt"
	"time"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driven"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driving"
	"github.com/partlink-labs/partlink-cli/internal/logger"
)

// Ensure BOMService implements the interface.
var _ driving.BOMService = (*BOMService)(nil)

// BOMService groups a schematic's components into bill-of-materials
// lines and hands them to a writer.
type BOMService struct {
	store    driven.SchematicStore
	writer   driven.BOMWriter
	settings driving.SettingsService
}

// NewBOMService creates a new BOM service.
// The writer is optional (can be nil); without it Export only
// generates.
func NewBOMService(store driven.SchematicStore, writer driven.BOMWriter, settings driving.SettingsService) *BOMService {
	return &BOMService{store: store, writer: writer, settings: settings}
}

// Export groups the schematic's components, writes the export when a
// target is given and returns the generated BOM.
func (s *BOMService) Export(ctx context.Context, req driving.BOMRequest) (*domain.BOM, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	app, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	editor, err := s.store.Load(req.SchematicPath, app.Schema)
	if err != nil {
		return nil, err
	}

	components := editor.Components()
	if len(components) == 0 {
		return nil, domain.ErrNoComponents
	}

	// Components sharing value, footprint and part number collapse to
	// one line; lines keep first-appearance order.
	type groupKey struct {
		value, footprint, supplierID string
	}
	index := make(map[groupKey]int)

	bom := &domain.BOM{
		Schematic:   editor.Path(),
		GeneratedAt: time.Now(),
	}
	for _, comp := range components {
		if comp.SupplierID == "" && !req.IncludeUnlinked {
			logger.Debug("%s is unlinked, not exported", comp.Reference)
			continue
		}

		k := groupKey{comp.Value, comp.Footprint, comp.SupplierID}
		i, ok := index[k]
		if !ok {
			i = len(bom.Lines)
			index[k] = i
			bom.Lines = append(bom.Lines, domain.BOMLine{
				Value:      comp.Value,
				Footprint:  comp.Footprint,
				SupplierID: comp.SupplierID,
			})
		}
		bom.Lines[i].References = append(bom.Lines[i].References, comp.Reference)
		bom.Lines[i].Quantity++
	}

	logger.Info("BOM for %s: %d lines (%d linked) from %d components",
		editor.Path(), len(bom.Lines), bom.Linked(), len(components))

	if req.OutputPath != "" {
		if s.writer == nil {
			return nil, fmt.Errorf("write bom: no writer configured")
		}
		if err := s.writer.Write(bom, req.OutputPath); err != nil {
			return nil, fmt.Errorf("write bom: %w", err)
		}
		logger.Info("Wrote %s", req.OutputPath)
	}
	return bom, nil
}
