package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driven"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driving"
	"github.com/partlink-labs/partlink-cli/internal/logger"
)

// Ensure FixService implements the interface.
var _ driving.FixService = (*FixService)(nil)

// FixService injects known supplier part numbers into a schematic
// without searching, for assignments collected outside a session.
type FixService struct {
	store    driven.SchematicStore
	settings driving.SettingsService
}

// NewFixService creates a new fix service.
func NewFixService(store driven.SchematicStore, settings driving.SettingsService) *FixService {
	return &FixService{store: store, settings: settings}
}

// Fix applies every assignment whose reference exists in the
// schematic. Components that already carry a part number are left
// alone; assignments with no matching component are reported as
// skipped.
func (s *FixService) Fix(ctx context.Context, req driving.FixRequest) (*domain.RunReport, error) {
	app, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	editor, err := s.store.Load(req.SchematicPath, app.Schema)
	if err != nil {
		return nil, err
	}

	report := &domain.RunReport{
		ID:        uuid.NewString(),
		Schematic: editor.Path(),
		DryRun:    req.DryRun,
		StartedAt: time.Now(),
	}

	logger.Section("Assignment Injection")
	components := editor.Components()
	logger.Info("Schematic %s: %d components, %d assignments", editor.Path(), len(components), len(req.Assignments))

	matched := make(map[string]bool, len(req.Assignments))
	for _, comp := range components {
		if err := ctx.Err(); err != nil {
			report.FinishedAt = time.Now()
			return report, err
		}

		raw, ok := req.Assignments[comp.Reference]
		if !ok {
			continue
		}
		matched[comp.Reference] = true

		outcome := domain.ComponentOutcome{Reference: comp.Reference}
		switch id, valid := domain.NormalizeSupplierID(raw); {
		case !valid:
			logger.Warn("%s: %v: %q", comp.Reference, domain.ErrInvalidSupplierID, raw)
			outcome.Decision = domain.Skipped(fmt.Sprintf("invalid part number %q", raw))

		case comp.SupplierID != "":
			logger.Debug("%s already linked to %s", comp.Reference, comp.SupplierID)
			outcome.Decision = domain.LeftUnchanged("already linked")

		default:
			decision := domain.ManualOverride(id, domain.SupplierProductURL(id))
			if err := editor.Apply(comp, decision, req.MissingProperty); err != nil {
				if !domain.IsMissingField(err) {
					report.FinishedAt = time.Now()
					return report, fmt.Errorf("apply assignment for %s: %w", comp.Reference, err)
				}
				logger.Warn("%v, skipping", err)
				outcome.Decision = domain.Skipped(err.Error())
				break
			}
			logger.Info("%s -> %s", comp.Reference, id)
			outcome.Decision = decision
		}
		report.Add(outcome)
	}

	// Assignments that matched nothing, in stable order.
	var unknown []string
	for ref := range req.Assignments {
		if !matched[ref] {
			unknown = append(unknown, ref)
		}
	}
	sort.Strings(unknown)
	for _, ref := range unknown {
		logger.Warn("%s not found in schematic", ref)
		report.Add(domain.ComponentOutcome{
			Reference: ref,
			Decision:  domain.Skipped("not in schematic"),
		})
	}

	report.FinishedAt = time.Now()

	if req.DryRun {
		logger.Info("Dry run: not writing %s", editor.Path())
		return report, nil
	}
	if report.Updated() == 0 {
		logger.Debug("Nothing updated, not writing")
		return report, nil
	}
	if err := editor.Save(req.OutputPath); err != nil {
		return report, fmt.Errorf("save schematic: %w", err)
	}
	return report, nil
}
