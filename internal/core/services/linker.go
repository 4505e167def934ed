package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driven"
	"github.com/partlink-labs/partlink-cli/internal/core/ports/driving"
	"github.com/partlink-labs/partlink-cli/internal/logger"
)

// Ensure LinkerService implements the interface.
var _ driving.LinkerService = (*LinkerService)(nil)

// LinkerService walks a schematic's components through the resolution
// state machine and writes committed decisions back to the file.
type LinkerService struct {
	store    driven.SchematicStore
	catalog  driven.CatalogSearcher
	chooser  driven.Chooser
	settings driving.SettingsService
}

// NewLinkerService creates a new linker service.
// The chooser is optional (can be nil); without it every run is
// non-interactive.
func NewLinkerService(
	store driven.SchematicStore,
	catalog driven.CatalogSearcher,
	chooser driven.Chooser,
	settings driving.SettingsService,
) *LinkerService {
	return &LinkerService{
		store:    store,
		catalog:  catalog,
		chooser:  chooser,
		settings: settings,
	}
}

// Run executes the resolution pipeline over one schematic.
func (s *LinkerService) Run(ctx context.Context, req driving.LinkRequest) (*domain.RunReport, error) {
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

	logger.Section("Component Resolution")
	components := editor.Components()
	logger.Info("Schematic %s: %d components", editor.Path(), len(components))

	if len(components) == 0 {
		report.FinishedAt = time.Now()
		return report, domain.ErrNoComponents
	}

	// Quit ends the session but not the run: decided work is still
	// reported and saved, the rest is left unchanged.
	quit := false
	for _, comp := range components {
		outcome, err := s.resolveOne(ctx, editor, comp, req.Policy, &quit)
		if err != nil {
			report.FinishedAt = time.Now()
			return report, err
		}
		report.Add(outcome)
	}
	report.FinishedAt = time.Now()

	logger.Info("Resolved %d components: %d updated, %d skipped, %d unchanged",
		len(report.Outcomes),
		report.Updated(),
		report.Count(domain.DecisionSkipped),
		report.Count(domain.DecisionLeftUnchanged))

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

// resolveOne takes one component to its terminal decision and applies
// it to the document.
func (s *LinkerService) resolveOne(
	ctx context.Context,
	editor driven.SchematicEditor,
	comp *domain.SymbolComponent,
	policy domain.ResolutionPolicy,
	quit *bool,
) (domain.ComponentOutcome, error) {
	outcome := domain.ComponentOutcome{Reference: comp.Reference}

	if *quit {
		outcome.Decision = domain.LeftUnchanged("session quit")
		return outcome, nil
	}
	if comp.SupplierID != "" && !policy.OverwriteExisting {
		logger.Debug("%s already linked to %s", comp.Reference, comp.SupplierID)
		outcome.Decision = domain.LeftUnchanged("already linked")
		return outcome, nil
	}
	if comp.Incomplete {
		logger.Warn("%s is missing its value or footprint, skipping", comp.Reference)
		outcome.Decision = domain.Skipped("missing value or footprint")
		return outcome, nil
	}

	query := BuildQuery(comp)
	decision, lastQuery, err := s.decide(ctx, comp, query, policy, quit)
	if err != nil {
		return outcome, err
	}
	outcome.Query = lastQuery
	outcome.Decision = decision

	if _, _, ok := decision.Assignment(); !ok {
		return outcome, nil
	}
	if err := editor.Apply(comp, decision, policy.MissingProperty); err != nil {
		if domain.IsMissingField(err) {
			logger.Warn("%v, skipping", err)
			outcome.Decision = domain.Skipped(err.Error())
			return outcome, nil
		}
		return outcome, fmt.Errorf("apply decision for %s: %w", comp.Reference, err)
	}
	logger.Info("%s -> %s", comp.Reference, comp.SupplierID)
	return outcome, nil
}

// decide walks one component Pending -> Searching ->
// {AwaitingChoice | AutoResolved | Failed} -> Decided and returns the
// committed decision together with the last query searched.
func (s *LinkerService) decide(
	ctx context.Context,
	comp *domain.SymbolComponent,
	query string,
	policy domain.ResolutionPolicy,
	quit *bool,
) (domain.ResolutionDecision, string, error) {
	interactive := policy.Interactive && s.chooser != nil
	retriedBare := false
	state := domain.StatePending

	for {
		state = domain.StateSearching
		logger.Debug("%s [%s]: %q", comp.Reference, state, query)

		candidates, err := s.search(ctx, query, policy)
		if err != nil {
			if ctx.Err() != nil {
				return domain.ResolutionDecision{}, query, ctx.Err()
			}
			state = domain.StateFailed
			logger.Warn("%s [%s]: %v", comp.Reference, state, err)
			return domain.Skipped(fmt.Sprintf("search failed: %v", err)), query, nil
		}

		// An over-specific query often misses. Retry once with the
		// bare value before giving up or asking anyone.
		if len(candidates) == 0 && !retriedBare && query != comp.Value {
			retriedBare = true
			logger.Debug("%s: no matches for %q, retrying with %q", comp.Reference, query, comp.Value)
			query = comp.Value
			continue
		}

		if !interactive {
			decision := batchDecision(candidates, policy)
			state = domain.StateDecided
			if decision.Kind == domain.DecisionMatched {
				state = domain.StateAutoResolved
			}
			logger.Debug("%s [%s]: %s", comp.Reference, state, decision.Kind)
			return decision, query, nil
		}

		state = domain.StateAwaitingChoice
		event, err := s.chooser.Choose(ctx, comp, query, candidates)
		if err != nil {
			return domain.ResolutionDecision{}, query, fmt.Errorf("collect choice for %s: %w", comp.Reference, err)
		}

		switch ev := event.(type) {
		case domain.ChoiceSelect:
			if ev.Index < 1 || ev.Index > len(candidates) {
				logger.Warn("Selection %d out of range", ev.Index)
				continue
			}
			return domain.Matched(candidates[ev.Index-1]), query, nil

		case domain.ChoiceRequery:
			if q := strings.TrimSpace(ev.Query); q != "" {
				query = q
				retriedBare = true
			}
			continue

		case domain.ChoiceManual:
			id, ok := domain.NormalizeSupplierID(ev.ID)
			if !ok {
				logger.Warn("%v: %q", domain.ErrInvalidSupplierID, ev.ID)
				continue
			}
			url := ev.URL
			if url == "" {
				url = domain.SupplierProductURL(id)
			}
			return domain.ManualOverride(id, url), query, nil

		case domain.ChoiceSkip:
			return domain.Skipped("skipped by user"), query, nil

		case domain.ChoiceQuit:
			*quit = true
			return domain.LeftUnchanged("session quit"), query, nil

		default:
			return domain.ResolutionDecision{}, query, fmt.Errorf("unhandled choice event %T", event)
		}
	}
}

// batchDecision resolves without asking: a sole candidate or the
// accept-top policy commits, anything else is ambiguous and skipped.
func batchDecision(candidates []domain.Candidate, policy domain.ResolutionPolicy) domain.ResolutionDecision {
	switch {
	case len(candidates) == 0:
		return domain.Skipped("no matches")
	case policy.AcceptTop || len(candidates) == 1:
		return domain.Matched(candidates[0])
	default:
		return domain.Skipped(fmt.Sprintf("ambiguous: %d candidates", len(candidates)))
	}
}

// search asks the catalog, waiting out rate limits up to the policy's
// retry bound. Transport failures are never retried here.
func (s *LinkerService) search(ctx context.Context, query string, policy domain.ResolutionPolicy) ([]domain.Candidate, error) {
	retries := policy.SearchRetries()
	for attempt := 0; ; attempt++ {
		candidates, err := s.catalog.Search(ctx, query)
		if err == nil {
			return candidates, nil
		}

		var limited *domain.RateLimitError
		if !errors.As(err, &limited) || attempt >= retries {
			return nil, err
		}

		logger.Warn("Rate limited, waiting %s (attempt %d/%d)", limited.RetryAfter, attempt+1, retries)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(limited.RetryAfter):
		}
	}
}
