package domain

import "time"

// ComponentOutcome records the terminal decision for one component.
type ComponentOutcome struct {
	// Reference is the component's designator.
	Reference string

	// Decision is the committed outcome.
	Decision ResolutionDecision

	// Query is the last catalog query sent for this component, ""
	// when no search ran.
	Query string
}

// RunReport is the auditable summary of one linking run: every
// processed component appears exactly once, in file order.
type RunReport struct {
	// ID uniquely identifies the run.
	ID string

	// Schematic is the input file path.
	Schematic string

	// DryRun records that nothing was persisted.
	DryRun bool

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time
	FinishedAt time.Time

	// Outcomes holds one entry per processed component, in file order.
	Outcomes []ComponentOutcome
}

// Add appends one component's outcome.
func (r *RunReport) Add(o ComponentOutcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Count returns the number of outcomes of the given kind.
func (r *RunReport) Count(kind DecisionKind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Decision.Kind == kind {
			n++
		}
	}
	return n
}

// Updated returns the number of components whose properties were
// written: matched plus manual decisions.
func (r *RunReport) Updated() int {
	return r.Count(DecisionMatched) + r.Count(DecisionManualOverride)
}
