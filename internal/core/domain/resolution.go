package domain

// State identifies where a component currently is in the resolution
// state machine. Every component travels
// Pending -> Searching -> {AwaitingChoice | AutoResolved | Failed} ->
// Decided within one run.
type State int

const (
	// StatePending is the entry state before any search.
	StatePending State = iota

	// StateSearching means a catalog query is in flight (or waiting
	// out a rate-limit backoff).
	StateSearching

	// StateAwaitingChoice means candidates are being presented for a
	// human decision.
	StateAwaitingChoice

	// StateAutoResolved means the run's policy selected a candidate
	// without asking.
	StateAutoResolved

	// StateFailed means the search produced nothing usable.
	StateFailed

	// StateDecided is the terminal state; the component carries its
	// ResolutionDecision from here on.
	StateDecided
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSearching:
		return "searching"
	case StateAwaitingChoice:
		return "awaiting-choice"
	case StateAutoResolved:
		return "auto-resolved"
	case StateFailed:
		return "failed"
	case StateDecided:
		return "decided"
	default:
		return "unknown"
	}
}

// DecisionKind discriminates the variants of ResolutionDecision.
type DecisionKind int

const (
	// DecisionMatched assigns a searched candidate.
	DecisionMatched DecisionKind = iota

	// DecisionManualOverride assigns a hand-entered part number.
	DecisionManualOverride

	// DecisionSkipped leaves the component alone by choice or after a
	// failed search.
	DecisionSkipped

	// DecisionLeftUnchanged leaves the component alone because policy
	// never considered it (already linked, or the run was quit).
	DecisionLeftUnchanged
)

// String implements fmt.Stringer.
func (k DecisionKind) String() string {
	switch k {
	case DecisionMatched:
		return "matched"
	case DecisionManualOverride:
		return "manual"
	case DecisionSkipped:
		return "skipped"
	case DecisionLeftUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// ResolutionDecision is the committed outcome for one component.
// Produced once per component per run and never retracted.
type ResolutionDecision struct {
	// Kind discriminates the variant.
	Kind DecisionKind

	// Candidate is the selected search result, set only for Matched.
	Candidate *Candidate

	// ManualID and ManualURL carry the hand-entered assignment, set
	// only for ManualOverride.
	ManualID  string
	ManualURL string

	// Reason documents why a component was skipped or left unchanged.
	Reason string
}

// Matched returns the decision selecting a searched candidate.
func Matched(c Candidate) ResolutionDecision {
	return ResolutionDecision{Kind: DecisionMatched, Candidate: &c}
}

// ManualOverride returns the decision assigning a hand-entered part
// number.
func ManualOverride(id, url string) ResolutionDecision {
	return ResolutionDecision{Kind: DecisionManualOverride, ManualID: id, ManualURL: url}
}

// Skipped returns the decision leaving the component alone, with the
// reason reported at the end of the run.
func Skipped(reason string) ResolutionDecision {
	return ResolutionDecision{Kind: DecisionSkipped, Reason: reason}
}

// LeftUnchanged returns the decision for components policy never
// touched.
func LeftUnchanged(reason string) ResolutionDecision {
	return ResolutionDecision{Kind: DecisionLeftUnchanged, Reason: reason}
}

// Assignment returns the identifier/URL pair a decision writes back.
// ok is false for Skipped and LeftUnchanged, which write nothing.
func (d ResolutionDecision) Assignment() (id, url string, ok bool) {
	switch d.Kind {
	case DecisionMatched:
		if d.Candidate == nil {
			return "", "", false
		}
		return d.Candidate.ID, d.Candidate.URL, true
	case DecisionManualOverride:
		return d.ManualID, d.ManualURL, true
	default:
		return "", "", false
	}
}

// ChoiceEvent is one discrete input to the AwaitingChoice state. The
// engine is agnostic to where events come from: a line prompt, a
// full-screen picker and a scripted test all feed it the same way.
type ChoiceEvent interface {
	choiceEvent()
}

// ChoiceSelect picks a candidate by its 1-based position in the
// presented list.
type ChoiceSelect struct {
	Index int
}

// ChoiceRequery replaces the query and searches again.
type ChoiceRequery struct {
	Query string
}

// ChoiceManual supplies a supplier part number directly. URL may be
// empty, in which case the product page is derived from the ID.
type ChoiceManual struct {
	ID  string
	URL string
}

// ChoiceSkip leaves this component undecided and moves on.
type ChoiceSkip struct{}

// ChoiceQuit abandons the rest of the queue; every not-yet-decided
// component is left unchanged.
type ChoiceQuit struct{}

func (ChoiceSelect) choiceEvent()  {}
func (ChoiceRequery) choiceEvent() {}
func (ChoiceManual) choiceEvent()  {}
func (ChoiceSkip) choiceEvent()    {}
func (ChoiceQuit) choiceEvent()    {}
