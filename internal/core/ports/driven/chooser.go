package driven

import (
	"context"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
)

// Chooser collects one choice event for a component whose search
// produced candidates. Implementations prompt a human (line prompt,
// full-screen picker) or script answers in tests; the resolution
// engine treats them all the same.
type Chooser interface {
	// Choose presents the candidates found for query and blocks until
	// the user produces an event. The candidate slice may be empty, in
	// which case only re-query, manual, skip and quit make sense.
	Choose(ctx context.Context, comp *domain.SymbolComponent, query string, candidates []domain.Candidate) (domain.ChoiceEvent, error)
}
