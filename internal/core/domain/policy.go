package domain

// MissingPropertyPolicy controls what happens when a decision must be
// written to a property the symbol does not declare.
type MissingPropertyPolicy int

const (
	// MissingPropertySkip reports a MissingFieldError for the symbol
	// and leaves it untouched. This is the default: the schematic's
	// property schema is treated as fixed.
	MissingPropertySkip MissingPropertyPolicy = iota

	// MissingPropertySynthesize inserts a hidden property node shaped
	// like the schematic editor's own output.
	MissingPropertySynthesize
)

// DefaultMaxSearchRetries bounds the cooperative rate-limit waits per
// component before its search counts as failed.
const DefaultMaxSearchRetries = 3

// ResolutionPolicy carries the per-run knobs the resolution engine
// consults. The zero value is a conservative batch run: preserve
// existing links, never auto-accept, never synthesize properties.
type ResolutionPolicy struct {
	// OverwriteExisting re-resolves components that already carry a
	// supplier identifier. When false they are left unchanged.
	OverwriteExisting bool

	// Interactive presents candidates for a human decision. When
	// false the run is batch: only AcceptTop or a single candidate
	// resolves a component.
	Interactive bool

	// AcceptTop commits the first returned candidate without asking.
	AcceptTop bool

	// MaxSearchRetries bounds the cooperative waits after rate-limit
	// failures. Zero means DefaultMaxSearchRetries.
	MaxSearchRetries int

	// MissingProperty controls synthesis of absent schema properties.
	MissingProperty MissingPropertyPolicy
}

// SearchRetries returns the effective retry bound.
func (p ResolutionPolicy) SearchRetries() int {
	if p.MaxSearchRetries <= 0 {
		return DefaultMaxSearchRetries
	}
	return p.MaxSearchRetries
}
