// Package domain defines the core business entities for Partlink.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SymbolComponent: one placed part instance in a schematic
//   - Candidate: one parts-catalog search result
//   - ResolutionDecision: the committed outcome for one component
//   - ChoiceEvent: one discrete input to an interactive decision
//   - RunReport: the auditable summary of a linking run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
