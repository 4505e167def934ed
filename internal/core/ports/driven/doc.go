// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SchematicStore: Opens schematic files for editing
//   - SchematicEditor: One parsed schematic, byte-preserving
//   - CatalogSearcher: Queries a supplier part catalog (JLCPCB API or local index)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Chooser: Presents candidates for a human decision. Without it, runs
//     are non-interactive and ambiguous searches are skipped.
//   - CatalogImporter: Builds the local part index. Only the import
//     command needs it.
//   - BOMWriter: Writes bill-of-materials exports. Only the bom command
//     needs it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or catalog package
package driven
