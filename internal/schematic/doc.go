// Package schematic reads and surgically rewrites KiCad schematic
// files.
//
// It layers one schema convention over the generic tree in
// internal/sexp: a symbol instance is a list headed by the symbol tag
// that contains a lib_id child, and its named fields are children of
// the shape (property "<name>" "<value>" ...). Reading extracts
// name-to-value views; writing replaces only a targeted property's
// value token, or synthesizes a whole hidden property node when the
// run's policy allows it. Every byte the tool did not explicitly
// change serializes back exactly as it was read.
package schematic
