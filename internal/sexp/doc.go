// Package sexp implements a round-tripping s-expression document model.
//
// The parser keeps every byte of the input: each node records the exact
// whitespace and comment run that preceded it, every atom keeps its
// original spelling (quoting, escapes, numeric formatting included),
// and each list records the run before its closing parenthesis. An
// unmodified document therefore serializes back to the input byte for
// byte, which matters because the files this package edits are diffed
// and version-controlled by their owners.
//
// # Mutation
//
// Mutation is deliberately narrow: an atom's text can be replaced via
// [Atom.SetString], and a child can be spliced into a list via
// [List.InsertChild]. Everything not explicitly touched keeps its
// original bytes on serialization.
//
// # Addressing
//
// Nodes are addressed by [Path], a chain of child indexes from the
// document root. Holding a Path instead of a node pointer keeps every
// reference anchored in the single owned tree; [Document.At] resolves
// a path on demand. Paths stay valid until the tree shape changes.
package sexp
