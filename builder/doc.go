// Package builder produces deterministic graph fixtures: complete graphs,
// paths, cycles, stars, and directed graphs imported from adjacency lists.
//
// Build is the single orchestrator: it creates a core.Graph, resolves the
// functional options into an immutable config, and applies Constructor
// closures in order. The same inputs and constructor order always produce an
// identical graph, which the test suites lean on heavily.
//
// Vertex IDs come from the configured ID scheme - numeric ("0", "1", ...) by
// default, alphabetic ("A", "B", ...) via WithLetterIDs.
//
// Errors:
//
//	ErrTooFewVertices  a constructor's size parameter is below its minimum
//	ErrNilConstructor  Build received a nil Constructor
package builder
