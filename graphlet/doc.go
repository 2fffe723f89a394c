// Package graphlet enumerates rooted graphlets: all connected graphs on a
// fixed vertex set, reduced to one representative per equivalence class under
// root-fixed isomorphism.
//
// FindAll sweeps every subset of the C(n,2) possible edges over the vertex
// set - 2^C(n,2) candidate graphs - keeps the connected ones, and walks them
// in generation order, accepting a candidate only when it is not
// root-fixed-isomorphic to any already-accepted representative. The first
// connected graph generated in enumeration order therefore becomes its
// class's representative, and the output is fully deterministic for a given
// (vertices, root) pair.
//
// The sweep is intentionally brute force and scales doubly exponentially;
// MaxVertices caps the input at a size where that is still instant. This
// package is a teaching aid for graphs of three to six vertices, not a
// graphlet-counting engine.
//
// Errors:
//
//	ErrNoVertices       vertex list is empty
//	ErrDuplicateVertex  vertex list contains a repeated ID
//	ErrRootNotFound     root is not an element of the vertex list
//	ErrTooManyVertices  vertex list exceeds MaxVertices
package graphlet
