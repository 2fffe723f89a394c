// Package iso is the isomorphism oracle for small graphs: it enumerates, as a
// lazy and restartable sequence, every adjacency-preserving bijection between
// the vertex sets of two graphs, and answers the boolean and root-fixed
// variants of the isomorphism question on top of that sequence.
//
// The enumerator is a plain backtracking search over vertex assignments with
// degree pruning. Nothing here is clever, and nothing here needs to be:
// callers in this module only ever compare graphs of at most a handful of
// vertices, so worst-case factorial behavior is acceptable. Do not point this
// package at large graphs.
//
// RootedIsomorphic answers the question the graphlet enumerator actually
// asks: is there an isomorphism between G1 and G2 that maps a shared
// distinguished vertex to itself? It walks the mapping sequence and
// short-circuits on the first root-fixing mapping.
//
// Errors:
//
//	ErrGraphNil          a graph pointer is nil
//	ErrOrderMismatch     vertex counts differ (enumerator precondition)
//	ErrMixedMode         one graph directed, the other undirected
//	ErrRootNotFound      root vertex absent from a compared graph
//	ErrComparisonFailed  the oracle could not compare the inputs
package iso
