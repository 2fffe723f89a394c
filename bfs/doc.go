// Package bfs provides breadth-first traversal over a core.Graph and the
// connectivity predicate built on top of it.
//
// BFS explores vertices in increasing distance from a start vertex, with
// optional hooks, depth limiting, and context cancellation. Connected reports
// whether an undirected graph is a single component; it is the filter behind
// the graphlet and subgraph packages.
//
// Complexity:
//
//	BFS:       Time O(V+E), Memory O(V)
//	Connected: Time O(V+E), Memory O(V)
//
// Errors:
//
//	ErrGraphNil             graph pointer is nil
//	ErrEmptyGraph           graph has no vertices
//	ErrStartVertexNotFound  start vertex ID not in graph
//	ErrOptionViolation      invalid Option supplied
//	context.Canceled        traversal canceled via context
package bfs
