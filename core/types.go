// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, options, sentinel errors, and the NewGraph constructor.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates a vertex ID that is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrEmptyVertexSet indicates FromSets received an empty vertex collection.
	ErrEmptyVertexSet = errors.New("core: vertex set cannot be empty")

	// ErrEndpointNotFound indicates an edge referencing a vertex outside the
	// declared vertex set.
	ErrEndpointNotFound = errors.New("core: edge endpoint not in vertex set")
)

// Edge is an ordered endpoint pair. For undirected graphs the order records
// how the edge was first added and carries no semantic weight.
type Edge struct {
	From string
	To   string
}

// GraphOption configures a Graph before any vertices are added.
type GraphOption func(g *Graph)

// WithDirected makes every edge one-way (From -> To).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a simple graph with deterministic, insertion-ordered enumeration.
//
// Vertex IDs are opaque strings compared only for equality. The zero value is
// not usable; construct with NewGraph or FromSets.
type Graph struct {
	directed bool

	order []string       // vertex IDs in insertion order
	index map[string]int // vertex ID -> position in order

	edges []Edge                         // edges in insertion order
	adj   map[string]map[string]struct{} // out-adjacency (symmetric when undirected)
}

// NewGraph creates an empty Graph. Undirected unless WithDirected(true).
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[string]int),
		adj:   make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }
