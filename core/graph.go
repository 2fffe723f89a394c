// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Construction - incremental mutators and the set-based validator.

package core

import "fmt"

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID for an empty ID.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.index[id]; exists {
		return nil
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.adj[id] = make(map[string]struct{})

	return nil
}

// AddEdge inserts the edge from -> to, creating missing endpoints on the fly.
// For undirected graphs the reverse direction is implied. Adding an edge that
// already exists is a no-op, keeping the graph simple.
// Returns ErrEmptyVertexID for empty endpoints and ErrSelfLoop when from == to.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}
	if _, dup := g.adj[from][to]; dup {
		return nil
	}
	g.adj[from][to] = struct{}{}
	if !g.directed {
		g.adj[to][from] = struct{}{}
	}
	g.edges = append(g.edges, Edge{From: from, To: to})

	return nil
}

// FromSets builds a Graph from a complete vertex list plus an edge list,
// validating the description up front: the vertex list must be non-empty and
// every edge endpoint must be a member of it.
//
// Vertex order in the result follows the input slice; duplicate vertex entries
// collapse to their first occurrence. For undirected graphs a symmetric pair
// {(u,v),(v,u)} collapses to a single edge.
//
// Returns ErrEmptyVertexSet, ErrEmptyVertexID, ErrEndpointNotFound or
// ErrSelfLoop. Complexity: O(V + E).
func FromSets(vertices []string, edges []Edge, opts ...GraphOption) (*Graph, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyVertexSet
	}
	g := NewGraph(opts...)
	for _, id := range vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if !g.HasVertex(e.From) {
			return nil, fmt.Errorf("%w: %q", ErrEndpointNotFound, e.From)
		}
		if !g.HasVertex(e.To) {
			return nil, fmt.Errorf("%w: %q", ErrEndpointNotFound, e.To)
		}
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}

	return g, nil
}
