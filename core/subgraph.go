// SPDX-License-Identifier: MIT
//
// File: subgraph.go
// Role: Derived graphs - induced subgraphs and clones.

package core

import "fmt"

// InducedSubgraph returns the subgraph on the given vertex subset containing
// every edge of g whose both endpoints lie in the subset.
//
// The result's vertex order follows g's insertion order, not the order of
// ids; edge order likewise follows g. Duplicate ids are tolerated. Any id
// absent from g yields ErrVertexNotFound.
// Complexity: O(V + E).
func (g *Graph) InducedSubgraph(ids []string) (*Graph, error) {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
		keep[id] = struct{}{}
	}

	sub := NewGraph(WithDirected(g.directed))
	for _, v := range g.order {
		if _, ok := keep[v]; ok {
			_ = sub.AddVertex(v)
		}
	}
	for _, e := range g.edges {
		_, okFrom := keep[e.From]
		_, okTo := keep[e.To]
		if okFrom && okTo {
			_ = sub.AddEdge(e.From, e.To)
		}
	}

	return sub, nil
}

// Clone returns an independent copy of g with identical vertex and edge order.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := NewGraph(WithDirected(g.directed))
	for _, v := range g.order {
		_ = c.AddVertex(v)
	}
	for _, e := range g.edges {
		_ = c.AddEdge(e.From, e.To)
	}

	return c
}
