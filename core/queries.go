// SPDX-License-Identifier: MIT
//
// File: queries.go
// Role: Read-only accessors. All enumeration surfaces replay insertion order.

package core

// HasVertex reports whether the vertex ID exists (empty ID => false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// HasEdge reports whether an edge from -> to exists. For undirected graphs
// the direction of the query is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.adj[from][to]

	return ok
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy; callers may retain or reorder it.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns all edges in insertion order (copy).
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// NeighborIDs returns the out-neighbors of id, ordered by their position in
// the vertex insertion order (deterministic). For undirected graphs these are
// simply the adjacent vertices.
// Returns ErrVertexNotFound for unknown IDs.
// Complexity: O(V) - the insertion order is scanned to keep output stable.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(nbrs))
	for _, v := range g.order {
		if _, adj := nbrs[v]; adj {
			out = append(out, v)
		}
	}

	return out, nil
}

// Degree returns the number of vertices adjacent to id (out-degree for
// directed graphs). Returns ErrVertexNotFound for unknown IDs.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}

// InDegree returns the number of edges pointing at id. Equal to Degree for
// undirected graphs. Returns ErrVertexNotFound for unknown IDs.
// Complexity: O(E).
func (g *Graph) InDegree(id string) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}
	if !g.directed {
		return len(g.adj[id]), nil
	}
	n := 0
	for _, e := range g.edges {
		if e.To == id {
			n++
		}
	}

	return n, nil
}
