// Package core defines the Graph type shared by every algorithm package in
// this module: a simple graph (no self-loops, no parallel edges), undirected
// by default, with opaque string vertex identifiers.
//
// Determinism is the central design rule. A Graph remembers the order in
// which vertices and edges were added, and every enumeration surface -
// Vertices, Edges, NeighborIDs - replays that order exactly. Algorithms built
// on top (graphlet enumeration, subgraph extraction, layout) inherit
// reproducible output for free.
//
// Graphs are built once and then treated as read-only by the algorithm
// packages; nothing in this module mutates a graph after handing it on.
// Because of that there is no internal locking.
//
// Two construction styles are offered:
//
//   - Incremental: NewGraph(...) followed by AddVertex / AddEdge. AddEdge
//     creates missing endpoints on the fly, which keeps test fixtures short.
//   - Set-based: FromSets(vertices, edges, ...) validates a complete
//     vertex/edge description up front and rejects empty vertex sets and
//     edges whose endpoints are not in the vertex set.
//
// Errors:
//
//	ErrEmptyVertexID    - vertex ID is the empty string.
//	ErrVertexNotFound   - operation referenced a non-existent vertex.
//	ErrSelfLoop         - edge with identical endpoints.
//	ErrEmptyVertexSet   - FromSets called with no vertices.
//	ErrEndpointNotFound - FromSets edge endpoint outside the vertex set.
package core
