// Package centrality computes classical vertex-importance scores - degree,
// eigenvector, Katz, and PageRank - for graphs small enough to hold as dense
// matrices. Scores come back as a map from vertex ID to value.
//
// The three spectral measures answer related but distinct questions, and the
// differences are the whole point of the exercises this package supports:
//
//   - Eigenvector centrality collapses to near-zero on vertices that no
//     cycle feeds (in a DAG-shaped region, nothing sustains their score).
//   - Katz centrality adds a baseline β to every vertex each round, so no
//     score collapses; with a small α it flattens toward uniform.
//   - PageRank splits a vertex's vote across its out-neighbors, so hubs
//     dilute their influence while heavily-pointed-at vertices accumulate it.
//
// Directed graphs score incoming influence: an edge u->v contributes to v.
// For undirected graphs the adjacency is symmetric and the distinction
// disappears.
//
// All linear algebra is delegated to gonum/mat; graphs are snapshotted into
// dense matrices in vertex insertion order, which keeps results deterministic.
//
// Errors:
//
//	ErrGraphNil      graph pointer is nil
//	ErrEmptyGraph    graph has no vertices
//	ErrNotConverged  power iteration exhausted MaxIter
//	ErrSingular      Katz linear system is singular (alpha too large)
package centrality
