// Package subgraph extracts connected induced subgraphs of a fixed size that
// contain a designated vertex.
//
// Unlike the graphlet package, results are NOT deduplicated by isomorphism:
// every qualifying vertex subset yields its own entry. The two packages serve
// different questions - "which occurrences exist" here versus "which shapes
// exist" there - and the asymmetry is deliberate.
//
// Requesting a size larger than the graph, or a vertex the graph does not
// contain, yields an empty result rather than an error.
//
// Errors:
//
//	ErrGraphNil     graph pointer is nil
//	ErrInvalidSize  requested size is not a positive integer
package subgraph
