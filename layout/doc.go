// Package layout provides the arithmetic behind drawing a set of graphs in a
// grid of equally sized cells, and a circular vertex layout for the
// individual cells.
//
//   - Grid: how many rows and columns are needed to show n graphs with at
//     most c columns.
//   - Cell: which cell (and which kind of axis access - single plot, single
//     row, or full grid) a given graph index lands in.
//   - Circular: vertex coordinates evenly spaced on a circle, returned as an
//     n-by-2 coordinate matrix in the graph's vertex order. Circular layouts
//     keep every vertex and edge of a small graph visible, which is why the
//     render package defaults to them.
//
// Errors:
//
//	ErrBadColumns  requested column count below one
//	ErrNoGraphs    grid requested for zero graphs
//	ErrGraphNil    circular layout of a nil graph
//	ErrEmptyGraph  circular layout of a vertex-free graph
package layout
