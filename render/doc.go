// Package render draws sets of small graphs.
//
// SVG lays the graphs out in a subplot grid (layout.Grid), places each
// graph's vertices on a circle (layout.Circular), and emits a single SVG
// document: edges as lines, vertices as filled circles with a fill color
// cycled per graph, optional vertex labels. Grid cells beyond the last graph
// stay blank.
//
// DOT converts one graph to Graphviz DOT via the dominikbraun/graph draw
// helper, for callers who prefer an external layout engine.
//
// Errors:
//
//	ErrGraphNil         a nil graph was passed
//	ErrNothingToRender  SVG called with no graphs
package render
