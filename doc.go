// Package cs575 is a toolkit for enumerating, comparing, and visualizing
// small rooted graphs.
//
// What it brings together:
//   - Rooted graphlet enumeration: every connected shape on a fixed vertex
//     set, deduplicated up to isomorphisms that hold a root vertex fixed
//   - Isomorphism testing, plain and rooted, through a lazy restartable
//     bijection enumerator
//   - Connected induced subgraph extraction through a chosen vertex
//   - Degree, eigenvector, Katz, and PageRank centrality scores
//   - SVG subplot grids and Graphviz DOT output for eyeballing the results
//
// Everything is organized under flat subpackages:
//
//	core/       — the Graph type: simple, string-keyed, insertion-ordered
//	bfs/        — breadth-first traversal and connectivity
//	iso/        — isomorphism testing, rooted and unrooted
//	graphlet/   — rooted graphlet enumeration
//	subgraph/   — connected induced subgraph extraction
//	centrality/ — degree, eigenvector, Katz, PageRank
//	builder/    — complete/path/cycle/star constructors, adjacency lists
//	layout/     — subplot grids and circular vertex placement
//	render/     — SVG and DOT writers
//
// Quick ASCII example, the three connected shapes on {A, B, C} rooted at A:
//
//	B───A───C    A───B───C    A───B
//	                          │   │
//	                          ╰─C─╯
//
// The first two differ only in where A sits, so they count as distinct
// rooted graphlets even though they are isomorphic as plain graphs.
//
// Start with graphlet.FindAll, then render.SVG to see the set.
package cs575
