package centrality

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/prestonraab/cs-575/core"
)

// Sentinel errors for centrality computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("centrality: graph has no vertices")

	// ErrNotConverged is returned when power iteration exhausts MaxIter.
	ErrNotConverged = errors.New("centrality: iteration did not converge")

	// ErrSingular is returned when the Katz linear system cannot be solved.
	ErrSingular = errors.New("centrality: singular system (alpha too large?)")
)

// Iteration defaults shared by the iterative measures.
const (
	defaultMaxIter = 100
	defaultTol     = 1e-6
	defaultDamping = 0.85
)

// Option tunes the iterative measures via functional arguments.
type Option func(*Options)

// Options holds iteration parameters.
type Options struct {
	// MaxIter bounds the number of iterations before ErrNotConverged.
	MaxIter int

	// Tol is the per-vertex convergence tolerance; iteration stops when the
	// L1 change drops below Tol times the vertex count.
	Tol float64

	// Damping is the PageRank teleport survival probability.
	Damping float64
}

// DefaultOptions returns the shared defaults: 100 iterations, 1e-6 tolerance,
// 0.85 damping.
func DefaultOptions() Options {
	return Options{MaxIter: defaultMaxIter, Tol: defaultTol, Damping: defaultDamping}
}

// WithMaxIter overrides the iteration cap; non-positive values are ignored.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIter = n
		}
	}
}

// WithTolerance overrides the convergence tolerance; non-positive values are
// ignored.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tol = tol
		}
	}
}

// WithDamping overrides the PageRank damping factor; values outside (0,1)
// are ignored.
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d > 0 && d < 1 {
			o.Damping = d
		}
	}
}

// resolve applies opts onto the defaults.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// adjacency snapshots g as a dense 0/1 matrix in vertex insertion order:
// A(i,j) = 1 iff an edge vertices[i] -> vertices[j] exists.
func adjacency(g *core.Graph, vertices []string) *mat.Dense {
	n := len(vertices)
	a := mat.NewDense(n, n, nil)
	for i, u := range vertices {
		for j, v := range vertices {
			if g.HasEdge(u, v) {
				a.Set(i, j, 1)
			}
		}
	}

	return a
}

// scores zips vertex IDs with vector entries.
func scores(vertices []string, x *mat.VecDense) map[string]float64 {
	out := make(map[string]float64, len(vertices))
	for i, id := range vertices {
		out[id] = x.AtVec(i)
	}

	return out
}

// Degree returns degree centrality: each vertex's degree divided by n-1.
// For directed graphs in-degree and out-degree are summed. A single-vertex
// graph scores 0 for its lone vertex.
// Complexity: O(V·E) worst case (directed in-degree scans).
func Degree(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	out := make(map[string]float64, n)
	if n == 1 {
		out[vertices[0]] = 0
		return out, nil
	}
	for _, id := range vertices {
		deg, err := g.Degree(id)
		if err != nil {
			return nil, err
		}
		if g.Directed() {
			in, err := g.InDegree(id)
			if err != nil {
				return nil, err
			}
			deg += in
		}
		out[id] = float64(deg) / float64(n-1)
	}

	return out, nil
}
