package centrality

import (
	"gonum.org/v1/gonum/mat"

	"github.com/prestonraab/cs-575/core"
)

// PageRank computes the stationary distribution of the damped random walk:
// with probability Damping the walker follows a uniformly chosen out-edge,
// otherwise it teleports to a uniformly chosen vertex. The out-mass of
// dangling vertices (no out-edges) is redistributed uniformly. Scores are a
// probability distribution (L1 sum 1).
//
// Hubs split their vote across all out-neighbors; vertices pointed at by
// hubs accumulate those fractions, which is what separates PageRank from
// Katz on hub-and-spoke graphs.
//
// Returns ErrNotConverged when the L1 change still exceeds n·Tol after
// MaxIter rounds.
// Complexity: O(MaxIter·V²) on the dense snapshot.
func PageRank(g *core.Graph, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	o := resolve(opts)

	a := adjacency(g, vertices)

	// Out-degree per vertex from the snapshot (row sums).
	outDeg := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			outDeg[i] += a.At(i, j)
		}
	}

	x := uniformVec(n)
	next := mat.NewVecDense(n, nil)
	teleport := (1 - o.Damping) / float64(n)

	for iter := 0; iter < o.MaxIter; iter++ {
		// Mass parked on dangling vertices is spread uniformly.
		dangling := 0.0
		for i := 0; i < n; i++ {
			if outDeg[i] == 0 {
				dangling += x.AtVec(i)
			}
		}
		base := teleport + o.Damping*dangling/float64(n)

		for j := 0; j < n; j++ {
			in := 0.0
			for i := 0; i < n; i++ {
				if a.At(i, j) != 0 {
					in += x.AtVec(i) / outDeg[i]
				}
			}
			next.SetVec(j, base+o.Damping*in)
		}

		if l1Diff(next, x) < float64(n)*o.Tol {
			return scores(vertices, next), nil
		}
		x.CopyVec(next)
	}

	return nil, ErrNotConverged
}
