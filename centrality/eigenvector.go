package centrality

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/prestonraab/cs-575/core"
)

// Eigenvector computes eigenvector centrality by power iteration on the
// shifted matrix I + Aᵀ (the shift keeps bipartite graphs from oscillating
// and leaves the dominant eigenvector unchanged). Scores are L2-normalized.
//
// Vertices that no cycle feeds decay to near-zero: with nothing recurrent
// upstream, each normalization round shrinks their share.
//
// Returns ErrNotConverged when the L1 change still exceeds n·Tol after
// MaxIter rounds.
// Complexity: O(MaxIter·V²).
func Eigenvector(g *core.Graph, opts ...Option) (map[string]float64, error) {
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
	x := uniformVec(n)
	next := mat.NewVecDense(n, nil)

	for iter := 0; iter < o.MaxIter; iter++ {
		// next = x + Aᵀx, then renormalize.
		next.MulVec(a.T(), x)
		next.AddVec(next, x)
		norm := mat.Norm(next, 2)
		next.ScaleVec(1/norm, next)

		if l1Diff(next, x) < float64(n)*o.Tol {
			return scores(vertices, next), nil
		}
		x.CopyVec(next)
	}

	return nil, ErrNotConverged
}

// uniformVec returns the length-n vector with entries 1/n.
func uniformVec(n int) *mat.VecDense {
	x := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.SetVec(i, 1/float64(n))
	}

	return x
}

// l1Diff returns the L1 distance between two vectors of equal length.
func l1Diff(a, b *mat.VecDense) float64 {
	sum := 0.0
	for i := 0; i < a.Len(); i++ {
		sum += math.Abs(a.AtVec(i) - b.AtVec(i))
	}

	return sum
}
