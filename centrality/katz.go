package centrality

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/prestonraab/cs-575/core"
)

// ErrBadAlpha is returned for a non-positive Katz attenuation factor.
var ErrBadAlpha = errors.New("centrality: alpha must be positive")

// Katz computes Katz centrality in closed form:
//
//	x = (I - α·Aᵀ)⁻¹ · β·𝟙
//
// α attenuates walk length, β is the baseline awarded to every vertex.
// Because of the baseline no score can collapse to zero, which is the
// defining contrast with eigenvector centrality. Scores are L2-normalized.
//
// α must be positive and smaller than the reciprocal of the largest
// eigenvalue of A; beyond that the system loses meaning and typically
// surfaces as ErrSingular.
// Complexity: O(V³) for the dense solve.
func Katz(g *core.Graph, alpha, beta float64, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if alpha <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadAlpha, alpha)
	}
	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	a := adjacency(g, vertices)

	// sys = I - α·Aᵀ
	sys := mat.NewDense(n, n, nil)
	sys.Scale(-alpha, a.T())
	for i := 0; i < n; i++ {
		sys.Set(i, i, sys.At(i, i)+1)
	}

	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		b.SetVec(i, beta)
	}

	var x mat.VecDense
	if err := x.SolveVec(sys, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	norm := mat.Norm(&x, 2)
	if norm > 0 {
		x.ScaleVec(1/norm, &x)
	}

	return scores(vertices, &x), nil
}
