package layout

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/prestonraab/cs-575/core"
)

// Sentinel errors for vertex layout.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("layout: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("layout: graph has no vertices")
)

// Circular places the vertices of g evenly on a circle of the given radius
// centered on the origin, starting at angle zero and walking
// counter-clockwise in vertex insertion order. The result is an n-by-2
// matrix of (x, y) coordinates, row i belonging to g.Vertices()[i].
// Complexity: O(V).
func Circular(g *core.Graph, radius float64) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	coords := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		coords.Set(i, 0, radius*math.Cos(theta))
		coords.Set(i, 1, radius*math.Sin(theta))
	}

	return coords, nil
}
