package render

import (
	"fmt"
	"io"

	dgraph "github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/prestonraab/cs-575/core"
)

// DOT writes g to w in Graphviz DOT format. A non-empty label becomes the
// graph's label attribute. Useful when a proper layout engine should take
// over from the fixed circular placement.
func DOT(g *core.Graph, w io.Writer, label string) error {
	if g == nil {
		return ErrGraphNil
	}

	var dg dgraph.Graph[string, string]
	if g.Directed() {
		dg = dgraph.New(dgraph.StringHash, dgraph.Directed())
	} else {
		dg = dgraph.New(dgraph.StringHash)
	}
	for _, v := range g.Vertices() {
		if err := dg.AddVertex(v); err != nil {
			return fmt.Errorf("render: add vertex %q: %w", v, err)
		}
	}
	for _, e := range g.Edges() {
		if err := dg.AddEdge(e.From, e.To); err != nil {
			return fmt.Errorf("render: add edge %s-%s: %w", e.From, e.To, err)
		}
	}

	if label != "" {
		return draw.DOT(dg, w, draw.GraphAttribute("label", label))
	}

	return draw.DOT(dg, w)
}
