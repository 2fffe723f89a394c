package bfs

import (
	"fmt"

	"github.com/prestonraab/cs-575/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// BFS runs breadth-first search on g starting from startID, applying any
// number of functional Options. Neighbor expansion follows the graph's
// deterministic insertion order, so Order is reproducible.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	visited := make(map[string]bool, n)
	queue := make([]queueItem, 0, n)

	visited[startID] = true
	res.Depth[startID] = 0
	queue = append(queue, queueItem{id: startID})

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.id)
		if err := o.OnVisit(item.id, item.depth); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		nextDepth := item.depth + 1
		if o.MaxDepth > 0 && nextDepth > o.MaxDepth {
			continue
		}
		neighbors, err := g.NeighborIDs(item.id)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range neighbors {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			res.Depth[nbr] = nextDepth
			res.Parent[nbr] = item.id
			queue = append(queue, queueItem{id: nbr, depth: nextDepth})
		}
	}

	return res, nil
}

// Connected reports whether the undirected graph g forms a single component.
// A single-vertex graph is trivially connected; a graph with two or more
// vertices and no path between some pair is not.
// Returns ErrGraphNil for a nil graph and ErrEmptyGraph for a vertex-free one.
// Complexity: O(V+E).
func Connected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return false, ErrEmptyGraph
	}
	res, err := BFS(g, vertices[0])
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(vertices), nil
}
