package subgraph

import (
	"errors"
	"fmt"

	"github.com/prestonraab/cs-575/bfs"
	"github.com/prestonraab/cs-575/core"
)

// Sentinel errors for subgraph extraction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("subgraph: graph is nil")

	// ErrInvalidSize is returned for a non-positive subgraph size.
	ErrInvalidSize = errors.New("subgraph: size must be positive")
)

// ContainingVertex returns every connected induced subgraph of exactly size
// vertices that includes vertex, one per qualifying vertex subset.
//
// Subsets are generated in lexicographic order over positions in
// g.Vertices(), so output order is deterministic. A size exceeding the vertex
// count and a vertex absent from g both yield an empty, non-nil list.
// Complexity: O(C(V,size)) subsets, each with an O(V+E) induction and
// connectivity check.
func ContainingVertex(g *core.Graph, size int, vertex string) ([]*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	vertices := g.Vertices()
	if size > len(vertices) || !g.HasVertex(vertex) {
		return []*core.Graph{}, nil
	}

	var out []*core.Graph
	var walkErr error
	combinations(len(vertices), size, func(pick []int) bool {
		subset := make([]string, size)
		hasTarget := false
		for i, idx := range pick {
			subset[i] = vertices[idx]
			if subset[i] == vertex {
				hasTarget = true
			}
		}
		if !hasTarget {
			return true
		}
		sub, err := g.InducedSubgraph(subset)
		if err != nil {
			walkErr = err
			return false
		}
		connected, err := bfs.Connected(sub)
		if err != nil {
			walkErr = err
			return false
		}
		if connected {
			out = append(out, sub)
		}

		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	if out == nil {
		out = []*core.Graph{}
	}

	return out, nil
}

// combinations invokes fn for every k-subset of {0..n-1} in lexicographic
// order. fn returning false stops the walk. The pick slice is reused between
// calls; callers must copy what they keep.
func combinations(n, k int, fn func(pick []int) bool) {
	pick := make([]int, k)
	for i := range pick {
		pick[i] = i
	}
	for {
		if !fn(pick) {
			return
		}
		// Advance to the next combination.
		i := k - 1
		for i >= 0 && pick[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		pick[i]++
		for j := i + 1; j < k; j++ {
			pick[j] = pick[j-1] + 1
		}
	}
}
