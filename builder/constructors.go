// SPDX-License-Identifier: MIT
//
// constructors.go - topology factories: Complete, Path, Cycle, Star.

package builder

import (
	"fmt"

	"github.com/prestonraab/cs-575/core"
)

// Parameter minima per topology.
const (
	minCompleteNodes = 1
	minPathNodes     = 1
	minCycleNodes    = 3
	minStarLeaves    = 1
)

// addVertices inserts n vertices through the ID scheme and returns their IDs.
func addVertices(g *core.Graph, cfg config, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

// Complete returns a Constructor building the complete simple graph K_n:
// every unordered pair {i,j}, i<j, becomes one edge, emitted in lexicographic
// pair order. n >= 1.
// Complexity: O(n) vertices + O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("complete: n=%d: %w", n, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Path returns a Constructor building the path P_n with edges (i-1)-i for
// i = 1..n-1 in increasing order. n >= 1; P_1 is a lone vertex.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("path: n=%d: %w", n, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := g.AddEdge(ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor building the cycle C_n: the path edges plus the
// closing edge (n-1)-0. n >= 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("cycle: n=%d: %w", n, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := g.AddEdge(ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return g.AddEdge(ids[n-1], ids[0])
	}
}

// Star returns a Constructor building the star S_k: a hub (index 0) joined to
// k leaves (indices 1..k), edges emitted in leaf order. k >= 1.
// Complexity: O(k).
func Star(k int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if k < minStarLeaves {
			return fmt.Errorf("star: k=%d: %w", k, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, k+1)
		if err != nil {
			return err
		}
		for i := 1; i <= k; i++ {
			if err := g.AddEdge(ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
