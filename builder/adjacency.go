// SPDX-License-Identifier: MIT
//
// adjacency.go - directed graph import from an adjacency-list description.

package builder

import (
	"sort"

	"github.com/prestonraab/cs-575/core"
)

// FromAdjacencyList builds a directed graph from a map of vertex to
// out-neighbor list. Keys are inserted in sorted order and neighbor lists are
// walked sorted as well, so the result is deterministic regardless of map
// iteration order. Neighbors absent from the key set are created.
//
// This is the import path for the centrality fixtures, which are naturally
// written as adjacency lists.
// Complexity: O(V log V + E log E).
func FromAdjacencyList(adj map[string][]string) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true))

	keys := make([]string, 0, len(adj))
	for k := range adj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := g.AddVertex(k); err != nil {
			return nil, err
		}
	}
	for _, k := range keys {
		nbrs := make([]string, len(adj[k]))
		copy(nbrs, adj[k])
		sort.Strings(nbrs)
		for _, v := range nbrs {
			if err := g.AddEdge(k, v); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
