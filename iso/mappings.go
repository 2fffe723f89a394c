package iso

import (
	"errors"
	"fmt"

	"github.com/prestonraab/cs-575/core"
)

// Sentinel errors for the oracle.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("iso: graph is nil")

	// ErrOrderMismatch is returned by NewMappings when the two graphs have
	// different vertex counts; a bijection between their vertex sets cannot
	// exist and the enumerator refuses to pretend otherwise.
	ErrOrderMismatch = errors.New("iso: vertex counts differ")

	// ErrMixedMode is returned when one graph is directed and the other is not.
	ErrMixedMode = errors.New("iso: directed and undirected graphs are not comparable")

	// ErrRootNotFound is returned by RootedIsomorphic when the root vertex is
	// absent from one of the compared graphs.
	ErrRootNotFound = errors.New("iso: root vertex not present")

	// ErrComparisonFailed wraps any oracle-level failure surfaced by
	// RootedIsomorphic, including structurally incomparable inputs.
	ErrComparisonFailed = errors.New("iso: comparison failed")
)

// Mappings lazily enumerates every isomorphism between two graphs of equal
// vertex count. Each call to Next returns the next vertex-to-vertex bijection
// that preserves adjacency (edge to edge, non-edge to non-edge), until the
// search space is exhausted. Reset rewinds the sequence to the beginning.
//
// The enumeration order is deterministic: candidates are tried in the vertex
// insertion order of both graphs.
type Mappings struct {
	va, vb []string // vertex IDs, insertion order
	adjA   [][]bool // adjA[i][j]: edge va[i] -> va[j]
	adjB   [][]bool
	degA   []int
	degB   []int
	n      int

	assign []int  // assign[d]: index in vb matched to va[d], valid for d < depth
	used   []bool // used[j]: vb[j] currently assigned
	cand   []int  // cand[d]: next candidate index to try at level d
	depth  int
	done   bool
}

// NewMappings prepares a mapping enumerator between g1 and g2.
// Returns ErrGraphNil for nil inputs, ErrMixedMode when the graphs disagree
// on directedness, and ErrOrderMismatch when their vertex counts differ.
// Complexity: O(V²) setup; each Next is a resumed backtracking search.
func NewMappings(g1, g2 *core.Graph) (*Mappings, error) {
	if g1 == nil || g2 == nil {
		return nil, ErrGraphNil
	}
	if g1.Directed() != g2.Directed() {
		return nil, ErrMixedMode
	}
	if g1.VertexCount() != g2.VertexCount() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrOrderMismatch, g1.VertexCount(), g2.VertexCount())
	}

	n := g1.VertexCount()
	m := &Mappings{
		va:     g1.Vertices(),
		vb:     g2.Vertices(),
		n:      n,
		assign: make([]int, n),
		used:   make([]bool, n),
		cand:   make([]int, n),
	}
	m.adjA, m.degA = denseAdjacency(g1, m.va)
	m.adjB, m.degB = denseAdjacency(g2, m.vb)

	// Different edge counts admit no isomorphism; exhaust immediately.
	if g1.EdgeCount() != g2.EdgeCount() {
		m.done = true
	}

	return m, nil
}

// denseAdjacency snapshots a graph as a boolean matrix plus degrees, indexed
// by position in ids.
func denseAdjacency(g *core.Graph, ids []string) ([][]bool, []int) {
	n := len(ids)
	adj := make([][]bool, n)
	deg := make([]int, n)
	for i, u := range ids {
		adj[i] = make([]bool, n)
		for j, v := range ids {
			if g.HasEdge(u, v) {
				adj[i][j] = true
				deg[i]++
			}
		}
	}

	return adj, deg
}

// Reset rewinds the enumerator so the sequence can be replayed from the start.
func (m *Mappings) Reset() {
	m.depth = 0
	m.done = false
	for j := range m.used {
		m.used[j] = false
	}
	for d := range m.cand {
		m.cand[d] = 0
	}
}

// Next returns the next isomorphism mapping and true, or nil and false once
// the sequence is exhausted. The returned map is owned by the caller.
func (m *Mappings) Next() (map[string]string, bool) {
	if m.done {
		return nil, false
	}
	if m.n == 0 {
		// Two empty graphs are isomorphic under the empty bijection, once.
		m.done = true
		return map[string]string{}, true
	}

	for {
		if m.depth == m.n {
			out := make(map[string]string, m.n)
			for i, j := range m.assign {
				out[m.va[i]] = m.vb[j]
			}
			// Rewind one level so the search resumes past this mapping.
			m.depth--
			m.used[m.assign[m.depth]] = false

			return out, true
		}

		d := m.depth
		advanced := false
		for j := m.cand[d]; j < m.n; j++ {
			if m.used[j] || m.degA[d] != m.degB[j] || !m.compatible(d, j) {
				continue
			}
			m.assign[d] = j
			m.used[j] = true
			m.cand[d] = j + 1
			m.depth++
			if m.depth < m.n {
				m.cand[m.depth] = 0
			}
			advanced = true
			break
		}
		if advanced {
			continue
		}
		if d == 0 {
			m.done = true
			return nil, false
		}
		// Exhausted level d: rewind and retry the level above.
		m.cand[d] = 0
		m.depth--
		m.used[m.assign[m.depth]] = false
	}
}

// compatible reports whether assigning va[d] -> vb[j] preserves adjacency and
// non-adjacency against every vertex already assigned.
func (m *Mappings) compatible(d, j int) bool {
	for k := 0; k < m.depth; k++ {
		jk := m.assign[k]
		if m.adjA[d][k] != m.adjB[j][jk] || m.adjA[k][d] != m.adjB[jk][j] {
			return false
		}
	}

	return true
}
