package graphlet

import (
	"errors"
	"fmt"

	"github.com/prestonraab/cs-575/bfs"
	"github.com/prestonraab/cs-575/core"
	"github.com/prestonraab/cs-575/iso"
)

// MaxVertices is the hard cap on the enumerable vertex-set size. The sweep
// visits 2^C(n,2) edge subsets; at n=7 that is already 2^21 graphs.
const MaxVertices = 7

// Sentinel errors for graphlet enumeration.
var (
	// ErrNoVertices is returned for an empty vertex list.
	ErrNoVertices = errors.New("graphlet: vertex list is empty")

	// ErrDuplicateVertex is returned when the vertex list repeats an ID.
	ErrDuplicateVertex = errors.New("graphlet: duplicate vertex ID")

	// ErrRootNotFound is returned when the root is not in the vertex list.
	ErrRootNotFound = errors.New("graphlet: root not in vertex list")

	// ErrTooManyVertices is returned when the vertex list exceeds MaxVertices.
	ErrTooManyVertices = errors.New("graphlet: vertex list exceeds enumeration cap")
)

// FindAll returns one representative per root-fixed-isomorphism class of
// connected graphs on exactly the given vertex set.
//
// Representatives appear in discovery order: edge subsets are generated as an
// ascending bitmask over the C(n,2) vertex pairs (pairs ordered by position
// in the input list), each connected candidate is compared against the
// accepted representatives with iso.RootedIsomorphic, and first match wins.
// Output order and content are deterministic for a given (vertices, root).
//
// The vertex list must be non-empty, duplicate-free, contain root, and hold
// at most MaxVertices entries.
// Complexity: O(2^C(n,2)) candidate graphs, each with a connectivity check
// and up to |representatives| rooted-isomorphism searches.
func FindAll(vertices []string, root string) ([]*core.Graph, error) {
	n := len(vertices)
	if n == 0 {
		return nil, ErrNoVertices
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, n, MaxVertices)
	}
	seen := make(map[string]struct{}, n)
	rootPresent := false
	for _, id := range vertices {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
		}
		seen[id] = struct{}{}
		if id == root {
			rootPresent = true
		}
	}
	if !rootPresent {
		return nil, fmt.Errorf("%w: %q", ErrRootNotFound, root)
	}

	// All C(n,2) candidate edges, ordered by input-list position.
	pairs := make([]core.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, core.Edge{From: vertices[i], To: vertices[j]})
		}
	}

	var reps []*core.Graph
	for mask := uint64(0); mask < uint64(1)<<len(pairs); mask++ {
		g, err := buildCandidate(vertices, pairs, mask)
		if err != nil {
			return nil, err
		}
		connected, err := bfs.Connected(g)
		if err != nil {
			return nil, err
		}
		if !connected {
			continue
		}
		known, err := isKnown(reps, g, root)
		if err != nil {
			return nil, err
		}
		if !known {
			reps = append(reps, g)
		}
	}

	return reps, nil
}

// buildCandidate constructs the graph on the full vertex set whose edges are
// exactly the pairs selected by mask.
func buildCandidate(vertices []string, pairs []core.Edge, mask uint64) (*core.Graph, error) {
	g := core.NewGraph()
	for _, id := range vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for bit, e := range pairs {
		if mask&(uint64(1)<<bit) == 0 {
			continue
		}
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// isKnown reports whether g is root-fixed-isomorphic to any accepted
// representative.
func isKnown(reps []*core.Graph, g *core.Graph, root string) (bool, error) {
	for _, rep := range reps {
		same, err := iso.RootedIsomorphic(g, rep, root)
		if err != nil {
			return false, err
		}
		if same {
			return true, nil
		}
	}

	return false, nil
}
