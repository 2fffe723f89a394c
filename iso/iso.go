package iso

import (
	"fmt"

	"github.com/prestonraab/cs-575/core"
)

// IsIsomorphic reports whether any isomorphism exists between g1 and g2.
// Graphs of different vertex counts are simply not isomorphic (false, nil);
// only nil inputs and mode disagreements are errors.
func IsIsomorphic(g1, g2 *core.Graph) (bool, error) {
	if g1 == nil || g2 == nil {
		return false, ErrGraphNil
	}
	if g1.VertexCount() != g2.VertexCount() || g1.EdgeCount() != g2.EdgeCount() {
		if g1.Directed() != g2.Directed() {
			return false, ErrMixedMode
		}
		return false, nil
	}
	m, err := NewMappings(g1, g2)
	if err != nil {
		return false, err
	}
	_, ok := m.Next()

	return ok, nil
}

// RootedIsomorphic reports whether an isomorphism between g1 and g2 exists
// that fixes the shared root vertex (maps root to itself). It walks the
// oracle's mapping sequence and short-circuits on the first mapping with
// mapping[root] == root; graphs that are not isomorphic at all yield false
// without any mapping being produced.
//
// The root must be present in both graphs' vertex sets; a missing root is a
// precondition violation reported as ErrRootNotFound. Structurally
// incomparable inputs (e.g. mismatched vertex counts) are reported as
// ErrComparisonFailed rather than silently treated as non-isomorphic.
func RootedIsomorphic(g1, g2 *core.Graph, root string) (bool, error) {
	if g1 == nil || g2 == nil {
		return false, ErrGraphNil
	}
	if !g1.HasVertex(root) {
		return false, fmt.Errorf("%w: %q missing from first graph", ErrRootNotFound, root)
	}
	if !g2.HasVertex(root) {
		return false, fmt.Errorf("%w: %q missing from second graph", ErrRootNotFound, root)
	}

	m, err := NewMappings(g1, g2)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrComparisonFailed, err)
	}
	for {
		mapping, ok := m.Next()
		if !ok {
			return false, nil
		}
		if mapping[root] == root {
			return true, nil
		}
	}
}
