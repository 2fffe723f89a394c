package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid computation.
var (
	// ErrBadColumns is returned when the requested column count is below one.
	ErrBadColumns = errors.New("layout: column count must be at least 1")

	// ErrNoGraphs is returned when a grid is requested for zero graphs.
	ErrNoGraphs = errors.New("layout: nothing to lay out")
)

// Grid returns the subplot grid dimensions for numGraphs graphs displayed in
// at most numCols columns: the actual column count is min(numCols, numGraphs)
// and rows is the ceiling of numGraphs divided by it. The grid always has at
// least numGraphs cells.
// Complexity: O(1).
func Grid(numGraphs, numCols int) (rows, cols int, err error) {
	if numCols < 1 {
		return 0, 0, fmt.Errorf("%w: %d", ErrBadColumns, numCols)
	}
	if numGraphs < 1 {
		return 0, 0, fmt.Errorf("%w: %d graphs", ErrNoGraphs, numGraphs)
	}

	cols = numCols
	if numGraphs < cols {
		cols = numGraphs
	}
	rows = (numGraphs + cols - 1) / cols

	return rows, cols, nil
}

// AxisKind distinguishes how a plotting surface is addressed: a lone plot
// has a single implicit axis, a one-row figure is indexed by column, and a
// multi-row figure by (row, column).
type AxisKind int

const (
	// AxisSingle is the lone cell of a 1x1 grid.
	AxisSingle AxisKind = iota

	// AxisRow is a cell in a single-row grid, addressed by Col.
	AxisRow

	// AxisCell is a cell in a multi-row grid, addressed by Row and Col.
	AxisCell
)

// Axis locates one cell of a subplot grid.
type Axis struct {
	Kind AxisKind
	Row  int
	Col  int
}

// Cell maps a graph index to its grid cell. Indexing is row-major: index i
// lands in row i/cols, column i%cols.
// Complexity: O(1).
func Cell(index, rows, cols int) (Axis, error) {
	if rows < 1 || cols < 1 {
		return Axis{}, fmt.Errorf("%w: %dx%d", ErrBadColumns, rows, cols)
	}

	switch {
	case rows == 1 && cols == 1:
		return Axis{Kind: AxisSingle}, nil
	case rows == 1:
		return Axis{Kind: AxisRow, Col: index % cols}, nil
	default:
		return Axis{Kind: AxisCell, Row: index / cols, Col: index % cols}, nil
	}
}
