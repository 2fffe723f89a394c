package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prestonraab/cs-575/builder"
	"github.com/prestonraab/cs-575/layout"
)

func TestGrid(t *testing.T) {
	cases := []struct {
		name               string
		graphs, maxCols    int
		wantRows, wantCols int
	}{
		{"single graph", 1, 4, 1, 1},
		{"fewer graphs than columns", 3, 5, 1, 3},
		{"exact fit", 8, 4, 2, 4},
		{"partial last row", 5, 4, 2, 4},
		{"square", 9, 3, 3, 3},
		{"nine in four columns", 9, 4, 3, 4},
		{"ten in four columns", 10, 4, 3, 4},
		{"single column", 5, 1, 5, 1},
		{"wide request", 3, 10, 1, 3},
		{"large", 100, 8, 13, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, cols, err := layout.Grid(tc.graphs, tc.maxCols)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRows, rows)
			assert.Equal(t, tc.wantCols, cols)
			assert.GreaterOrEqual(t, rows*cols, tc.graphs, "grid must hold every graph")
		})
	}
}

func TestGrid_Errors(t *testing.T) {
	_, _, err := layout.Grid(5, 0)
	assert.ErrorIs(t, err, layout.ErrBadColumns)
	_, _, err = layout.Grid(5, -1)
	assert.ErrorIs(t, err, layout.ErrBadColumns)
	_, _, err = layout.Grid(0, 4)
	assert.ErrorIs(t, err, layout.ErrNoGraphs)
}

func TestCell(t *testing.T) {
	ax, err := layout.Cell(0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, layout.AxisSingle, ax.Kind)

	ax, err = layout.Cell(2, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, layout.AxisRow, ax.Kind)
	assert.Equal(t, 2, ax.Col)

	ax, err = layout.Cell(5, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, layout.AxisCell, ax.Kind)
	assert.Equal(t, 1, ax.Row)
	assert.Equal(t, 2, ax.Col)

	_, err = layout.Cell(0, 0, 3)
	assert.ErrorIs(t, err, layout.ErrBadColumns)
}

func TestCircular(t *testing.T) {
	_, err := layout.Circular(nil, 1)
	assert.ErrorIs(t, err, layout.ErrGraphNil)

	square, err := builder.Build(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	coords, err := layout.Circular(square, 2)
	require.NoError(t, err)

	r, c := coords.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 2, c)

	// Vertex 0 sits at angle zero, vertex 1 a quarter turn on.
	assert.InDelta(t, 2, coords.At(0, 0), 1e-12)
	assert.InDelta(t, 0, coords.At(0, 1), 1e-12)
	assert.InDelta(t, 0, coords.At(1, 0), 1e-12)
	assert.InDelta(t, 2, coords.At(1, 1), 1e-12)

	// Every vertex lies on the circle.
	for i := 0; i < r; i++ {
		x, y := coords.At(i, 0), coords.At(i, 1)
		assert.InDelta(t, 2, math.Hypot(x, y), 1e-12)
	}
}
