package render

import (
	"errors"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/prestonraab/cs-575/core"
	"github.com/prestonraab/cs-575/layout"
)

// Sentinel errors for rendering.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("render: graph is nil")

	// ErrNothingToRender is returned when SVG receives no graphs.
	ErrNothingToRender = errors.New("render: no graphs to draw")
)

// palette cycles per graph, one fill color each.
var palette = []string{
	"yellow",
	"lightblue",
	"lightgray",
	"salmon",
	"aquamarine",
	"lightpink",
	"violet",
	"linen",
}

// Layout and styling defaults.
const (
	defaultColumns  = 4
	defaultCellSize = 160
)

// Option tunes SVG output.
type Option func(*Options)

// Options holds the SVG rendering parameters.
type Options struct {
	// Columns is the maximum number of grid columns.
	Columns int

	// CellSize is the pixel width and height of one grid cell.
	CellSize int

	// Labels maps vertex IDs to display labels. Vertices without an entry
	// are drawn unlabeled; entries for vertices absent from a graph are
	// ignored for that graph.
	Labels map[string]string
}

// WithColumns caps the grid width; values below one are ignored.
func WithColumns(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Columns = n
		}
	}
}

// WithCellSize sets the pixel size of one cell; values below one are ignored.
func WithCellSize(px int) Option {
	return func(o *Options) {
		if px >= 1 {
			o.CellSize = px
		}
	}
}

// WithLabels attaches vertex display labels.
func WithLabels(labels map[string]string) Option {
	return func(o *Options) { o.Labels = labels }
}

// SVG draws graphs side by side in a subplot grid and writes a complete SVG
// document to w. Each graph gets a circular vertex layout and the next fill
// color from the palette, mirroring how the graphlet sets are compared by
// eye: same cell size, same radius, shape differences pop out.
func SVG(w io.Writer, graphs []*core.Graph, opts ...Option) error {
	if len(graphs) == 0 {
		return ErrNothingToRender
	}
	for _, g := range graphs {
		if g == nil {
			return ErrGraphNil
		}
	}
	o := Options{Columns: defaultColumns, CellSize: defaultCellSize}
	for _, opt := range opts {
		opt(&o)
	}

	rows, cols, err := layout.Grid(len(graphs), o.Columns)
	if err != nil {
		return err
	}

	canvas := svg.New(w)
	canvas.Start(cols*o.CellSize, rows*o.CellSize)
	for i, g := range graphs {
		ax, err := layout.Cell(i, rows, cols)
		if err != nil {
			return err
		}
		if err := drawCell(canvas, g, ax, o, palette[i%len(palette)]); err != nil {
			return err
		}
	}
	canvas.End()

	return nil
}

// drawCell renders one graph centered in its grid cell.
func drawCell(canvas *svg.SVG, g *core.Graph, ax layout.Axis, o Options, fill string) error {
	radius := 0.35 * float64(o.CellSize)
	coords, err := layout.Circular(g, radius)
	if err != nil {
		return err
	}

	cx := ax.Col*o.CellSize + o.CellSize/2
	cy := ax.Row*o.CellSize + o.CellSize/2

	vertices := g.Vertices()
	at := make(map[string][2]int, len(vertices))
	for i, id := range vertices {
		x := cx + int(coords.At(i, 0))
		y := cy - int(coords.At(i, 1)) // SVG y grows downward
		at[id] = [2]int{x, y}
	}

	for _, e := range g.Edges() {
		from, to := at[e.From], at[e.To]
		canvas.Line(from[0], from[1], to[0], to[1], "stroke:black;stroke-width:1")
	}
	nodeR := o.CellSize / 12
	for _, id := range vertices {
		p := at[id]
		canvas.Circle(p[0], p[1], nodeR,
			fmt.Sprintf("fill:%s;fill-opacity:0.8;stroke:black", fill))
		if label, ok := o.Labels[id]; ok {
			canvas.Text(p[0], p[1]+nodeR/2, label,
				"text-anchor:middle;font-size:11px;font-family:sans-serif")
		}
	}

	return nil
}
