package pattern

import (
	"fmt"
	"math"

	"github.com/matzehuels/seedbed/pkg/geom"
)

// Kind selects a lattice.
type Kind string

// Supported lattice kinds. The zero value behaves like Grid.
const (
	Grid      Kind = "grid"
	Hexagonal Kind = "hexagonal"
	Auto      Kind = "auto"
)

// ParseKind converts user input into a Kind. The empty string maps to Grid.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", Grid:
		return Grid, nil
	case Hexagonal, "hex":
		return Hexagonal, nil
	case Auto:
		return Auto, nil
	}
	return "", fmt.Errorf("invalid pattern: %q (must be one of: grid, hexagonal, auto)", s)
}

// OrDefault returns k, or Grid when k is empty.
func (k Kind) OrDefault() Kind {
	if k == "" {
		return Grid
	}
	return k
}

// eps absorbs floating-point error when a dimension is an exact multiple of the spacing.
const eps = 1e-9

// Option bounds a lattice.
type Option func(*options)

type options struct {
	maxRows int
	maxCols int
}

// WithMaxRows bounds the number of rows. Values <= 0 leave the rows unbounded.
func WithMaxRows(n int) Option { return func(o *options) { o.maxRows = n } }

// WithMaxCols bounds the number of columns. Values <= 0 leave the columns unbounded.
func WithMaxCols(n int) Option { return func(o *options) { o.maxCols = n } }

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// lines returns how many lattice lines with the given step fit in extent.
func lines(extent, step float64) int {
	if extent <= 0 || step <= 0 {
		return 0
	}
	return int(math.Floor(extent/step + eps))
}

func bound(n, limit int) int {
	if limit > 0 && limit < n {
		return limit
	}
	return n
}

// GridIn returns a square lattice centered in b.
func GridIn(b geom.Bounds, spacing float64, opts ...Option) []geom.Point {
	if spacing <= 0 {
		return nil
	}
	o := applyOptions(opts)
	rows := bound(lines(b.Height(), spacing), o.maxRows)
	cols := bound(lines(b.Width(), spacing), o.maxCols)
	if rows == 0 || cols == 0 {
		return nil
	}

	x0 := b.CenterX() - float64(cols)*spacing/2 + spacing/2
	y0 := b.CenterY() - float64(rows)*spacing/2 + spacing/2

	pts := make([]geom.Point, 0, rows*cols)
	for r := 0; r < rows; r++ {
		y := y0 + float64(r)*spacing
		for c := 0; c < cols; c++ {
			pts = append(pts, geom.Point{X: x0 + float64(c)*spacing, Y: y})
		}
	}
	return pts
}

// HexagonalIn returns a brick lattice centered in b. Even rows are centered
// horizontally; odd rows start half a spacing further right and hold
// floor((width - spacing/2)/spacing) points.
func HexagonalIn(b geom.Bounds, spacing float64, opts ...Option) []geom.Point {
	if spacing <= 0 {
		return nil
	}
	o := applyOptions(opts)
	pitch := spacing * math.Sqrt(3) / 2
	rows := bound(lines(b.Height(), pitch), o.maxRows)
	even := bound(lines(b.Width(), spacing), o.maxCols)
	odd := min(lines(b.Width()-spacing/2, spacing), even)
	if rows == 0 || even == 0 {
		return nil
	}

	x0 := b.CenterX() - float64(even)*spacing/2 + spacing/2
	y0 := b.CenterY() - float64(rows)*pitch/2 + pitch/2

	pts := make([]geom.Point, 0, rows*even)
	for r := 0; r < rows; r++ {
		y := y0 + float64(r)*pitch
		start, n := x0, even
		if r%2 == 1 {
			start, n = x0+spacing/2, odd
		}
		for c := 0; c < n; c++ {
			pts = append(pts, geom.Point{X: start + float64(c)*spacing, Y: y})
		}
	}
	return pts
}

// GridLattice returns a square lattice over a width×height bed centered at the origin.
func GridLattice(width, height, spacing float64, opts ...Option) []geom.Point {
	return GridIn(geom.Centered(width, height), spacing, opts...)
}

// HexagonalLattice returns a brick lattice over a width×height bed centered at the origin.
func HexagonalLattice(width, height, spacing float64, opts ...Option) []geom.Point {
	return HexagonalIn(geom.Centered(width, height), spacing, opts...)
}

// Best generates both lattices in b and returns the one with more points,
// together with the kind that produced it. Ties go to Grid.
func Best(b geom.Bounds, spacing float64, opts ...Option) ([]geom.Point, Kind) {
	grid := GridIn(b, spacing, opts...)
	hex := HexagonalIn(b, spacing, opts...)
	if len(hex) > len(grid) {
		return hex, Hexagonal
	}
	return grid, Grid
}

// Generate returns the lattice of the given kind in b.
func Generate(kind Kind, b geom.Bounds, spacing float64, opts ...Option) []geom.Point {
	switch kind.OrDefault() {
	case Hexagonal:
		return HexagonalIn(b, spacing, opts...)
	case Auto:
		pts, _ := Best(b, spacing, opts...)
		return pts
	default:
		return GridIn(b, spacing, opts...)
	}
}
