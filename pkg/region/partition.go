package region

import (
	"math"

	"github.com/matzehuels/seedbed/pkg/fill"
	"github.com/matzehuels/seedbed/pkg/geom"
	"github.com/matzehuels/seedbed/pkg/pattern"
)

// Orientation names the partitioning algorithm of a bed.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
	Radial     Orientation = "radial"
)

// Partitioner generates the candidates of one region of a bed.
type Partitioner interface {
	// Orientation names the algorithm.
	Orientation() Orientation

	// Candidates returns the ordered candidate positions for span. kind selects
	// the lattice where one applies; a positive lines value bounds the number of
	// rows, columns or rings before the layout is centered.
	Candidates(span Span, spacing float64, kind pattern.Kind, lines int) []geom.Point
}

// For returns the partitioner for container. It returns nil for an invalid container.
func For(c geom.Container) Partitioner {
	if c == nil || !c.Valid() {
		return nil
	}
	switch c := c.(type) {
	case geom.Rectangle:
		if c.Horizontal() {
			return HorizontalStrips{Width: c.Width, Height: c.Height}
		}
		return VerticalStrips{Width: c.Width, Height: c.Height}
	case geom.Circle:
		return Annuli{Radius: c.Radius}
	}
	return nil
}

// Generator adapts a region of p to the fill resolver.
func Generator(p Partitioner, span Span, spacing float64, kind pattern.Kind) fill.Generator {
	return func(lines int) []geom.Point {
		if p == nil {
			return nil
		}
		return p.Candidates(span, spacing, kind, lines)
	}
}

// HorizontalStrips divides a rectangle into strips stacked from top (negative Y)
// to bottom.
type HorizontalStrips struct {
	Width, Height float64
}

func (HorizontalStrips) Orientation() Orientation { return Horizontal }

// Strip returns the sub-bounds owned by span.
func (h HorizontalStrips) Strip(s Span) geom.Bounds {
	top := -h.Height / 2
	return geom.Bounds{
		MinX: -h.Width / 2,
		MaxX: h.Width / 2,
		MinY: top + s.Start*h.Height,
		MaxY: top + s.End*h.Height,
	}
}

func (h HorizontalStrips) Candidates(span Span, spacing float64, kind pattern.Kind, lines int) []geom.Point {
	return lattice(h.Strip(span), spacing, kind, pattern.WithMaxRows(lines))
}

// VerticalStrips divides a rectangle into strips laid out from left (negative X)
// to right.
type VerticalStrips struct {
	Width, Height float64
}

func (VerticalStrips) Orientation() Orientation { return Vertical }

// Strip returns the sub-bounds owned by span.
func (v VerticalStrips) Strip(s Span) geom.Bounds {
	left := -v.Width / 2
	return geom.Bounds{
		MinX: left + s.Start*v.Width,
		MaxX: left + s.End*v.Width,
		MinY: -v.Height / 2,
		MaxY: v.Height / 2,
	}
}

// Candidates bounds columns rather than rows, since the strips run vertically.
func (v VerticalStrips) Candidates(span Span, spacing float64, kind pattern.Kind, lines int) []geom.Point {
	return lattice(v.Strip(span), spacing, kind, pattern.WithMaxCols(lines))
}

// lattice generates the requested lattice in b. Without an explicit kind both
// lattices are tried and the denser one wins.
func lattice(b geom.Bounds, spacing float64, kind pattern.Kind, opt pattern.Option) []geom.Point {
	switch kind {
	case pattern.Grid:
		return pattern.GridIn(b, spacing, opt)
	case pattern.Hexagonal:
		return pattern.HexagonalIn(b, spacing, opt)
	default:
		pts, _ := pattern.Best(b, spacing, opt)
		return pts
	}
}

// Annuli divides a circle into concentric rings. Span fractions are radial.
type Annuli struct {
	Radius float64
}

func (Annuli) Orientation() Orientation { return Radial }

// Ring returns the inner and outer radius owned by span.
func (a Annuli) Ring(s Span) (inner, outer float64) {
	return s.Start * a.Radius, s.End * a.Radius
}

// Candidates places points on sub-rings spread evenly across the ring so that
// none touches the inner or outer edge. The lattice kind does not apply.
//
// No sub-ring lies beyond Radius - spacing/2. One that would is pulled in to
// that limit, and dropped if the limit is not past the inner edge or another
// sub-ring already sits there.
func (a Annuli) Candidates(span Span, spacing float64, _ pattern.Kind, lines int) []geom.Point {
	if spacing <= 0 || a.Radius <= 0 {
		return nil
	}
	inner, outer := a.Ring(span)
	width := outer - inner
	if width <= 0 {
		return nil
	}

	rings := max(1, int(math.Floor(width/spacing+1e-9)))
	if lines > 0 && lines < rings {
		rings = lines
	}
	step := width / float64(rings+1)
	limit := a.Radius - spacing/2

	var pts []geom.Point
	prev := math.Inf(-1)
	for k := 0; k < rings; k++ {
		r := math.Min(inner+step*float64(k+1), limit)
		if r <= inner || r <= prev {
			break
		}
		prev = r
		n := max(1, int(math.Floor(2*math.Pi*r/spacing)))
		for i := 0; i < n; i++ {
			theta := 2 * math.Pi * float64(i) / float64(n)
			pts = append(pts, geom.Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)})
		}
	}
	return pts
}

// Ensure the partitioners implement Partitioner.
var (
	_ Partitioner = HorizontalStrips{}
	_ Partitioner = VerticalStrips{}
	_ Partitioner = Annuli{}
)
