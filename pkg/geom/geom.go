package geom

import "math"

// Point is a position relative to the bed center.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Norm returns the distance of p from the origin.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// InRectangle reports whether p lies inside a width×height rectangle centered at the origin.
func InRectangle(p Point, width, height float64) bool {
	return math.Abs(p.X) <= width/2 && math.Abs(p.Y) <= height/2
}

// marginEps absorbs rounding when a point is placed exactly on a margin.
const marginEps = 1e-9

// InCircle reports whether a plant at p with the given spacing fits inside a disc
// of the given radius centered at the origin.
func InCircle(p Point, radius, spacing float64) bool {
	return p.Norm() <= radius-spacing/2+marginEps
}
