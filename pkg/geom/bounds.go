package geom

// Bounds is an axis-aligned box. Lattices are generated inside a Bounds and
// centered on it, which is how strips of a partitioned bed get their own layout.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Centered returns a width×height box centered at the origin.
func Centered(width, height float64) Bounds {
	return Bounds{MinX: -width / 2, MaxX: width / 2, MinY: -height / 2, MaxY: height / 2}
}

// Width returns the horizontal span of the box.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical span of the box.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// CenterX returns the horizontal center of the box.
func (b Bounds) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }

// CenterY returns the vertical center of the box.
func (b Bounds) CenterY() float64 { return (b.MinY + b.MaxY) / 2 }

// Contains reports whether p lies inside the box, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}
