package geom

// Shape names a container variant.
type Shape string

// Supported container shapes.
const (
	ShapeRectangle Shape = "rectangle"
	ShapeCircle    Shape = "circle"
)

// Container is the outline of a bed. The set of implementations is closed.
type Container interface {
	// Shape returns the variant name.
	Shape() Shape

	// Bounds returns the axis-aligned box that encloses the container.
	Bounds() Bounds

	// Contains reports whether a plant at p with the given spacing is inside.
	Contains(p Point, spacing float64) bool

	// Valid reports whether every dimension is positive.
	Valid() bool

	sealed()
}

// Rectangle is an axis-aligned container centered at the origin.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (Rectangle) Shape() Shape { return ShapeRectangle }

func (r Rectangle) Bounds() Bounds { return Centered(r.Width, r.Height) }

// Contains ignores spacing; the lattice generators already keep a margin.
func (r Rectangle) Contains(p Point, _ float64) bool {
	return r.Valid() && InRectangle(p, r.Width, r.Height)
}

func (r Rectangle) Valid() bool { return r.Width > 0 && r.Height > 0 }

// Horizontal reports whether the rectangle is wider than it is tall.
func (r Rectangle) Horizontal() bool { return r.Width > r.Height }

func (Rectangle) sealed() {}

// Circle is a disc centered at the origin.
type Circle struct {
	Radius float64 `json:"radius"`
}

func (Circle) Shape() Shape { return ShapeCircle }

func (c Circle) Bounds() Bounds { return Centered(2*c.Radius, 2*c.Radius) }

func (c Circle) Contains(p Point, spacing float64) bool {
	return c.Valid() && InCircle(p, c.Radius, spacing)
}

func (c Circle) Valid() bool { return c.Radius > 0 }

func (Circle) sealed() {}

// Ensure both variants implement Container.
var (
	_ Container = Rectangle{}
	_ Container = Circle{}
)
