package cache

// Keyer builds cache keys from the inputs that determine a placement.
type Keyer interface {
	// BedKey returns the key for the results of a whole bed.
	BedKey(opts BedKeyOpts) string

	// PlacementKey returns the key for a single-group placement.
	PlacementKey(opts PlacementKeyOpts) string
}

// ShapeKeyOpts identifies a container. Unused dimensions are zero.
type ShapeKeyOpts struct {
	Shape  string  `json:"shape"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Radius float64 `json:"radius,omitempty"`
}

// GroupKeyOpts holds the group settings that affect placement. Names, colors
// and IDs are deliberately absent.
type GroupKeyOpts struct {
	Spacing         float64 `json:"spacing"`
	DesiredQuantity int     `json:"desired_quantity"`
	Pattern         string  `json:"pattern,omitempty"`
	FillMethod      string  `json:"fill_method,omitempty"`
	FillValue       float64 `json:"fill_value,omitempty"`
}

// BedKeyOpts holds every input of a bed recomputation. Group order matters.
type BedKeyOpts struct {
	Shape      ShapeKeyOpts   `json:"shape"`
	Mode       string         `json:"mode"`
	Boundaries []float64      `json:"boundaries,omitempty"`
	Groups     []GroupKeyOpts `json:"groups"`
}

// PlacementKeyOpts holds every input of a single-group placement.
type PlacementKeyOpts struct {
	Shape ShapeKeyOpts `json:"shape"`
	Group GroupKeyOpts `json:"group"`
}

// DefaultKeyer hashes key options with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// BedKey returns "bed:<version>:<hash>".
func (DefaultKeyer) BedKey(opts BedKeyOpts) string {
	return hashKey("bed", opts)
}

// PlacementKey returns "place:<version>:<hash>".
func (DefaultKeyer) PlacementKey(opts PlacementKeyOpts) string {
	return hashKey("place", opts)
}
