package cache

// ScopedKeyer wraps a Keyer with a prefix so that several gardens, or several
// users of one redis instance, get separate namespaces.
//
// Example usage:
//
//	gardenKeyer := NewScopedKeyer(NewDefaultKeyer(), "garden:allotment-7:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// BedKey generates a prefixed key for bed results.
func (k *ScopedKeyer) BedKey(opts BedKeyOpts) string {
	return k.prefix + k.inner.BedKey(opts)
}

// PlacementKey generates a prefixed key for a single placement.
func (k *ScopedKeyer) PlacementKey(opts PlacementKeyOpts) string {
	return k.prefix + k.inner.PlacementKey(opts)
}
