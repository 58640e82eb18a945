package cache

import "errors"

// Sentinel errors for caching operations.
var (
	// ErrUnavailable is returned when a backend cannot be reached.
	ErrUnavailable = errors.New("cache unavailable")

	// ErrCorrupt is returned when a stored entry cannot be decoded.
	ErrCorrupt = errors.New("corrupt cache entry")
)
