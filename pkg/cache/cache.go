// Package cache memoizes placement results.
//
// Placement is deterministic, so a bed's results depend only on its geometry,
// mode, boundaries and the ordered group settings. [Keyer] hashes exactly those
// inputs into a key; any change produces a different key, which is how a stale
// entry is invalidated. There is no partial update.
//
// # Backends
//
//   - [NullCache]: never stores anything (--no-cache, tests)
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: shared cache for several processes
//
// Callers treat every backend error as a miss; a broken cache slows seedbed
// down but never changes its output.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}

// DefaultTTL is how long placement results are kept.
const DefaultTTL = 7 * 24 * time.Hour
