// Package observability provides hooks for metrics, tracing, and logging.
//
// Instrumentation stays optional: the engine and runner call hooks, and the
// application decides at startup what receives them. Nothing here depends on
// a particular metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPlacementHooks(&myPlacementHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// The runner emits events around each bed:
//
//	observability.Placement().OnRecomputeStart(ctx, bedID, mode, groups)
//	// ... recompute ...
//	observability.Placement().OnRecomputeComplete(ctx, bedID, points, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PlacementHooks receives events from bed recomputation and plan loading.
type PlacementHooks interface {
	// Recompute events, one pair per bed.
	OnRecomputeStart(ctx context.Context, bedID, mode string, groups int)
	OnRecomputeComplete(ctx context.Context, bedID string, points int, duration time.Duration, err error)

	// Plan events, one pair per plan document.
	OnPlanLoad(ctx context.Context, path string)
	OnPlanLoaded(ctx context.Context, path string, beds int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)

	// OnCacheError records a backend failure that was downgraded to a miss.
	OnCacheError(ctx context.Context, keyType string, err error)
}

// NoopPlacementHooks is a no-op implementation of PlacementHooks.
type NoopPlacementHooks struct{}

func (NoopPlacementHooks) OnRecomputeStart(context.Context, string, string, int) {}
func (NoopPlacementHooks) OnRecomputeComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPlacementHooks) OnPlanLoad(context.Context, string)                              {}
func (NoopPlacementHooks) OnPlanLoaded(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)          {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)         {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int)     {}
func (NoopCacheHooks) OnCacheError(context.Context, string, error) {}

var (
	placementHooks PlacementHooks = NoopPlacementHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
	hooksMu        sync.RWMutex
)

// SetPlacementHooks registers custom placement hooks.
// This should be called once at application startup.
func SetPlacementHooks(h PlacementHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		placementHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Placement returns the registered placement hooks.
func Placement() PlacementHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return placementHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	placementHooks = NoopPlacementHooks{}
	cacheHooks = NoopCacheHooks{}
}
