package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/seedbed/pkg/cache"
	"github.com/matzehuels/seedbed/pkg/geom"
	"github.com/matzehuels/seedbed/pkg/observability"
	"github.com/matzehuels/seedbed/pkg/placement"
	"github.com/matzehuels/seedbed/pkg/region"
)

// Runner recomputes beds with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// RecomputeBed returns a copy of bed with normalized boundaries and every
// group placed, and whether the placement came from the cache. The only
// error it returns is the context's.
func (r *Runner) RecomputeBed(ctx context.Context, bed placement.Bed, opts Options) (placement.Bed, bool, error) {
	r.applyLogger(&opts)
	opts.setRunnerDefaults()

	if err := ctx.Err(); err != nil {
		return placement.Bed{}, false, err
	}

	out := bed.Clone()
	out.Boundaries = region.Normalize(out.Boundaries, len(out.Groups))

	start := time.Now()
	observability.Placement().OnRecomputeStart(ctx, out.ID, string(out.Mode.OrDefault()), len(out.Groups))

	key := r.Keyer.BedKey(BedKeyOpts(out))
	if !opts.Refresh {
		if results, ok := r.cachedResults(ctx, key, len(out.Groups), opts.Logger); ok {
			out = out.WithResults(results)
			opts.Logger.Debug("bed from cache", "bed", out.ID, "points", out.PointCount())
			observability.Placement().OnRecomputeComplete(ctx, out.ID, out.PointCount(), time.Since(start), nil)
			return out, true, nil
		}
	}

	results := placement.Recompute(out)
	out = out.WithResults(results)
	r.store(ctx, "bed", key, results, opts)

	opts.Logger.Debug("recomputed bed",
		"bed", out.ID,
		"mode", out.Mode.OrDefault(),
		"groups", len(out.Groups),
		"points", out.PointCount(),
		"duration", time.Since(start))
	observability.Placement().OnRecomputeComplete(ctx, out.ID, out.PointCount(), time.Since(start), nil)

	return out, false, nil
}

// RecomputeAll recomputes independent beds in parallel, at most opts.Workers
// at a time. The returned beds keep the input order.
func (r *Runner) RecomputeAll(ctx context.Context, beds []placement.Bed, opts Options) ([]placement.Bed, Stats, error) {
	r.applyLogger(&opts)
	opts.setRunnerDefaults()

	start := time.Now()
	out := make([]placement.Bed, len(beds))
	hits := make([]bool, len(beds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range beds {
		g.Go(func() error {
			bed, hit, err := r.RecomputeBed(gctx, beds[i], opts)
			if err != nil {
				return fmt.Errorf("bed %q: %w", beds[i].ID, err)
			}
			out[i] = bed
			hits[i] = hit
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{Beds: len(out), Duration: time.Since(start)}
	for i, bed := range out {
		stats.Points += bed.PointCount()
		if hits[i] {
			stats.CacheHits++
		}
	}

	opts.Logger.Info("recomputed beds",
		"beds", stats.Beds,
		"points", stats.Points,
		"cached", stats.CacheHits,
		"duration", stats.Duration)

	return out, stats, nil
}

// Place computes a single-group placement described by opts, with caching.
func (r *Runner) Place(ctx context.Context, opts Options) ([]geom.Point, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	c, _ := opts.Container()

	key := r.Keyer.PlacementKey(opts.PlacementKeyOpts(c))
	if !opts.Refresh {
		if data, ok := r.get(ctx, "place", key, opts.Logger); ok {
			var pts []geom.Point
			if err := json.Unmarshal(data, &pts); err == nil {
				return pts, true, nil
			}
			opts.Logger.Warn("discarding cache entry", "key", key, "err", cache.ErrCorrupt)
		}
	}

	pts := placement.Place(c, opts.Spacing, opts.Kind(), opts.FillSpec())
	r.store(ctx, "place", key, pts, opts)
	opts.Logger.Debug("placed", "input", opts.String(), "points", len(pts))

	return pts, false, nil
}

// Capacity returns the full-density point count of the bed described by opts.
func (r *Runner) Capacity(opts Options) (int, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return 0, err
	}
	c, _ := opts.Container()
	return placement.CalculateBedCapacity(c, opts.Spacing, opts.Kind()), nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// cachedResults loads the results stored under key. Entries that do not
// decode or do not match the group count are treated as misses.
func (r *Runner) cachedResults(ctx context.Context, key string, groups int, logger *log.Logger) ([]placement.Result, bool) {
	data, ok := r.get(ctx, "bed", key, logger)
	if !ok {
		return nil, false
	}
	var results []placement.Result
	if err := json.Unmarshal(data, &results); err != nil || len(results) != groups {
		logger.Warn("discarding cache entry", "key", key, "err", cache.ErrCorrupt)
		return nil, false
	}
	return results, true
}

// get reads key and reports the outcome to the cache hooks. Backend errors
// are logged and count as misses.
func (r *Runner) get(ctx context.Context, keyType, key string, logger *log.Logger) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "key", key, "err", err)
		observability.Cache().OnCacheError(ctx, keyType, err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

// store writes v as JSON under key. Failures are logged and otherwise ignored.
func (r *Runner) store(ctx context.Context, keyType, key string, v any, opts Options) {
	data, err := json.Marshal(v)
	if err != nil {
		opts.Logger.Warn("encode cache entry", "key", key, "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, opts.TTL); err != nil {
		opts.Logger.Warn("cache write failed", "key", key, "err", err)
		observability.Cache().OnCacheError(ctx, keyType, err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
