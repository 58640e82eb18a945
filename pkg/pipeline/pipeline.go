// Package pipeline runs placement with memoization for the seedbed command.
//
// The placement engine is pure and cheap for one bed, but a garden plan may
// hold dozens of beds and is recomputed every time the plan is edited. The
// [Runner] keys each bed on its placement inputs, serves unchanged beds from
// a [cache.Cache] and recomputes the rest in parallel.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	beds, stats, err := runner.RecomputeAll(ctx, beds, pipeline.Options{Workers: 8})
//
// Single placements go through the same cache:
//
//	opts := pipeline.Options{Shape: "circle", Radius: 24, Spacing: 6}
//	points, hit, err := runner.Place(ctx, opts)
//
// Cache failures never fail a run. They are logged and the bed is recomputed.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seedbed/pkg/cache"
	"github.com/matzehuels/seedbed/pkg/errors"
	"github.com/matzehuels/seedbed/pkg/fill"
	"github.com/matzehuels/seedbed/pkg/geom"
	"github.com/matzehuels/seedbed/pkg/pattern"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and plan files
// =============================================================================

const (
	// DefaultShape is the bed shape used when none is given.
	DefaultShape = string(geom.ShapeRectangle)

	// DefaultWidth is the default rectangle width.
	DefaultWidth = 96.0

	// DefaultHeight is the default rectangle height.
	DefaultHeight = 48.0

	// DefaultRadius is the default circle radius.
	DefaultRadius = 24.0

	// DefaultSpacing is the default plant spacing.
	DefaultSpacing = 12.0

	// DefaultPattern is the lattice used for single placements.
	DefaultPattern = string(pattern.Grid)

	// DefaultFill keeps every candidate.
	DefaultFill = string(fill.Auto)

	// DefaultWorkers bounds how many beds are recomputed at once.
	DefaultWorkers = 4

	// DefaultTTL is how long results stay cached.
	DefaultTTL = cache.DefaultTTL
)

// =============================================================================
// Options - Runner Configuration
// =============================================================================

// Options configures a single placement and the runner itself.
// The shape fields are ignored by bed recomputation, which reads its geometry
// from the bed.
type Options struct {
	// Single placement
	Shape     string  `json:"shape,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Radius    float64 `json:"radius,omitempty"`
	Spacing   float64 `json:"spacing,omitempty"`
	Pattern   string  `json:"pattern,omitempty"`
	Fill      string  `json:"fill,omitempty"`
	FillValue float64 `json:"fill_value,omitempty"`

	// Runner behavior
	Workers int           `json:"workers,omitempty"`
	TTL     time.Duration `json:"ttl,omitempty"`
	Refresh bool          `json:"refresh,omitempty"` // Skip cache reads but still write

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Stats summarizes a RecomputeAll run.
type Stats struct {
	Beds      int
	Points    int
	CacheHits int
	Duration  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateShape checks that a shape name is supported.
func ValidateShape(shape string) error {
	switch geom.Shape(shape) {
	case geom.ShapeRectangle, geom.ShapeCircle:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidShape, "invalid shape: %q (must be one of: rectangle, circle)", shape)
}

// ValidatePattern checks that a pattern name is supported.
func ValidatePattern(p string) error {
	if _, err := pattern.ParseKind(p); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPattern, err, "invalid pattern")
	}
	return nil
}

// ValidateFill checks a fill method and its value.
func ValidateFill(method string, value float64) error {
	m, err := fill.ParseMethod(method)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFill, err, "invalid fill")
	}
	switch m {
	case fill.Count, fill.Rows:
		if value < 0 {
			return errors.New(errors.ErrCodeInvalidFill, "%s fill needs a non-negative value (got %g)", m, value)
		}
	case fill.Percentage:
		if value < 0 || value > 100 {
			return errors.New(errors.ErrCodeInvalidFill, "percentage must lie in [0, 100] (got %g)", value)
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills in zero-valued names and runner settings. Dimensions and
// spacing are left as given: a zero there describes an empty bed and is
// rejected by validation.
func (o *Options) SetDefaults() {
	if o.Shape == "" {
		o.Shape = DefaultShape
	}
	if o.Pattern == "" {
		o.Pattern = DefaultPattern
	}
	if o.Fill == "" {
		o.Fill = DefaultFill
	}
	o.setRunnerDefaults()
}

// setRunnerDefaults fills in the fields bed recomputation reads.
func (o *Options) setRunnerDefaults() {
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and checks the single placement fields.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	if err := ValidateShape(o.Shape); err != nil {
		return err
	}
	if _, err := o.Container(); err != nil {
		return err
	}
	if err := errors.ValidateSpacing(o.Spacing); err != nil {
		return err
	}
	if err := ValidatePattern(o.Pattern); err != nil {
		return err
	}
	return ValidateFill(o.Fill, o.FillValue)
}

// Container builds the bed outline described by the shape fields.
func (o *Options) Container() (geom.Container, error) {
	switch geom.Shape(o.Shape) {
	case geom.ShapeCircle:
		if err := errors.ValidateDimension("radius", o.Radius); err != nil {
			return nil, err
		}
		return geom.Circle{Radius: o.Radius}, nil
	case geom.ShapeRectangle:
		if err := errors.ValidateDimension("width", o.Width); err != nil {
			return nil, err
		}
		if err := errors.ValidateDimension("height", o.Height); err != nil {
			return nil, err
		}
		return geom.Rectangle{Width: o.Width, Height: o.Height}, nil
	}
	return nil, ValidateShape(o.Shape)
}

// Kind returns the parsed pattern, falling back to grid on bad input.
func (o *Options) Kind() pattern.Kind {
	k, err := pattern.ParseKind(o.Pattern)
	if err != nil {
		return pattern.Grid
	}
	return k
}

// FillSpec returns the parsed fill, falling back to auto on bad input.
func (o *Options) FillSpec() fill.Spec {
	m, err := fill.ParseMethod(o.Fill)
	if err != nil {
		return fill.All()
	}
	return fill.Spec{Method: m, Value: o.FillValue}
}

// String describes the single placement for log lines.
func (o *Options) String() string {
	if geom.Shape(o.Shape) == geom.ShapeCircle {
		return fmt.Sprintf("circle r=%g spacing=%g %s", o.Radius, o.Spacing, o.Pattern)
	}
	return fmt.Sprintf("rectangle %gx%g spacing=%g %s", o.Width, o.Height, o.Spacing, o.Pattern)
}
