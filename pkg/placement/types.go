package placement

import (
	"github.com/matzehuels/seedbed/pkg/errors"
	"github.com/matzehuels/seedbed/pkg/fill"
	"github.com/matzehuels/seedbed/pkg/geom"
	"github.com/matzehuels/seedbed/pkg/pattern"
	"github.com/matzehuels/seedbed/pkg/region"
)

// Mode selects how the groups of a bed share it.
type Mode string

// Supported bed modes. The zero value behaves like ModeRegions.
const (
	ModeRegions Mode = "regions"
	ModeLayered Mode = "layered"
	ModeFlat    Mode = "flat"
)

// ParseMode converts user input into a Mode. The empty string maps to ModeRegions.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeRegions:
		return ModeRegions, nil
	case ModeLayered, ModeFlat:
		return Mode(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "invalid mode: %q (must be one of: regions, layered, flat)", s)
}

// OrDefault returns m, or ModeRegions when m is empty.
func (m Mode) OrDefault() Mode {
	if m == "" {
		return ModeRegions
	}
	return m
}

// PlantGroup is a set of plants sharing a spacing requirement.
//
// ID, Name and Color belong to the caller and are carried through untouched.
// MaxQuantity and Positions are derived by [Recompute].
type PlantGroup struct {
	ID    string
	Name  string
	Color string

	// Spacing is the minimum center-to-center distance between members.
	Spacing float64

	// DesiredQuantity is how many plants the caller asked for. It is clamped to
	// [0, MaxQuantity] and used as a count fill when Fill has no method.
	DesiredQuantity int

	// Pattern selects the lattice. Region mode treats an empty pattern as auto,
	// the other modes as grid.
	Pattern pattern.Kind

	// Fill overrides the desired quantity with an explicit fill method.
	Fill fill.Spec

	MaxQuantity int
	Positions   []geom.Point
}

// fillSpec returns the fill applied to the group given its clamped quantity.
func (g PlantGroup) fillSpec(quantity int) fill.Spec {
	if g.Fill.Method == "" {
		return fill.N(quantity)
	}
	return g.Fill
}

// Bed is a container with its plant groups and region boundaries.
type Bed struct {
	ID   string
	Name string

	Container geom.Container

	// Rotation is applied when the bed is drawn and never affects placement.
	Rotation float64

	Mode   Mode
	Groups []PlantGroup

	// Boundaries holds len(Groups)-1 fractional cut points for region mode.
	Boundaries []float64
}

// Clone returns a deep copy of b.
func (b Bed) Clone() Bed {
	out := b
	out.Boundaries = append([]float64(nil), b.Boundaries...)
	out.Groups = make([]PlantGroup, len(b.Groups))
	for i, g := range b.Groups {
		g.Positions = append([]geom.Point(nil), g.Positions...)
		out.Groups[i] = g
	}
	return out
}

// Result is the placement computed for one group.
type Result struct {
	GroupID string `json:"group_id"`

	// Span is the region owned by the group; set in region mode only.
	Span *region.Span `json:"span,omitempty"`

	// MaxQuantity is the full-density count of the group's region.
	MaxQuantity int `json:"max_quantity"`

	// Quantity is the desired quantity clamped to [0, MaxQuantity].
	Quantity int `json:"quantity"`

	Positions []geom.Point `json:"positions"`
}

// WithResults returns a copy of b with MaxQuantity and Positions taken from
// results, matched by index.
func (b Bed) WithResults(results []Result) Bed {
	out := b.Clone()
	for i := range out.Groups {
		if i >= len(results) {
			break
		}
		out.Groups[i].MaxQuantity = results[i].MaxQuantity
		out.Groups[i].Positions = results[i].Positions
	}
	return out
}

// PointCount returns the number of positions over all groups of b.
func (b Bed) PointCount() int {
	return CalculateUsedSpace(b.Groups)
}

// clampQuantity bounds a desired quantity to [0, limit].
func clampQuantity(desired, limit int) int {
	if desired < 0 {
		return 0
	}
	if desired > limit {
		return limit
	}
	return desired
}
