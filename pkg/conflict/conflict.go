// Package conflict removes candidate positions that sit too close to plants
// already placed by other groups.
//
// Two rules decide how close is too close:
//
//   - [Average]: peers share the gap, so the required distance is the mean of
//     both spacings. [Flat] uses it for co-existing, unordered groups.
//   - [Max]: earlier layers keep their full requirement, so the required
//     distance is the larger spacing. [Layered] uses it for ordered layers.
//
// Both run in O(candidates × existing); beds hold at most a few thousand
// plants, so no spatial index is used.
package conflict

import (
	"math"

	"github.com/matzehuels/seedbed/pkg/geom"
)

// tolerance lets points that sit exactly at the required distance through
// despite floating-point error.
const tolerance = 1e-9

// Rule combines two spacings into a required center-to-center distance.
type Rule int

const (
	// Average requires the mean of both spacings.
	Average Rule = iota
	// Max requires the larger of both spacings.
	Max
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case Average:
		return "average"
	case Max:
		return "max"
	}
	return "unknown"
}

// Required returns the distance a plant with spacing a must keep from a plant
// with spacing b.
func (r Rule) Required(a, b float64) float64 {
	if r == Max {
		return math.Max(a, b)
	}
	return (a + b) / 2
}

// Layer is a set of positions placed by one group.
type Layer struct {
	Spacing float64
	Points  []geom.Point
}

// Filter returns the candidates that keep the distance required by rule from
// every point in layers. The order of the survivors is preserved.
func Filter(candidates []geom.Point, spacing float64, layers []Layer, rule Rule) []geom.Point {
	if len(candidates) == 0 {
		return nil
	}

	out := make([]geom.Point, 0, len(candidates))
	for _, c := range candidates {
		if !conflicts(c, spacing, layers, rule) {
			out = append(out, c)
		}
	}
	return out
}

func conflicts(c geom.Point, spacing float64, layers []Layer, rule Rule) bool {
	for _, l := range layers {
		need := rule.Required(spacing, l.Spacing) - tolerance
		for _, p := range l.Points {
			if geom.Distance(c, p) < need {
				return true
			}
		}
	}
	return false
}

// Flat filters candidates against the positions of co-existing groups.
func Flat(candidates []geom.Point, spacing float64, others []Layer) []geom.Point {
	return Filter(candidates, spacing, others, Average)
}

// Layered filters candidates against the positions of earlier layers.
func Layered(candidates []geom.Point, spacing float64, earlier []Layer) []geom.Point {
	return Filter(candidates, spacing, earlier, Max)
}

// MinDistance returns the smallest distance between a point of a and a point
// of b, or +Inf when either is empty.
func MinDistance(a, b []geom.Point) float64 {
	d := math.Inf(1)
	for _, p := range a {
		for _, q := range b {
			d = math.Min(d, geom.Distance(p, q))
		}
	}
	return d
}
