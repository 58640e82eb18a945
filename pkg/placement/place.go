package placement

import (
	"github.com/matzehuels/seedbed/pkg/conflict"
	"github.com/matzehuels/seedbed/pkg/fill"
	"github.com/matzehuels/seedbed/pkg/geom"
	"github.com/matzehuels/seedbed/pkg/pattern"
)

// generator returns the full-bed candidate generator for c. Circles clip the
// lattice over their bounding square; in auto mode the denser clipped lattice wins.
func generator(c geom.Container, spacing float64, kind pattern.Kind) fill.Generator {
	switch c := c.(type) {
	case geom.Rectangle:
		return func(lines int) []geom.Point {
			if !c.Valid() {
				return nil
			}
			return pattern.Generate(kind, c.Bounds(), spacing, pattern.WithMaxRows(lines))
		}
	case geom.Circle:
		return func(lines int) []geom.Point {
			if !c.Valid() {
				return nil
			}
			clip := func(pts []geom.Point) []geom.Point { return clipTo(c, spacing, pts) }
			b, rows := c.Bounds(), pattern.WithMaxRows(lines)
			switch kind.OrDefault() {
			case pattern.Hexagonal:
				return clip(pattern.HexagonalIn(b, spacing, rows))
			case pattern.Auto:
				grid := clip(pattern.GridIn(b, spacing, rows))
				if hex := clip(pattern.HexagonalIn(b, spacing, rows)); len(hex) > len(grid) {
					return hex
				}
				return grid
			default:
				return clip(pattern.GridIn(b, spacing, rows))
			}
		}
	}
	return func(int) []geom.Point { return nil }
}

func clipTo(c geom.Container, spacing float64, pts []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		if c.Contains(p, spacing) {
			out = append(out, p)
		}
	}
	return out
}

// PlaceInRectangle returns the full-density lattice of a width×height bed.
func PlaceInRectangle(width, height, spacing float64, kind pattern.Kind) []geom.Point {
	return generator(geom.Rectangle{Width: width, Height: height}, spacing, kind)(0)
}

// PlaceInCircle returns the lattice of a round bed, clipped so every plant's
// footprint stays inside the disc.
func PlaceInCircle(radius, spacing float64, kind pattern.Kind) []geom.Point {
	return generator(geom.Circle{Radius: radius}, spacing, kind)(0)
}

// Place applies spec to the full-bed lattice of c.
func Place(c geom.Container, spacing float64, kind pattern.Kind, spec fill.Spec) []geom.Point {
	return fill.Resolve(generator(c, spacing, kind), spec)
}

// PlaceSpecificCount returns the first n positions of the lattice.
func PlaceSpecificCount(c geom.Container, spacing float64, kind pattern.Kind, n int) []geom.Point {
	return Place(c, spacing, kind, fill.N(n))
}

// PlaceInRows returns the lattice regenerated with at most rows rows.
func PlaceInRows(c geom.Container, spacing float64, kind pattern.Kind, rows int) []geom.Point {
	return Place(c, spacing, kind, fill.InRows(rows))
}

// PlaceByPercentage returns the first floor(len·percent/100) positions of the lattice.
func PlaceByPercentage(c geom.Container, spacing float64, kind pattern.Kind, percent float64) []geom.Point {
	return Place(c, spacing, kind, fill.Percent(percent))
}

// PlaceWithAwareness places a new group on a bed already holding existing
// groups. Candidates closer to another group than the average of both spacings
// are dropped; an auto fill keeps at most the bed's remaining capacity.
func PlaceWithAwareness(c geom.Container, spacing float64, kind pattern.Kind, spec fill.Spec, existing []PlantGroup) []geom.Point {
	layers := Layers(existing)
	filter := func(pts []geom.Point) []geom.Point { return conflict.Flat(pts, spacing, layers) }

	pts := fill.ResolveFiltered(generator(c, spacing, kind), filter, spec)
	if spec.IsAuto() {
		pts = fill.Limit(pts, RemainingCapacity(c, spacing, kind, existing))
	}
	return pts
}

// PlaceLayered lays out groups in order over the whole bed. Each group drops
// candidates closer to an earlier group than the larger of both spacings.
func PlaceLayered(c geom.Container, groups []PlantGroup) []Result {
	results := make([]Result, 0, len(groups))
	var earlier []conflict.Layer

	for _, g := range groups {
		gen := generator(c, g.Spacing, g.Pattern)
		maxQty := len(gen(0))
		qty := clampQuantity(g.DesiredQuantity, maxQty)

		layers := earlier
		filter := func(pts []geom.Point) []geom.Point { return conflict.Layered(pts, g.Spacing, layers) }
		pts := fill.ResolveFiltered(gen, filter, g.fillSpec(qty))

		results = append(results, Result{GroupID: g.ID, MaxQuantity: maxQty, Quantity: qty, Positions: pts})
		earlier = append(earlier, conflict.Layer{Spacing: g.Spacing, Points: pts})
	}
	return results
}

// placeFlat lays out groups in order, each aware of the groups before it.
func placeFlat(c geom.Container, groups []PlantGroup) []Result {
	results := make([]Result, 0, len(groups))
	placed := make([]PlantGroup, 0, len(groups))

	for _, g := range groups {
		maxQty := CalculateBedCapacity(c, g.Spacing, g.Pattern)
		qty := clampQuantity(g.DesiredQuantity, maxQty)
		pts := PlaceWithAwareness(c, g.Spacing, g.Pattern, g.fillSpec(qty), placed)

		results = append(results, Result{GroupID: g.ID, MaxQuantity: maxQty, Quantity: qty, Positions: pts})
		g.Positions = pts
		placed = append(placed, g)
	}
	return results
}

// Layers converts placed groups into conflict layers.
func Layers(groups []PlantGroup) []conflict.Layer {
	layers := make([]conflict.Layer, 0, len(groups))
	for _, g := range groups {
		if len(g.Positions) == 0 {
			continue
		}
		layers = append(layers, conflict.Layer{Spacing: g.Spacing, Points: g.Positions})
	}
	return layers
}
