package placement

import (
	"github.com/matzehuels/seedbed/pkg/fill"
	"github.com/matzehuels/seedbed/pkg/geom"
	"github.com/matzehuels/seedbed/pkg/pattern"
	"github.com/matzehuels/seedbed/pkg/region"
)

// regionKind treats an unset pattern as auto so strips keep the denser lattice.
func regionKind(k pattern.Kind) pattern.Kind {
	if k == "" {
		return pattern.Auto
	}
	return k
}

// PlaceInRegion lays out group i of bed inside the region it owns. Regions are
// exclusive, so no conflict filtering happens between groups.
func PlaceInRegion(bed Bed, i int) Result {
	if i < 0 || i >= len(bed.Groups) {
		return Result{}
	}
	return placeInRegion(region.For(bed.Container), bed, i)
}

func placeInRegion(p region.Partitioner, bed Bed, i int) Result {
	g := bed.Groups[i]
	span := region.SpanAt(bed.Boundaries, len(bed.Groups), i)
	gen := region.Generator(p, span, g.Spacing, regionKind(g.Pattern))

	maxQty := len(gen(0))
	qty := clampQuantity(g.DesiredQuantity, maxQty)
	return Result{
		GroupID:     g.ID,
		Span:        &span,
		MaxQuantity: maxQty,
		Quantity:    qty,
		Positions:   fill.Resolve(gen, g.fillSpec(qty)),
	}
}

// Recompute lays out every group of bed in order according to its mode and
// returns one result per group. The same bed always yields the same results.
func Recompute(bed Bed) []Result {
	if len(bed.Groups) == 0 {
		return nil
	}

	switch bed.Mode.OrDefault() {
	case ModeLayered:
		return PlaceLayered(bed.Container, bed.Groups)
	case ModeFlat:
		return placeFlat(bed.Container, bed.Groups)
	}

	p := region.For(bed.Container)
	results := make([]Result, len(bed.Groups))
	for i := range bed.Groups {
		results[i] = placeInRegion(p, bed, i)
	}
	return results
}

// Apply returns a copy of bed with normalized boundaries and every group recomputed.
func Apply(bed Bed) Bed {
	out := bed.Clone()
	out.Boundaries = region.Normalize(out.Boundaries, len(out.Groups))
	return out.WithResults(Recompute(out))
}

// AddGroup appends g, resets the boundaries to an even split and recomputes.
func AddGroup(bed Bed, g PlantGroup) Bed {
	out := bed.Clone()
	out.Groups = append(out.Groups, g)
	out.Boundaries = region.Even(len(out.Groups))
	return Apply(out)
}

// RemoveGroup drops the group with the given ID, resets the boundaries to an
// even split and recomputes. An unknown ID leaves the groups unchanged.
func RemoveGroup(bed Bed, id string) Bed {
	out := bed.Clone()
	kept := out.Groups[:0]
	for _, g := range out.Groups {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(bed.Groups) {
		return Apply(out)
	}
	out.Groups = kept
	out.Boundaries = region.Even(len(out.Groups))
	return Apply(out)
}

// MoveGroup moves the group at index from to index to and recomputes. The
// boundaries stay where they are, so the group takes over the region at to.
func MoveGroup(bed Bed, from, to int) Bed {
	out := bed.Clone()
	n := len(out.Groups)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return Apply(out)
	}
	g := out.Groups[from]
	out.Groups = append(out.Groups[:from], out.Groups[from+1:]...)
	out.Groups = append(out.Groups[:to], append([]PlantGroup{g}, out.Groups[to:]...)...)
	return Apply(out)
}

// SetBoundary drags divider i to v, keeping it between its neighbours, and recomputes.
func SetBoundary(bed Bed, i int, v float64) Bed {
	out := bed.Clone()
	cuts := region.Normalize(out.Boundaries, len(out.Groups))
	out.Boundaries = region.Move(cuts, i, v)
	return Apply(out)
}

// SetContainer replaces the bed outline and recomputes.
func SetContainer(bed Bed, c geom.Container) Bed {
	out := bed.Clone()
	out.Container = c
	return Apply(out)
}

// SetSpacing changes the spacing of the group with the given ID and recomputes.
func SetSpacing(bed Bed, id string, spacing float64) Bed {
	out := bed.Clone()
	for i := range out.Groups {
		if out.Groups[i].ID == id {
			out.Groups[i].Spacing = spacing
		}
	}
	return Apply(out)
}
