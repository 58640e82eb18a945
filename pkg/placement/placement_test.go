package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/seedbed/pkg/conflict"
	"github.com/matzehuels/seedbed/pkg/fill"
	"github.com/matzehuels/seedbed/pkg/geom"
	"github.com/matzehuels/seedbed/pkg/pattern"
)

func TestPlaceInRectangleExample(t *testing.T) {
	pts := PlaceInRectangle(48, 96, 12, pattern.Grid)
	require.Len(t, pts, 32)
	for _, p := range pts {
		assert.True(t, geom.InRectangle(p, 48, 96), "point %v outside bed", p)
	}
}

func TestPlaceInCircleExample(t *testing.T) {
	pts := PlaceInCircle(24, 6, pattern.Grid)
	assert.Less(t, len(pts), 64)
	assert.Len(t, pts, 32)
	for _, p := range pts {
		assert.LessOrEqual(t, p.Norm(), 21.0, "point %v past the footprint margin", p)
	}
}

func TestContainmentAcrossPatterns(t *testing.T) {
	kinds := []pattern.Kind{pattern.Grid, pattern.Hexagonal, pattern.Auto}
	for _, kind := range kinds {
		for _, s := range []float64{3, 5.5, 10, 17} {
			for _, p := range PlaceInRectangle(70, 41, s, kind) {
				assert.True(t, geom.InRectangle(p, 70, 41), "%s/%v: %v", kind, s, p)
			}
			for _, p := range PlaceInCircle(33, s, kind) {
				assert.True(t, geom.InCircle(p, 33, s), "%s/%v: %v", kind, s, p)
			}
		}
	}
}

func TestFillMethods(t *testing.T) {
	bed := geom.Rectangle{Width: 48, Height: 96}
	full := PlaceInRectangle(48, 96, 12, pattern.Grid)

	count := PlaceSpecificCount(bed, 12, pattern.Grid, 5)
	assert.Equal(t, full[:5], count)
	assert.Len(t, PlaceSpecificCount(bed, 12, pattern.Grid, 500), 32)

	assert.Len(t, PlaceByPercentage(bed, 12, pattern.Grid, 50), 16)
	assert.Len(t, PlaceInRows(bed, 12, pattern.Grid, 3), 12)

	circle := geom.Circle{Radius: 24}
	assert.Len(t, Place(circle, 6, pattern.Grid, fill.All()), 32)
	assert.NotEmpty(t, PlaceInRows(circle, 6, pattern.Grid, 2))
}

func TestDegenerateInputsYieldNothing(t *testing.T) {
	assert.Empty(t, PlaceInRectangle(48, 96, 0, pattern.Grid))
	assert.Empty(t, PlaceInRectangle(0, 96, 12, pattern.Grid))
	assert.Empty(t, PlaceInCircle(24, -1, pattern.Grid))
	assert.Empty(t, PlaceInCircle(2, 6, pattern.Grid))
	assert.Empty(t, Place(nil, 6, pattern.Grid, fill.All()))
	assert.Empty(t, PlaceSpecificCount(geom.Rectangle{Width: 10, Height: 10}, 2, pattern.Grid, -4))
	assert.Nil(t, Recompute(Bed{Container: geom.Rectangle{Width: 10, Height: 10}}))
}

func TestPlaceWithAwarenessSkipsOccupiedSlots(t *testing.T) {
	bed := geom.Rectangle{Width: 48, Height: 48}
	existing := []PlantGroup{{
		ID:        "a",
		Spacing:   12,
		Positions: PlaceSpecificCount(bed, 12, pattern.Grid, 10),
	}}

	pts := PlaceWithAwareness(bed, 12, pattern.Grid, fill.All(), existing)
	require.Len(t, pts, 6)
	assert.GreaterOrEqual(t, conflict.MinDistance(pts, existing[0].Positions), 12.0-1e-9)
}

func TestPlaceWithAwarenessAutoStopsAtRemainingCapacity(t *testing.T) {
	bed := geom.Rectangle{Width: 48, Height: 48}
	corner := make([]geom.Point, 12)
	for i := range corner {
		corner[i] = geom.Point{X: -23, Y: -23}
	}
	existing := []PlantGroup{{ID: "edge", Spacing: 2, Positions: corner}}

	assert.Equal(t, 4, RemainingCapacity(bed, 12, pattern.Grid, existing))
	assert.Len(t, PlaceWithAwareness(bed, 12, pattern.Grid, fill.All(), existing), 4)
	assert.Len(t, PlaceWithAwareness(bed, 12, pattern.Grid, fill.N(10), existing), 10)
}

func TestCapacity(t *testing.T) {
	bed := geom.Rectangle{Width: 48, Height: 96}
	assert.Equal(t, 32, CalculateBedCapacity(bed, 12, pattern.Grid))
	assert.Equal(t, 0, CalculateBedCapacity(bed, 0, pattern.Grid))

	groups := []PlantGroup{
		{Positions: make([]geom.Point, 5)},
		{Positions: make([]geom.Point, 7)},
		{},
	}
	assert.Equal(t, 12, CalculateUsedSpace(groups))
	assert.Equal(t, 20, RemainingCapacity(bed, 12, pattern.Grid, groups))

	crowded := []PlantGroup{{Positions: make([]geom.Point, 40)}}
	assert.Equal(t, 0, RemainingCapacity(bed, 12, pattern.Grid, crowded))
}
