package placement_test

import (
	"fmt"

	"github.com/matzehuels/seedbed/pkg/fill"
	"github.com/matzehuels/seedbed/pkg/geom"
	"github.com/matzehuels/seedbed/pkg/pattern"
	"github.com/matzehuels/seedbed/pkg/placement"
)

func ExamplePlaceInRectangle() {
	pts := placement.PlaceInRectangle(48, 96, 12, pattern.Grid)
	fmt.Println("Plants:", len(pts))
	// Output:
	// Plants: 32
}

func ExampleRecompute() {
	bed := placement.Bed{
		Container: geom.Rectangle{Width: 96, Height: 48},
		Groups: []placement.PlantGroup{
			{ID: "lettuce", Spacing: 12, Fill: fill.All()},
			{ID: "carrot", Spacing: 12, DesiredQuantity: 5},
		},
		Boundaries: []float64{0.5},
	}

	for _, r := range placement.Recompute(bed) {
		fmt.Printf("%s: %d of %d\n", r.GroupID, len(r.Positions), r.MaxQuantity)
	}
	// Output:
	// lettuce: 16 of 16
	// carrot: 5 of 16
}
