package placement

import (
	"github.com/matzehuels/seedbed/pkg/geom"
	"github.com/matzehuels/seedbed/pkg/pattern"
)

// CalculateBedCapacity returns how many plants a full-density placement of the
// given spacing and pattern fits in c.
func CalculateBedCapacity(c geom.Container, spacing float64, kind pattern.Kind) int {
	return len(generator(c, spacing, kind)(0))
}

// CalculateUsedSpace returns the number of positions held by groups.
func CalculateUsedSpace(groups []PlantGroup) int {
	var n int
	for _, g := range groups {
		n += len(g.Positions)
	}
	return n
}

// RemainingCapacity returns the capacity of c left after the existing groups,
// never less than zero.
func RemainingCapacity(c geom.Container, spacing float64, kind pattern.Kind, existing []PlantGroup) int {
	return max(0, CalculateBedCapacity(c, spacing, kind)-CalculateUsedSpace(existing))
}
