package fill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/seedbed/pkg/geom"
	"github.com/matzehuels/seedbed/pkg/pattern"
)

func lattice(lines int) []geom.Point {
	return pattern.GridLattice(48, 96, 12, pattern.WithMaxRows(lines))
}

func TestResolveAuto(t *testing.T) {
	assert.Len(t, Resolve(lattice, All()), 32)
	assert.Len(t, Resolve(lattice, Spec{}), 32)
}

func TestResolveCountIsPrefix(t *testing.T) {
	full := lattice(0)
	for _, n := range []int{0, 1, 7, 32, 100} {
		got := Resolve(lattice, N(n))
		want := min(n, len(full))
		require.Len(t, got, want, "count(%d)", n)
		if want > 0 {
			assert.Equal(t, full[:want], got, "count(%d) should keep a prefix", n)
		}
	}
}

func TestResolvePercentage(t *testing.T) {
	assert.Len(t, Resolve(lattice, Percent(50)), 16)
	assert.Len(t, Resolve(lattice, Percent(10)), 3)
	assert.Len(t, Resolve(lattice, Percent(150)), 32)
	assert.Empty(t, Resolve(lattice, Percent(-5)))
}

func TestResolveRowsRegenerates(t *testing.T) {
	got := Resolve(lattice, InRows(2))
	require.Len(t, got, 8)
	// Two centered rows sit at ±6, not at the first two rows of the full lattice.
	assert.InDelta(t, -6, got[0].Y, 1e-9)
	assert.InDelta(t, 6, got[len(got)-1].Y, 1e-9)

	assert.Empty(t, Resolve(lattice, InRows(0)))
}

func TestResolveFilteredPercentageUsesUnfilteredBase(t *testing.T) {
	dropTopHalf := func(pts []geom.Point) []geom.Point {
		var out []geom.Point
		for _, p := range pts {
			if p.Y > 0 {
				out = append(out, p)
			}
		}
		return out
	}

	// 32 candidates, 16 survive the filter; 25% of 32 is 8.
	got := ResolveFiltered(lattice, dropTopHalf, Percent(25))
	require.Len(t, got, 8)
	for _, p := range got {
		assert.Greater(t, p.Y, 0.0)
	}

	// 75% of 32 is 24, capped by the 16 survivors.
	assert.Len(t, ResolveFiltered(lattice, dropTopHalf, Percent(75)), 16)
}

func TestResolveNilGenerator(t *testing.T) {
	assert.Nil(t, Resolve(nil, All()))
}

func TestLimit(t *testing.T) {
	seq := lattice(0)
	assert.Nil(t, Limit(seq, -1))
	assert.Len(t, Limit(seq, 5), 5)
	assert.Len(t, Limit(seq, 500), 32)
}

func TestParseMethod(t *testing.T) {
	tests := map[string]Method{
		"":           Auto,
		"auto":       Auto,
		"count":      Count,
		"rows":       Rows,
		"percentage": Percentage,
		"percent":    Percentage,
	}
	for in, want := range tests {
		got, err := ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMethod("random")
	assert.Error(t, err)
}

func TestSpecLines(t *testing.T) {
	assert.Equal(t, 3, InRows(3).Lines())
	assert.Equal(t, 0, N(3).Lines())
	assert.Equal(t, 0, Spec{Method: Rows, Value: -2}.Lines())
}
