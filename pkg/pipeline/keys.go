package pipeline

import (
	"github.com/matzehuels/seedbed/pkg/cache"
	"github.com/matzehuels/seedbed/pkg/geom"
	"github.com/matzehuels/seedbed/pkg/placement"
)

// BedKeyOpts returns the cache key options for bed. Boundaries only take part
// in region mode, the only mode that reads them.
func BedKeyOpts(bed placement.Bed) cache.BedKeyOpts {
	opts := cache.BedKeyOpts{
		Shape:  shapeKeyOpts(bed.Container),
		Mode:   string(bed.Mode.OrDefault()),
		Groups: make([]cache.GroupKeyOpts, len(bed.Groups)),
	}
	if bed.Mode.OrDefault() == placement.ModeRegions {
		opts.Boundaries = bed.Boundaries
	}
	for i, g := range bed.Groups {
		opts.Groups[i] = cache.GroupKeyOpts{
			Spacing:         g.Spacing,
			DesiredQuantity: g.DesiredQuantity,
			Pattern:         string(g.Pattern),
			FillMethod:      string(g.Fill.Method),
			FillValue:       g.Fill.Value,
		}
	}
	return opts
}

// PlacementKeyOpts returns the cache key options for a single placement.
// It expects defaults to have been applied.
func (o *Options) PlacementKeyOpts(c geom.Container) cache.PlacementKeyOpts {
	spec := o.FillSpec()
	return cache.PlacementKeyOpts{
		Shape: shapeKeyOpts(c),
		Group: cache.GroupKeyOpts{
			Spacing:    o.Spacing,
			Pattern:    string(o.Kind()),
			FillMethod: string(spec.Method),
			FillValue:  spec.Value,
		},
	}
}

func shapeKeyOpts(c geom.Container) cache.ShapeKeyOpts {
	switch v := c.(type) {
	case geom.Rectangle:
		return cache.ShapeKeyOpts{Shape: string(v.Shape()), Width: v.Width, Height: v.Height}
	case geom.Circle:
		return cache.ShapeKeyOpts{Shape: string(v.Shape()), Radius: v.Radius}
	}
	return cache.ShapeKeyOpts{}
}
