// Package pkg provides the libraries behind the seedbed garden planner.
//
// # Overview
//
// Seedbed turns a bed outline, a plant spacing and a packing pattern into
// plant positions. The engine packages are pure: they take explicit
// parameters, never fail and perform no I/O. The pkg directory is organized
// in three layers:
//
//  1. Engine: [geom], [pattern], [fill], [region], [conflict], [placement]
//  2. Plumbing: [cache], [pipeline], [planfile], [observability]
//  3. Support: [errors], [buildinfo]
//
// # Architecture
//
// The data flow for one bed:
//
//	Container + spacing + pattern
//	         ↓
//	    [pattern] lattice (grid, hexagonal)
//	         ↓
//	    [region] strip or ring of the group     (region mode)
//	    [conflict] filter against other groups  (flat and layered modes)
//	         ↓
//	    [fill] keep all, n, n rows or p percent
//	         ↓
//	    positions
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/seedbed/pkg/geom"
//	    "github.com/matzehuels/seedbed/pkg/pattern"
//	    "github.com/matzehuels/seedbed/pkg/placement"
//	)
//
//	bed := placement.Bed{
//	    Container: geom.Rectangle{Width: 96, Height: 48},
//	    Groups: []placement.PlantGroup{
//	        {Name: "Lettuce", Spacing: 12, DesiredQuantity: 12},
//	        {Name: "Radish", Spacing: 4, Pattern: pattern.Hexagonal, DesiredQuantity: 60},
//	    },
//	}
//	bed = placement.Apply(bed)
//
// Whole plans are read with [planfile] and recomputed in parallel, with
// caching, by a [pipeline.Runner].
package pkg
