// Package placement is the public face of the plant-placement engine.
//
// Every function here is pure: it reads explicit geometry and group settings
// and returns ordered point sequences. Nothing is cached and no state survives
// between calls, so independent beds may be computed concurrently.
//
// # Primitive Placement
//
// [PlaceInRectangle] and [PlaceInCircle] return the full-density lattice for a
// bed. [PlaceSpecificCount], [PlaceInRows] and [PlaceByPercentage] apply a fill
// method on top; [Place] accepts any [fill.Spec].
//
// # Beds
//
// A [Bed] owns an ordered list of [PlantGroup] values and is laid out in one of
// three modes:
//
//   - [ModeRegions] (default): each group owns an exclusive region, see package region
//   - [ModeLayered]: every group spans the whole bed; later groups keep
//     max(spacing) from earlier ones
//   - [ModeFlat]: every group spans the whole bed; groups keep the average of
//     their spacings from each other and auto fills stop at the remaining capacity
//
// [Recompute] lays out every group of a bed in order and returns one [Result]
// per group. The bed editing helpers ([AddGroup], [RemoveGroup], [MoveGroup],
// [SetBoundary], [SetContainer], [SetSpacing]) return an updated copy that has
// already been recomputed.
//
// # Capacity
//
// [CalculateBedCapacity] counts a full-density placement, [CalculateUsedSpace]
// sums the positions already placed and [RemainingCapacity] is their
// difference.
package placement
