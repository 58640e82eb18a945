// Package geom defines the planar primitives shared by the placement engine.
//
// All coordinates are expressed relative to the bed center. The engine uses the
// screen convention where Y grows downward, so "top" means negative Y.
//
// # Containers
//
// A [Container] is a sealed variant with two implementations:
//
//   - [Rectangle]: axis-aligned, centered at the origin
//   - [Circle]: centered at the origin
//
// Rotation never enters point generation; it is applied by whatever draws the bed.
//
// # Constrainers
//
// [InRectangle] and [InCircle] are the containment predicates used to clip
// lattices. [InCircle] keeps a half-spacing margin so that a plant's footprint,
// not only its center, stays inside the disc.
package geom
