// Package region partitions a bed into exclusive fractional regions, one per
// plant group, and generates candidates inside each region.
//
// # Boundaries
//
// A bed with n groups carries n-1 fractional cut points. They are kept strictly
// ascending and inside [[MinBoundary], [MaxBoundary]] by [Normalize]; [Move]
// applies a dragged divider without letting it cross its neighbours. Group i
// owns the [Span] between cut i-1 (or 0) and cut i (or 1), so the spans always
// cover [0, 1] exactly.
//
// # Partitioners
//
// The partitioning algorithm is chosen once per bed by [For]:
//
//   - [HorizontalStrips]: rectangles wider than tall, strips stacked top to bottom
//   - [VerticalStrips]: every other rectangle, strips laid out left to right
//   - [Annuli]: circles, concentric rings from the center outward
//
// Strips generate both lattices centered inside the strip and keep the denser
// one. Annuli place evenly spaced points on sub-rings that sit strictly inside
// the ring and no further out than radius - spacing/2, like any circle lattice.
package region
