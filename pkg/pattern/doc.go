// Package pattern generates candidate plant positions on regular lattices.
//
// # Lattices
//
// Two lattices are available:
//
//   - [GridIn]: square lattice, floor(dimension/spacing) rows and columns
//   - [HexagonalIn]: brick lattice with a row pitch of spacing·√3/2 and every
//     odd row shifted by half a spacing
//
// Both are centered inside the [geom.Bounds] they are given, which is either a
// whole bed or one strip of a partitioned bed.
//
// # Ordering
//
// Points are emitted row-major starting from the most negative Y and, within a
// row, the most negative X. Fill methods keep a prefix of this order, so the
// order is part of the contract.
//
// # Bounding Lines
//
// [WithMaxRows] and [WithMaxCols] bound the number of lattice lines before the
// lattice is centered, which is how the "rows" fill method changes the layout
// instead of merely dropping points:
//
//	pts := pattern.GridLattice(48, 96, 12, pattern.WithMaxRows(3))
//
// # Auto Selection
//
// [Best] generates both lattices and keeps whichever yields more points. Ties go
// to the grid.
package pattern
