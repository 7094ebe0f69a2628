// Package grid defines the immutable categorical raster that every
// other landstats package operates on.
//
// What:
//
//   - Grid wraps a rectangular [][]int of land-cover class codes with a
//     same-shape nodata mask, a positive square cell size, and an area
//     scale converting cell counts into hectares.
//   - Flat row-major storage with Index/Coordinate helpers, the
//     arena-with-indices layout shared by the patch labeler.
//   - Inputs are deep-copied on construction; a Grid never mutates.
//
// Why:
//
//   - Landscape metrics are pure functions of one fixed-resolution
//     raster; carrying geometry (cell size, unit scale) next to the
//     codes keeps every downstream formula free of unit plumbing.
//   - Nodata handling (clouds, sea, clipped borders) is decided once
//     here rather than per metric.
//
// Complexity:
//
//   - New: O(W×H) time and memory (defensive copy).
//   - At / NoData / InBounds / Index / Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMaskShape: nodata mask shape differs from the code grid.
//   - ErrCellSize: cell size non-positive, or x/y sizes differ.
//   - ErrAreaScale: hectare conversion factor non-positive.
package grid
