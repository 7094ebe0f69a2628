// Package patch delineates discrete landscape patches in a categorical
// grid and measures their geometry.
//
// What:
//
//   - Label identifies maximal connected regions of same-class,
//     non-nodata cells (Conn4 or Conn8), producing a flat patch-id grid
//     plus a patch registry — an arena-with-indices layout, no object
//     graphs.
//   - Measure derives per-patch geometry from the full grid context:
//     area, exact boundary perimeter, erosion-based core area, bounding
//     box, and the shape indices SHAPE, FRAC, PARA and CIRCLE.
//
// Why:
//
//   - Every class- and landscape-level metric downstream is an
//     aggregation over these per-patch records; getting delineation and
//     boundary accounting exactly right here keeps the aggregators
//     trivial.
//   - Patch ids are assigned in raster-scan order (row-major,
//     top-to-bottom, left-to-right), so identical grids always produce
//     identical labelings.
//
// Complexity:
//
//   - Label:   O(W×H×d) time, O(W×H) memory (d = 4 or 8).
//   - Measure: O(W×H + Σ boundary) time; the erosion worklist peels one
//     boundary rind per EdgeDepth round, never recursing.
//
// Options:
//
//   - Connectivity is chosen at Label time (grid.Conn4 default
//     convention; diagonal adjacency merges patches only under Conn8).
//   - Options.EdgeDepth: number of boundary rinds removed before core
//     area is counted. 0 means the whole patch is core.
//
// Errors:
//
//   - ErrNilGrid: Label received a nil grid.
//   - ErrConnectivity: connectivity mode is not Conn4 or Conn8.
//   - ErrOptionViolation: negative EdgeDepth.
package patch
