// Package raster reads and writes categorical rasters as ESRI ASCII
// Grid (.asc) files and provides class-code reclassification.
//
// What:
//
//   - Read parses the ncols/nrows/xllcorner/yllcorner/cellsize/
//     NODATA_value header plus row-major cell values into a grid.Grid,
//     rejecting non-square dx/dy headers.
//   - Write emits a Grid back to the same format, substituting a nodata
//     code for masked cells.
//   - Reclassify remaps class codes into a new Grid (merging classes,
//     matching foreign legend tables).
//
// Why:
//
//   - The metrics engine is I/O-free; this package is the thin seam
//     between files on disk and the in-memory Grid. ESRI ASCII is the
//     simplest interchange format every GIS tool emits.
//
// Errors:
//
//   - ErrHeader: missing or malformed header field.
//   - ErrShape: cell value count does not match ncols×nrows.
//   - ErrValue: a cell value is not an integer class code.
package raster
