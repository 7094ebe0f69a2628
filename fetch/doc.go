// Package fetch is the acquisition glue between a remote raster
// service and the in-memory grid the metrics engine consumes: session
// auth, tiled download of large areas, and mosaic merging. It contains
// no metric logic.
//
// What:
//
//   - Session wraps an HTTP client with token authentication against a
//     raster tile service.
//   - Plan splits a bounding box into tiles bounded by MaxTileCells, so
//     the caller controls the memory footprint before the engine runs.
//   - Download fetches every tile as an ESRI ASCII grid and stitches
//     the results into one Grid, verifying cell-size and seam
//     agreement.
//
// Why:
//
//   - Remote catalogs cap per-request pixel counts; large study areas
//     must be tiled and re-assembled client-side. Keeping that here
//     preserves the engine's no-I/O contract.
//
// Errors:
//
//   - ErrNotAuthenticated: Download before Authenticate.
//   - ErrTooLarge: a request exceeding MaxCells outright.
//   - ErrTileFetch: a tile request failed (wrapped with tile context).
//   - ErrMosaic: fetched tiles disagree on shape or cell size.
package fetch
