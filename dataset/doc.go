// Package dataset is a small embedded catalog of common categorical
// land-cover products: identifiers, native resolution, class legends
// and rendering palettes.
//
// What:
//
//   - Dataset describes one product (MODIS MCD12Q1, ESA WorldCover,
//     NLCD); Classes maps class codes to legend names, Palette to
//     display colors.
//   - List filters by category, Get looks up by id.
//
// Why:
//
//   - The metrics engine only sees integer codes; attaching legends and
//     palettes at export time makes tables and class maps readable
//     without hard-coding product knowledge anywhere else.
//
// Errors:
//
//   - ErrUnknownDataset: Get received an id not in the catalog.
package dataset
