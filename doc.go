// Package landstats is an in-memory engine for quantitative
// spatial-pattern analysis ("landscape metrics") over categorical
// land-cover rasters.
//
// 🚀 What is landstats?
//
//	A pure-Go library that brings together:
//		• grid/    — immutable categorical raster carrier (class codes, nodata mask, cell size)
//		• patch/   — connected-component patch delineation & per-patch geometry
//		             (area, perimeter, core area, shape indices)
//		• metrics/ — per-class and whole-landscape aggregation
//		             (CA, PLAND, NP, TE, ED, TCA, CAI, AI, CLUMPY, COHESION,
//		              DIVISION, SHDI, SHEI, SIDI, …)
//		• raster/  — ESRI ASCII Grid import/export and reclassification
//		• dataset/ — catalog of common land-cover products and class tables
//		• fetch/   — tiled download & mosaic glue for large areas
//		• export/  — CSV tables, class-map PNGs, metric charts
//
// ✨ Why choose landstats?
//
//   - Deterministic — identical rasters always yield identical patch
//     partitions and metric tables
//   - Degenerate-safe — absent classes, single-cell patches and empty
//     landscapes produce NaN sentinels, never panics
//   - Pure Go core — no cgo, no I/O inside the engine
//
// Quick ASCII example:
//
//	    1 1 2 2          two classes of land cover, three patches under Conn4:
//	    1 1 2 2          class 1 → one 4-cell patch,
//	    3 3 2 2          class 2 → one 6-cell patch,
//	    3 3 . .          class 3 → one 4-cell patch ("." = nodata)
//
// Entry point: build a grid.Grid, then call metrics.Compute to obtain a
// metrics.Table with one row per class present plus a landscape row.
//
// Dive into README.md and the examples/ directory for full walkthroughs.
//
//	go get github.com/landecol/landstats
package landstats
