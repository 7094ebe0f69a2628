// Package metrics aggregates patch geometry into per-class and
// whole-landscape landscape-ecology metrics.
//
// What:
//
//   - Compute runs the full pipeline — label → measure → aggregate —
//     and returns a Table with one row per class present plus one
//     landscape row.
//   - Class families: area (CA, PLAND, NP, AREA_MN), edge (TE, ED),
//     core (TCA, CPLAND, CAI), aggregation (AI, CLUMPY, COHESION,
//     DIVISION).
//   - Landscape family: TA, PR, PRD and the diversity indices SHDI,
//     SHEI, SIDI over the class-proportion vector.
//
// Why:
//
//   - A class absent from one grid in a batch run is normal, not an
//     error: every degenerate denominator (zero area, single patch,
//     single class) yields a NaN sentinel so callers always receive a
//     complete, filterable table.
//   - Proportional metrics use the non-nodata landscape area, so a
//     single class covering all land scores PLAND=100 and SHDI=0.
//
// Complexity:
//
//   - Compute: O(W×H×d) labeling + O(W×H) measurement and adjacency
//     counting + O(patches) aggregation.
//
// Options:
//
//   - Options.Connectivity: Conn4 (default) or Conn8 patch merging.
//   - Options.EdgeDepth: core-area erosion depth (default 1).
//   - Options.Metrics: subset of metric IDs to report (default all).
//
// Errors:
//
//   - ErrUnknownMetric: a requested metric ID is not defined.
//   - patch.ErrNilGrid / patch.ErrConnectivity / patch.ErrOptionViolation
//     propagate unchanged from the underlying stages.
package metrics
