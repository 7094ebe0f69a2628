// Package export renders computed metric tables into shareable
// artifacts: CSV for analysis pipelines, a colored class-map PNG for
// visual inspection, and an interactive HTML bar chart.
//
// What:
//
//   - WriteCSV streams a metrics.Table as one CSV with a level column,
//     a class column, and one column per requested metric. NaN cells
//     are written empty so spreadsheet tools treat them as blanks.
//   - WriteClassMap paints a Grid with a dataset palette, scales it
//     to a viewable size, and attaches a legend strip.
//   - WriteChart renders one grouped bar chart per metric across the
//     class rows.
//
// Why:
//
//   - The engine itself returns structured values only; everything
//     presentational lives here so the metric packages stay free of
//     encoding concerns.
//
// Errors: all writers return the underlying encoder error unchanged.
package export
