package grid

import "errors"

// Sentinel errors for grid construction. All of them represent
// structural problems with the input raster and are surfaced before any
// computation begins.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMaskShape indicates the nodata mask does not match the grid shape.
	ErrMaskShape = errors.New("grid: nodata mask shape must match the code grid")
	// ErrCellSize indicates a non-positive or non-square cell size.
	ErrCellSize = errors.New("grid: cell size must be positive and square")
	// ErrAreaScale indicates a non-positive hectare conversion factor.
	ErrAreaScale = errors.New("grid: area scale must be positive")
)
