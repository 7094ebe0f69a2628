package patch

import "github.com/landecol/landstats/grid"

// NoPatch is the id stored in the patch-id grid for nodata cells.
const NoPatch = 0

// Patch is one maximal connected run of same-class, non-nodata cells.
// Ids start at 1 and follow raster-scan discovery order. The bounding
// box is inclusive on both corners.
type Patch struct {
	ID    int
	Class int
	Cells int
	MinX, MinY, MaxX, MaxY int
}

// Labeling holds the outcome of connected-component delineation: the
// source grid, a flat row-major patch-id grid (NoPatch for nodata), and
// the patch registry indexed by id-1. Every non-nodata cell belongs to
// exactly one patch.
type Labeling struct {
	Grid    *grid.Grid
	Conn    grid.Connectivity
	IDs     []int
	Patches []Patch
}

// Geometry carries the measured descriptors of one patch. Areas are in
// hectares; Perimeter is in the grid's length unit; the shape indices
// are dimensionless.
type Geometry struct {
	Patch

	// AreaHa is cell count × cell area.
	AreaHa float64
	// Perimeter is the summed length of boundary edges: every cell side
	// facing out-of-grid, nodata, or another patch counts once.
	Perimeter float64
	// CoreAreaHa is the area remaining after EdgeDepth boundary rinds
	// are eroded. Always ≤ AreaHa; 0 when the patch erodes away.
	CoreAreaHa float64

	// Shape is P / (2·√(π·A)): 1 for a disc-like patch, growing with
	// boundary complexity.
	Shape float64
	// Frac is 2·ln(P/4) / ln(A), a boundary fractal dimension; defined
	// as 1 for single-cell patches.
	Frac float64
	// Para is the raw perimeter-area ratio P / A.
	Para float64
	// Circle is 1 − A / A_circumscribing, where A_circumscribing is the
	// smallest circle enclosing the patch's cell squares.
	Circle float64
}

// Options tunes Measure.
type Options struct {
	// EdgeDepth is the number of boundary-peel rounds applied before
	// core area is counted. 0 disables the edge effect entirely.
	EdgeDepth int
}

// DefaultOptions returns the conventional one-cell edge depth.
func DefaultOptions() Options {
	return Options{EdgeDepth: 1}
}
