package grid

import (
	"fmt"
	"sort"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of class
// codes plus an optional nodata mask of identical shape (nil means no
// nodata anywhere). Inputs are deep-copied so later mutation of the
// arguments cannot affect the Grid.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrMaskShape, ErrCellSize or
// ErrAreaScale on structurally invalid input.
// Complexity: O(W×H) time and memory.
func New(codes [][]int, nodata [][]bool, opts Options) (*Grid, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(codes), len(codes[0])
	for y, row := range codes {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	if nodata != nil {
		if len(nodata) != h {
			return nil, fmt.Errorf("%w: mask has %d rows, grid has %d", ErrMaskShape, len(nodata), h)
		}
		for y, row := range nodata {
			if len(row) != w {
				return nil, fmt.Errorf("%w: mask row %d has %d columns, want %d", ErrMaskShape, y, len(row), w)
			}
		}
	}
	if opts.CellSize <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrCellSize, opts.CellSize)
	}
	if opts.CellSizeY != 0 && opts.CellSizeY != opts.CellSize {
		return nil, fmt.Errorf("%w: x=%v y=%v", ErrCellSize, opts.CellSize, opts.CellSizeY)
	}
	if opts.AreaScale <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrAreaScale, opts.AreaScale)
	}

	g := &Grid{
		width:     w,
		height:    h,
		cellSize:  opts.CellSize,
		areaScale: opts.AreaScale,
		codes:     make([]int, w*h),
		nodata:    make([]bool, w*h),
	}
	for y := 0; y < h; y++ {
		copy(g.codes[y*w:(y+1)*w], codes[y])
	}
	if nodata != nil {
		for y := 0; y < h; y++ {
			copy(g.nodata[y*w:(y+1)*w], nodata[y])
		}
	}
	for _, nd := range g.nodata {
		if !nd {
			g.landCells++
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the total cell count, Width×Height.
func (g *Grid) Len() int { return g.width * g.height }

// CellSize returns the linear size of one cell edge.
func (g *Grid) CellSize() float64 { return g.cellSize }

// AreaScale returns the squared-length-unit → hectare factor.
func (g *Grid) AreaScale() float64 { return g.areaScale }

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index converts cell coordinates to a flat row-major index.
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// Coordinate converts a flat row-major index back to (x, y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// At returns the class code at (x, y). It panics on out-of-bounds
// coordinates, like a slice access; use InBounds to guard.
func (g *Grid) At(x, y int) int { return g.codes[y*g.width+x] }

// AtIndex returns the class code at a flat index.
func (g *Grid) AtIndex(idx int) int { return g.codes[idx] }

// NoData reports whether the cell at (x, y) is masked out.
func (g *Grid) NoData(x, y int) bool { return g.nodata[y*g.width+x] }

// NoDataIndex reports whether the cell at a flat index is masked out.
func (g *Grid) NoDataIndex(idx int) bool { return g.nodata[idx] }

// LandCells returns the number of non-nodata cells.
func (g *Grid) LandCells() int { return g.landCells }

// CellAreaHa returns the area of a single cell in hectares.
func (g *Grid) CellAreaHa() float64 { return g.cellSize * g.cellSize * g.areaScale }

// TotalAreaHa returns the area of the full grid, nodata included, in
// hectares. Together with LandAreaHa it satisfies
// TotalAreaHa == LandAreaHa + nodata area.
func (g *Grid) TotalAreaHa() float64 { return float64(g.Len()) * g.CellAreaHa() }

// LandAreaHa returns the area of the non-nodata portion of the grid in
// hectares. This is the landscape area used by proportional metrics
// (PLAND, ED, diversity indices).
func (g *Grid) LandAreaHa() float64 { return float64(g.landCells) * g.CellAreaHa() }

// Classes returns the distinct class codes present on non-nodata cells,
// in ascending order.
func (g *Grid) Classes() []int {
	seen := make(map[int]bool)
	var classes []int
	for i, code := range g.codes {
		if g.nodata[i] || seen[code] {
			continue
		}
		seen[code] = true
		classes = append(classes, code)
	}
	sort.Ints(classes)
	return classes
}
