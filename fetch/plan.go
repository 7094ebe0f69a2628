package fetch

import (
	"fmt"
	"math"
)

// BBox is an axis-aligned bounding box in the service's projected
// coordinate system (same length unit as the cell size).
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Valid reports whether the box has positive extent.
func (b BBox) Valid() bool { return b.MaxX > b.MinX && b.MaxY > b.MinY }

// Cells returns the cell dimensions of the box at the given resolution,
// rounding partial cells up.
func (b BBox) Cells(cellSize float64) (cols, rows int) {
	cols = int(math.Ceil((b.MaxX - b.MinX) / cellSize))
	rows = int(math.Ceil((b.MaxY - b.MinY) / cellSize))
	return cols, rows
}

// Tile is one rectangular piece of a tiled request, carrying its cell
// offsets inside the final mosaic.
type Tile struct {
	BBox
	// Col/Row index the tile inside the plan's tile lattice.
	Col, Row int
	// OffX/OffY are the tile's cell offsets in the mosaic.
	OffX, OffY int
	// Cols/Rows are the tile's cell dimensions.
	Cols, Rows int
}

// Plan describes a tiled download: the full extent, resolution, and the
// tile lattice covering it.
type Plan struct {
	BBox     BBox
	CellSize float64
	// Cols/Rows are the mosaic's cell dimensions.
	Cols, Rows int
	// TileCols/TileRows count tiles per axis.
	TileCols, TileRows int
	Tiles              []Tile
}

// EstimateSize is a coarse payload estimate in bytes: cells times an
// average token width in the ASCII encoding.
func (p Plan) EstimateSize() int64 {
	const bytesPerCell = 4
	return int64(p.Cols) * int64(p.Rows) * bytesPerCell
}

// NewPlan splits a bounding box into tiles of at most maxTileCells
// cells each, cutting both axes evenly. The tile lattice is row-major
// top-to-bottom, matching grid scan order.
//
// Returns ErrBounds for an empty box and ErrTooLarge when the full
// request exceeds maxCells (0 disables the cap).
func NewPlan(b BBox, cellSize float64, maxTileCells, maxCells int) (*Plan, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %+v", ErrBounds, b)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: cellSize %v", ErrBounds, cellSize)
	}
	cols, rows := b.Cells(cellSize)
	if maxCells > 0 && cols*rows > maxCells {
		return nil, fmt.Errorf("%w: %d cells > cap %d", ErrTooLarge, cols*rows, maxCells)
	}
	if maxTileCells <= 0 {
		maxTileCells = 1 << 20
	}

	// Cut each axis into the smallest lattice whose tiles fit the cap.
	tilesNeeded := int(math.Ceil(float64(cols*rows) / float64(maxTileCells)))
	tileCols := 1
	tileRows := 1
	for tileCols*tileRows < tilesNeeded || ceilDiv(cols, tileCols)*ceilDiv(rows, tileRows) > maxTileCells {
		if ceilDiv(cols, tileCols) >= ceilDiv(rows, tileRows) {
			tileCols++
		} else {
			tileRows++
		}
	}

	p := &Plan{
		BBox:     b,
		CellSize: cellSize,
		Cols:     cols,
		Rows:     rows,
		TileCols: tileCols,
		TileRows: tileRows,
	}
	tw, th := ceilDiv(cols, tileCols), ceilDiv(rows, tileRows)
	for tr := 0; tr < tileRows; tr++ {
		for tc := 0; tc < tileCols; tc++ {
			offX, offY := tc*tw, tr*th
			w := min(tw, cols-offX)
			h := min(th, rows-offY)
			if w <= 0 || h <= 0 {
				continue
			}
			// Rows count from the top; MaxY is the mosaic's top edge.
			p.Tiles = append(p.Tiles, Tile{
				BBox: BBox{
					MinX: b.MinX + float64(offX)*cellSize,
					MaxX: b.MinX + float64(offX+w)*cellSize,
					MaxY: b.MaxY - float64(offY)*cellSize,
					MinY: b.MaxY - float64(offY+h)*cellSize,
				},
				Col: tc, Row: tr,
				OffX: offX, OffY: offY,
				Cols: w, Rows: h,
			})
		}
	}
	return p, nil
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
