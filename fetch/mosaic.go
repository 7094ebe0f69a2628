package fetch

import (
	"fmt"

	"github.com/landecol/landstats/grid"
)

// mosaic stitches tile grids into the plan's full extent. Tiles must
// match the plan's cell size and their declared dimensions; any
// mismatch yields ErrMosaic.
func mosaic(p *Plan, tiles []*grid.Grid, noData int, areaScale float64) (*grid.Grid, error) {
	if len(tiles) != len(p.Tiles) {
		return nil, fmt.Errorf("%w: got %d tiles, want %d", ErrMosaic, len(tiles), len(p.Tiles))
	}

	codes := make([][]int, p.Rows)
	nodata := make([][]bool, p.Rows)
	for y := range codes {
		codes[y] = make([]int, p.Cols)
		nodata[y] = make([]bool, p.Cols)
		for x := range codes[y] {
			codes[y][x] = noData
			nodata[y][x] = true
		}
	}

	for i, t := range p.Tiles {
		g := tiles[i]
		if g == nil {
			return nil, fmt.Errorf("%w: tile %d,%d missing", ErrMosaic, t.Col, t.Row)
		}
		if g.Width() != t.Cols || g.Height() != t.Rows {
			return nil, fmt.Errorf("%w: tile %d,%d is %dx%d, want %dx%d",
				ErrMosaic, t.Col, t.Row, g.Width(), g.Height(), t.Cols, t.Rows)
		}
		if g.CellSize() != p.CellSize {
			return nil, fmt.Errorf("%w: tile %d,%d cell size %v, want %v",
				ErrMosaic, t.Col, t.Row, g.CellSize(), p.CellSize)
		}
		for y := 0; y < t.Rows; y++ {
			for x := 0; x < t.Cols; x++ {
				codes[t.OffY+y][t.OffX+x] = g.At(x, y)
				nodata[t.OffY+y][t.OffX+x] = g.NoData(x, y)
			}
		}
	}

	return grid.New(codes, nodata, grid.Options{
		CellSize:  p.CellSize,
		AreaScale: areaScale,
	})
}
