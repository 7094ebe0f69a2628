package raster

import "github.com/landecol/landstats/grid"

// Reclassify builds a new Grid with class codes remapped through the
// given table. Codes absent from the table pass through unchanged, and
// the nodata mask is preserved. Useful for merging classes (e.g. all
// forest types → one code) before computing metrics.
func Reclassify(g *grid.Grid, table map[int]int) (*grid.Grid, error) {
	h, w := g.Height(), g.Width()
	codes := make([][]int, h)
	nodata := make([][]bool, h)
	for y := 0; y < h; y++ {
		codes[y] = make([]int, w)
		nodata[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			code := g.At(x, y)
			if to, ok := table[code]; ok {
				code = to
			}
			codes[y][x] = code
			nodata[y][x] = g.NoData(x, y)
		}
	}
	return grid.New(codes, nodata, grid.Options{CellSize: g.CellSize(), AreaScale: g.AreaScale()})
}
