package patch

import (
	"github.com/landecol/landstats/grid"
)

// Label partitions the non-nodata cells of g into maximal connected
// same-class patches under the given connectivity. Nodata cells are
// never labeled and never bridge two regions. A grid that is entirely
// nodata yields an empty registry rather than an error: an empty
// landscape is a valid degenerate input for downstream aggregation.
//
// Patch ids are assigned in raster-scan order of each patch's first
// cell, so the labeling is deterministic for identical input.
// Complexity: O(W×H×d) time, O(W×H) memory.
func Label(g *grid.Grid, conn grid.Connectivity) (*Labeling, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !conn.Valid() {
		return nil, ErrConnectivity
	}

	w, h := g.Width(), g.Height()
	ids := make([]int, w*h)
	offsets := conn.Offsets()
	var patches []Patch

	// Explicit BFS queue; recursion depth must not scale with patch size.
	queue := make([]int, 0, 256)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			seed := g.Index(x, y)
			if ids[seed] != NoPatch || g.NoDataIndex(seed) {
				continue
			}
			id := len(patches) + 1
			class := g.AtIndex(seed)
			p := Patch{ID: id, Class: class, MinX: x, MinY: y, MaxX: x, MaxY: y}

			queue = append(queue[:0], seed)
			ids[seed] = id
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ux, uy := g.Coordinate(u)
				p.Cells++
				if ux < p.MinX {
					p.MinX = ux
				}
				if ux > p.MaxX {
					p.MaxX = ux
				}
				if uy < p.MinY {
					p.MinY = uy
				}
				if uy > p.MaxY {
					p.MaxY = uy
				}
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !g.InBounds(vx, vy) {
						continue
					}
					v := g.Index(vx, vy)
					if ids[v] != NoPatch || g.NoDataIndex(v) || g.AtIndex(v) != class {
						continue
					}
					ids[v] = id
					queue = append(queue, v)
				}
			}
			patches = append(patches, p)
		}
	}

	return &Labeling{Grid: g, Conn: conn, IDs: ids, Patches: patches}, nil
}

// IDGrid materializes the labeling as a Grid of patch ids, carrying
// over the source's nodata mask and geometry. Handy for exporting a
// patch map alongside the class raster.
func (l *Labeling) IDGrid() (*grid.Grid, error) {
	w, h := l.Grid.Width(), l.Grid.Height()
	codes := make([][]int, h)
	nodata := make([][]bool, h)
	for y := 0; y < h; y++ {
		codes[y] = make([]int, w)
		nodata[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			codes[y][x] = l.IDs[l.Grid.Index(x, y)]
			nodata[y][x] = l.Grid.NoData(x, y)
		}
	}
	return grid.New(codes, nodata, grid.Options{
		CellSize:  l.Grid.CellSize(),
		AreaScale: l.Grid.AreaScale(),
	})
}

// ByClass groups the registry's patch indices per class code. The inner
// slices preserve id order.
func (l *Labeling) ByClass() map[int][]int {
	groups := make(map[int][]int)
	for i, p := range l.Patches {
		groups[p.Class] = append(groups[p.Class], i)
	}
	return groups
}
