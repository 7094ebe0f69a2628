package patch

import (
	"fmt"
	"math"
)

// orthogonal neighborhood used for all boundary accounting. Perimeter,
// core erosion and adjacency share this test regardless of the labeling
// connectivity: edges have length, corners do not.
var ortho = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Measure computes the geometry of every patch in the labeling. The
// computation reads the full grid context, since perimeter and core
// area depend on what lies outside each patch. The returned slice is
// parallel to l.Patches.
//
// Returns ErrOptionViolation for a negative EdgeDepth.
// Complexity: O(W×H) per erosion round plus hull work on boundary cells.
func (l *Labeling) Measure(opts Options) ([]Geometry, error) {
	if opts.EdgeDepth < 0 {
		return nil, fmt.Errorf("%w: EdgeDepth cannot be negative (%d)", ErrOptionViolation, opts.EdgeDepth)
	}

	g := l.Grid
	n := len(l.Patches)
	geoms := make([]Geometry, n)

	// One pass over the grid: boundary-edge counts and boundary cell
	// lists per patch. A neighbor outside the grid, nodata, or in a
	// different patch contributes one edge.
	edges := make([]int, n+1)
	boundary := make([][][2]int, n+1)
	w, h := g.Width(), g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := l.IDs[g.Index(x, y)]
			if id == NoPatch {
				continue
			}
			exposed := 0
			for _, d := range ortho {
				vx, vy := x+d[0], y+d[1]
				if !g.InBounds(vx, vy) || l.IDs[g.Index(vx, vy)] != id {
					exposed++
				}
			}
			if exposed > 0 {
				edges[id] += exposed
				boundary[id] = append(boundary[id], [2]int{x, y})
			}
		}
	}

	coreCells := l.erode(opts.EdgeDepth)

	cs := g.CellSize()
	cellHa := g.CellAreaHa()
	for i, p := range l.Patches {
		area := float64(p.Cells) * cs * cs // squared length units
		perim := float64(edges[p.ID]) * cs
		circArea := enclosingCircleArea(boundary[p.ID]) * cs * cs

		geoms[i] = Geometry{
			Patch:      p,
			AreaHa:     float64(p.Cells) * cellHa,
			Perimeter:  perim,
			CoreAreaHa: float64(coreCells[p.ID]) * cellHa,
			Shape:      perim / (2 * math.Sqrt(math.Pi*area)),
			Frac:       fractalDimension(perim, area, p.Cells),
			Para:       perim / area,
			Circle:     1 - area/circArea,
		}
	}
	return geoms, nil
}

// fractalDimension returns 2·ln(P/4)/ln(A). Single-cell patches are
// pinned to 1.0 to avoid ln(A)=0 when the cell size is 1; the same
// guard covers any other grid whose patch area lands exactly on 1.
func fractalDimension(perim, area float64, cells int) float64 {
	if cells == 1 {
		return 1.0
	}
	lnA := math.Log(area)
	if lnA == 0 {
		return math.NaN()
	}
	return 2 * math.Log(0.25*perim) / lnA
}

// erode peels depth boundary rinds off every patch simultaneously and
// returns the surviving cell count per patch id. It works on a shared
// alive bitmap with an explicit worklist, so stack usage is constant
// regardless of patch size.
func (l *Labeling) erode(depth int) []int {
	counts := make([]int, len(l.Patches)+1)
	for _, p := range l.Patches {
		counts[p.ID] = p.Cells
	}
	if depth == 0 {
		return counts
	}

	g := l.Grid
	n := g.Len()
	alive := make([]bool, n)
	for idx, id := range l.IDs {
		alive[idx] = id != NoPatch
	}

	// queued[idx] records the round a cell was last scheduled for, to
	// keep the worklist duplicate-free.
	queued := make([]int, n)
	var frontier []int
	w, h := g.Width(), g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := g.Index(x, y)
			id := l.IDs[idx]
			if id == NoPatch {
				continue
			}
			for _, d := range ortho {
				vx, vy := x+d[0], y+d[1]
				if !g.InBounds(vx, vy) || l.IDs[g.Index(vx, vy)] != id {
					frontier = append(frontier, idx)
					queued[idx] = 1
					break
				}
			}
		}
	}

	for round := 1; round <= depth && len(frontier) > 0; round++ {
		for _, idx := range frontier {
			alive[idx] = false
			counts[l.IDs[idx]]--
		}
		var next []int
		for _, idx := range frontier {
			x, y := g.Coordinate(idx)
			for _, d := range ortho {
				vx, vy := x+d[0], y+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				v := g.Index(vx, vy)
				if !alive[v] || l.IDs[v] != l.IDs[idx] || queued[v] > round {
					continue
				}
				queued[v] = round + 1
				next = append(next, v)
			}
		}
		frontier = next
	}
	return counts
}
