package metrics

import "github.com/landecol/landstats/grid"

// adjacency holds per-class cell-adjacency tallies over the orthogonal
// 4-neighborhood. Each unordered pair of grid-adjacent non-nodata cells
// is counted once: toward like for both cells' shared class, or toward
// unlike of both classes involved. Pairs touching nodata or the grid
// boundary are ignored.
type adjacency struct {
	like   int
	unlike int
}

// countAdjacencies tallies like/unlike adjacencies per class in one
// pass, examining only the east and south neighbor of every cell so no
// pair is counted twice.
func countAdjacencies(g *grid.Grid) map[int]adjacency {
	counts := make(map[int]adjacency)
	w, h := g.Width(), g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := g.Index(x, y)
			if g.NoDataIndex(idx) {
				continue
			}
			a := g.AtIndex(idx)
			if x+1 < w && !g.NoData(x+1, y) {
				tally(counts, a, g.At(x+1, y))
			}
			if y+1 < h && !g.NoData(x, y+1) {
				tally(counts, a, g.At(x, y+1))
			}
		}
	}
	return counts
}

func tally(counts map[int]adjacency, a, b int) {
	if a == b {
		c := counts[a]
		c.like++
		counts[a] = c
		return
	}
	ca := counts[a]
	ca.unlike++
	counts[a] = ca
	cb := counts[b]
	cb.unlike++
	counts[b] = cb
}

// maxLikeAdjacencies returns the largest like-adjacency count n cells
// can achieve when packed into a maximally compact near-square block:
// with n = w² + r, the square contributes 2w(w−1) adjacencies and the
// remainder row 2r−1 (r ≤ w) or 2r−2 (r > w).
func maxLikeAdjacencies(n int) int {
	if n <= 1 {
		return 0
	}
	w := 0
	for (w+1)*(w+1) <= n {
		w++
	}
	r := n - w*w
	m := 2 * w * (w - 1)
	switch {
	case r == 0:
		return m
	case r <= w:
		return m + 2*r - 1
	default:
		return m + 2*r - 2
	}
}
