package patch_test

import (
	"errors"
	"testing"

	"github.com/landecol/landstats/grid"
	"github.com/landecol/landstats/patch"
)

func mustGrid(t testing.TB, codes [][]int, nodata [][]bool) *grid.Grid {
	t.Helper()
	opts := grid.DefaultOptions()
	g, err := grid.New(codes, nodata, opts)
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}
	return g
}

//----------------------------------------------------------------------------//
// Label Input Validation
//----------------------------------------------------------------------------//

// TestLabel_Errors verifies nil-grid and bad-connectivity rejection.
func TestLabel_Errors(t *testing.T) {
	if _, err := patch.Label(nil, grid.Conn4); !errors.Is(err, patch.ErrNilGrid) {
		t.Errorf("Label(nil) error = %v; want ErrNilGrid", err)
	}
	g := mustGrid(t, [][]int{{1}}, nil)
	if _, err := patch.Label(g, grid.Connectivity(7)); !errors.Is(err, patch.ErrConnectivity) {
		t.Errorf("Label(conn=7) error = %v; want ErrConnectivity", err)
	}
}

//----------------------------------------------------------------------------//
// Delineation Semantics
//----------------------------------------------------------------------------//

// TestLabel_Partition checks the core invariant: non-nodata cells are
// partitioned completely and disjointly, nodata cells stay unlabeled.
func TestLabel_Partition(t *testing.T) {
	codes := [][]int{
		{1, 1, 2, 2},
		{1, 3, 3, 2},
		{1, 3, 2, 2},
	}
	nodata := [][]bool{
		{false, false, false, false},
		{false, false, false, false},
		{false, true, false, false},
	}
	g := mustGrid(t, codes, nodata)
	l, err := patch.Label(g, grid.Conn4)
	if err != nil {
		t.Fatalf("Label error: %v", err)
	}

	cellsSeen := make([]int, len(l.Patches)+1)
	for idx := 0; idx < g.Len(); idx++ {
		id := l.IDs[idx]
		if g.NoDataIndex(idx) {
			if id != patch.NoPatch {
				t.Errorf("nodata cell %d labeled %d", idx, id)
			}
			continue
		}
		if id == patch.NoPatch {
			t.Errorf("land cell %d unlabeled", idx)
			continue
		}
		cellsSeen[id]++
		if want := l.Patches[id-1].Class; g.AtIndex(idx) != want {
			t.Errorf("cell %d class %d labeled into patch of class %d", idx, g.AtIndex(idx), want)
		}
	}
	for _, p := range l.Patches {
		if cellsSeen[p.ID] != p.Cells {
			t.Errorf("patch %d: registry says %d cells, grid has %d", p.ID, p.Cells, cellsSeen[p.ID])
		}
	}
}

// TestLabel_RasterScanOrder verifies deterministic id assignment.
func TestLabel_RasterScanOrder(t *testing.T) {
	codes := [][]int{
		{5, 0, 7},
		{0, 7, 0},
	}
	g := mustGrid(t, codes, nil)
	l, err := patch.Label(g, grid.Conn4)
	if err != nil {
		t.Fatalf("Label error: %v", err)
	}
	// Raster scan seeds (0,0)=5, (1,0)=0, (2,0)=7, (0,1)=0, (1,1)=7,
	// (2,1)=0 — every cell is isolated under Conn4.
	wantClasses := []int{5, 0, 7, 0, 7, 0}
	if len(l.Patches) != len(wantClasses) {
		t.Fatalf("patch count = %d; want %d", len(l.Patches), len(wantClasses))
	}
	for i, want := range wantClasses {
		if l.Patches[i].Class != want {
			t.Errorf("patch %d class = %d; want %d", i+1, l.Patches[i].Class, want)
		}
		if l.Patches[i].ID != i+1 {
			t.Errorf("patch %d has ID %d", i, l.Patches[i].ID)
		}
	}
}

// TestLabel_Connectivity contrasts Conn4 and Conn8 on a checkerboard:
// diagonal adjacency merges patches only when requested.
func TestLabel_Connectivity(t *testing.T) {
	codes := [][]int{
		{1, 2, 1, 2},
		{2, 1, 2, 1},
		{1, 2, 1, 2},
		{2, 1, 2, 1},
	}
	g := mustGrid(t, codes, nil)

	l4, err := patch.Label(g, grid.Conn4)
	if err != nil {
		t.Fatalf("Label Conn4 error: %v", err)
	}
	if got := len(l4.Patches); got != 16 {
		t.Errorf("Conn4 checkerboard patches = %d; want 16", got)
	}

	l8, err := patch.Label(g, grid.Conn8)
	if err != nil {
		t.Fatalf("Label Conn8 error: %v", err)
	}
	if got := len(l8.Patches); got != 2 {
		t.Errorf("Conn8 checkerboard patches = %d; want 2", got)
	}
}

// TestLabel_NoDataBridge verifies nodata never joins two regions.
func TestLabel_NoDataBridge(t *testing.T) {
	codes := [][]int{{1, 1, 1}}
	nodata := [][]bool{{false, true, false}}
	g := mustGrid(t, codes, nodata)
	l, err := patch.Label(g, grid.Conn4)
	if err != nil {
		t.Fatalf("Label error: %v", err)
	}
	if got := len(l.Patches); got != 2 {
		t.Errorf("patches across nodata gap = %d; want 2", got)
	}
}

// TestLabel_AllNoData: an empty landscape is a valid degenerate case.
func TestLabel_AllNoData(t *testing.T) {
	codes := [][]int{{1, 1}, {1, 1}}
	nodata := [][]bool{{true, true}, {true, true}}
	g := mustGrid(t, codes, nodata)
	l, err := patch.Label(g, grid.Conn4)
	if err != nil {
		t.Fatalf("Label error on all-nodata grid: %v", err)
	}
	if len(l.Patches) != 0 {
		t.Errorf("all-nodata grid produced %d patches; want 0", len(l.Patches))
	}
}

// TestLabel_BoundingBox checks inclusive corner tracking.
func TestLabel_BoundingBox(t *testing.T) {
	codes := [][]int{
		{9, 9, 0},
		{0, 9, 0},
		{0, 9, 9},
	}
	g := mustGrid(t, codes, nil)
	l, err := patch.Label(g, grid.Conn4)
	if err != nil {
		t.Fatalf("Label error: %v", err)
	}
	p := l.Patches[0] // class 9 snake, discovered first
	if p.Class != 9 {
		t.Fatalf("first patch class = %d; want 9", p.Class)
	}
	if p.MinX != 0 || p.MinY != 0 || p.MaxX != 2 || p.MaxY != 2 {
		t.Errorf("bbox = (%d,%d)-(%d,%d); want (0,0)-(2,2)", p.MinX, p.MinY, p.MaxX, p.MaxY)
	}
	if p.Cells != 5 {
		t.Errorf("cells = %d; want 5", p.Cells)
	}
}

// TestLabel_IDGrid: the materialized id grid mirrors IDs and the mask.
func TestLabel_IDGrid(t *testing.T) {
	codes := [][]int{
		{5, 5, 7},
		{5, 0, 7},
	}
	nodata := [][]bool{
		{false, false, false},
		{false, true, false},
	}
	g := mustGrid(t, codes, nodata)
	l, err := patch.Label(g, grid.Conn4)
	if err != nil {
		t.Fatalf("Label error: %v", err)
	}
	ig, err := l.IDGrid()
	if err != nil {
		t.Fatalf("IDGrid error: %v", err)
	}
	if ig.Width() != g.Width() || ig.Height() != g.Height() {
		t.Fatalf("id grid is %dx%d; want %dx%d", ig.Width(), ig.Height(), g.Width(), g.Height())
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if got, want := ig.At(x, y), l.IDs[g.Index(x, y)]; got != want {
				t.Errorf("id at (%d,%d) = %d; want %d", x, y, got, want)
			}
			if ig.NoData(x, y) != g.NoData(x, y) {
				t.Errorf("mask mismatch at (%d,%d)", x, y)
			}
		}
	}
	if ig.CellSize() != g.CellSize() {
		t.Errorf("cell size = %v; want %v", ig.CellSize(), g.CellSize())
	}
}
