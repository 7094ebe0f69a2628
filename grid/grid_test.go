package grid_test

import (
	"errors"
	"testing"

	"github.com/landecol/landstats/grid"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects structurally invalid input.
func TestNew_Errors(t *testing.T) {
	good := grid.DefaultOptions()
	badCell := good
	badCell.CellSize = 0
	nonSquare := good
	nonSquare.CellSizeY = 15
	badScale := good
	badScale.AreaScale = -1

	cases := []struct {
		name   string
		codes  [][]int
		nodata [][]bool
		opts   grid.Options
		err    error
	}{
		{"EmptyRows", [][]int{}, nil, good, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, nil, good, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, nil, good, grid.ErrNonRectangular},
		{"MaskRows", [][]int{{1, 2}}, [][]bool{{false, false}, {false, false}}, good, grid.ErrMaskShape},
		{"MaskCols", [][]int{{1, 2}}, [][]bool{{false}}, good, grid.ErrMaskShape},
		{"ZeroCellSize", [][]int{{1}}, nil, badCell, grid.ErrCellSize},
		{"NonSquareCell", [][]int{{1}}, nil, nonSquare, grid.ErrCellSize},
		{"BadAreaScale", [][]int{{1}}, nil, badScale, grid.ErrAreaScale},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.codes, tc.nodata, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.codes, err, tc.err)
			}
		})
	}
}

// TestNew_Immutable checks that mutating the input slices after
// construction does not leak into the Grid.
func TestNew_Immutable(t *testing.T) {
	codes := [][]int{{1, 2}, {3, 4}}
	mask := [][]bool{{false, false}, {false, true}}
	g, err := grid.New(codes, mask, grid.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	codes[0][0] = 99
	mask[0][0] = true
	if got := g.At(0, 0); got != 1 {
		t.Errorf("At(0,0) = %d after input mutation; want 1", got)
	}
	if g.NoData(0, 0) {
		t.Error("NoData(0,0) = true after input mutation; want false")
	}
}

//----------------------------------------------------------------------------//
// Geometry & Accessor Tests
//----------------------------------------------------------------------------//

// TestAreas verifies hectare conversion and the land/total split.
func TestAreas(t *testing.T) {
	// 4×4 of 30 m cells: one cell = 900 m² = 0.09 ha.
	codes := make([][]int, 4)
	mask := make([][]bool, 4)
	for y := range codes {
		codes[y] = []int{1, 1, 1, 1}
		mask[y] = make([]bool, 4)
	}
	mask[3][3] = true
	g, err := grid.New(codes, mask, grid.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if got, want := g.CellAreaHa(), 0.09; !almostEq(got, want) {
		t.Errorf("CellAreaHa = %v; want %v", got, want)
	}
	if got, want := g.TotalAreaHa(), 16*0.09; !almostEq(got, want) {
		t.Errorf("TotalAreaHa = %v; want %v", got, want)
	}
	if got, want := g.LandAreaHa(), 15*0.09; !almostEq(got, want) {
		t.Errorf("LandAreaHa = %v; want %v", got, want)
	}
	if got := g.LandCells(); got != 15 {
		t.Errorf("LandCells = %d; want 15", got)
	}
}

// TestIndexRoundTrip checks Index/Coordinate inversion across the grid.
func TestIndexRoundTrip(t *testing.T) {
	g, err := grid.New([][]int{{1, 2, 3}, {4, 5, 6}}, nil, grid.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			gx, gy := g.Coordinate(g.Index(x, y))
			if gx != x || gy != y {
				t.Errorf("Coordinate(Index(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
	if g.InBounds(3, 0) || g.InBounds(0, 2) || g.InBounds(-1, 0) {
		t.Error("InBounds accepted out-of-range coordinates")
	}
}

// TestClasses verifies distinct class collection skips nodata cells.
func TestClasses(t *testing.T) {
	codes := [][]int{
		{3, 1, 1},
		{3, 9, 1},
	}
	mask := [][]bool{
		{false, false, false},
		{false, true, false},
	}
	g, err := grid.New(codes, mask, grid.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	got := g.Classes()
	want := []int{1, 3}
	if len(got) != len(want) {
		t.Fatalf("Classes = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Classes = %v; want %v", got, want)
		}
	}
}

//----------------------------------------------------------------------------//
// Connectivity Tests
//----------------------------------------------------------------------------//

// TestConnectivityOffsets checks the orthogonal prefix invariant.
func TestConnectivityOffsets(t *testing.T) {
	if got := len(grid.Conn4.Offsets()); got != 4 {
		t.Errorf("Conn4 offsets = %d; want 4", got)
	}
	if got := len(grid.Conn8.Offsets()); got != 8 {
		t.Errorf("Conn8 offsets = %d; want 8", got)
	}
	// The first four Conn8 offsets must cover N/E/S/W so that edge-based
	// computations can slice the orthogonal prefix.
	ortho := map[[2]int]bool{}
	for _, d := range grid.Conn8.Offsets()[:4] {
		if d[0] != 0 && d[1] != 0 {
			t.Errorf("Conn8 offset prefix contains diagonal %v", d)
		}
		ortho[d] = true
	}
	if len(ortho) != 4 {
		t.Errorf("Conn8 orthogonal prefix has %d distinct offsets; want 4", len(ortho))
	}
	if grid.Connectivity(2).Valid() {
		t.Error("Connectivity(2).Valid() = true; want false")
	}
}

func almostEq(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
