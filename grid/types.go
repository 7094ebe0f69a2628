package grid

// Connectivity selects neighbor adjacency for patch delineation:
// orthogonal only (Conn4) or orthogonal plus diagonal (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W. This is the
	// standard landscape-ecology convention; diagonal neighbors do not
	// merge patches.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Offsets returns the neighbor offset set for the connectivity. The
// first four entries are always the orthogonal N/E/S/W offsets, so
// Offsets()[:4] is the edge neighborhood regardless of connectivity;
// diagonal offsets follow for Conn8.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Valid reports whether c is one of the defined connectivity modes.
func (c Connectivity) Valid() bool { return c == Conn4 || c == Conn8 }

// Options contains the geometric parameters of a Grid.
type Options struct {
	// CellSize is the linear distance covered by one cell edge, in the
	// raster's length unit (typically meters). Must be positive.
	CellSize float64
	// CellSizeY, when non-zero, declares a differing y-resolution.
	// Non-square cells are rejected; the field exists so that raster
	// headers with separate dx/dy can be validated in one place.
	CellSizeY float64
	// AreaScale converts an area expressed in squared length units into
	// hectares. With meters, the conversion is 1/10000.
	AreaScale float64
}

// DefaultOptions returns Options for a 30 m cell raster measured in
// meters: CellSize=30, AreaScale=1e-4 (m² → ha).
func DefaultOptions() Options {
	return Options{
		CellSize:  30,
		CellSizeY: 0,
		AreaScale: 1.0 / 10000.0,
	}
}

// Grid is an immutable categorical raster: class codes, a nodata mask,
// and the cell geometry needed to express areas in hectares.
// Storage is flat row-major; Index and Coordinate convert between
// (x, y) cell coordinates and flat indices.
type Grid struct {
	width, height int
	cellSize      float64
	areaScale     float64
	codes         []int  // len = width*height, row-major
	nodata        []bool // len = width*height, true = cell excluded
	landCells     int    // cached count of non-nodata cells
}
