package raster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/landecol/landstats/grid"
)

// Sentinel errors for ASCII grid parsing.
var (
	// ErrHeader indicates a missing or malformed header field.
	ErrHeader = errors.New("raster: invalid ESRI ASCII header")
	// ErrShape indicates the body does not hold ncols×nrows values.
	ErrShape = errors.New("raster: cell count does not match header shape")
	// ErrValue indicates a cell value that is not an integer class code.
	ErrValue = errors.New("raster: cell value is not an integer class code")
)

// Header carries the georeferencing fields of an .asc file. The engine
// itself only needs CellSize; the rest round-trips through Write so
// exported rasters stay aligned with their source.
type Header struct {
	NCols, NRows         int
	XLLCorner, YLLCorner float64
	CellSize             float64
	NoData               int
	HasNoData            bool
}

// Options tunes Read.
type Options struct {
	// AreaScale converts squared length units to hectares; the default
	// assumes the raster's cellsize is in meters.
	AreaScale float64
	// CellSize, when positive, overrides the header's cell size. Useful
	// for files with a degenerate or missing resolution.
	CellSize float64
}

// DefaultOptions returns the meters-to-hectares conversion.
func DefaultOptions() Options {
	return Options{AreaScale: 1.0 / 10000.0}
}

// Read parses an ESRI ASCII grid into a Grid plus its header. Cells
// equal to NODATA_value populate the nodata mask. Rasters declaring
// separate dx/dy resolutions are accepted only when both agree, per the
// engine's square-cell contract.
func Read(r io.Reader, opts Options) (*grid.Grid, Header, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var hdr Header
	var dx, dy float64
	seen := map[string]bool{}
	var body []string

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		key := strings.ToLower(fields[0])
		if isHeaderKey(key) && len(fields) == 2 && len(body) == 0 {
			val, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, hdr, fmt.Errorf("%w: %s %q", ErrHeader, key, fields[1])
			}
			seen[key] = true
			switch key {
			case "ncols":
				hdr.NCols = int(val)
			case "nrows":
				hdr.NRows = int(val)
			case "xllcorner", "xllcenter":
				hdr.XLLCorner = val
			case "yllcorner", "yllcenter":
				hdr.YLLCorner = val
			case "cellsize":
				hdr.CellSize = val
			case "dx":
				dx = val
			case "dy":
				dy = val
			case "nodata_value":
				hdr.NoData = int(val)
				hdr.HasNoData = true
				if val != math.Trunc(val) {
					return nil, hdr, fmt.Errorf("%w: NODATA_value %v is not integral", ErrHeader, val)
				}
			}
			continue
		}
		body = append(body, fields...)
	}
	if err := sc.Err(); err != nil {
		return nil, hdr, fmt.Errorf("raster: read: %w", err)
	}

	if seen["dx"] || seen["dy"] {
		if dx != dy {
			return nil, hdr, fmt.Errorf("%w: dx=%v dy=%v (non-square cells rejected)", ErrHeader, dx, dy)
		}
		hdr.CellSize = dx
	}
	if opts.CellSize > 0 {
		hdr.CellSize = opts.CellSize
	}
	if hdr.NCols <= 0 || hdr.NRows <= 0 || hdr.CellSize <= 0 {
		return nil, hdr, fmt.Errorf("%w: ncols=%d nrows=%d cellsize=%v", ErrHeader, hdr.NCols, hdr.NRows, hdr.CellSize)
	}
	if len(body) != hdr.NCols*hdr.NRows {
		return nil, hdr, fmt.Errorf("%w: got %d values, want %d", ErrShape, len(body), hdr.NCols*hdr.NRows)
	}

	codes := make([][]int, hdr.NRows)
	nodata := make([][]bool, hdr.NRows)
	for y := 0; y < hdr.NRows; y++ {
		codes[y] = make([]int, hdr.NCols)
		nodata[y] = make([]bool, hdr.NCols)
		for x := 0; x < hdr.NCols; x++ {
			tok := body[y*hdr.NCols+x]
			val, err := strconv.ParseFloat(tok, 64)
			if err != nil || val != math.Trunc(val) {
				return nil, hdr, fmt.Errorf("%w: %q at row %d col %d", ErrValue, tok, y, x)
			}
			code := int(val)
			codes[y][x] = code
			if hdr.HasNoData && code == hdr.NoData {
				nodata[y][x] = true
			}
		}
	}

	g, err := grid.New(codes, nodata, grid.Options{CellSize: hdr.CellSize, AreaScale: opts.AreaScale})
	if err != nil {
		return nil, hdr, err
	}
	return g, hdr, nil
}

func isHeaderKey(key string) bool {
	switch key {
	case "ncols", "nrows", "xllcorner", "xllcenter", "yllcorner", "yllcenter",
		"cellsize", "dx", "dy", "nodata_value":
		return true
	}
	return false
}

// Write emits g as an ESRI ASCII grid. Masked cells are written as
// hdr.NoData; shape and cell size come from the grid, the
// georeferencing corner from hdr.
func Write(w io.Writer, g *grid.Grid, hdr Header) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ncols %d\n", g.Width())
	fmt.Fprintf(bw, "nrows %d\n", g.Height())
	fmt.Fprintf(bw, "xllcorner %g\n", hdr.XLLCorner)
	fmt.Fprintf(bw, "yllcorner %g\n", hdr.YLLCorner)
	fmt.Fprintf(bw, "cellsize %g\n", g.CellSize())
	fmt.Fprintf(bw, "NODATA_value %d\n", hdr.NoData)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			if g.NoData(x, y) {
				fmt.Fprintf(bw, "%d", hdr.NoData)
			} else {
				fmt.Fprintf(bw, "%d", g.At(x, y))
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
