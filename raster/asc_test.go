package raster_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landecol/landstats/raster"
)

const sample = `ncols 3
nrows 2
xllcorner 500000
yllcorner 4100000
cellsize 30
NODATA_value -9999
1 1 2
2 -9999 2
`

//----------------------------------------------------------------------------//
// Read
//----------------------------------------------------------------------------//

func TestRead_Sample(t *testing.T) {
	g, hdr, err := raster.Read(strings.NewReader(sample), raster.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 30.0, g.CellSize())
	assert.Equal(t, 1, g.At(0, 0))
	assert.Equal(t, 2, g.At(0, 1))
	assert.True(t, g.NoData(1, 1), "NODATA cell masked")
	assert.Equal(t, 5, g.LandCells())

	assert.Equal(t, -9999, hdr.NoData)
	assert.Equal(t, 500000.0, hdr.XLLCorner)
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"MissingShape", "cellsize 30\n1 2\n", raster.ErrHeader},
		{"ZeroCellSize", "ncols 1\nnrows 1\ncellsize 0\n1\n", raster.ErrHeader},
		{"NonSquare", "ncols 1\nnrows 1\ndx 30\ndy 20\n1\n", raster.ErrHeader},
		{"ShortBody", "ncols 2\nnrows 2\ncellsize 30\n1 2 3\n", raster.ErrShape},
		{"LongBody", "ncols 1\nnrows 1\ncellsize 30\n1 2\n", raster.ErrShape},
		{"FloatCode", "ncols 1\nnrows 1\ncellsize 30\n1.5\n", raster.ErrValue},
		{"Garbage", "ncols 1\nnrows 1\ncellsize 30\nabc\n", raster.ErrValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := raster.Read(strings.NewReader(tc.in), raster.DefaultOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("Read error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestRead_SquareDxDy accepts GDAL-style dx/dy when they agree.
func TestRead_SquareDxDy(t *testing.T) {
	in := "ncols 1\nnrows 1\ndx 30\ndy 30\n7\n"
	g, _, err := raster.Read(strings.NewReader(in), raster.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 30.0, g.CellSize())
	assert.Equal(t, 7, g.At(0, 0))
}

//----------------------------------------------------------------------------//
// Write Round-Trip
//----------------------------------------------------------------------------//

func TestWriteRoundTrip(t *testing.T) {
	g, hdr, err := raster.Read(strings.NewReader(sample), raster.DefaultOptions())
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, raster.Write(&buf, g, hdr))

	g2, hdr2, err := raster.Read(strings.NewReader(buf.String()), raster.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, hdr.XLLCorner, hdr2.XLLCorner)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			assert.Equal(t, g.NoData(x, y), g2.NoData(x, y), "nodata (%d,%d)", x, y)
			if !g.NoData(x, y) {
				assert.Equal(t, g.At(x, y), g2.At(x, y), "code (%d,%d)", x, y)
			}
		}
	}
}

func TestRead_CellSizeOverride(t *testing.T) {
	opts := raster.DefaultOptions()
	opts.CellSize = 10
	g, hdr, err := raster.Read(strings.NewReader(sample), opts)
	require.NoError(t, err)
	assert.Equal(t, 10.0, g.CellSize())
	assert.Equal(t, 10.0, hdr.CellSize)
}

//----------------------------------------------------------------------------//
// Reclassify
//----------------------------------------------------------------------------//

func TestReclassify(t *testing.T) {
	g, _, err := raster.Read(strings.NewReader(sample), raster.DefaultOptions())
	require.NoError(t, err)

	merged, err := raster.Reclassify(g, map[int]int{2: 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, merged.Classes(), "classes merged")
	assert.True(t, merged.NoData(1, 1), "mask preserved")
	// Source grid untouched.
	assert.Equal(t, 2, g.At(0, 1))
}
