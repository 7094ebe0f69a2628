package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sort"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/landecol/landstats/dataset"
	"github.com/landecol/landstats/grid"
)

// ClassMapOptions configures WriteClassMap.
type ClassMapOptions struct {
	// MaxDim caps the longer image side in pixels; small grids are
	// upscaled to it, large grids downscaled. Zero selects 800.
	MaxDim int
	// Legend appends a labeled color strip below the map.
	Legend bool
}

// DefaultClassMapOptions returns the options used by the CLI.
func DefaultClassMapOptions() ClassMapOptions {
	return ClassMapOptions{MaxDim: 800, Legend: true}
}

var (
	nodataColor  = color.NRGBA{0, 0, 0, 0}
	unknownColor = color.NRGBA{0x80, 0x80, 0x80, 0xff}
	legendText   = color.NRGBA{0x20, 0x20, 0x20, 0xff}
	legendBg     = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)

// WriteClassMap renders the grid as a PNG, one palette color per class
// code. Nodata cells are transparent; codes missing from the palette
// render gray. The raw cell image is resampled with nearest-neighbor
// so class boundaries stay crisp.
func WriteClassMap(w io.Writer, g *grid.Grid, ds dataset.Dataset, opts ClassMapOptions) error {
	if opts.MaxDim <= 0 {
		opts.MaxDim = 800
	}

	raw := image.NewNRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			raw.SetNRGBA(x, y, cellColor(g, ds, x, y))
		}
	}

	outW, outH := fitDim(g.Width(), g.Height(), opts.MaxDim)
	legendH := 0
	var codes []int
	if opts.Legend {
		codes = legendCodes(g, ds)
		legendH = legendHeight(len(codes))
	}

	out := image.NewNRGBA(image.Rect(0, 0, outW, outH+legendH))
	xdraw.NearestNeighbor.Scale(out, image.Rect(0, 0, outW, outH), raw, raw.Bounds(), xdraw.Src, nil)
	if opts.Legend {
		drawLegend(out, ds, codes, outH)
	}

	return png.Encode(w, out)
}

func cellColor(g *grid.Grid, ds dataset.Dataset, x, y int) color.NRGBA {
	if g.NoData(x, y) {
		return nodataColor
	}
	if c, ok := ds.Palette[g.At(x, y)]; ok {
		return c
	}
	return unknownColor
}

// fitDim scales (w, h) so the longer side equals maxDim, preserving the
// aspect ratio and never dropping below one pixel.
func fitDim(w, h, maxDim int) (int, int) {
	scale := float64(maxDim) / float64(w)
	if h > w {
		scale = float64(maxDim) / float64(h)
	}
	ow, oh := int(float64(w)*scale), int(float64(h)*scale)
	if ow < 1 {
		ow = 1
	}
	if oh < 1 {
		oh = 1
	}
	return ow, oh
}

// legendCodes returns the grid's class codes that have a palette entry,
// ascending.
func legendCodes(g *grid.Grid, ds dataset.Dataset) []int {
	var codes []int
	for _, c := range g.Classes() {
		if _, ok := ds.Palette[c]; ok {
			codes = append(codes, c)
		}
	}
	sort.Ints(codes)
	return codes
}

const legendRowH = 18

func legendHeight(n int) int {
	if n == 0 {
		return 0
	}
	return n*legendRowH + 8
}

func drawLegend(img *image.NRGBA, ds dataset.Dataset, codes []int, top int) {
	b := img.Bounds()
	for y := top; y < b.Max.Y; y++ {
		for x := 0; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, legendBg)
		}
	}
	face := basicfont.Face7x13
	for i, code := range codes {
		y0 := top + 4 + i*legendRowH
		swatch := ds.Palette[code]
		for y := y0; y < y0+12 && y < b.Max.Y; y++ {
			for x := 6; x < 26 && x < b.Max.X; x++ {
				img.SetNRGBA(x, y, swatch)
			}
		}
		name, ok := ds.Classes[code]
		if !ok {
			name = "unclassified"
		}
		drawText(img, face, fmt.Sprintf("%d %s", code, name), 32, y0+10)
	}
}

func drawText(img *image.NRGBA, face font.Face, s string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(legendText),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
