package dataset

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
)

// ErrUnknownDataset is returned by Get for ids not in the catalog.
var ErrUnknownDataset = errors.New("dataset: unknown dataset id")

// Category groups catalog entries by theme.
type Category string

const (
	// LandCover datasets carry categorical class codes and are the
	// primary input of the metrics engine.
	LandCover Category = "landcover"
)

// Dataset describes one categorical raster product.
type Dataset struct {
	// ID is the product identifier, following the provider's catalog
	// path convention.
	ID string
	// Name is the human-readable product name.
	Name string
	// Category groups the product thematically.
	Category Category
	// CellSize is the product's native resolution in meters.
	CellSize float64
	// NoData is the product's conventional fill value.
	NoData int
	// Classes maps class codes to legend names.
	Classes map[int]string
	// Palette maps class codes to display colors for class-map export.
	Palette map[int]color.NRGBA
}

// ClassCodes returns the legend's class codes in ascending order.
func (d Dataset) ClassCodes() []int {
	codes := make([]int, 0, len(d.Classes))
	for c := range d.Classes {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	return codes
}

// Get returns the catalog entry for an id.
func Get(id string) (Dataset, error) {
	for _, d := range catalog {
		if d.ID == id {
			return d, nil
		}
	}
	return Dataset{}, fmt.Errorf("%w: %q", ErrUnknownDataset, id)
}

// List returns catalog entries, optionally filtered by category
// (empty category means all), sorted by id.
func List(cat Category) []Dataset {
	var out []Dataset
	for _, d := range catalog {
		if cat == "" || d.Category == cat {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var catalog = []Dataset{
	{
		ID:       "MODIS/061/MCD12Q1",
		Name:     "MODIS Land Cover Type 1 (IGBP)",
		Category: LandCover,
		CellSize: 500,
		NoData:   255,
		Classes: map[int]string{
			1: "Evergreen Needleleaf Forests", 2: "Evergreen Broadleaf Forests",
			3: "Deciduous Needleleaf Forests", 4: "Deciduous Broadleaf Forests",
			5: "Mixed Forests", 6: "Closed Shrublands", 7: "Open Shrublands",
			8: "Woody Savannas", 9: "Savannas", 10: "Grasslands",
			11: "Permanent Wetlands", 12: "Croplands",
			13: "Urban and Built-up Lands", 14: "Cropland/Natural Vegetation Mosaics",
			15: "Permanent Snow and Ice", 16: "Barren", 17: "Water Bodies",
		},
		Palette: map[int]color.NRGBA{
			1: {0x05, 0x45, 0x0a, 0xff}, 2: {0x08, 0x6a, 0x10, 0xff},
			3: {0x54, 0xa7, 0x08, 0xff}, 4: {0x78, 0xd2, 0x03, 0xff},
			5: {0x00, 0x99, 0x00, 0xff}, 6: {0xc6, 0xb0, 0x44, 0xff},
			7: {0xdc, 0xd1, 0x59, 0xff}, 8: {0xda, 0xde, 0x48, 0xff},
			9: {0xfb, 0xff, 0x13, 0xff}, 10: {0xb6, 0xff, 0x05, 0xff},
			11: {0x27, 0xff, 0x87, 0xff}, 12: {0xc2, 0x4f, 0x44, 0xff},
			13: {0xa5, 0xa5, 0xa5, 0xff}, 14: {0xff, 0x6d, 0x4c, 0xff},
			15: {0x69, 0xff, 0xf8, 0xff}, 16: {0xf9, 0xff, 0xa4, 0xff},
			17: {0x1c, 0x0d, 0xff, 0xff},
		},
	},
	{
		ID:       "ESA/WorldCover/v200",
		Name:     "ESA WorldCover 10 m",
		Category: LandCover,
		CellSize: 10,
		NoData:   0,
		Classes: map[int]string{
			10: "Tree cover", 20: "Shrubland", 30: "Grassland", 40: "Cropland",
			50: "Built-up", 60: "Bare / sparse vegetation", 70: "Snow and ice",
			80: "Permanent water bodies", 90: "Herbaceous wetland",
			95: "Mangroves", 100: "Moss and lichen",
		},
		Palette: map[int]color.NRGBA{
			10: {0x00, 0x64, 0x00, 0xff}, 20: {0xff, 0xbb, 0x22, 0xff},
			30: {0xff, 0xff, 0x4c, 0xff}, 40: {0xf0, 0x96, 0xff, 0xff},
			50: {0xfa, 0x00, 0x00, 0xff}, 60: {0xb4, 0xb4, 0xb4, 0xff},
			70: {0xf0, 0xf0, 0xf0, 0xff}, 80: {0x00, 0x64, 0xc8, 0xff},
			90: {0x00, 0x96, 0xa0, 0xff}, 95: {0x00, 0xcf, 0x75, 0xff},
			100: {0xfa, 0xe6, 0xa0, 0xff},
		},
	},
	{
		ID:       "USGS/NLCD_RELEASES/2021_REL/NLCD",
		Name:     "USGS National Land Cover Database 2021",
		Category: LandCover,
		CellSize: 30,
		NoData:   250,
		Classes: map[int]string{
			11: "Open Water", 12: "Perennial Ice/Snow",
			21: "Developed, Open Space", 22: "Developed, Low Intensity",
			23: "Developed, Medium Intensity", 24: "Developed, High Intensity",
			31: "Barren Land", 41: "Deciduous Forest", 42: "Evergreen Forest",
			43: "Mixed Forest", 52: "Shrub/Scrub", 71: "Grassland/Herbaceous",
			81: "Pasture/Hay", 82: "Cultivated Crops", 90: "Woody Wetlands",
			95: "Emergent Herbaceous Wetlands",
		},
		Palette: map[int]color.NRGBA{
			11: {0x46, 0x6b, 0x9f, 0xff}, 12: {0xd1, 0xde, 0xf8, 0xff},
			21: {0xde, 0xc5, 0xc5, 0xff}, 22: {0xd9, 0x92, 0x82, 0xff},
			23: {0xeb, 0x00, 0x00, 0xff}, 24: {0xab, 0x00, 0x00, 0xff},
			31: {0xb3, 0xac, 0x9f, 0xff}, 41: {0x68, 0xab, 0x5f, 0xff},
			42: {0x1c, 0x5f, 0x2c, 0xff}, 43: {0xb5, 0xc5, 0x8f, 0xff},
			52: {0xcc, 0xb8, 0x79, 0xff}, 71: {0xdf, 0xdf, 0xc2, 0xff},
			81: {0xdc, 0xd9, 0x39, 0xff}, 82: {0xab, 0x6c, 0x28, 0xff},
			90: {0xb8, 0xd9, 0xeb, 0xff}, 95: {0x6c, 0x9f, 0xb8, 0xff},
		},
	},
}
