package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/landecol/landstats/dataset"
	"github.com/landecol/landstats/export"
	"github.com/landecol/landstats/grid"
	"github.com/landecol/landstats/metrics"
	"github.com/landecol/landstats/raster"
)

func runCompute(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	g, err := readGrid(inPath)
	if err != nil {
		return err
	}
	logger.Info("grid loaded",
		"width", g.Width(), "height", g.Height(),
		"land_cells", g.LandCells(), "classes", len(g.Classes()))

	if len(reclassSpec) > 0 {
		table, err := parseReclass(reclassSpec)
		if err != nil {
			return err
		}
		g, err = raster.Reclassify(g, table)
		if err != nil {
			return err
		}
	}

	opts := metrics.DefaultOptions()
	opts.EdgeDepth = edgeDepth
	switch connectivity {
	case 4:
		opts.Connectivity = grid.Conn4
	case 8:
		opts.Connectivity = grid.Conn8
	default:
		return fmt.Errorf("connectivity must be 4 or 8, got %d", connectivity)
	}
	for _, name := range metricNames {
		opts.Metrics = append(opts.Metrics, metrics.ID(strings.ToUpper(name)))
	}

	tbl, err := metrics.Compute(g, opts)
	if err != nil {
		return err
	}
	logger.Info("metrics computed", "rows", len(tbl.Rows), "columns", len(tbl.Columns))

	if err := writeCSVOut(tbl); err != nil {
		return err
	}
	if chartPath == "" && classMapPath == "" {
		return nil
	}

	ds := legendDataset(g)
	if chartPath != "" {
		f, err := os.Create(chartPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteChart(f, tbl, ds); err != nil {
			return err
		}
		logger.Info("chart written", "path", chartPath)
	}
	if classMapPath != "" {
		f, err := os.Create(classMapPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteClassMap(f, g, ds, export.DefaultClassMapOptions()); err != nil {
			return err
		}
		logger.Info("class map written", "path", classMapPath)
	}
	return nil
}

func readGrid(path string) (*grid.Grid, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	opts := raster.DefaultOptions()
	if areaScale > 0 {
		opts.AreaScale = areaScale
	}
	if cellSize > 0 {
		opts.CellSize = cellSize
	}
	g, _, err := raster.Read(r, opts)
	return g, err
}

func writeCSVOut(tbl *metrics.Table) error {
	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return export.WriteCSV(w, tbl)
}

// legendDataset resolves --dataset, falling back to a paletteless
// catalog-free entry so chart and class-map export still work.
func legendDataset(g *grid.Grid) dataset.Dataset {
	if datasetID != "" {
		if ds, err := dataset.Get(datasetID); err == nil {
			return ds
		}
		fmt.Fprintf(os.Stderr, "Warning: unknown dataset %q, using generic legend\n", datasetID)
	}
	return dataset.Dataset{ID: "generic", Name: "Generic classes"}
}

func parseReclass(specs []string) (map[int]int, error) {
	table := make(map[int]int, len(specs))
	for _, s := range specs {
		fromStr, toStr, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("reclass %q: want old=new", s)
		}
		from, err := strconv.Atoi(strings.TrimSpace(fromStr))
		if err != nil {
			return nil, fmt.Errorf("reclass %q: %v", s, err)
		}
		to, err := strconv.Atoi(strings.TrimSpace(toStr))
		if err != nil {
			return nil, fmt.Errorf("reclass %q: %v", s, err)
		}
		table[from] = to
	}
	return table, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
