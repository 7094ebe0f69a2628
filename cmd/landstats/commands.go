package main

import (
	"github.com/spf13/cobra"
)

var (
	// compute flags
	inPath       string
	outPath      string
	chartPath    string
	classMapPath string
	datasetID    string
	metricNames  []string
	connectivity int
	edgeDepth    int
	areaScale    float64
	reclassSpec  []string

	// datasets flags
	category string

	// fetch flags
	bboxSpec     string
	cellSize     float64
	baseURL      string
	apiKeyEnv    string
	maxTileCells int
	maxCells     int

	verbose bool

	rootCmd = &cobra.Command{
		Use:   "landstats",
		Short: "Compute landscape composition and configuration metrics from categorical rasters",
		Long: `landstats labels patches in a categorical land-cover raster and
computes patch, class and landscape level metrics (area, edge, core
area, aggregation and diversity) over them.`,
	}

	computeCmd = &cobra.Command{
		Use:   "compute",
		Short: "Compute metrics for an ESRI ASCII grid",
		RunE:  runCompute,
	}

	datasetsCmd = &cobra.Command{
		Use:   "datasets",
		Short: "List the known land-cover products",
		RunE:  runDatasets,
	}

	fetchCmd = &cobra.Command{
		Use:   "fetch",
		Short: "Download a raster extent from a tile service as an ASCII grid",
		RunE:  runFetch,
	}
)

func init() {
	computeCmd.Flags().StringVar(&inPath, "in", "", "input ESRI ASCII grid (- for stdin)")
	computeCmd.Flags().StringVar(&outPath, "out", "", "CSV output path (default stdout)")
	computeCmd.Flags().StringVar(&chartPath, "chart", "", "write an HTML bar-chart report here")
	computeCmd.Flags().StringVar(&classMapPath, "classmap", "", "write a class-map PNG here")
	computeCmd.Flags().StringVar(&datasetID, "dataset", "", "dataset id for legend names and colors")
	computeCmd.Flags().StringSliceVar(&metricNames, "metrics", nil, "metric ids to compute (default all)")
	computeCmd.Flags().IntVar(&connectivity, "connectivity", 4, "patch connectivity: 4 or 8")
	computeCmd.Flags().IntVar(&edgeDepth, "edge-depth", 1, "core-area erosion depth in cells")
	computeCmd.Flags().Float64Var(&cellSize, "cell-size", 0, "override the header cell size")
	computeCmd.Flags().Float64Var(&areaScale, "area-scale", 0, "squared cell units per hectare reciprocal (default metres)")
	computeCmd.Flags().StringSliceVar(&reclassSpec, "reclass", nil, "class remappings old=new, repeatable")
	_ = computeCmd.MarkFlagRequired("in")

	datasetsCmd.Flags().StringVar(&category, "category", "", "filter by category (e.g. landcover)")

	fetchCmd.Flags().StringVar(&datasetID, "dataset", "", "dataset id to download")
	fetchCmd.Flags().StringVar(&bboxSpec, "bbox", "", "extent minx,miny,maxx,maxy in the service projection")
	fetchCmd.Flags().Float64Var(&cellSize, "cell-size", 0, "cell size override (default dataset native)")
	fetchCmd.Flags().StringVar(&baseURL, "base-url", "", "tile service root URL")
	fetchCmd.Flags().StringVar(&apiKeyEnv, "api-key-env", "LANDSTATS_API_KEY", "environment variable holding the API key")
	fetchCmd.Flags().IntVar(&maxTileCells, "max-tile-cells", 0, "cells per tile request (default 1Mi)")
	fetchCmd.Flags().IntVar(&maxCells, "max-cells", 0, "reject requests above this many cells")
	fetchCmd.Flags().StringVar(&outPath, "out", "", "output .asc path (default stdout)")
	_ = fetchCmd.MarkFlagRequired("dataset")
	_ = fetchCmd.MarkFlagRequired("bbox")
	_ = fetchCmd.MarkFlagRequired("base-url")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	rootCmd.AddCommand(computeCmd, datasetsCmd, fetchCmd)
}
