package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/landecol/landstats/dataset"
	"github.com/landecol/landstats/fetch"
	"github.com/landecol/landstats/raster"
)

func runFetch(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	bbox, err := parseBBox(bboxSpec)
	if err != nil {
		return err
	}
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return fmt.Errorf("no API key in $%s", apiKeyEnv)
	}
	ds, err := dataset.Get(datasetID)
	if err != nil {
		return err
	}

	sess := fetch.NewSession(fetch.SessionOptions{
		BaseURL: baseURL,
		Logger:  logger,
	})
	if err := sess.Authenticate(cmd.Context(), apiKey); err != nil {
		return err
	}

	g, err := sess.Download(cmd.Context(), fetch.Request{
		DatasetID:    datasetID,
		BBox:         bbox,
		CellSize:     cellSize,
		MaxTileCells: maxTileCells,
		MaxCells:     maxCells,
	})
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return raster.Write(w, g, raster.Header{
		NCols:     g.Width(),
		NRows:     g.Height(),
		XLLCorner: bbox.MinX,
		YLLCorner: bbox.MinY,
		CellSize:  g.CellSize(),
		NoData:    ds.NoData,
		HasNoData: true,
	})
}

func parseBBox(spec string) (fetch.BBox, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return fetch.BBox{}, fmt.Errorf("bbox %q: want minx,miny,maxx,maxy", spec)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fetch.BBox{}, fmt.Errorf("bbox %q: %v", spec, err)
		}
		vals[i] = v
	}
	b := fetch.BBox{MinX: vals[0], MinY: vals[1], MaxX: vals[2], MaxY: vals[3]}
	if !b.Valid() {
		return fetch.BBox{}, fmt.Errorf("bbox %q: empty extent", spec)
	}
	return b, nil
}
