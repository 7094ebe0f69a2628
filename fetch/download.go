package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/landecol/landstats/dataset"
	"github.com/landecol/landstats/grid"
	"github.com/landecol/landstats/raster"
)

// Request describes one mosaic download.
type Request struct {
	// DatasetID names a catalog entry (dataset.Get).
	DatasetID string
	// BBox is the requested extent in the service's projection.
	BBox BBox
	// CellSize overrides the dataset's native resolution when positive.
	CellSize float64
	// MaxTileCells caps the cells per tile request; 0 selects a
	// service-friendly default.
	MaxTileCells int
	// MaxCells rejects requests larger than this many cells; 0 means
	// uncapped.
	MaxCells int
	// AreaScale converts squared cell-size units to hectares; 0 selects
	// the metre default.
	AreaScale float64
}

// Download plans, fetches, and stitches a categorical raster for the
// requested extent. Tiles arrive as ASCII grids and are parsed with
// raster.Read; the result is one Grid covering the full bounding box.
func (s *Session) Download(ctx context.Context, req Request) (*grid.Grid, error) {
	if !s.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	ds, err := dataset.Get(req.DatasetID)
	if err != nil {
		return nil, err
	}
	cellSize := req.CellSize
	if cellSize <= 0 {
		cellSize = ds.CellSize
	}
	areaScale := req.AreaScale
	if areaScale <= 0 {
		areaScale = grid.DefaultOptions().AreaScale
	}

	plan, err := NewPlan(req.BBox, cellSize, req.MaxTileCells, req.MaxCells)
	if err != nil {
		return nil, err
	}

	job := uuid.NewString()
	start := time.Now()
	s.logger.Info("download start",
		"job", job,
		"dataset", ds.ID,
		"cells", plan.Cols*plan.Rows,
		"tiles", len(plan.Tiles),
		"estimated_bytes", plan.EstimateSize())

	tiles := make([]*grid.Grid, len(plan.Tiles))
	for i, t := range plan.Tiles {
		g, err := s.fetchTile(ctx, ds, t, cellSize, areaScale)
		if err != nil {
			return nil, fmt.Errorf("%w: tile %d,%d: %w", ErrTileFetch, t.Col, t.Row, err)
		}
		tiles[i] = g
		s.logger.Debug("tile fetched", "job", job, "col", t.Col, "row", t.Row)
	}

	g, err := mosaic(plan, tiles, ds.NoData, areaScale)
	if err != nil {
		return nil, err
	}
	s.logger.Info("download done",
		"job", job,
		"land_cells", g.LandCells(),
		"elapsed", time.Since(start))
	return g, nil
}

func (s *Session) fetchTile(ctx context.Context, ds dataset.Dataset, t Tile, cellSize, areaScale float64) (*grid.Grid, error) {
	q := url.Values{
		"dataset":   {ds.ID},
		"minx":      {formatCoord(t.MinX)},
		"miny":      {formatCoord(t.MinY)},
		"maxx":      {formatCoord(t.MaxX)},
		"maxy":      {formatCoord(t.MaxY)},
		"cell_size": {formatCoord(cellSize)},
		"format":    {"asc"},
	}
	body, err := s.get(ctx, "/v1/raster", q)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	g, _, err := raster.Read(body, raster.Options{AreaScale: areaScale})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
