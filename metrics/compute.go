package metrics

import (
	"fmt"
	"sort"

	"github.com/landecol/landstats/grid"
	"github.com/landecol/landstats/patch"
)

// Compute derives the full metric table for a grid: patches are
// delineated and measured, then rolled up into one row per class code
// present plus a landscape row. The grid is read-only throughout; a
// call never mutates shared state, so concurrent Compute invocations
// on different grids need no synchronization.
//
// Structural errors (nil grid, bad connectivity, negative edge depth,
// unknown metric id) surface immediately; all numerical edge cases are
// absorbed into NaN sentinels inside the table.
func Compute(g *grid.Grid, opts Options) (*Table, error) {
	cols := opts.Metrics
	if cols == nil {
		cols = AllIDs()
	}
	for _, id := range cols {
		if !known[id] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, id)
		}
	}

	l, err := patch.Label(g, opts.Connectivity)
	if err != nil {
		return nil, err
	}
	geoms, err := l.Measure(patch.Options{EdgeDepth: opts.EdgeDepth})
	if err != nil {
		return nil, err
	}
	adj := countAdjacencies(g)

	byClass := make(map[int][]patch.Geometry)
	for _, geo := range geoms {
		byClass[geo.Class] = append(byClass[geo.Class], geo)
	}
	classes := make([]int, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	classCols := filterIDs(cols, ClassIDs())
	landCols := filterIDs(cols, LandscapeIDs())

	table := &Table{Columns: cols}
	classAreas := make([]float64, 0, len(classes))
	for _, c := range classes {
		values := classValues(g, byClass[c], adj[c])
		classAreas = append(classAreas, values[CA])
		table.Rows = append(table.Rows, Row{
			Level:  ClassLevel,
			Class:  c,
			values: project(values, classCols),
		})
	}

	landValues := landscapeValues(g, classAreas)
	table.Rows = append(table.Rows, Row{
		Level:  LandscapeLevel,
		values: project(landValues, landCols),
	})

	return table, nil
}

// filterIDs keeps the requested ids that belong to the given level set,
// preserving request order.
func filterIDs(requested, level []ID) []ID {
	in := make(map[ID]bool, len(level))
	for _, id := range level {
		in[id] = true
	}
	var out []ID
	for _, id := range requested {
		if in[id] {
			out = append(out, id)
		}
	}
	return out
}

// project copies only the requested columns out of a full value map.
func project(values map[ID]float64, cols []ID) map[ID]float64 {
	out := make(map[ID]float64, len(cols))
	for _, id := range cols {
		out[id] = values[id]
	}
	return out
}
