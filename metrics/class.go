package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/landecol/landstats/grid"
	"github.com/landecol/landstats/patch"
)

// classValues computes every class-level metric for one class from its
// patch geometries, the class's adjacency tallies and the landscape
// totals. Degenerate denominators yield NaN sentinels, never panics.
func classValues(g *grid.Grid, geoms []patch.Geometry, adj adjacency) map[ID]float64 {
	landArea := g.LandAreaHa()
	landCells := g.LandCells()
	cs := g.CellSize()

	np := len(geoms)
	areas := make([]float64, np)
	perims := make([]float64, np)
	cores := make([]float64, np)
	cells := 0
	for i, geo := range geoms {
		areas[i] = geo.AreaHa
		perims[i] = geo.Perimeter
		cores[i] = geo.CoreAreaHa
		cells += geo.Cells
	}
	ca := floats.Sum(areas)
	te := floats.Sum(perims)
	tca := floats.Sum(cores)

	v := map[ID]float64{
		CA:  ca,
		NP:  float64(np),
		TE:  te,
		TCA: tca,
	}

	v[PLAND] = ratio(100*ca, landArea)
	v[AreaMN] = ratio(ca, float64(np))
	v[ED] = ratio(te, landArea)
	v[CPLAND] = ratio(100*tca, landArea)
	v[CAI] = ratio(100*tca, ca)

	// AI: observed like adjacencies against the maximally compact
	// arrangement. A single-cell class has no possible adjacency and is
	// pinned to 0.
	if maxAdj := maxLikeAdjacencies(cells); maxAdj > 0 {
		v[AI] = 100 * float64(adj.like) / float64(maxAdj)
	} else {
		v[AI] = 0
	}

	v[CLUMPY] = clumpiness(adj, cells, landCells)
	v[COHESION] = cohesion(geoms, cs, landCells)
	v[DIVISION] = division(areas, ca)

	return v
}

// ratio returns num/den, or NaN for a zero/invalid denominator.
func ratio(num, den float64) float64 {
	if den == 0 {
		return math.NaN()
	}
	return num / den
}

// clumpiness centers the like-adjacency proportion G on the class's
// landscape proportion P: random placement scores 0, a single compact
// block approaches 1, maximal disaggregation is negative, bounded by −1.
func clumpiness(adj adjacency, cells, landCells int) float64 {
	total := adj.like + adj.unlike
	if total == 0 || landCells == 0 {
		return math.NaN()
	}
	p := float64(cells) / float64(landCells)
	if p >= 1 {
		// The class is the whole landscape; nothing can be more
		// aggregated.
		return 1
	}
	g := float64(adj.like) / float64(total)
	if g >= p || p >= 0.5 {
		return (g - p) / (1 - p)
	}
	return (g - p) / p
}

// cohesion is the perimeter-weighted connectivity index
// 100·(1 − ΣP_i / Σ(P_i·√a_i))·(1 − 1/√Z)⁻¹ with perimeters and areas
// in cell units and Z the landscape cell count.
func cohesion(geoms []patch.Geometry, cellSize float64, landCells int) float64 {
	if landCells <= 1 {
		return math.NaN()
	}
	var sumP, sumPA float64
	for _, geo := range geoms {
		p := geo.Perimeter / cellSize // boundary edge count
		sumP += p
		sumPA += p * math.Sqrt(float64(geo.Cells))
	}
	if sumPA == 0 {
		return math.NaN()
	}
	norm := 1 - 1/math.Sqrt(float64(landCells))
	return 100 * (1 - sumP/sumPA) / norm
}

// division is 1 − Σ(a_i/CA)²: the probability that two random points
// of the class fall in different patches. 0 for a single patch.
func division(areas []float64, ca float64) float64 {
	if ca == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, a := range areas {
		f := a / ca
		sum += f * f
	}
	return 1 - sum
}
