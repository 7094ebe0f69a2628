package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/landecol/landstats/grid"
)

// landscapeValues computes the landscape-level metrics from the vector
// of class areas (hectares, classes with CA > 0 only). An empty
// landscape reports zero richness and NaN diversity rather than
// erroring.
func landscapeValues(g *grid.Grid, classAreas []float64) map[ID]float64 {
	ta := g.LandAreaHa()
	m := len(classAreas)

	v := map[ID]float64{
		TA: ta,
		PR: float64(m),
	}
	v[PRD] = ratio(100*float64(m), ta)

	if m == 0 || ta == 0 {
		v[SHDI] = math.NaN()
		v[SHEI] = math.NaN()
		v[SIDI] = math.NaN()
		return v
	}

	p := make([]float64, m)
	for i, ca := range classAreas {
		p[i] = ca / ta
	}

	shdi := stat.Entropy(p)
	v[SHDI] = shdi
	if m > 1 {
		v[SHEI] = shdi / math.Log(float64(m))
	} else {
		// Evenness is undefined for a single class.
		v[SHEI] = math.NaN()
	}

	sumSq := 0.0
	for _, pc := range p {
		sumSq += pc * pc
	}
	v[SIDI] = 1 - sumSq

	return v
}
