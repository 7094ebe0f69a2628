package metrics

// ID names one metric column, using the identifiers conventional in the
// landscape-ecology literature.
type ID string

// Class-level metrics.
const (
	// CA is total class area in hectares.
	CA ID = "CA"
	// PLAND is the percentage of the landscape covered by the class.
	PLAND ID = "PLAND"
	// NP is the number of patches.
	NP ID = "NP"
	// AreaMN is mean patch area in hectares.
	AreaMN ID = "AREA_MN"
	// TE is total edge length in the grid's length unit.
	TE ID = "TE"
	// ED is edge density: TE per hectare of landscape.
	ED ID = "ED"
	// TCA is total core area in hectares.
	TCA ID = "TCA"
	// CPLAND is core area as a percentage of the landscape.
	CPLAND ID = "CPLAND"
	// CAI is core area as a percentage of class area.
	CAI ID = "CAI"
	// AI is the aggregation index: observed like adjacencies over the
	// maximum achievable for the class's cell count.
	AI ID = "AI"
	// CLUMPY is the clumpiness index, the adjacency ratio centered so
	// random placement scores 0 and maximal aggregation 1.
	CLUMPY ID = "CLUMPY"
	// COHESION is the patch cohesion index.
	COHESION ID = "COHESION"
	// DIVISION is the probability that two random points of the class
	// fall in different patches.
	DIVISION ID = "DIVISION"
)

// Landscape-level metrics.
const (
	// TA is the landscape area (non-nodata) in hectares.
	TA ID = "TA"
	// PR is patch richness: the number of classes present.
	PR ID = "PR"
	// PRD is patch richness density: classes per 100 ha.
	PRD ID = "PRD"
	// SHDI is Shannon's diversity index.
	SHDI ID = "SHDI"
	// SHEI is Shannon's evenness index.
	SHEI ID = "SHEI"
	// SIDI is Simpson's diversity index.
	SIDI ID = "SIDI"
)

// ClassIDs lists every class-level metric in canonical column order.
func ClassIDs() []ID {
	return []ID{CA, PLAND, NP, AreaMN, TE, ED, TCA, CPLAND, CAI, AI, CLUMPY, COHESION, DIVISION}
}

// LandscapeIDs lists every landscape-level metric in canonical order.
func LandscapeIDs() []ID {
	return []ID{TA, PR, PRD, SHDI, SHEI, SIDI}
}

// AllIDs lists every metric the engine can compute.
func AllIDs() []ID {
	return append(ClassIDs(), LandscapeIDs()...)
}

var known = func() map[ID]bool {
	m := make(map[ID]bool)
	for _, id := range AllIDs() {
		m[id] = true
	}
	return m
}()
