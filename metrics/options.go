package metrics

import "github.com/landecol/landstats/grid"

// Options tunes one Compute invocation.
type Options struct {
	// Connectivity selects 4- or 8-neighbor patch merging. Default
	// Conn4, the standard landscape-ecology convention.
	Connectivity grid.Connectivity
	// EdgeDepth is the core-area erosion depth in cells. 0 disables the
	// edge effect; default 1.
	EdgeDepth int
	// Metrics restricts the reported columns. nil means all metrics;
	// class rows keep the class-level subset, the landscape row the
	// landscape-level subset.
	Metrics []ID
}

// DefaultOptions returns Conn4, EdgeDepth 1, all metrics.
func DefaultOptions() Options {
	return Options{
		Connectivity: grid.Conn4,
		EdgeDepth:    1,
		Metrics:      nil,
	}
}
