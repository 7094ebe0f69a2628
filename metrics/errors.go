package metrics

import "errors"

// Sentinel errors for metric computation. Structural grid errors and
// labeling errors propagate from the grid and patch packages unchanged.
var (
	// ErrUnknownMetric is returned when Options.Metrics names an
	// identifier the engine does not define.
	ErrUnknownMetric = errors.New("metrics: unknown metric identifier")
)
