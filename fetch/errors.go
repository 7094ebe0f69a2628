package fetch

import "errors"

// Sentinel errors for the acquisition glue.
var (
	// ErrNotAuthenticated is returned when a download is attempted on a
	// session without credentials.
	ErrNotAuthenticated = errors.New("fetch: session is not authenticated")
	// ErrTooLarge is returned when a request exceeds the hard cell cap.
	ErrTooLarge = errors.New("fetch: requested area exceeds MaxCells")
	// ErrTileFetch is returned when a tile request fails.
	ErrTileFetch = errors.New("fetch: tile request failed")
	// ErrMosaic is returned when tiles disagree on geometry at merge.
	ErrMosaic = errors.New("fetch: tiles do not assemble into one grid")
	// ErrBounds is returned for an empty or inverted bounding box.
	ErrBounds = errors.New("fetch: invalid bounding box")
)
