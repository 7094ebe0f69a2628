package patch

import "errors"

// Sentinel errors for patch labeling and measurement.
var (
	// ErrNilGrid is returned when a nil grid pointer is passed.
	ErrNilGrid = errors.New("patch: grid is nil")
	// ErrConnectivity is returned for an undefined connectivity mode.
	ErrConnectivity = errors.New("patch: connectivity must be Conn4 or Conn8")
	// ErrOptionViolation is returned when an invalid option is supplied.
	ErrOptionViolation = errors.New("patch: invalid option supplied")
)
