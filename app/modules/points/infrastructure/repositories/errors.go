package pointsdb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrNotFound indicates the requested team or candidate does not exist.
	ErrNotFound = errors.New("team not found")
)
