package competitiondb

import "errors"

// Sentinel errors for the repository layer. These are infrastructure-level
// signals; the service layer decides whether they are domain failures.
var (
	// ErrNotFound indicates the requested competition does not exist.
	ErrNotFound = errors.New("competition not found")

	// ErrNoRowsAffected indicates an UPDATE matched zero rows, typically a
	// guarded status transition whose precondition no longer holds.
	ErrNoRowsAffected = errors.New("no rows affected")
)
