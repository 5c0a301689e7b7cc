package competitionservice

import "errors"

var (
	// ErrCompetitionNotFound signals an official computation was requested
	// for a competition that does not exist. Live views treat missing data
	// as empty; official operations do not.
	ErrCompetitionNotFound = errors.New("competition not found")

	// ErrAlreadyCompleted signals a finalize attempt on a competition whose
	// status is no longer live. There is no un-finalize.
	ErrAlreadyCompleted = errors.New("competition already completed")

	// ErrNotLive signals a finalize attempt on an upcoming competition.
	ErrNotLive = errors.New("competition is not live")
)
