package competitionevents

import (
	"time"

	"github.com/google/uuid"
)

// Topics published by the competition module.
const (
	CompetitionFinalized = "competition.finalized"
)

// CompetitionFinalizedPayload announces that a competition's ranks and totals
// were persisted and its status flipped to completed. Subscribers (the points
// module) recompute team totals from persisted ranks on receipt.
type CompetitionFinalizedPayload struct {
	CompetitionID uuid.UUID `json:"competition_id"`
	Name          string    `json:"name"`
	Participants  int       `json:"participants"`
	FinalizedAt   time.Time `json:"finalized_at"`
}
