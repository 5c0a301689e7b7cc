package pointsservice

import (
	pointsdomain "github.com/arena-ops/podium/app/modules/points/domain"
	"github.com/google/uuid"
)

// BreakdownEntry is one scoring participation in a team's points total.
type BreakdownEntry struct {
	CompetitionID   uuid.UUID           `json:"competition_id"`
	CompetitionName string              `json:"competition_name"`
	Rank            int                 `json:"rank"`
	Points          pointsdomain.Points `json:"points"`
	ParticipantName string              `json:"participant_name"`
}

// TeamPointsData is a team's championship total with its per-participation
// breakdown, sorted by points descending for display.
type TeamPointsData struct {
	TeamID      uuid.UUID           `json:"team_id"`
	TeamName    string              `json:"team_name"`
	TotalPoints pointsdomain.Points `json:"total_points"`
	Breakdown   []BreakdownEntry    `json:"breakdown"`
}

// RecomputeSummary reports a full team-totals rebuild. Failed teams are
// listed but do not fail the operation.
type RecomputeSummary struct {
	TeamsUpdated int         `json:"teams_updated"`
	Failed       []uuid.UUID `json:"failed,omitempty"`
}

// FinalizedEntry is a participant of a completed competition with its
// persisted rank and resolved names, as the rollup consumes it.
type FinalizedEntry struct {
	ParticipantID   uuid.UUID
	CandidateID     *uuid.UUID
	TeamID          *uuid.UUID
	CandidateTeamID *uuid.UUID
	CandidateName   string
	TeamName        string
	Rank            *int
}

// CompletedCompetition is a finalized competition with its entries.
type CompletedCompetition struct {
	ID         uuid.UUID
	Name       string
	TeamScored bool // true for team participant mode
	Entries    []FinalizedEntry
}
