package competitiondb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ParticipantMode selects whether entries are backed by candidates or teams.
type ParticipantMode string

const (
	ModeIndividual ParticipantMode = "individual"
	ModeTeam       ParticipantMode = "team"
)

// Status is the competition lifecycle state. completed is terminal.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
)

// Competition is a judged event (a "program") with its own rules and entries.
type Competition struct {
	bun.BaseModel `bun:"table:competitions,alias:c"`

	ID               uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name             string          `bun:"name,notnull"`
	Description      string          `bun:"description,nullzero"`
	ParticipantMode  ParticipantMode `bun:"participant_mode,notnull"`
	BestOfJudgeCount *int            `bun:"best_of_judge_count"`
	MaxScorePerJudge *float64        `bun:"max_score_per_judge"`
	Status           Status          `bun:"status,notnull,default:'upcoming'"`
	CreatedAt        time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// BestOfJudges resolves the configured best-of-N policy. Zero means "all judges".
func (c *Competition) BestOfJudges() int {
	if c.BestOfJudgeCount == nil || *c.BestOfJudgeCount < 1 {
		return 0
	}
	return *c.BestOfJudgeCount
}

// Rule is one judged criterion within a competition.
type Rule struct {
	bun.BaseModel `bun:"table:competition_rules,alias:r"`

	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	CompetitionID uuid.UUID `bun:"competition_id,notnull,type:uuid"`
	Name          string    `bun:"name,notnull"`
	MaxScore      float64   `bun:"max_score,notnull"`
	OrderIndex    int       `bun:"order_index,nullzero"`
}

// Participant is one competing entry in one competition. Rank and TotalScore
// stay nil until the competition is finalized; after that they are the
// authoritative record regardless of the underlying score rows.
type Participant struct {
	bun.BaseModel `bun:"table:participants,alias:p"`

	ID            uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	CompetitionID uuid.UUID  `bun:"competition_id,notnull,type:uuid"`
	CandidateID   *uuid.UUID `bun:"candidate_id,type:uuid"`
	TeamID        *uuid.UUID `bun:"team_id,type:uuid"`
	EntryNo       *string    `bun:"entry_no"`
	Rank          *int       `bun:"rank"`
	TotalScore    *float64   `bun:"total_score"`
	Status        string     `bun:"status,nullzero,default:'active'"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// EntrantRow is a participant joined with its candidate and team names, the
// shape the aggregator and the points rollup consume.
type EntrantRow struct {
	ParticipantID   uuid.UUID  `bun:"participant_id"`
	CandidateID     *uuid.UUID `bun:"candidate_id"`
	TeamID          *uuid.UUID `bun:"team_id"`
	EntryNo         *string    `bun:"entry_no"`
	CandidateName   *string    `bun:"candidate_name"`
	TeamName        *string    `bun:"team_name"`
	CandidateTeamID *uuid.UUID `bun:"candidate_team_id"`
	Rank            *int       `bun:"rank"`
	TotalScore      *float64   `bun:"total_score"`
}

// DisplayName resolves the name shown on leaderboards: the candidate for
// individual entries, the team (with an optional lead candidate) for team entries.
func (e *EntrantRow) DisplayName(mode ParticipantMode) string {
	if mode == ModeIndividual {
		if e.CandidateName != nil {
			return *e.CandidateName
		}
		return "Unknown"
	}
	if e.TeamName == nil {
		return "Unknown"
	}
	if e.CandidateName != nil {
		return *e.TeamName + " (" + *e.CandidateName + ")"
	}
	return *e.TeamName
}
