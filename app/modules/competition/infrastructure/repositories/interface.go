package competitiondb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository is the storage surface for competitions, rules, and participants.
// Methods accept a bun.IDB so callers can pass a transaction; nil falls back
// to the repository's own connection.
type Repository interface {
	GetCompetition(ctx context.Context, db bun.IDB, id uuid.UUID) (*Competition, error)
	FindCompetitionByName(ctx context.Context, db bun.IDB, name string) (*Competition, error)
	CreateCompetition(ctx context.Context, db bun.IDB, competition *Competition) error
	ListCompetitionsByStatus(ctx context.Context, db bun.IDB, status Status) ([]Competition, error)
	TransitionStatus(ctx context.Context, db bun.IDB, id uuid.UUID, from, to Status) error

	ListEntrants(ctx context.Context, db bun.IDB, competitionID uuid.UUID) ([]EntrantRow, error)
	FindOrCreateParticipant(ctx context.Context, db bun.IDB, participant *Participant) (*Participant, error)
	UpdateParticipantResult(ctx context.Context, db bun.IDB, participantID uuid.UUID, rank int, totalScore float64) error

	FirstRule(ctx context.Context, db bun.IDB, competitionID uuid.UUID) (*Rule, error)
	CreateRule(ctx context.Context, db bun.IDB, rule *Rule) error
}
