package pointsdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository is the storage surface for teams and candidates.
type Repository interface {
	GetTeam(ctx context.Context, db bun.IDB, id uuid.UUID) (*Team, error)
	ListTeams(ctx context.Context, db bun.IDB) ([]Team, error)
	FindOrCreateTeamByName(ctx context.Context, db bun.IDB, name string) (*Team, error)
	UpdateTeamPoints(ctx context.Context, db bun.IDB, teamID uuid.UUID, totalPoints int) error

	FindOrCreateCandidate(ctx context.Context, db bun.IDB, name string, teamID uuid.UUID) (*Candidate, error)
}
