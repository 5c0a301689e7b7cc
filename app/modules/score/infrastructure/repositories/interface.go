package scoredb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository is the storage surface for raw score rows.
type Repository interface {
	UpsertScore(ctx context.Context, db bun.IDB, score *Score) error
	GetScoresForCompetition(ctx context.Context, db bun.IDB, competitionID uuid.UUID) ([]Score, error)
}
