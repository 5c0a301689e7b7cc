package competitionservice

import (
	"context"

	competitiondomain "github.com/arena-ops/podium/app/modules/competition/domain"
	"github.com/google/uuid"
)

// Service is the competition module's application surface.
type Service interface {
	// LiveStandings recomputes the ranking from currently-recorded scores.
	// Ranks are provisional until the competition is finalized.
	LiveStandings(ctx context.Context, competitionID uuid.UUID) ([]competitiondomain.RankedResult, error)

	// Finalize persists the computed ranks and totals on every participant
	// and flips the competition to completed, atomically. One-way.
	Finalize(ctx context.Context, competitionID uuid.UUID) ([]competitiondomain.RankedResult, error)
}

// ScoreReader is the slice of the score module this service reads from.
type ScoreReader interface {
	ScoreRows(ctx context.Context, competitionID uuid.UUID) ([]competitiondomain.ScoreRow, error)
}
