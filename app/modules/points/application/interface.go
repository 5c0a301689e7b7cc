package pointsservice

import (
	"context"

	"github.com/google/uuid"
)

// Service is the points module's application surface.
type Service interface {
	// TeamPoints computes a team's championship total and breakdown from
	// the persisted ranks of completed competitions. Never recomputes from
	// raw scores.
	TeamPoints(ctx context.Context, teamID uuid.UUID) (*TeamPointsData, error)

	// Standings computes TeamPoints for every team, best first.
	Standings(ctx context.Context) ([]TeamPointsData, error)

	// RecomputeAllTeamTotals rebuilds every team's cached total. Individual
	// team failures are logged and skipped.
	RecomputeAllTeamTotals(ctx context.Context) (*RecomputeSummary, error)

	// StandingsChart renders the current standings as a PNG bar chart.
	StandingsChart(ctx context.Context) ([]byte, error)
}

// CompetitionLookup is the slice of the competition module this service
// reads finalized results from.
type CompetitionLookup interface {
	CompletedCompetitions(ctx context.Context) ([]CompletedCompetition, error)
}
