package competitionservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	competitiondomain "github.com/arena-ops/podium/app/modules/competition/domain"
	competitiondb "github.com/arena-ops/podium/app/modules/competition/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// LiveStandings recomputes the ranking for a competition from the raw score
// rows currently in storage. Every poll is an independent, idempotent
// computation; concurrent judge writes make the result a best-effort snapshot.
func (s *CompetitionService) LiveStandings(ctx context.Context, competitionID uuid.UUID) ([]competitiondomain.RankedResult, error) {
	ctx, span := s.tracer.Start(ctx, "competition.LiveStandings")
	defer span.End()

	competition, err := s.repo.GetCompetition(ctx, nil, competitionID)
	if err != nil {
		if errors.Is(err, competitiondb.ErrNotFound) {
			return nil, ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("live standings: %w", err)
	}

	results, err := s.computeRankings(ctx, nil, competition)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "live standings computed",
		slog.String("competition_id", competitionID.String()),
		slog.Int("entrants", len(results)),
	)
	return results, nil
}

// computeRankings fetches entrants and score rows and runs the aggregator.
// Every caller (live view, finalize, projected standings) goes through this
// single path; the aggregation loop is never reimplemented elsewhere.
func (s *CompetitionService) computeRankings(ctx context.Context, db bun.IDB, competition *competitiondb.Competition) ([]competitiondomain.RankedResult, error) {
	entrantRows, err := s.repo.ListEntrants(ctx, db, competition.ID)
	if err != nil {
		return nil, fmt.Errorf("compute rankings: %w", err)
	}

	scoreRows, err := s.scores.ScoreRows(ctx, competition.ID)
	if err != nil {
		return nil, fmt.Errorf("compute rankings: %w", err)
	}

	entrants := make([]competitiondomain.Entrant, len(entrantRows))
	for i, row := range entrantRows {
		entryNo := ""
		if row.EntryNo != nil {
			entryNo = *row.EntryNo
		}
		entrants[i] = competitiondomain.Entrant{
			ID:          row.ParticipantID,
			DisplayName: row.DisplayName(competition.ParticipantMode),
			EntryNo:     entryNo,
		}
	}

	return competitiondomain.Aggregate(entrants, scoreRows, competition.BestOfJudges()), nil
}
