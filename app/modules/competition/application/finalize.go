package competitionservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/arena-ops/podium/app/eventbus"
	competitiondomain "github.com/arena-ops/podium/app/modules/competition/domain"
	competitionevents "github.com/arena-ops/podium/app/modules/competition/domain/events"
	competitiondb "github.com/arena-ops/podium/app/modules/competition/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Finalize computes the official ranking once and persists it: every
// participant's rank and total score is written, then the status flips
// live -> completed, all in one transaction. Participant writes happen before
// the status flip so a crash mid-operation leaves the competition live with
// at worst stale provisional ranks, never completed with partial ranks.
func (s *CompetitionService) Finalize(ctx context.Context, competitionID uuid.UUID) ([]competitiondomain.RankedResult, error) {
	ctx, span := s.tracer.Start(ctx, "competition.Finalize")
	defer span.End()

	var results []competitiondomain.RankedResult
	var name string

	err := s.runInTx(ctx, func(ctx context.Context, tx bun.IDB) error {
		competition, err := s.repo.GetCompetition(ctx, tx, competitionID)
		if err != nil {
			if errors.Is(err, competitiondb.ErrNotFound) {
				return ErrCompetitionNotFound
			}
			return fmt.Errorf("finalize: %w", err)
		}
		name = competition.Name

		switch competition.Status {
		case competitiondb.StatusCompleted:
			return ErrAlreadyCompleted
		case competitiondb.StatusUpcoming:
			return ErrNotLive
		}

		results, err = s.computeRankings(ctx, tx, competition)
		if err != nil {
			return err
		}

		for _, result := range results {
			if err := s.repo.UpdateParticipantResult(ctx, tx, result.ParticipantID, result.Rank, result.Score); err != nil {
				return fmt.Errorf("finalize: persist result for %s: %w", result.ParticipantID, err)
			}
		}

		if err := s.repo.TransitionStatus(ctx, tx, competitionID, competitiondb.StatusLive, competitiondb.StatusCompleted); err != nil {
			if errors.Is(err, competitiondb.ErrNoRowsAffected) {
				return ErrAlreadyCompleted
			}
			return fmt.Errorf("finalize: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "finalize failed",
			slog.String("competition_id", competitionID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "competition finalized",
		slog.String("competition_id", competitionID.String()),
		slog.Int("participants", len(results)),
	)

	s.publishFinalized(ctx, competitionID, name, len(results))
	return results, nil
}

// publishFinalized announces the completed transition. Publish failures are
// logged, not returned: ranks are already durable and the team-points cache
// can be rebuilt on demand via the admin recompute endpoint.
func (s *CompetitionService) publishFinalized(ctx context.Context, competitionID uuid.UUID, name string, participants int) {
	if s.eventBus == nil {
		return
	}

	msg, err := eventbus.NewJSONMessage(&competitionevents.CompetitionFinalizedPayload{
		CompetitionID: competitionID,
		Name:          name,
		Participants:  participants,
		FinalizedAt:   time.Now().UTC(),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build finalized event",
			slog.String("competition_id", competitionID.String()),
			slog.Any("error", err),
		)
		return
	}

	if err := s.eventBus.Publish(competitionevents.CompetitionFinalized, msg); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish finalized event",
			slog.String("competition_id", competitionID.String()),
			slog.Any("error", err),
		)
	}
}
