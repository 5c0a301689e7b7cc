package scoreservice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/arena-ops/podium/app/eventbus"
	scoreevents "github.com/arena-ops/podium/app/modules/score/domain/events"
	scoredb "github.com/arena-ops/podium/app/modules/score/infrastructure/repositories"
)

// ScoreService implements the Service interface.
type ScoreService struct {
	repo     scoredb.Repository
	eventBus eventbus.EventBus
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewScoreService creates a new ScoreService.
func NewScoreService(repo scoredb.Repository, bus eventbus.EventBus, logger *slog.Logger, tracer trace.Tracer) *ScoreService {
	return &ScoreService{
		repo:     repo,
		eventBus: bus,
		logger:   logger,
		tracer:   tracer,
	}
}

// SubmitScore upserts a judge mark. Value bounds are the score-entry UI's
// responsibility; out-of-range values flow through arithmetically.
func (s *ScoreService) SubmitScore(ctx context.Context, entry ScoreEntry) error {
	ctx, span := s.tracer.Start(ctx, "score.SubmitScore")
	defer span.End()

	err := s.repo.UpsertScore(ctx, nil, &scoredb.Score{
		CompetitionID: entry.CompetitionID,
		ParticipantID: entry.ParticipantID,
		JudgeID:       entry.JudgeID,
		RuleID:        entry.RuleID,
		Value:         entry.Value,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to upsert score",
			slog.String("competition_id", entry.CompetitionID.String()),
			slog.String("participant_id", entry.ParticipantID.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("submit score: %w", err)
	}

	s.publishSubmitted(ctx, entry)
	return nil
}

// Matrix returns the raw score rows for the admin matrix view.
func (s *ScoreService) Matrix(ctx context.Context, competitionID uuid.UUID) ([]scoredb.Score, error) {
	ctx, span := s.tracer.Start(ctx, "score.Matrix")
	defer span.End()

	scores, err := s.repo.GetScoresForCompetition(ctx, nil, competitionID)
	if err != nil {
		return nil, fmt.Errorf("score matrix: %w", err)
	}
	return scores, nil
}

func (s *ScoreService) publishSubmitted(ctx context.Context, entry ScoreEntry) {
	if s.eventBus == nil {
		return
	}

	msg, err := eventbus.NewJSONMessage(&scoreevents.ScoreSubmittedPayload{
		CompetitionID: entry.CompetitionID,
		ParticipantID: entry.ParticipantID,
		JudgeID:       entry.JudgeID,
		RuleID:        entry.RuleID,
		Value:         entry.Value,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build score event", slog.Any("error", err))
		return
	}

	if err := s.eventBus.Publish(scoreevents.ScoreSubmitted, msg); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish score event",
			slog.String("competition_id", entry.CompetitionID.String()),
			slog.Any("error", err),
		)
	}
}
