package scoreservice

import (
	"context"

	scoredb "github.com/arena-ops/podium/app/modules/score/infrastructure/repositories"
	"github.com/google/uuid"
)

// Service is the score module's application surface.
type Service interface {
	// SubmitScore upserts one judge mark for a (participant, judge, rule)
	// triple and publishes an audit event.
	SubmitScore(ctx context.Context, entry ScoreEntry) error

	// Matrix returns every raw score row for a competition, the admin
	// score-matrix view.
	Matrix(ctx context.Context, competitionID uuid.UUID) ([]scoredb.Score, error)
}

// ScoreEntry is one incoming judge mark.
type ScoreEntry struct {
	CompetitionID uuid.UUID `json:"competition_id"`
	ParticipantID uuid.UUID `json:"participant_id"`
	JudgeID       uuid.UUID `json:"judge_id"`
	RuleID        uuid.UUID `json:"rule_id"`
	Value         float64   `json:"value"`
}
