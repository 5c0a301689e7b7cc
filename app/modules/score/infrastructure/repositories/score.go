package scoredb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl is the bun-backed Repository implementation.
type Impl struct {
	db *bun.DB
}

func New(db *bun.DB) *Impl {
	return &Impl{db: db}
}

func (r *Impl) conn(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// UpsertScore writes a judge's mark, replacing any previous value for the same
// (competition, participant, judge, rule) triple. Duplicate resolution happens
// here, never in the aggregator.
func (r *Impl) UpsertScore(ctx context.Context, db bun.IDB, score *Score) error {
	if score.ID == uuid.Nil {
		score.ID = uuid.New()
	}
	_, err := r.conn(db).NewInsert().
		Model(score).
		On("CONFLICT (competition_id, participant_id, judge_id, rule_id) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("scoredb.UpsertScore: %w", err)
	}
	return nil
}

// GetScoresForCompetition returns every raw score row for a competition.
// An absent competition yields an empty slice, not an error.
func (r *Impl) GetScoresForCompetition(ctx context.Context, db bun.IDB, competitionID uuid.UUID) ([]Score, error) {
	var scores []Score
	err := r.conn(db).NewSelect().
		Model(&scores).
		Where("s.competition_id = ?", competitionID).
		Order("s.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("scoredb.GetScoresForCompetition: %w", err)
	}
	return scores, nil
}
