package competitiondb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ListEntrants returns every participant of a competition joined with its
// candidate and team names. Order follows entry number then creation time, so
// exact score ties keep a stable, fetch-ordered ranking.
func (r *Impl) ListEntrants(ctx context.Context, db bun.IDB, competitionID uuid.UUID) ([]EntrantRow, error) {
	var rows []EntrantRow
	err := r.conn(db).NewSelect().
		TableExpr("participants AS p").
		ColumnExpr("p.id AS participant_id").
		ColumnExpr("p.candidate_id, p.team_id, p.entry_no, p.rank, p.total_score").
		ColumnExpr("cand.name AS candidate_name").
		ColumnExpr("cand.team_id AS candidate_team_id").
		ColumnExpr("t.name AS team_name").
		Join("LEFT JOIN candidates AS cand ON cand.id = p.candidate_id").
		Join("LEFT JOIN teams AS t ON t.id = p.team_id").
		Where("p.competition_id = ?", competitionID).
		OrderExpr("p.entry_no ASC NULLS LAST, p.created_at ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("competitiondb.ListEntrants: %w", err)
	}
	return rows, nil
}

// FindOrCreateParticipant returns the existing entry for the same competition
// and candidate/team, creating one when absent. Used by the results importer.
func (r *Impl) FindOrCreateParticipant(ctx context.Context, db bun.IDB, participant *Participant) (*Participant, error) {
	conn := r.conn(db)

	existing := new(Participant)
	q := conn.NewSelect().
		Model(existing).
		Where("p.competition_id = ?", participant.CompetitionID)
	if participant.CandidateID != nil {
		q = q.Where("p.candidate_id = ?", *participant.CandidateID)
	} else if participant.TeamID != nil {
		q = q.Where("p.candidate_id IS NULL").Where("p.team_id = ?", *participant.TeamID)
	}

	err := q.Limit(1).Scan(ctx)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("competitiondb.FindOrCreateParticipant: %w", err)
	}

	if participant.ID == uuid.Nil {
		participant.ID = uuid.New()
	}
	if _, err := conn.NewInsert().Model(participant).Exec(ctx); err != nil {
		return nil, fmt.Errorf("competitiondb.FindOrCreateParticipant: %w", err)
	}
	return participant, nil
}

// UpdateParticipantResult persists the finalized rank and total score on a
// participant row.
func (r *Impl) UpdateParticipantResult(ctx context.Context, db bun.IDB, participantID uuid.UUID, rank int, totalScore float64) error {
	res, err := r.conn(db).NewUpdate().
		Model((*Participant)(nil)).
		Set("rank = ?", rank).
		Set("total_score = ?", totalScore).
		Where("id = ?", participantID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("competitiondb.UpdateParticipantResult: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("competitiondb.UpdateParticipantResult: %w", err)
	}
	if affected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// FirstRule returns the first rule of a competition by display order.
func (r *Impl) FirstRule(ctx context.Context, db bun.IDB, competitionID uuid.UUID) (*Rule, error) {
	rule := new(Rule)
	err := r.conn(db).NewSelect().
		Model(rule).
		Where("r.competition_id = ?", competitionID).
		Order("r.order_index ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("competitiondb.FirstRule: %w", err)
	}
	return rule, nil
}

// CreateRule inserts a judged criterion for a competition.
func (r *Impl) CreateRule(ctx context.Context, db bun.IDB, rule *Rule) error {
	if rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}
	_, err := r.conn(db).NewInsert().Model(rule).Exec(ctx)
	if err != nil {
		return fmt.Errorf("competitiondb.CreateRule: %w", err)
	}
	return nil
}
