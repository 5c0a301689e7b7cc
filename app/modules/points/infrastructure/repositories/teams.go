package pointsdb

import (
	"context"
	"database/sql"
	"errors"
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

// GetTeam retrieves a team by ID.
func (r *Impl) GetTeam(ctx context.Context, db bun.IDB, id uuid.UUID) (*Team, error) {
	team := new(Team)
	err := r.conn(db).NewSelect().
		Model(team).
		Where("t.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("pointsdb.GetTeam: %w", err)
	}
	return team, nil
}

// ListTeams returns all teams ordered by cached points, best first.
func (r *Impl) ListTeams(ctx context.Context, db bun.IDB) ([]Team, error) {
	var teams []Team
	err := r.conn(db).NewSelect().
		Model(&teams).
		Order("t.total_points DESC", "t.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("pointsdb.ListTeams: %w", err)
	}
	return teams, nil
}

// FindOrCreateTeamByName resolves a team by case-insensitive name, creating it
// when missing. Used by the historical results importer.
func (r *Impl) FindOrCreateTeamByName(ctx context.Context, db bun.IDB, name string) (*Team, error) {
	conn := r.conn(db)

	team := new(Team)
	err := conn.NewSelect().
		Model(team).
		Where("lower(t.name) = lower(?)", name).
		Limit(1).
		Scan(ctx)
	if err == nil {
		return team, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pointsdb.FindOrCreateTeamByName: %w", err)
	}

	team = &Team{ID: uuid.New(), Name: name}
	if _, err := conn.NewInsert().Model(team).Exec(ctx); err != nil {
		return nil, fmt.Errorf("pointsdb.FindOrCreateTeamByName: %w", err)
	}
	return team, nil
}

// UpdateTeamPoints persists the recomputed points cache for one team.
func (r *Impl) UpdateTeamPoints(ctx context.Context, db bun.IDB, teamID uuid.UUID, totalPoints int) error {
	_, err := r.conn(db).NewUpdate().
		Model((*Team)(nil)).
		Set("total_points = ?", totalPoints).
		Where("id = ?", teamID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("pointsdb.UpdateTeamPoints: %w", err)
	}
	return nil
}

// FindOrCreateCandidate resolves a candidate scoped by team and
// case-insensitive name, creating one when missing.
func (r *Impl) FindOrCreateCandidate(ctx context.Context, db bun.IDB, name string, teamID uuid.UUID) (*Candidate, error) {
	conn := r.conn(db)

	candidate := new(Candidate)
	err := conn.NewSelect().
		Model(candidate).
		Where("cand.team_id = ?", teamID).
		Where("lower(cand.name) = lower(?)", name).
		Limit(1).
		Scan(ctx)
	if err == nil {
		return candidate, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pointsdb.FindOrCreateCandidate: %w", err)
	}

	candidate = &Candidate{ID: uuid.New(), Name: name, TeamID: &teamID}
	if _, err := conn.NewInsert().Model(candidate).Exec(ctx); err != nil {
		return nil, fmt.Errorf("pointsdb.FindOrCreateCandidate: %w", err)
	}
	return candidate, nil
}
