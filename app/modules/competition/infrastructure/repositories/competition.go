package competitiondb

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

// GetCompetition retrieves a competition by ID.
func (r *Impl) GetCompetition(ctx context.Context, db bun.IDB, id uuid.UUID) (*Competition, error) {
	competition := new(Competition)
	err := r.conn(db).NewSelect().
		Model(competition).
		Where("c.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("competitiondb.GetCompetition: %w", err)
	}
	return competition, nil
}

// FindCompetitionByName looks a competition up by case-insensitive name.
func (r *Impl) FindCompetitionByName(ctx context.Context, db bun.IDB, name string) (*Competition, error) {
	competition := new(Competition)
	err := r.conn(db).NewSelect().
		Model(competition).
		Where("lower(c.name) = lower(?)", name).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("competitiondb.FindCompetitionByName: %w", err)
	}
	return competition, nil
}

// CreateCompetition inserts a new competition row.
func (r *Impl) CreateCompetition(ctx context.Context, db bun.IDB, competition *Competition) error {
	if competition.ID == uuid.Nil {
		competition.ID = uuid.New()
	}
	_, err := r.conn(db).NewInsert().Model(competition).Exec(ctx)
	if err != nil {
		return fmt.Errorf("competitiondb.CreateCompetition: %w", err)
	}
	return nil
}

// ListCompetitionsByStatus returns all competitions in the given lifecycle state.
func (r *Impl) ListCompetitionsByStatus(ctx context.Context, db bun.IDB, status Status) ([]Competition, error) {
	var competitions []Competition
	err := r.conn(db).NewSelect().
		Model(&competitions).
		Where("c.status = ?", status).
		Order("c.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("competitiondb.ListCompetitionsByStatus: %w", err)
	}
	return competitions, nil
}

// TransitionStatus flips a competition's status, guarded by the expected
// current state. Returns ErrNoRowsAffected when the guard does not match,
// which keeps the live->completed transition one-way.
func (r *Impl) TransitionStatus(ctx context.Context, db bun.IDB, id uuid.UUID, from, to Status) error {
	res, err := r.conn(db).NewUpdate().
		Model((*Competition)(nil)).
		Set("status = ?", to).
		Where("id = ?", id).
		Where("status = ?", from).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("competitiondb.TransitionStatus: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("competitiondb.TransitionStatus: %w", err)
	}
	if affected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
