package pointsservice

import (
	"context"
	"io"
	"log/slog"

	pointsdb "github.com/arena-ops/podium/app/modules/points/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

// ------------------------
// Fake Team Repo
// ------------------------

type FakeTeamRepo struct {
	trace []string

	GetTeamFunc                func(ctx context.Context, db bun.IDB, id uuid.UUID) (*pointsdb.Team, error)
	ListTeamsFunc              func(ctx context.Context, db bun.IDB) ([]pointsdb.Team, error)
	FindOrCreateTeamByNameFunc func(ctx context.Context, db bun.IDB, name string) (*pointsdb.Team, error)
	UpdateTeamPointsFunc       func(ctx context.Context, db bun.IDB, teamID uuid.UUID, totalPoints int) error
	FindOrCreateCandidateFunc  func(ctx context.Context, db bun.IDB, name string, teamID uuid.UUID) (*pointsdb.Candidate, error)
}

func NewFakeTeamRepo() *FakeTeamRepo {
	return &FakeTeamRepo{trace: []string{}}
}

func (f *FakeTeamRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTeamRepo) GetTeam(ctx context.Context, db bun.IDB, id uuid.UUID) (*pointsdb.Team, error) {
	f.record("GetTeam")
	if f.GetTeamFunc != nil {
		return f.GetTeamFunc(ctx, db, id)
	}
	return nil, pointsdb.ErrNotFound
}

func (f *FakeTeamRepo) ListTeams(ctx context.Context, db bun.IDB) ([]pointsdb.Team, error) {
	f.record("ListTeams")
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeTeamRepo) FindOrCreateTeamByName(ctx context.Context, db bun.IDB, name string) (*pointsdb.Team, error) {
	f.record("FindOrCreateTeamByName")
	if f.FindOrCreateTeamByNameFunc != nil {
		return f.FindOrCreateTeamByNameFunc(ctx, db, name)
	}
	return &pointsdb.Team{ID: uuid.New(), Name: name}, nil
}

func (f *FakeTeamRepo) UpdateTeamPoints(ctx context.Context, db bun.IDB, teamID uuid.UUID, totalPoints int) error {
	f.record("UpdateTeamPoints")
	if f.UpdateTeamPointsFunc != nil {
		return f.UpdateTeamPointsFunc(ctx, db, teamID, totalPoints)
	}
	return nil
}

func (f *FakeTeamRepo) FindOrCreateCandidate(ctx context.Context, db bun.IDB, name string, teamID uuid.UUID) (*pointsdb.Candidate, error) {
	f.record("FindOrCreateCandidate")
	if f.FindOrCreateCandidateFunc != nil {
		return f.FindOrCreateCandidateFunc(ctx, db, name, teamID)
	}
	return &pointsdb.Candidate{ID: uuid.New(), Name: name, TeamID: &teamID}, nil
}

func (f *FakeTeamRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ pointsdb.Repository = (*FakeTeamRepo)(nil)

// ------------------------
// Fake Competition Lookup
// ------------------------

type FakeCompetitionLookup struct {
	CompletedCompetitionsFunc func(ctx context.Context) ([]CompletedCompetition, error)
}

func (f *FakeCompetitionLookup) CompletedCompetitions(ctx context.Context) ([]CompletedCompetition, error) {
	if f.CompletedCompetitionsFunc != nil {
		return f.CompletedCompetitionsFunc(ctx)
	}
	return nil, nil
}

var _ CompetitionLookup = (*FakeCompetitionLookup)(nil)

// ------------------------
// Helpers
// ------------------------

func newTestPointsService(teams pointsdb.Repository, competitions CompetitionLookup) *PointsService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPointsService(teams, competitions, logger, noop.NewTracerProvider().Tracer("test"))
}

func intPtr(v int) *int { return &v }

func uuidPtr(v uuid.UUID) *uuid.UUID { return &v }
