package importerservice

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	competitiondb "github.com/arena-ops/podium/app/modules/competition/infrastructure/repositories"
	pointsdb "github.com/arena-ops/podium/app/modules/points/infrastructure/repositories"
	scoredb "github.com/arena-ops/podium/app/modules/score/infrastructure/repositories"
)

// Stateful in-memory stores backing the import flow end to end.

type memCompetitionStore struct {
	competitions map[uuid.UUID]*competitiondb.Competition
	participants map[uuid.UUID]*competitiondb.Participant
	rules        map[uuid.UUID]*competitiondb.Rule
	results      map[uuid.UUID]struct {
		Rank       int
		TotalScore float64
	}
}

func newMemCompetitionStore() *memCompetitionStore {
	return &memCompetitionStore{
		competitions: map[uuid.UUID]*competitiondb.Competition{},
		participants: map[uuid.UUID]*competitiondb.Participant{},
		rules:        map[uuid.UUID]*competitiondb.Rule{},
		results: map[uuid.UUID]struct {
			Rank       int
			TotalScore float64
		}{},
	}
}

func (m *memCompetitionStore) GetCompetition(ctx context.Context, db bun.IDB, id uuid.UUID) (*competitiondb.Competition, error) {
	if c, ok := m.competitions[id]; ok {
		return c, nil
	}
	return nil, competitiondb.ErrNotFound
}

func (m *memCompetitionStore) FindCompetitionByName(ctx context.Context, db bun.IDB, name string) (*competitiondb.Competition, error) {
	for _, c := range m.competitions {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, competitiondb.ErrNotFound
}

func (m *memCompetitionStore) CreateCompetition(ctx context.Context, db bun.IDB, competition *competitiondb.Competition) error {
	m.competitions[competition.ID] = competition
	return nil
}

func (m *memCompetitionStore) ListCompetitionsByStatus(ctx context.Context, db bun.IDB, status competitiondb.Status) ([]competitiondb.Competition, error) {
	var out []competitiondb.Competition
	for _, c := range m.competitions {
		if c.Status == status {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memCompetitionStore) TransitionStatus(ctx context.Context, db bun.IDB, id uuid.UUID, from, to competitiondb.Status) error {
	c, ok := m.competitions[id]
	if !ok || c.Status != from {
		return competitiondb.ErrNoRowsAffected
	}
	c.Status = to
	return nil
}

func (m *memCompetitionStore) ListEntrants(ctx context.Context, db bun.IDB, competitionID uuid.UUID) ([]competitiondb.EntrantRow, error) {
	return nil, nil
}

func (m *memCompetitionStore) FindOrCreateParticipant(ctx context.Context, db bun.IDB, participant *competitiondb.Participant) (*competitiondb.Participant, error) {
	for _, p := range m.participants {
		if p.CompetitionID != participant.CompetitionID {
			continue
		}
		if participant.CandidateID != nil && p.CandidateID != nil && *p.CandidateID == *participant.CandidateID {
			return p, nil
		}
	}
	if participant.ID == uuid.Nil {
		participant.ID = uuid.New()
	}
	m.participants[participant.ID] = participant
	return participant, nil
}

func (m *memCompetitionStore) UpdateParticipantResult(ctx context.Context, db bun.IDB, participantID uuid.UUID, rank int, totalScore float64) error {
	m.results[participantID] = struct {
		Rank       int
		TotalScore float64
	}{rank, totalScore}
	return nil
}

func (m *memCompetitionStore) FirstRule(ctx context.Context, db bun.IDB, competitionID uuid.UUID) (*competitiondb.Rule, error) {
	for _, r := range m.rules {
		if r.CompetitionID == competitionID {
			return r, nil
		}
	}
	return nil, competitiondb.ErrNotFound
}

func (m *memCompetitionStore) CreateRule(ctx context.Context, db bun.IDB, rule *competitiondb.Rule) error {
	m.rules[rule.ID] = rule
	return nil
}

var _ competitiondb.Repository = (*memCompetitionStore)(nil)

type memScoreStore struct {
	scores []*scoredb.Score
}

func (m *memScoreStore) UpsertScore(ctx context.Context, db bun.IDB, score *scoredb.Score) error {
	for i, existing := range m.scores {
		if existing.CompetitionID == score.CompetitionID &&
			existing.ParticipantID == score.ParticipantID &&
			existing.JudgeID == score.JudgeID &&
			existing.RuleID == score.RuleID {
			m.scores[i] = score
			return nil
		}
	}
	m.scores = append(m.scores, score)
	return nil
}

func (m *memScoreStore) GetScoresForCompetition(ctx context.Context, db bun.IDB, competitionID uuid.UUID) ([]scoredb.Score, error) {
	var out []scoredb.Score
	for _, s := range m.scores {
		if s.CompetitionID == competitionID {
			out = append(out, *s)
		}
	}
	return out, nil
}

var _ scoredb.Repository = (*memScoreStore)(nil)

type memTeamStore struct {
	teams      map[uuid.UUID]*pointsdb.Team
	candidates map[uuid.UUID]*pointsdb.Candidate
}

func newMemTeamStore() *memTeamStore {
	return &memTeamStore{
		teams:      map[uuid.UUID]*pointsdb.Team{},
		candidates: map[uuid.UUID]*pointsdb.Candidate{},
	}
}

func (m *memTeamStore) GetTeam(ctx context.Context, db bun.IDB, id uuid.UUID) (*pointsdb.Team, error) {
	if t, ok := m.teams[id]; ok {
		return t, nil
	}
	return nil, pointsdb.ErrNotFound
}

func (m *memTeamStore) ListTeams(ctx context.Context, db bun.IDB) ([]pointsdb.Team, error) {
	var out []pointsdb.Team
	for _, t := range m.teams {
		out = append(out, *t)
	}
	return out, nil
}

func (m *memTeamStore) FindOrCreateTeamByName(ctx context.Context, db bun.IDB, name string) (*pointsdb.Team, error) {
	for _, t := range m.teams {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	team := &pointsdb.Team{ID: uuid.New(), Name: name}
	m.teams[team.ID] = team
	return team, nil
}

func (m *memTeamStore) UpdateTeamPoints(ctx context.Context, db bun.IDB, teamID uuid.UUID, totalPoints int) error {
	if t, ok := m.teams[teamID]; ok {
		t.TotalPoints = totalPoints
	}
	return nil
}

func (m *memTeamStore) FindOrCreateCandidate(ctx context.Context, db bun.IDB, name string, teamID uuid.UUID) (*pointsdb.Candidate, error) {
	for _, c := range m.candidates {
		if c.TeamID != nil && *c.TeamID == teamID && strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	candidate := &pointsdb.Candidate{ID: uuid.New(), Name: name, TeamID: &teamID}
	m.candidates[candidate.ID] = candidate
	return candidate, nil
}

var _ pointsdb.Repository = (*memTeamStore)(nil)

func newTestImporter(competitions *memCompetitionStore, scores *memScoreStore, teams *memTeamStore) *ImporterService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewImporterService(competitions, scores, teams, logger, noop.NewTracerProvider().Tracer("test"), nil)
}
