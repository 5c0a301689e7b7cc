package competitionservice

import (
	"context"
	"io"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	competitiondomain "github.com/arena-ops/podium/app/modules/competition/domain"
	competitiondb "github.com/arena-ops/podium/app/modules/competition/infrastructure/repositories"
)

// ------------------------
// Fake Competition Repo
// ------------------------

type FakeCompetitionRepo struct {
	trace []string

	GetCompetitionFunc           func(ctx context.Context, db bun.IDB, id uuid.UUID) (*competitiondb.Competition, error)
	FindCompetitionByNameFunc    func(ctx context.Context, db bun.IDB, name string) (*competitiondb.Competition, error)
	CreateCompetitionFunc        func(ctx context.Context, db bun.IDB, competition *competitiondb.Competition) error
	ListCompetitionsByStatusFunc func(ctx context.Context, db bun.IDB, status competitiondb.Status) ([]competitiondb.Competition, error)
	TransitionStatusFunc         func(ctx context.Context, db bun.IDB, id uuid.UUID, from, to competitiondb.Status) error
	ListEntrantsFunc             func(ctx context.Context, db bun.IDB, competitionID uuid.UUID) ([]competitiondb.EntrantRow, error)
	FindOrCreateParticipantFunc  func(ctx context.Context, db bun.IDB, participant *competitiondb.Participant) (*competitiondb.Participant, error)
	UpdateParticipantResultFunc  func(ctx context.Context, db bun.IDB, participantID uuid.UUID, rank int, totalScore float64) error
	FirstRuleFunc                func(ctx context.Context, db bun.IDB, competitionID uuid.UUID) (*competitiondb.Rule, error)
	CreateRuleFunc               func(ctx context.Context, db bun.IDB, rule *competitiondb.Rule) error
}

func NewFakeCompetitionRepo() *FakeCompetitionRepo {
	return &FakeCompetitionRepo{trace: []string{}}
}

func (f *FakeCompetitionRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeCompetitionRepo) GetCompetition(ctx context.Context, db bun.IDB, id uuid.UUID) (*competitiondb.Competition, error) {
	f.record("GetCompetition")
	if f.GetCompetitionFunc != nil {
		return f.GetCompetitionFunc(ctx, db, id)
	}
	return nil, competitiondb.ErrNotFound
}

func (f *FakeCompetitionRepo) FindCompetitionByName(ctx context.Context, db bun.IDB, name string) (*competitiondb.Competition, error) {
	f.record("FindCompetitionByName")
	if f.FindCompetitionByNameFunc != nil {
		return f.FindCompetitionByNameFunc(ctx, db, name)
	}
	return nil, competitiondb.ErrNotFound
}

func (f *FakeCompetitionRepo) CreateCompetition(ctx context.Context, db bun.IDB, competition *competitiondb.Competition) error {
	f.record("CreateCompetition")
	if f.CreateCompetitionFunc != nil {
		return f.CreateCompetitionFunc(ctx, db, competition)
	}
	return nil
}

func (f *FakeCompetitionRepo) ListCompetitionsByStatus(ctx context.Context, db bun.IDB, status competitiondb.Status) ([]competitiondb.Competition, error) {
	f.record("ListCompetitionsByStatus")
	if f.ListCompetitionsByStatusFunc != nil {
		return f.ListCompetitionsByStatusFunc(ctx, db, status)
	}
	return nil, nil
}

func (f *FakeCompetitionRepo) TransitionStatus(ctx context.Context, db bun.IDB, id uuid.UUID, from, to competitiondb.Status) error {
	f.record("TransitionStatus")
	if f.TransitionStatusFunc != nil {
		return f.TransitionStatusFunc(ctx, db, id, from, to)
	}
	return nil
}

func (f *FakeCompetitionRepo) ListEntrants(ctx context.Context, db bun.IDB, competitionID uuid.UUID) ([]competitiondb.EntrantRow, error) {
	f.record("ListEntrants")
	if f.ListEntrantsFunc != nil {
		return f.ListEntrantsFunc(ctx, db, competitionID)
	}
	return nil, nil
}

func (f *FakeCompetitionRepo) FindOrCreateParticipant(ctx context.Context, db bun.IDB, participant *competitiondb.Participant) (*competitiondb.Participant, error) {
	f.record("FindOrCreateParticipant")
	if f.FindOrCreateParticipantFunc != nil {
		return f.FindOrCreateParticipantFunc(ctx, db, participant)
	}
	return participant, nil
}

func (f *FakeCompetitionRepo) UpdateParticipantResult(ctx context.Context, db bun.IDB, participantID uuid.UUID, rank int, totalScore float64) error {
	f.record("UpdateParticipantResult")
	if f.UpdateParticipantResultFunc != nil {
		return f.UpdateParticipantResultFunc(ctx, db, participantID, rank, totalScore)
	}
	return nil
}

func (f *FakeCompetitionRepo) FirstRule(ctx context.Context, db bun.IDB, competitionID uuid.UUID) (*competitiondb.Rule, error) {
	f.record("FirstRule")
	if f.FirstRuleFunc != nil {
		return f.FirstRuleFunc(ctx, db, competitionID)
	}
	return nil, competitiondb.ErrNotFound
}

func (f *FakeCompetitionRepo) CreateRule(ctx context.Context, db bun.IDB, rule *competitiondb.Rule) error {
	f.record("CreateRule")
	if f.CreateRuleFunc != nil {
		return f.CreateRuleFunc(ctx, db, rule)
	}
	return nil
}

func (f *FakeCompetitionRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ competitiondb.Repository = (*FakeCompetitionRepo)(nil)

// ------------------------
// Fake Score Reader
// ------------------------

type FakeScoreReader struct {
	ScoreRowsFunc func(ctx context.Context, competitionID uuid.UUID) ([]competitiondomain.ScoreRow, error)
}

func (f *FakeScoreReader) ScoreRows(ctx context.Context, competitionID uuid.UUID) ([]competitiondomain.ScoreRow, error) {
	if f.ScoreRowsFunc != nil {
		return f.ScoreRowsFunc(ctx, competitionID)
	}
	return nil, nil
}

var _ ScoreReader = (*FakeScoreReader)(nil)

// ------------------------
// Fake Event Bus
// ------------------------

type FakeEventBus struct {
	Published map[string][]*message.Message
}

func NewFakeEventBus() *FakeEventBus {
	return &FakeEventBus{Published: map[string][]*message.Message{}}
}

func (f *FakeEventBus) Publish(topic string, messages ...*message.Message) error {
	f.Published[topic] = append(f.Published[topic], messages...)
	return nil
}

func (f *FakeEventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	ch := make(chan *message.Message)
	close(ch)
	return ch, nil
}

func (f *FakeEventBus) Close() error { return nil }

// ------------------------
// Helpers
// ------------------------

func newTestCompetitionService(repo competitiondb.Repository, scores ScoreReader, bus *FakeEventBus) *CompetitionService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewCompetitionService(repo, scores, nil, logger, noop.NewTracerProvider().Tracer("test"), nil)
	if bus != nil {
		svc.eventBus = bus
	}
	return svc
}

func strPtr(v string) *string { return &v }
