package scoreservice

import (
	"context"
	"io"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	scoredb "github.com/arena-ops/podium/app/modules/score/infrastructure/repositories"
)

// ------------------------
// Fake Score Repo
// ------------------------

type FakeScoreRepo struct {
	Upserted []*scoredb.Score

	UpsertScoreFunc             func(ctx context.Context, db bun.IDB, score *scoredb.Score) error
	GetScoresForCompetitionFunc func(ctx context.Context, db bun.IDB, competitionID uuid.UUID) ([]scoredb.Score, error)
}

func (f *FakeScoreRepo) UpsertScore(ctx context.Context, db bun.IDB, score *scoredb.Score) error {
	if f.UpsertScoreFunc != nil {
		return f.UpsertScoreFunc(ctx, db, score)
	}
	f.Upserted = append(f.Upserted, score)
	return nil
}

func (f *FakeScoreRepo) GetScoresForCompetition(ctx context.Context, db bun.IDB, competitionID uuid.UUID) ([]scoredb.Score, error) {
	if f.GetScoresForCompetitionFunc != nil {
		return f.GetScoresForCompetitionFunc(ctx, db, competitionID)
	}
	return nil, nil
}

var _ scoredb.Repository = (*FakeScoreRepo)(nil)

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

func newTestScoreService(repo scoredb.Repository, bus *FakeEventBus) *ScoreService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewScoreService(repo, nil, logger, noop.NewTracerProvider().Tracer("test"))
	if bus != nil {
		svc.eventBus = bus
	}
	return svc
}
