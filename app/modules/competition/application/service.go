package competitionservice

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	"github.com/arena-ops/podium/app/eventbus"
	competitiondb "github.com/arena-ops/podium/app/modules/competition/infrastructure/repositories"
)

// CompetitionService implements the Service interface.
type CompetitionService struct {
	repo     competitiondb.Repository
	scores   ScoreReader
	eventBus eventbus.EventBus
	logger   *slog.Logger
	tracer   trace.Tracer
	db       *bun.DB
}

// NewCompetitionService creates a new CompetitionService.
func NewCompetitionService(
	repo competitiondb.Repository,
	scores ScoreReader,
	bus eventbus.EventBus,
	logger *slog.Logger,
	tracer trace.Tracer,
	db *bun.DB,
) *CompetitionService {
	return &CompetitionService{
		repo:     repo,
		scores:   scores,
		eventBus: bus,
		logger:   logger,
		tracer:   tracer,
		db:       db,
	}
}

// runInTx runs fn inside a transaction when a DB handle is present. Tests
// construct the service without one and fn receives a nil bun.IDB, which the
// repositories treat as "use your own connection".
func (s *CompetitionService) runInTx(ctx context.Context, fn func(ctx context.Context, db bun.IDB) error) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, tx)
	})
}
