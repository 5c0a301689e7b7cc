package importerservice

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	"github.com/arena-ops/podium/app/modules/importer/infrastructure/parsers"

	competitiondb "github.com/arena-ops/podium/app/modules/competition/infrastructure/repositories"
	pointsdb "github.com/arena-ops/podium/app/modules/points/infrastructure/repositories"
	scoredb "github.com/arena-ops/podium/app/modules/score/infrastructure/repositories"
)

// ImporterService implements the Service interface.
type ImporterService struct {
	competitions  competitiondb.Repository
	scores        scoredb.Repository
	teams         pointsdb.Repository
	parserFactory *parsers.Factory
	logger        *slog.Logger
	tracer        trace.Tracer
	db            *bun.DB
}

// NewImporterService creates a new ImporterService.
func NewImporterService(
	competitions competitiondb.Repository,
	scores scoredb.Repository,
	teams pointsdb.Repository,
	logger *slog.Logger,
	tracer trace.Tracer,
	db *bun.DB,
) *ImporterService {
	return &ImporterService{
		competitions:  competitions,
		scores:        scores,
		teams:         teams,
		parserFactory: parsers.NewFactory(),
		logger:        logger,
		tracer:        tracer,
		db:            db,
	}
}

// runInTx runs fn inside a transaction when a DB handle is present. Tests
// construct the service without one and fn receives a nil bun.IDB, which the
// repositories treat as "use your own connection".
func (s *ImporterService) runInTx(ctx context.Context, fn func(ctx context.Context, db bun.IDB) error) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, tx)
	})
}
