package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.opentelemetry.io/otel"

	"github.com/arena-ops/podium/app/api"
	"github.com/arena-ops/podium/app/eventbus"
	"github.com/arena-ops/podium/config"

	competitionservice "github.com/arena-ops/podium/app/modules/competition/application"
	competitionadapters "github.com/arena-ops/podium/app/modules/competition/infrastructure/adapters"
	competitiondb "github.com/arena-ops/podium/app/modules/competition/infrastructure/repositories"
	importerservice "github.com/arena-ops/podium/app/modules/importer/application"
	pointsservice "github.com/arena-ops/podium/app/modules/points/application"
	pointsadapters "github.com/arena-ops/podium/app/modules/points/infrastructure/adapters"
	pointsdb "github.com/arena-ops/podium/app/modules/points/infrastructure/repositories"
	pointsrouter "github.com/arena-ops/podium/app/modules/points/infrastructure/router"
	scoreservice "github.com/arena-ops/podium/app/modules/score/application"
	scoredb "github.com/arena-ops/podium/app/modules/score/infrastructure/repositories"
)

// App owns every long-lived component: database, event bus, watermill router
// and the HTTP server.
type App struct {
	Config             *config.Config
	Logger             *slog.Logger
	CompetitionService competitionservice.Service
	ScoreService       scoreservice.Service
	PointsService      pointsservice.Service
	ImporterService    importerservice.Service

	db           *bun.DB
	eventBus     *eventbus.Bus
	pointsRouter *pointsrouter.PointsRouter
	apiServer    *api.Server
	registry     *prometheus.Registry
}

// NewApp wires the modules together.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := newBunDB(cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	bus, err := eventbus.New(cfg.NATS.URL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	var registry *prometheus.Registry
	if cfg.Observability.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	tracer := otel.Tracer("podium")

	competitionRepo := competitiondb.New(db)
	scoreRepo := scoredb.New(db)
	pointsRepo := pointsdb.New(db)

	competitionService := competitionservice.NewCompetitionService(
		competitionRepo,
		competitionadapters.NewScoreLookup(scoreRepo),
		bus,
		logger,
		tracer,
		db,
	)
	scoreService := scoreservice.NewScoreService(scoreRepo, bus, logger, tracer)
	pointsService := pointsservice.NewPointsService(
		pointsRepo,
		pointsadapters.NewCompetitionLookup(competitionRepo),
		logger,
		tracer,
	)
	importerService := importerservice.NewImporterService(
		competitionRepo,
		scoreRepo,
		pointsRepo,
		logger,
		tracer,
		db,
	)

	watermillRouter, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create watermill router: %w", err)
	}

	pr := pointsrouter.NewPointsRouter(logger, watermillRouter, bus, bus, tracer, registry)
	if err := pr.Configure(ctx, pointsService); err != nil {
		return nil, fmt.Errorf("failed to configure points router: %w", err)
	}

	apiServer := api.NewServer(
		cfg.HTTP.Address,
		logger,
		competitionService,
		scoreService,
		pointsService,
		importerService,
		registry,
	)

	return &App{
		Config:             cfg,
		Logger:             logger,
		CompetitionService: competitionService,
		ScoreService:       scoreService,
		PointsService:      pointsService,
		ImporterService:    importerService,
		db:                 db,
		eventBus:           bus,
		pointsRouter:       pr,
		apiServer:          apiServer,
		registry:           registry,
	}, nil
}

// Run starts the watermill router and the HTTP server and blocks until the
// context is canceled or either of them fails.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := a.pointsRouter.Router.Run(ctx); err != nil {
			errCh <- fmt.Errorf("watermill router: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := a.apiServer.Start(); err != nil {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := a.apiServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("HTTP server shutdown failed", slog.Any("error", err))
	}

	wg.Wait()
	return nil
}

// Close releases every long-lived resource.
func (a *App) Close() error {
	if err := a.pointsRouter.Close(); err != nil {
		a.Logger.Error("Failed to close points router", slog.Any("error", err))
	}
	if err := a.eventBus.Close(); err != nil {
		a.Logger.Error("Failed to close event bus", slog.Any("error", err))
	}
	return a.db.Close()
}

func newBunDB(dsn string) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return bun.NewDB(sqldb, pgdialect.New()), nil
}
