package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	competitionservice "github.com/arena-ops/podium/app/modules/competition/application"
	importerservice "github.com/arena-ops/podium/app/modules/importer/application"
	pointsservice "github.com/arena-ops/podium/app/modules/points/application"
	scoreservice "github.com/arena-ops/podium/app/modules/score/application"
)

// Server exposes the HTTP surface: live leaderboards, score entry,
// finalization, standings and admin operations.
type Server struct {
	logger             *slog.Logger
	competitionService competitionservice.Service
	scoreService       scoreservice.Service
	pointsService      pointsservice.Service
	importerService    importerservice.Service
	scoreLimiter       *judgeLimiter
	httpServer         *http.Server
}

// NewServer wires the services into a chi router listening on addr.
func NewServer(
	addr string,
	logger *slog.Logger,
	competitionService competitionservice.Service,
	scoreService scoreservice.Service,
	pointsService pointsservice.Service,
	importerService importerservice.Service,
	prometheusRegistry *prometheus.Registry,
) *Server {
	s := &Server{
		logger:             logger,
		competitionService: competitionService,
		scoreService:       scoreService,
		pointsService:      pointsService,
		importerService:    importerService,
		scoreLimiter:       newJudgeLimiter(defaultScoreRate, defaultScoreBurst),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	if prometheusRegistry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(prometheusRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/competitions/{competitionID}", func(r chi.Router) {
		r.Get("/leaderboard", s.handleGetLeaderboard)
		r.Get("/scores", s.handleGetScores)
		r.Put("/scores", s.handlePutScore)
		r.Post("/finalize", s.handleFinalize)
	})

	r.Get("/standings", s.handleGetStandings)
	r.Get("/standings/chart", s.handleGetStandingsChart)
	r.Get("/teams/{teamID}/points", s.handleGetTeamPoints)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/recompute-points", s.handleRecomputePoints)
		r.Post("/import-results", s.handleImportResults)
	})

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start runs the HTTP server until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
