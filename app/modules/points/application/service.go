package pointsservice

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	pointsdb "github.com/arena-ops/podium/app/modules/points/infrastructure/repositories"
)

// PointsService implements the Service interface.
type PointsService struct {
	teams        pointsdb.Repository
	competitions CompetitionLookup
	logger       *slog.Logger
	tracer       trace.Tracer
}

// NewPointsService creates a new PointsService.
func NewPointsService(teams pointsdb.Repository, competitions CompetitionLookup, logger *slog.Logger, tracer trace.Tracer) *PointsService {
	return &PointsService{
		teams:        teams,
		competitions: competitions,
		logger:       logger,
		tracer:       tracer,
	}
}
