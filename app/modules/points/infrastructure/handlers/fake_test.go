package pointshandlers

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace/noop"

	pointsservice "github.com/arena-ops/podium/app/modules/points/application"
)

// FakePointsService records recompute calls and defers everything else to
// optional overrides.
type FakePointsService struct {
	RecomputeCalls int

	TeamPointsFunc             func(ctx context.Context, teamID uuid.UUID) (*pointsservice.TeamPointsData, error)
	StandingsFunc              func(ctx context.Context) ([]pointsservice.TeamPointsData, error)
	RecomputeAllTeamTotalsFunc func(ctx context.Context) (*pointsservice.RecomputeSummary, error)
	StandingsChartFunc         func(ctx context.Context) ([]byte, error)
}

func (f *FakePointsService) TeamPoints(ctx context.Context, teamID uuid.UUID) (*pointsservice.TeamPointsData, error) {
	if f.TeamPointsFunc != nil {
		return f.TeamPointsFunc(ctx, teamID)
	}
	return nil, pointsservice.ErrTeamNotFound
}

func (f *FakePointsService) Standings(ctx context.Context) ([]pointsservice.TeamPointsData, error) {
	if f.StandingsFunc != nil {
		return f.StandingsFunc(ctx)
	}
	return nil, nil
}

func (f *FakePointsService) RecomputeAllTeamTotals(ctx context.Context) (*pointsservice.RecomputeSummary, error) {
	f.RecomputeCalls++
	if f.RecomputeAllTeamTotalsFunc != nil {
		return f.RecomputeAllTeamTotalsFunc(ctx)
	}
	return &pointsservice.RecomputeSummary{}, nil
}

func (f *FakePointsService) StandingsChart(ctx context.Context) ([]byte, error) {
	if f.StandingsChartFunc != nil {
		return f.StandingsChartFunc(ctx)
	}
	return nil, nil
}

var _ pointsservice.Service = (*FakePointsService)(nil)

func newTestHandlers(svc pointsservice.Service) Handlers {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPointsHandlers(svc, logger, noop.NewTracerProvider().Tracer("test"))
}
