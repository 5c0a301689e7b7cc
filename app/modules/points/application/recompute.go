package pointsservice

import (
	"context"
	"fmt"
	"log/slog"
)

// RecomputeAllTeamTotals rebuilds the cached total_points of every team from
// finalized competition ranks. Each team is an isolated read-compute-write:
// one team's failure is logged with its id and the rest still update. The
// operation itself only fails when the team list cannot be fetched.
func (s *PointsService) RecomputeAllTeamTotals(ctx context.Context) (*RecomputeSummary, error) {
	ctx, span := s.tracer.Start(ctx, "points.RecomputeAllTeamTotals")
	defer span.End()

	teams, err := s.teams.ListTeams(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("recompute team totals: %w", err)
	}

	summary := &RecomputeSummary{}
	for _, team := range teams {
		data, err := s.TeamPoints(ctx, team.ID)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to compute team points, skipping team",
				slog.String("team_id", team.ID.String()),
				slog.Any("error", err),
			)
			summary.Failed = append(summary.Failed, team.ID)
			continue
		}

		if err := s.teams.UpdateTeamPoints(ctx, nil, team.ID, int(data.TotalPoints)); err != nil {
			s.logger.ErrorContext(ctx, "failed to persist team points, skipping team",
				slog.String("team_id", team.ID.String()),
				slog.Any("error", err),
			)
			summary.Failed = append(summary.Failed, team.ID)
			continue
		}
		summary.TeamsUpdated++
	}

	s.logger.InfoContext(ctx, "team totals recomputed",
		slog.Int("teams_updated", summary.TeamsUpdated),
		slog.Int("teams_failed", len(summary.Failed)),
	)
	return summary, nil
}
