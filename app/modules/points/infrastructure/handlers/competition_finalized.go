package pointshandlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	competitionevents "github.com/arena-ops/podium/app/modules/competition/domain/events"
)

// HandleCompetitionFinalized recomputes every team's cached total after a
// competition completes, so standings pick up the newly persisted ranks.
func (h *PointsHandlers) HandleCompetitionFinalized(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleCompetitionFinalized",
		&competitionevents.CompetitionFinalizedPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			finalizedPayload := payload.(*competitionevents.CompetitionFinalizedPayload)

			h.logger.InfoContext(ctx, "Received CompetitionFinalized event",
				slog.String("competition_id", finalizedPayload.CompetitionID.String()),
				slog.String("competition_name", finalizedPayload.Name),
				slog.Int("participants", finalizedPayload.Participants),
			)

			summary, err := h.pointsService.RecomputeAllTeamTotals(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to recompute team totals: %w", err)
			}

			h.logger.InfoContext(ctx, "Team totals recomputed after finalization",
				slog.String("competition_id", finalizedPayload.CompetitionID.String()),
				slog.Int("teams_updated", summary.TeamsUpdated),
				slog.Int("teams_failed", len(summary.Failed)),
			)
			return nil, nil
		},
	)

	return wrappedHandler(msg)
}
