package pointshandlers

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	scoreevents "github.com/arena-ops/podium/app/modules/score/domain/events"
)

// HandleScoreSubmitted logs accepted judge marks for audit fan-out. Live
// views recompute from storage on read, so there is nothing to invalidate.
func (h *PointsHandlers) HandleScoreSubmitted(msg *message.Message) ([]*message.Message, error) {
	wrappedHandler := h.handlerWrapper(
		"HandleScoreSubmitted",
		&scoreevents.ScoreSubmittedPayload{},
		func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error) {
			submittedPayload := payload.(*scoreevents.ScoreSubmittedPayload)

			h.logger.InfoContext(ctx, "Score submitted",
				slog.String("competition_id", submittedPayload.CompetitionID.String()),
				slog.String("participant_id", submittedPayload.ParticipantID.String()),
				slog.String("judge_id", submittedPayload.JudgeID.String()),
				slog.Float64("value", submittedPayload.Value),
			)
			return nil, nil
		},
	)

	return wrappedHandler(msg)
}
