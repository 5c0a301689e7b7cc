package pointshandlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	pointsservice "github.com/arena-ops/podium/app/modules/points/application"
	"go.opentelemetry.io/otel/trace"
)

// PointsHandlers consumes competition lifecycle events and keeps the cached
// team totals in step with them.
type PointsHandlers struct {
	pointsService  pointsservice.Service
	logger         *slog.Logger
	tracer         trace.Tracer
	handlerWrapper func(handlerName string, unmarshalTo interface{}, handlerFunc func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error)) message.HandlerFunc
}

// NewPointsHandlers creates a new PointsHandlers.
func NewPointsHandlers(
	pointsService pointsservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &PointsHandlers{
		pointsService: pointsService,
		logger:        logger,
		tracer:        tracer,
		handlerWrapper: func(handlerName string, unmarshalTo interface{}, handlerFunc func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error)) message.HandlerFunc {
			return handlerWrapper(handlerName, unmarshalTo, handlerFunc, logger, tracer)
		},
	}
}

// handlerWrapper handles common tracing, logging, and payload decoding for handlers.
func handlerWrapper(
	handlerName string,
	unmarshalTo interface{},
	handlerFunc func(ctx context.Context, msg *message.Message, payload interface{}) ([]*message.Message, error),
	logger *slog.Logger,
	tracer trace.Tracer,
) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx, span := tracer.Start(msg.Context(), handlerName)
		defer span.End()

		logger.InfoContext(ctx, handlerName+" triggered",
			slog.String("message_id", msg.UUID),
			slog.String("correlation_id", msg.Metadata.Get("correlation_id")),
		)

		if unmarshalTo != nil {
			if err := json.Unmarshal(msg.Payload, unmarshalTo); err != nil {
				logger.ErrorContext(ctx, "Failed to unmarshal payload",
					slog.String("message_id", msg.UUID),
					slog.Any("error", err),
				)
				return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
			}
		}

		result, err := handlerFunc(ctx, msg, unmarshalTo)
		if err != nil {
			logger.ErrorContext(ctx, "Error in "+handlerName,
				slog.String("message_id", msg.UUID),
				slog.Any("error", err),
			)
			return nil, err
		}

		logger.InfoContext(ctx, handlerName+" completed successfully",
			slog.String("message_id", msg.UUID),
		)
		return result, nil
	}
}
