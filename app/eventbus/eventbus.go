package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
)

// EventBus is the publish/subscribe surface the module routers depend on.
type EventBus interface {
	message.Publisher
	message.Subscriber
}

// Bus connects watermill to NATS JetStream.
type Bus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	logger     *slog.Logger
}

// New creates an EventBus backed by NATS JetStream.
func New(natsURL string, logger *slog.Logger) (*Bus, error) {
	watermillLogger := watermill.NewSlogLogger(logger)
	marshaler := &wmnats.NATSMarshaler{}

	options := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Timeout(30 * time.Second),
		nc.ReconnectWait(1 * time.Second),
	}

	publisher, err := wmnats.NewPublisher(
		wmnats.PublisherConfig{
			URL:         natsURL,
			Marshaler:   marshaler,
			NatsOptions: options,
			JetStream: wmnats.JetStreamConfig{
				AutoProvision: true,
			},
		},
		watermillLogger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	subscriber, err := wmnats.NewSubscriber(
		wmnats.SubscriberConfig{
			URL:         natsURL,
			Unmarshaler: marshaler,
			NatsOptions: options,
			JetStream: wmnats.JetStreamConfig{
				AutoProvision: true,
			},
		},
		watermillLogger,
	)
	if err != nil {
		publisher.Close()
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	return &Bus{
		publisher:  publisher,
		subscriber: subscriber,
		logger:     logger,
	}, nil
}

// Publish sends messages to a topic, assigning UUIDs where missing.
func (b *Bus) Publish(topic string, msgs ...*message.Message) error {
	for _, msg := range msgs {
		if msg.UUID == "" {
			msg.UUID = watermill.NewUUID()
		}
	}
	return b.publisher.Publish(topic, msgs...)
}

// Subscribe delegates to the underlying NATS subscriber.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.subscriber.Subscribe(ctx, topic)
}

// Close tears down both ends of the bus.
func (b *Bus) Close() error {
	if err := b.publisher.Close(); err != nil {
		b.logger.Error("failed to close publisher", slog.Any("error", err))
	}
	return b.subscriber.Close()
}

// NewJSONMessage marshals a payload into a watermill message.
func NewJSONMessage(payload any) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return message.NewMessage(watermill.NewUUID(), data), nil
}
