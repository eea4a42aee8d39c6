package service

import (
	"context"
	"fmt"
	"time"

	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, evt events.Event) error
	// Emit builds and publishes a BaseEvent; failures are logged, never returned.
	Emit(ctx context.Context, eventType string, data map[string]interface{})
}

type publisherService struct {
	topicName string
	publisher message.Publisher
	logger    logger.ILogger
}

func NewPublisherService(topicName string, publisher message.Publisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
		logger:    log,
	}
}

func (ps *publisherService) Publish(ctx context.Context, evt events.Event) error {
	env := events.NewEnvelope(evt)
	payload, err := env.Marshal()
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", env.Type)
	msg.SetContext(ctx)

	if err := ps.publisher.Publish(ps.topicName, msg); err != nil {
		return fmt.Errorf("publish event %s: %w", evt.EventType(), err)
	}
	return nil
}

func (ps *publisherService) Emit(ctx context.Context, eventType string, data map[string]interface{}) {
	err := ps.Publish(ctx, events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	})
	if err != nil {
		ps.logger.Error("Publisher", "Failed to publish widget event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}
