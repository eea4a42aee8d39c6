// FILE: internal/service/consumer_service.go
package service

import (
	"context"

	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// Broadcaster delivers a serialized event to every widget socket.
type Broadcaster interface {
	Broadcast(data []byte) bool
}

// EventSink receives every widget event after the sockets, e.g. a NATS mirror.
type EventSink interface {
	Forward(ctx context.Context, eventType string, payload []byte) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber  message.Subscriber
	topicName   string
	broadcaster Broadcaster
	sinks       []EventSink
	logger      logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	broadcaster Broadcaster,
	log logger.ILogger,
	sinks ...EventSink,
) IConsumerService {
	return &consumerService{
		subscriber:  subscriber,
		topicName:   topicName,
		broadcaster: broadcaster,
		sinks:       sinks,
		logger:      log,
	}
}

// Consume subscribes to the widget topic and forwards events until ctx ends.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	// Invalid payloads are acked so they are not redelivered forever
	env, err := events.Unmarshal(msg.Payload)
	if err != nil {
		cs.logger.Error("Consumer", "Failed to unmarshal widget event", map[string]interface{}{
			"message_uuid": msg.UUID,
			"error":        err.Error(),
		})
		msg.Ack()
		return
	}

	if !cs.broadcaster.Broadcast(msg.Payload) {
		cs.logger.Debug("Consumer", "Event not delivered to sockets", map[string]interface{}{
			"event_type": env.Type,
		})
	}

	for _, sink := range cs.sinks {
		if err := sink.Forward(msg.Context(), env.Type, msg.Payload); err != nil {
			cs.logger.Warn("Consumer", "Failed to forward widget event", map[string]interface{}{
				"event_type": env.Type,
				"error":      err.Error(),
			})
		}
	}
	msg.Ack()
}
