package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Publisher mirrors widget events onto a NATS server so CRM-side services can
// follow the widget. Plain core NATS: fire and forget, nothing is stored.
type Publisher struct {
	nc     *nats.Conn
	prefix string
}

// NewPublisher connects to url. Events go to "<prefix>.<event type>".
func NewPublisher(url, prefix string) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &Publisher{nc: nc, prefix: prefix}, nil
}

// Subject returns the subject an event type is published on.
func Subject(prefix, eventType string) string {
	if prefix == "" {
		return eventType
	}
	return prefix + "." + eventType
}

// Forward publishes an already serialized event envelope.
func (p *Publisher) Forward(ctx context.Context, eventType string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := Subject(p.prefix, eventType)
	if err := p.nc.Publish(subject, payload); err != nil {
		return fmt.Errorf("failed to publish event to subject %s: %w", subject, err)
	}
	return nil
}

// Close flushes pending events and closes the connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
	}
}
