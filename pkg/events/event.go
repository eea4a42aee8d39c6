package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all widget events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "conversation.started").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Envelope is the wire form of an event, as published on the bus and pushed
// to widget sockets.
type Envelope struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurredAt"`
	Data       map[string]interface{} `json:"data"`
}

func NewEnvelope(e Event) Envelope {
	data := e.Payload()
	if data == nil {
		data = map[string]interface{}{}
	}
	return Envelope{
		ID:         uuid.NewString(),
		Type:       e.EventType(),
		OccurredAt: e.Timestamp(),
		Data:       data,
	}
}

func (e Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func Unmarshal(payload []byte) (Envelope, error) {
	var env Envelope
	err := json.Unmarshal(payload, &env)
	return env, err
}
