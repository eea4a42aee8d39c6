package service

import (
	"context"
	"sync"

	"ai-attendant-widget/pkg/attendant"
	"ai-attendant-widget/pkg/events"
	"ai-attendant-widget/pkg/store"
)

type emitted struct {
	Type string
	Data map[string]interface{}
}

// recordingPublisher keeps every event in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []emitted
}

func (p *recordingPublisher) Publish(ctx context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, emitted{Type: evt.EventType(), Data: evt.Payload()})
	return nil
}

func (p *recordingPublisher) Emit(ctx context.Context, eventType string, data map[string]interface{}) {
	_ = p.Publish(ctx, events.BaseEvent{Type: eventType, Data: data})
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func (p *recordingPublisher) last(eventType string) (emitted, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := len(p.events) - 1; i >= 0; i-- {
		if p.events[i].Type == eventType {
			return p.events[i], true
		}
	}
	return emitted{}, false
}

// stubAttendant answers every collaborator call from its fields.
type stubAttendant struct {
	models     []store.AIModel
	catalogErr error
	reply      string
	replyErr   error
	custom     store.AIModel
	customErr  error
	phone      attendant.PhoneResult
	phoneErr   error
}

func (s *stubAttendant) FetchCatalog(context.Context) ([]store.AIModel, error) {
	return s.models, s.catalogErr
}

func (s *stubAttendant) SendMessage(context.Context, string, string) (string, error) {
	return s.reply, s.replyErr
}

func (s *stubAttendant) CreateCustomAI(context.Context, string) (store.AIModel, error) {
	return s.custom, s.customErr
}

func (s *stubAttendant) ExecutePhone(context.Context, string, string) (attendant.PhoneResult, error) {
	return s.phone, s.phoneErr
}
