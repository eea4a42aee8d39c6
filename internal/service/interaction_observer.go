package service

import (
	"context"

	"ai-attendant-widget/pkg/chat/interaction"
	"ai-attendant-widget/pkg/events"
	"ai-attendant-widget/pkg/store"
)

// ActiveLookup is satisfied by the session manager.
type ActiveLookup interface {
	Active(conversationID string) (store.Conversation, bool)
}

// interactionObserver turns send-flow changes into widget events.
type interactionObserver struct {
	sessions  ActiveLookup
	publisher IPublisherService
}

func NewInteractionObserver(sessions ActiveLookup, publisher IPublisherService) interaction.Observer {
	return &interactionObserver{sessions: sessions, publisher: publisher}
}

func (o *interactionObserver) MessagesChanged(conversationID string) {
	conv, ok := o.sessions.Active(conversationID)
	if !ok {
		return
	}
	o.publisher.Emit(context.Background(), events.ConversationMessagesChanged, map[string]interface{}{
		"conversation_id": conversationID,
		"messages":        conv.Messages,
		"last_activity":   conv.LastActivity,
	})
}

func (o *interactionObserver) LoadingChanged(conversationID string, loading bool) {
	o.publisher.Emit(context.Background(), events.ConversationLoadingChanged, map[string]interface{}{
		"conversation_id": conversationID,
		"loading":         loading,
	})
}
