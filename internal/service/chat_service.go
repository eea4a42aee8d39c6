package service

import (
	"context"

	"ai-attendant-widget/internal/dto"
	"ai-attendant-widget/internal/mapper"
	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/pkg/chat/interaction"
	"ai-attendant-widget/pkg/chat/session"
	"ai-attendant-widget/pkg/events"
)

// IChatService is the root coordinator of the chat side of the widget.
// Rejected operations are no-ops reported through Accepted=false.
type IChatService interface {
	State(ctx context.Context) *dto.WidgetStateResponse
	ToggleSelection(ctx context.Context, aiID string) *dto.SelectionResponse
	StartConversation(ctx context.Context, aiID string) *dto.StartConversationResponse
	ReplaceMessages(ctx context.Context, conversationID string, request *dto.ReplaceMessagesRequest) *dto.ActionResponse
	CloseConversation(ctx context.Context, conversationID string) *dto.CloseConversationResponse
	MinimizeAll(ctx context.Context) *dto.MinimizeAllResponse
	RestoreConversation(ctx context.Context, conversationID string) (*dto.ConversationDTO, error)
	DeleteFromHistory(ctx context.Context, conversationID string) *dto.ActionResponse
	Focus(ctx context.Context, conversationID string) *dto.ActionResponse
	SetHistoryOpen(ctx context.Context, open bool) *dto.ActionResponse
	SetMinimized(ctx context.Context, minimized bool) *dto.ActionResponse
	SetDraft(ctx context.Context, conversationID, text string) *dto.ActionResponse
	SendMessage(ctx context.Context, conversationID string) *dto.SendMessageResponse
}

type chatService struct {
	sessions    *session.Manager
	interaction *interaction.Controller
	catalog     ICatalogService
	publisher   IPublisherService
	mapper      *mapper.WidgetMapper
	logger      logger.ILogger
}

func NewChatService(
	sessions *session.Manager,
	controller *interaction.Controller,
	catalog ICatalogService,
	publisher IPublisherService,
	widgetMapper *mapper.WidgetMapper,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessions:    sessions,
		interaction: controller,
		catalog:     catalog,
		publisher:   publisher,
		mapper:      widgetMapper,
		logger:      log,
	}
}

func (s *chatService) State(ctx context.Context) *dto.WidgetStateResponse {
	return s.mapper.StateToDTO(s.sessions.Snapshot(), s.interaction)
}

func (s *chatService) ToggleSelection(ctx context.Context, aiID string) *dto.SelectionResponse {
	selected := s.sessions.ToggleSelection(aiID)
	all := s.sessions.Snapshot().SelectedAIs

	s.publisher.Emit(ctx, events.SelectionChanged, map[string]interface{}{
		"ai_id":        aiID,
		"selected":     selected,
		"selected_ais": all,
	})
	return &dto.SelectionResponse{Selected: selected, SelectedAIs: all}
}

func (s *chatService) StartConversation(ctx context.Context, aiID string) *dto.StartConversationResponse {
	ai, ok := s.catalog.Find(aiID)
	if !ok {
		s.logger.Debug("ChatService", "Start ignored, attendant not in catalog", map[string]interface{}{"ai_id": aiID})
		return &dto.StartConversationResponse{Accepted: false}
	}

	conv, created := s.sessions.StartConversation(ai)
	convDTO := s.mapper.ConversationToDTO(conv, s.interaction)

	eventType := events.ConversationRevealed
	if created {
		eventType = events.ConversationStarted
		s.logger.Info("ChatService", "Conversation started", map[string]interface{}{
			"conversation_id": conv.ID,
			"ai_id":           ai.ID,
		})
	}
	s.publisher.Emit(ctx, eventType, map[string]interface{}{"conversation": convDTO})

	return &dto.StartConversationResponse{Accepted: true, Created: created, Conversation: &convDTO}
}

func (s *chatService) ReplaceMessages(ctx context.Context, conversationID string, request *dto.ReplaceMessagesRequest) *dto.ActionResponse {
	msgs := s.mapper.DTOToMessages(request.Messages)
	if !s.sessions.AppendMessages(conversationID, msgs) {
		return &dto.ActionResponse{Accepted: false}
	}

	conv, _ := s.sessions.Active(conversationID)
	s.publisher.Emit(ctx, events.ConversationMessagesChanged, map[string]interface{}{
		"conversation_id": conversationID,
		"messages":        conv.Messages,
		"last_activity":   conv.LastActivity,
	})
	return &dto.ActionResponse{Accepted: true}
}

func (s *chatService) CloseConversation(ctx context.Context, conversationID string) *dto.CloseConversationResponse {
	archived, found := s.sessions.CloseConversation(conversationID)
	if !found {
		return &dto.CloseConversationResponse{Accepted: false}
	}
	s.interaction.Forget(conversationID)

	s.publisher.Emit(ctx, events.ConversationClosed, map[string]interface{}{
		"conversation_id": conversationID,
		"archived":        archived,
		"focused_id":      s.sessions.Snapshot().FocusedConversationID,
	})
	return &dto.CloseConversationResponse{Accepted: true, Archived: archived}
}

func (s *chatService) MinimizeAll(ctx context.Context) *dto.MinimizeAllResponse {
	moved := s.sessions.MinimizeAll()
	for _, id := range moved {
		s.interaction.Forget(id)
	}

	s.publisher.Emit(ctx, events.ConversationsMinimized, map[string]interface{}{"moved": moved})
	return &dto.MinimizeAllResponse{Moved: moved}
}

func (s *chatService) RestoreConversation(ctx context.Context, conversationID string) (*dto.ConversationDTO, error) {
	archived, ok := s.sessions.Archived(conversationID)
	if !ok {
		return nil, ErrConversationNotFound
	}

	restored := s.sessions.RestoreConversation(archived)
	convDTO := s.mapper.ConversationToDTO(restored, s.interaction)

	s.publisher.Emit(ctx, events.ConversationRestored, map[string]interface{}{"conversation": convDTO})
	return &convDTO, nil
}

func (s *chatService) DeleteFromHistory(ctx context.Context, conversationID string) *dto.ActionResponse {
	if !s.sessions.DeleteFromHistory(conversationID) {
		return &dto.ActionResponse{Accepted: false}
	}
	s.publisher.Emit(ctx, events.ConversationDeleted, map[string]interface{}{"conversation_id": conversationID})
	return &dto.ActionResponse{Accepted: true}
}

func (s *chatService) Focus(ctx context.Context, conversationID string) *dto.ActionResponse {
	if !s.sessions.Focus(conversationID) {
		return &dto.ActionResponse{Accepted: false}
	}
	s.publisher.Emit(ctx, events.ConversationFocused, map[string]interface{}{"conversation_id": conversationID})
	return &dto.ActionResponse{Accepted: true}
}

func (s *chatService) SetHistoryOpen(ctx context.Context, open bool) *dto.ActionResponse {
	s.sessions.SetHistoryOpen(open)
	s.publisher.Emit(ctx, events.WidgetHistoryToggled, map[string]interface{}{"open": open})
	return &dto.ActionResponse{Accepted: true}
}

func (s *chatService) SetMinimized(ctx context.Context, minimized bool) *dto.ActionResponse {
	s.sessions.SetMinimized(minimized)
	s.publisher.Emit(ctx, events.WidgetMinimized, map[string]interface{}{"minimized": minimized})
	return &dto.ActionResponse{Accepted: true}
}

// SetDraft only keeps drafts for open tabs.
func (s *chatService) SetDraft(ctx context.Context, conversationID, text string) *dto.ActionResponse {
	if _, ok := s.sessions.Active(conversationID); !ok {
		return &dto.ActionResponse{Accepted: false}
	}
	s.interaction.SetDraft(conversationID, text)
	return &dto.ActionResponse{Accepted: true}
}

func (s *chatService) SendMessage(ctx context.Context, conversationID string) *dto.SendMessageResponse {
	msg, ok := s.interaction.SendMessage(ctx, conversationID)
	if !ok {
		return &dto.SendMessageResponse{Accepted: false}
	}

	s.logger.Info("ChatService", "Message dispatched", map[string]interface{}{
		"conversation_id": conversationID,
		"length":          len(msg.Content),
	})
	return &dto.SendMessageResponse{Accepted: true, Message: &msg}
}

var _ mapper.InteractionLookup = (*interaction.Controller)(nil)
