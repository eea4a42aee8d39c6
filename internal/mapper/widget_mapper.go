package mapper

import (
	"time"

	"ai-attendant-widget/internal/dto"
	"ai-attendant-widget/pkg/phone"
	"ai-attendant-widget/pkg/store"
)

const (
	previewLength  = 100
	emptyPreview   = "Conversa sem mensagens"
	historyDateFmt = "02/01/2006 15:04"
)

// InteractionLookup reports the input state of an open conversation.
type InteractionLookup interface {
	Draft(conversationID string) string
	IsLoading(conversationID string) bool
	CanSend(conversationID string) bool
}

type WidgetMapper struct {
	location *time.Location
}

// NewWidgetMapper renders dates in loc; nil means UTC.
func NewWidgetMapper(loc *time.Location) *WidgetMapper {
	if loc == nil {
		loc = time.UTC
	}
	return &WidgetMapper{location: loc}
}

func (m *WidgetMapper) ConversationToDTO(c store.Conversation, input InteractionLookup) dto.ConversationDTO {
	out := dto.ConversationDTO{
		Id:           c.ID,
		AIID:         c.AIID,
		AIName:       c.AIName,
		Messages:     c.Messages,
		CreatedAt:    c.CreatedAt,
		LastActivity: c.LastActivity,
		IsActive:     c.IsActive,
	}
	if out.Messages == nil {
		out.Messages = []store.Message{}
	}
	if input != nil {
		out.Draft = input.Draft(c.ID)
		out.Loading = input.IsLoading(c.ID)
		out.CanSend = input.CanSend(c.ID)
	}
	return out
}

func (m *WidgetMapper) HistoryEntryToDTO(c store.Conversation) dto.HistoryEntryDTO {
	return dto.HistoryEntryDTO{
		Id:                  c.ID,
		AIID:                c.AIID,
		AIName:              c.AIName,
		Preview:             Preview(c),
		MessageCount:        len(c.Messages),
		LastActivity:        c.LastActivity,
		LastActivityDisplay: c.LastActivity.In(m.location).Format(historyDateFmt),
	}
}

func (m *WidgetMapper) StateToDTO(s store.ChatState, input InteractionLookup) *dto.WidgetStateResponse {
	resp := &dto.WidgetStateResponse{
		ActiveConversations:   make([]dto.ConversationDTO, 0, len(s.ActiveConversations)),
		ConversationHistory:   make([]dto.HistoryEntryDTO, 0, len(s.ConversationHistory)),
		SelectedAIs:           s.SelectedAIs,
		IsHistoryOpen:         s.IsHistoryOpen,
		IsMinimized:           s.IsMinimized,
		FocusedConversationId: s.FocusedConversationID,
	}
	if resp.SelectedAIs == nil {
		resp.SelectedAIs = []string{}
	}
	for _, c := range s.ActiveConversations {
		resp.ActiveConversations = append(resp.ActiveConversations, m.ConversationToDTO(c, input))
	}
	for _, c := range s.ConversationHistory {
		resp.ConversationHistory = append(resp.ConversationHistory, m.HistoryEntryToDTO(c))
	}
	return resp
}

func (m *WidgetMapper) PhoneSnapshotToDTO(s phone.Snapshot) dto.PhoneStateResponse {
	return dto.PhoneStateResponse{
		SelectedAI:        s.SelectedAI,
		Phone:             s.Phone,
		CooldownRemaining: s.CooldownRemaining,
		CooldownDisplay:   s.CooldownDisplay,
		Executing:         s.Executing,
		CanExecute:        s.CanExecute,
		LastExecution:     s.LastExecution,
	}
}

func (m *WidgetMapper) DTOToMessages(in []dto.MessageDTO) []store.Message {
	out := make([]store.Message, 0, len(in))
	for _, msg := range in {
		out = append(out, store.Message{
			ID:        msg.Id,
			Content:   msg.Content,
			Sender:    store.Sender(msg.Sender),
			Timestamp: msg.Timestamp,
			AIID:      msg.AIID,
		})
	}
	return out
}

// Preview is the last message cut to 100 characters, or a placeholder.
func Preview(c store.Conversation) string {
	last, ok := c.LastMessage()
	if !ok {
		return emptyPreview
	}
	runes := []rune(last.Content)
	if len(runes) <= previewLength {
		return last.Content
	}
	return string(runes[:previewLength]) + "..."
}
