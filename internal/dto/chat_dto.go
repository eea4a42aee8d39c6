package dto

import (
	"time"

	"ai-attendant-widget/pkg/store"
)

type ToggleSelectionRequest struct {
	AIID string `json:"ai_id" validate:"required"`
}

type SelectionResponse struct {
	Selected    bool     `json:"selected"`
	SelectedAIs []string `json:"selected_ais"`
}

type StartConversationRequest struct {
	AIID string `json:"ai_id" validate:"required"`
}

type StartConversationResponse struct {
	Accepted     bool             `json:"accepted"`
	Created      bool             `json:"created"`
	Conversation *ConversationDTO `json:"conversation,omitempty"`
}

type MessageDTO struct {
	Id        string    `json:"id" validate:"required"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender" validate:"required,oneof=user ai"`
	Timestamp time.Time `json:"timestamp"`
	AIID      string    `json:"ai_id,omitempty"`
}

type ReplaceMessagesRequest struct {
	Messages []MessageDTO `json:"messages" validate:"dive"`
}

type SetDraftRequest struct {
	Text string `json:"text" validate:"max=4000"`
}

type SendMessageResponse struct {
	Accepted bool           `json:"accepted"`
	Message  *store.Message `json:"message,omitempty"`
}

type CloseConversationResponse struct {
	Accepted bool `json:"accepted"`
	Archived bool `json:"archived"`
}

type MinimizeAllResponse struct {
	Moved []string `json:"moved"`
}

type ActionResponse struct {
	Accepted bool `json:"accepted"`
}

type SetFlagRequest struct {
	Value *bool `json:"value" validate:"required"`
}

// ConversationDTO is an open tab together with its input state.
type ConversationDTO struct {
	Id           string          `json:"id"`
	AIID         string          `json:"ai_id"`
	AIName       string          `json:"ai_name"`
	Messages     []store.Message `json:"messages"`
	CreatedAt    time.Time       `json:"created_at"`
	LastActivity time.Time       `json:"last_activity"`
	IsActive     bool            `json:"is_active"`
	Draft        string          `json:"draft"`
	Loading      bool            `json:"loading"`
	CanSend      bool            `json:"can_send"`
}

type HistoryEntryDTO struct {
	Id                  string    `json:"id"`
	AIID                string    `json:"ai_id"`
	AIName              string    `json:"ai_name"`
	Preview             string    `json:"preview"`
	MessageCount        int       `json:"message_count"`
	LastActivity        time.Time `json:"last_activity"`
	LastActivityDisplay string    `json:"last_activity_display"`
}

type WidgetStateResponse struct {
	ActiveConversations   []ConversationDTO `json:"active_conversations"`
	ConversationHistory   []HistoryEntryDTO `json:"conversation_history"`
	SelectedAIs           []string          `json:"selected_ais"`
	IsHistoryOpen         bool              `json:"is_history_open"`
	IsMinimized           bool              `json:"is_minimized"`
	FocusedConversationId string            `json:"focused_conversation_id"`
}
