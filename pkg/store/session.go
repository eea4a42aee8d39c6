package store

// ChatState is the single in-memory state aggregate of the widget.
// Its lifecycle is the application session; nothing is persisted.
type ChatState struct {
	ActiveConversations []Conversation `json:"active_conversations"` // creation order
	ConversationHistory []Conversation `json:"conversation_history"` // archival order
	SelectedAIs         []string       `json:"selected_ais"`
	IsHistoryOpen       bool           `json:"is_history_open"`

	// Chat window state (tab bar collapsed, focused tab)
	IsMinimized           bool   `json:"is_minimized"`
	FocusedConversationID string `json:"focused_conversation_id"`
}

// Clone returns a deep copy, safe to hand to readers outside the owner's lock.
func (s ChatState) Clone() ChatState {
	out := s
	out.ActiveConversations = cloneConversations(s.ActiveConversations)
	out.ConversationHistory = cloneConversations(s.ConversationHistory)
	out.SelectedAIs = append([]string(nil), s.SelectedAIs...)
	if out.SelectedAIs == nil {
		out.SelectedAIs = []string{}
	}
	return out
}

// IsSelected reports whether aiID is in SelectedAIs.
func (s ChatState) IsSelected(aiID string) bool {
	for _, id := range s.SelectedAIs {
		if id == aiID {
			return true
		}
	}
	return false
}

func cloneConversations(in []Conversation) []Conversation {
	out := make([]Conversation, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}
