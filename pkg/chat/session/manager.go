package session

import (
	"fmt"
	"sync"
	"time"

	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/pkg/store"
)

const logModule = "SessionManager"

// GreetingTemplate seeds every new conversation. Arguments: name, description.
const GreetingTemplate = "Olá! Sou %s, %s. Como posso ajudá-lo hoje?"

// Manager owns the widget's ChatState: selected attendants, active
// conversations (the open tabs) and the archived history.
//
// All mutations happen in place under mu. Readers only ever receive clones.
type Manager struct {
	mu     sync.RWMutex
	state  store.ChatState
	ids    *store.IDGenerator
	now    func() time.Time
	logger logger.ILogger
}

// Option customizes a Manager.
type Option func(*Manager)

func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func WithIDGenerator(ids *store.IDGenerator) Option {
	return func(m *Manager) {
		m.ids = ids
	}
}

// NewManager creates a manager with an empty state.
func NewManager(log logger.ILogger, opts ...Option) *Manager {
	m := &Manager{
		state: store.ChatState{
			ActiveConversations: []store.Conversation{},
			ConversationHistory: []store.Conversation{},
			SelectedAIs:         []string{},
		},
		ids:    store.NewIDGenerator(),
		now:    time.Now,
		logger: log,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Snapshot returns a deep copy of the whole state.
func (m *Manager) Snapshot() store.ChatState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone()
}

// ToggleSelection flips membership of aiID and returns the new membership.
func (m *Manager) ToggleSelection(aiID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, id := range m.state.SelectedAIs {
		if id == aiID {
			m.state.SelectedAIs = append(m.state.SelectedAIs[:i:i], m.state.SelectedAIs[i+1:]...)
			return false
		}
	}
	m.state.SelectedAIs = append(m.state.SelectedAIs, aiID)
	return true
}

// StartConversation opens a tab for ai. When one is already active for the same
// attendant nothing is duplicated: the existing one is returned with created=false
// and the caller just reveals it.
func (m *Manager) StartConversation(ai store.AIModel) (conv store.Conversation, created bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.IsMinimized = false

	if idx := m.indexByAI(ai.ID); idx >= 0 {
		existing := m.state.ActiveConversations[idx]
		m.state.FocusedConversationID = existing.ID
		return existing.Clone(), false
	}

	now := m.now()
	conv = store.Conversation{
		ID:     m.ids.ConversationID(ai.ID),
		AIID:   ai.ID,
		AIName: ai.Name,
		Messages: []store.Message{{
			ID:        m.ids.MessageID(),
			Content:   fmt.Sprintf(GreetingTemplate, ai.Name, ai.Description),
			Sender:    store.SenderAI,
			Timestamp: now,
			AIID:      ai.ID,
		}},
		CreatedAt:    now,
		LastActivity: now,
		IsActive:     true,
	}
	m.state.ActiveConversations = append(m.state.ActiveConversations, conv)
	m.repairFocus()

	return conv.Clone(), true
}

// AppendMessages replaces the message list of an active conversation and bumps
// LastActivity. Archived or unknown ids are left untouched and false is returned;
// late AI replies for closed tabs land here and are dropped.
func (m *Manager) AppendMessages(conversationID string, messages []store.Message) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexByID(conversationID)
	if idx < 0 {
		return false
	}

	conv := &m.state.ActiveConversations[idx]
	conv.Messages = append([]store.Message(nil), messages...)
	conv.LastActivity = m.nextActivity(conv.LastActivity)
	return true
}

// PushMessage appends one message to an active conversation atomically.
// Same miss semantics as AppendMessages.
func (m *Manager) PushMessage(conversationID string, msg store.Message) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexByID(conversationID)
	if idx < 0 {
		return false
	}

	conv := &m.state.ActiveConversations[idx]
	conv.Messages = append(conv.Messages[:len(conv.Messages):len(conv.Messages)], msg)
	conv.LastActivity = m.nextActivity(conv.LastActivity)
	return true
}

// CloseConversation removes a tab. Conversations the visitor engaged with
// (more than the greeting) go to history; untouched ones are discarded.
// Returns whether the conversation was archived and whether it existed.
func (m *Manager) CloseConversation(conversationID string) (archived bool, found bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexByID(conversationID)
	if idx < 0 {
		return false, false
	}

	conv := m.state.ActiveConversations[idx]
	m.state.ActiveConversations = append(m.state.ActiveConversations[:idx:idx], m.state.ActiveConversations[idx+1:]...)

	if len(conv.Messages) > 1 {
		conv.IsActive = false
		m.state.ConversationHistory = append(m.state.ConversationHistory, conv)
		archived = true
	}
	m.repairFocus()
	return archived, true
}

// MinimizeAll archives every active conversation regardless of engagement.
// Returns the ids moved to history, in their original order.
func (m *Manager) MinimizeAll() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	moved := make([]string, 0, len(m.state.ActiveConversations))
	for _, conv := range m.state.ActiveConversations {
		conv.IsActive = false
		m.state.ConversationHistory = append(m.state.ConversationHistory, conv)
		moved = append(moved, conv.ID)
	}
	m.state.ActiveConversations = []store.Conversation{}
	m.repairFocus()
	return moved
}

// RestoreConversation moves conv back to the active set and drops any history
// entry with the same id. It does not check for another active conversation
// with the same attendant; a duplicate is logged and kept.
func (m *Manager) RestoreConversation(conv store.Conversation) store.Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()

	if idx := m.indexByAI(conv.AIID); idx >= 0 {
		m.logger.Warn(logModule, "Restored conversation shares attendant with an active one", map[string]interface{}{
			"conversation_id": conv.ID,
			"active_id":       m.state.ActiveConversations[idx].ID,
			"ai_id":           conv.AIID,
		})
	}

	restored := conv.Clone()
	restored.IsActive = true
	m.state.ActiveConversations = append(m.state.ActiveConversations, restored)
	m.removeFromHistory(conv.ID)
	m.state.IsHistoryOpen = false
	m.state.IsMinimized = false
	m.repairFocus()

	return restored.Clone()
}

// DeleteFromHistory permanently removes an archived conversation.
func (m *Manager) DeleteFromHistory(conversationID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeFromHistory(conversationID)
}

// Active returns a copy of an active conversation.
func (m *Manager) Active(conversationID string) (store.Conversation, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.indexByID(conversationID)
	if idx < 0 {
		return store.Conversation{}, false
	}
	return m.state.ActiveConversations[idx].Clone(), true
}

// Archived returns a copy of a history entry.
func (m *Manager) Archived(conversationID string) (store.Conversation, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, conv := range m.state.ConversationHistory {
		if conv.ID == conversationID {
			return conv.Clone(), true
		}
	}
	return store.Conversation{}, false
}

// Focus selects the visible tab. Unknown ids are ignored.
func (m *Manager) Focus(conversationID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexByID(conversationID) < 0 {
		return false
	}
	m.state.FocusedConversationID = conversationID
	return true
}

func (m *Manager) SetHistoryOpen(open bool) {
	m.mu.Lock()
	m.state.IsHistoryOpen = open
	m.mu.Unlock()
}

func (m *Manager) SetMinimized(minimized bool) {
	m.mu.Lock()
	m.state.IsMinimized = minimized
	m.mu.Unlock()
}

// --- helpers, caller holds mu ---

func (m *Manager) indexByID(conversationID string) int {
	for i, conv := range m.state.ActiveConversations {
		if conv.ID == conversationID {
			return i
		}
	}
	return -1
}

func (m *Manager) indexByAI(aiID string) int {
	for i, conv := range m.state.ActiveConversations {
		if conv.AIID == aiID {
			return i
		}
	}
	return -1
}

func (m *Manager) removeFromHistory(conversationID string) bool {
	for i, conv := range m.state.ConversationHistory {
		if conv.ID == conversationID {
			m.state.ConversationHistory = append(m.state.ConversationHistory[:i:i], m.state.ConversationHistory[i+1:]...)
			return true
		}
	}
	return false
}

// repairFocus keeps the focused tab pointing at an active conversation:
// the first one when nothing valid is focused, empty when there are none.
func (m *Manager) repairFocus() {
	if len(m.state.ActiveConversations) == 0 {
		m.state.FocusedConversationID = ""
		return
	}
	if m.state.FocusedConversationID != "" && m.indexByID(m.state.FocusedConversationID) >= 0 {
		return
	}
	m.state.FocusedConversationID = m.state.ActiveConversations[0].ID
}

// nextActivity never returns a time at or before prev, even on coarse clocks.
func (m *Manager) nextActivity(prev time.Time) time.Time {
	now := m.now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}
