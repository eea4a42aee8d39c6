package store

import "time"

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Message is immutable once created.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	AIID      string    `json:"aiId,omitempty"`
}

// Conversation is a chat session with one attendant.
// AIName is a snapshot taken at creation time and is never re-synced.
type Conversation struct {
	ID           string    `json:"id"`
	AIID         string    `json:"aiId"`
	AIName       string    `json:"aiName"`
	Messages     []Message `json:"messages"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"lastActivity"`
	IsActive     bool      `json:"isActive"`
}

// Clone copies the message slice.
func (c Conversation) Clone() Conversation {
	out := c
	out.Messages = append([]Message(nil), c.Messages...)
	if out.Messages == nil {
		out.Messages = []Message{}
	}
	return out
}

// LastMessage returns the newest message, if any.
func (c Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}
