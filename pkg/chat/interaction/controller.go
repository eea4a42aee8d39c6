package interaction

import (
	"context"
	"strings"
	"sync"
	"time"

	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/pkg/attendant"
	"ai-attendant-widget/pkg/store"
)

const logModule = "Interaction"

// ErrorReply is shown in place of the attendant's answer when dispatch fails.
const ErrorReply = "Desculpe, ocorreu um erro ao processar sua mensagem. Tente novamente."

// Conversations is the slice of the session manager the controller needs.
type Conversations interface {
	Active(conversationID string) (store.Conversation, bool)
	PushMessage(conversationID string, msg store.Message) bool
}

// StateRepository stores drafts and in-flight flags keyed by conversation id.
type StateRepository interface {
	Get(conversationID string) (store.InteractionState, bool)
	Save(conversationID string, state store.InteractionState)
	Delete(conversationID string)
}

// Observer is told about changes so they can be pushed to the widget.
// Calls happen outside any lock, possibly from dispatch goroutines.
type Observer interface {
	MessagesChanged(conversationID string)
	LoadingChanged(conversationID string, loading bool)
}

type nopObserver struct{}

func (nopObserver) MessagesChanged(string)       {}
func (nopObserver) LoadingChanged(string, bool) {}

// Controller runs the send flow of every open conversation. Each conversation
// has at most one dispatch in flight; different conversations proceed
// independently.
type Controller struct {
	mu            sync.Mutex
	wg            sync.WaitGroup
	seq           uint64
	conversations Conversations
	repo          StateRepository
	responder     attendant.Responder
	observer      Observer
	ids           *store.IDGenerator
	now           func() time.Time
	logger        logger.ILogger
}

type Option func(*Controller)

func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observer = o
		}
	}
}

func WithIDGenerator(ids *store.IDGenerator) Option {
	return func(c *Controller) {
		c.ids = ids
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

func NewController(conversations Conversations, repo StateRepository, responder attendant.Responder, log logger.ILogger, opts ...Option) *Controller {
	c := &Controller{
		conversations: conversations,
		repo:          repo,
		responder:     responder,
		observer:      nopObserver{},
		ids:           store.NewIDGenerator(),
		now:           time.Now,
		logger:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) SetDraft(conversationID, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, _ := c.repo.Get(conversationID)
	st.Draft = text
	c.repo.Save(conversationID, st)
}

func (c *Controller) Draft(conversationID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, _ := c.repo.Get(conversationID)
	return st.Draft
}

func (c *Controller) IsLoading(conversationID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, _ := c.repo.Get(conversationID)
	return st.Loading
}

// CanSend is true when there is something to send and no reply is pending.
func (c *Controller) CanSend(conversationID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, _ := c.repo.Get(conversationID)
	return strings.TrimSpace(st.Draft) != "" && !st.Loading
}

// SendMessage posts the current draft. The user message is appended before
// this returns; the attendant's reply (or ErrorReply) is appended later by a
// background dispatch. Returns the user message and false when nothing was sent.
func (c *Controller) SendMessage(ctx context.Context, conversationID string) (store.Message, bool) {
	c.mu.Lock()

	st, _ := c.repo.Get(conversationID)
	text := strings.TrimSpace(st.Draft)
	if text == "" || st.Loading {
		c.mu.Unlock()
		return store.Message{}, false
	}

	conv, ok := c.conversations.Active(conversationID)
	if !ok {
		c.mu.Unlock()
		return store.Message{}, false
	}

	msg := store.Message{
		ID:        c.ids.MessageID(),
		Content:   text,
		Sender:    store.SenderUser,
		Timestamp: c.now(),
		AIID:      conv.AIID,
	}
	if !c.conversations.PushMessage(conversationID, msg) {
		c.mu.Unlock()
		return store.Message{}, false
	}

	c.seq++
	dispatch := c.seq
	st.Draft = ""
	st.Loading = true
	st.Dispatch = dispatch
	c.repo.Save(conversationID, st)
	c.wg.Add(1)
	c.mu.Unlock()

	c.observer.MessagesChanged(conversationID)
	c.observer.LoadingChanged(conversationID, true)

	go c.dispatch(context.WithoutCancel(ctx), conversationID, conv.AIID, text, dispatch)

	return msg, true
}

func (c *Controller) dispatch(ctx context.Context, conversationID, aiID, text string, dispatch uint64) {
	defer c.wg.Done()
	defer c.finish(conversationID, dispatch)

	reply, err := c.responder.SendMessage(ctx, aiID, text)
	if err != nil {
		c.logger.Error(logModule, "Failed to get attendant reply", map[string]interface{}{
			"conversation_id": conversationID,
			"ai_id":           aiID,
			"error":           err.Error(),
		})
		reply = ErrorReply
	}

	msg := store.Message{
		ID:        c.ids.MessageID(),
		Content:   reply,
		Sender:    store.SenderAI,
		Timestamp: c.now(),
		AIID:      aiID,
	}
	if !c.conversations.PushMessage(conversationID, msg) {
		c.logger.Debug(logModule, "Reply dropped, conversation no longer active", map[string]interface{}{
			"conversation_id": conversationID,
		})
		return
	}
	c.observer.MessagesChanged(conversationID)
}

func (c *Controller) finish(conversationID string, dispatch uint64) {
	c.mu.Lock()
	st, ok := c.repo.Get(conversationID)
	current := ok && st.Dispatch == dispatch && st.Loading
	if current {
		st.Loading = false
		c.repo.Save(conversationID, st)
	}
	c.mu.Unlock()

	if current {
		c.observer.LoadingChanged(conversationID, false)
	}
}

// Forget drops the draft and in-flight flag of a conversation that left the tab bar.
// A dispatch still running for it completes without recreating the entry.
func (c *Controller) Forget(conversationID string) {
	c.mu.Lock()
	c.repo.Delete(conversationID)
	c.mu.Unlock()
}

// Wait blocks until every dispatch started so far has finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}
