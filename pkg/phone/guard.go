package phone

import (
	"context"
	"sync"
	"time"

	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/pkg/attendant"
	"ai-attendant-widget/pkg/store"
)

const logModule = "PhoneGuard"

// DefaultCooldown is the pause enforced after every execution attempt.
const DefaultCooldown = 300 * time.Second

// Snapshot is the form state as the widget renders it.
type Snapshot struct {
	SelectedAI        string                      `json:"selectedAi"`
	Phone             string                      `json:"phone"`
	CooldownRemaining int                         `json:"cooldownRemaining"`
	CooldownDisplay   string                      `json:"cooldownDisplay"`
	Executing         bool                        `json:"executing"`
	LastExecution     *store.PhoneExecutionRecord `json:"lastExecution,omitempty"`
	CanExecute        bool                        `json:"canExecute"`
}

// Guard serializes phone executions: one at a time, each followed by a cooldown
// during which the form is locked.
type Guard struct {
	mu         sync.Mutex
	executor   attendant.PhoneExecutor
	cooldown   int
	tick       time.Duration
	selectedAI string
	phone      string
	remaining  int
	executing  bool
	last       *store.PhoneExecutionRecord
	stopTicker context.CancelFunc
	tickers    sync.WaitGroup
	closed     bool
	onChange   func(Snapshot)
	now        func() time.Time
	logger     logger.ILogger
}

type Option func(*Guard)

func WithCooldown(d time.Duration) Option {
	return func(g *Guard) {
		g.cooldown = int(d / time.Second)
	}
}

// WithTick sets the wall time of one cooldown second. Tests shrink it.
func WithTick(d time.Duration) Option {
	return func(g *Guard) {
		g.tick = d
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Guard) {
		g.now = now
	}
}

// WithObserver receives a snapshot after every state change, ticks included.
func WithObserver(fn func(Snapshot)) Option {
	return func(g *Guard) {
		g.onChange = fn
	}
}

func NewGuard(executor attendant.PhoneExecutor, log logger.ILogger, opts ...Option) *Guard {
	g := &Guard{
		executor: executor,
		cooldown: int(DefaultCooldown / time.Second),
		tick:     time.Second,
		now:      time.Now,
		logger:   log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SelectAI is ignored while the form is locked.
func (g *Guard) SelectAI(aiID string) bool {
	g.mu.Lock()
	if g.inputLocked() {
		g.mu.Unlock()
		return false
	}
	g.selectedAI = aiID
	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.notify(snap)
	return true
}

// SetPhone stores the masked form of input, truncated to MaxDigits.
func (g *Guard) SetPhone(input string) bool {
	g.mu.Lock()
	if g.inputLocked() {
		g.mu.Unlock()
		return false
	}
	if Digits(input) == "" {
		g.phone = ""
	} else {
		g.phone = FormatPhone(input)
	}
	snap := g.snapshotLocked()
	g.mu.Unlock()

	g.notify(snap)
	return true
}

func (g *Guard) CanExecute() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canExecuteLocked()
}

func (g *Guard) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// Execute runs the selected attendant against the entered number and blocks
// until the collaborator answers. Returns false without side effects when the
// form does not allow execution.
func (g *Guard) Execute(ctx context.Context) (store.PhoneExecutionRecord, bool) {
	g.mu.Lock()
	if !g.canExecuteLocked() {
		g.mu.Unlock()
		return store.PhoneExecutionRecord{}, false
	}
	aiID := g.selectedAI
	digits := Digits(g.phone)
	g.executing = true
	g.last = &store.PhoneExecutionRecord{
		AIID:        aiID,
		PhoneNumber: digits,
		Timestamp:   g.now(),
		Status:      store.ExecutionExecuting,
	}
	snap := g.snapshotLocked()
	g.mu.Unlock()
	g.notify(snap)

	result, err := g.executor.ExecutePhone(ctx, aiID, digits)

	record := store.PhoneExecutionRecord{
		AIID:        aiID,
		PhoneNumber: digits,
		Timestamp:   g.now(),
		Status:      store.ExecutionFailed,
	}
	if err != nil {
		g.logger.Error(logModule, "Phone execution failed", map[string]interface{}{
			"ai_id": aiID,
			"error": err.Error(),
		})
	} else {
		if result.Success {
			record.Status = store.ExecutionCompleted
		}
		record.ExecutionID = result.ExecutionID
		record.Message = result.Message
		g.logger.Info(logModule, "Phone execution finished", map[string]interface{}{
			"ai_id":        aiID,
			"status":       string(record.Status),
			"execution_id": result.ExecutionID,
		})
	}

	g.mu.Lock()
	g.last = &record
	g.selectedAI = ""
	g.phone = ""
	g.executing = false
	g.startCooldownLocked()
	snap = g.snapshotLocked()
	g.mu.Unlock()
	g.notify(snap)

	return record, true
}

// Close stops the cooldown ticker. Remaining cooldown is frozen, and an
// execution finishing after Close records its cooldown without ticking it.
func (g *Guard) Close() {
	g.mu.Lock()
	g.closed = true
	if g.stopTicker != nil {
		g.stopTicker()
		g.stopTicker = nil
	}
	g.mu.Unlock()
	g.tickers.Wait()
}

// --- helpers, caller holds mu ---

func (g *Guard) inputLocked() bool {
	return g.remaining > 0 || g.executing
}

func (g *Guard) canExecuteLocked() bool {
	return g.selectedAI != "" &&
		len(Digits(g.phone)) >= MinDigits &&
		g.remaining == 0 &&
		!g.executing
}

func (g *Guard) snapshotLocked() Snapshot {
	snap := Snapshot{
		SelectedAI:        g.selectedAI,
		Phone:             g.phone,
		CooldownRemaining: g.remaining,
		CooldownDisplay:   FormatCooldown(g.remaining),
		Executing:         g.executing,
		CanExecute:        g.canExecuteLocked(),
	}
	if g.last != nil {
		rec := *g.last
		snap.LastExecution = &rec
	}
	return snap
}

func (g *Guard) startCooldownLocked() {
	if g.stopTicker != nil {
		g.stopTicker()
		g.stopTicker = nil
	}
	if g.cooldown <= 0 {
		g.remaining = 0
		return
	}
	g.remaining = g.cooldown
	if g.closed {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	g.stopTicker = cancel
	g.tickers.Add(1)
	go g.runCooldown(ctx)
}

func (g *Guard) runCooldown(ctx context.Context) {
	defer g.tickers.Done()

	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.mu.Lock()
			if ctx.Err() != nil {
				g.mu.Unlock()
				return
			}
			if g.remaining > 0 {
				g.remaining--
			}
			done := g.remaining == 0
			if done && g.stopTicker != nil {
				g.stopTicker()
				g.stopTicker = nil
			}
			snap := g.snapshotLocked()
			g.mu.Unlock()

			g.notify(snap)
			if done {
				return
			}
		}
	}
}

func (g *Guard) notify(snap Snapshot) {
	if g.onChange != nil {
		g.onChange(snap)
	}
}
