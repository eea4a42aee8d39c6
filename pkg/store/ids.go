package store

import (
	"fmt"
	"sync/atomic"
	"time"
)

// IDGenerator hands out ids that stay unique when two calls land in the same
// millisecond. The counter suffix also keeps them ordered within a process.
type IDGenerator struct {
	counter uint64
	now     func() time.Time
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// NewIDGeneratorWithClock is used by tests that freeze time.
func NewIDGeneratorWithClock(now func() time.Time) *IDGenerator {
	return &IDGenerator{now: now}
}

func (g *IDGenerator) next() (int64, uint64) {
	n := atomic.AddUint64(&g.counter, 1)
	return g.now().UnixMilli(), n
}

// MessageID returns "<unix-millis>-<seq>".
func (g *IDGenerator) MessageID() string {
	ms, n := g.next()
	return fmt.Sprintf("%d-%d", ms, n)
}

// ConversationID returns "<aiId>-<unix-millis>-<seq>".
func (g *IDGenerator) ConversationID(aiID string) string {
	ms, n := g.next()
	return fmt.Sprintf("%s-%d-%d", aiID, ms, n)
}

// PrefixedID returns "<prefix>-<unix-millis>-<seq>", e.g. custom-... or exec-...
func (g *IDGenerator) PrefixedID(prefix string) string {
	ms, n := g.next()
	return fmt.Sprintf("%s-%d-%d", prefix, ms, n)
}
