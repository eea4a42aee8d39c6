package phone

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/pkg/attendant"
	"ai-attendant-widget/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	mu     sync.Mutex
	result attendant.PhoneResult
	err    error
	calls  [][2]string
	block  chan struct{}
}

func (f *fakeExecutor) ExecutePhone(ctx context.Context, aiID, phoneNumber string) (attendant.PhoneResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, [2]string{aiID, phoneNumber})
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	return f.result, f.err
}

func (f *fakeExecutor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newGuard(t *testing.T, exec *fakeExecutor, opts ...Option) *Guard {
	t.Helper()
	g := NewGuard(exec, logger.NewNopLogger(), opts...)
	t.Cleanup(g.Close)
	return g
}

func ready(g *Guard) {
	g.SelectAI("asst_a")
	g.SetPhone("11999998888")
}

func TestCanExecute(t *testing.T) {
	tests := []struct {
		name  string
		ai    string
		phone string
		want  bool
	}{
		{"mobile", "asst_a", "11999998888", true},
		{"landline", "asst_a", "1133334444", true},
		{"nine digits", "asst_a", "113333444", false},
		{"no attendant", "", "11999998888", false},
		{"no phone", "asst_a", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGuard(t, &fakeExecutor{})
			g.SelectAI(tt.ai)
			g.SetPhone(tt.phone)
			assert.Equal(t, tt.want, g.CanExecute())
			assert.Equal(t, tt.want, g.Snapshot().CanExecute)
		})
	}
}

func TestExecuteSuccessStartsCooldown(t *testing.T) {
	exec := &fakeExecutor{result: attendant.PhoneResult{Success: true, Message: "ok", ExecutionID: "exec-1"}}
	g := newGuard(t, exec, WithTick(time.Hour))
	ready(g)

	record, ok := g.Execute(context.Background())
	require.True(t, ok)

	assert.Equal(t, store.ExecutionCompleted, record.Status)
	assert.Equal(t, "asst_a", record.AIID)
	assert.Equal(t, "11999998888", record.PhoneNumber)
	assert.Equal(t, "exec-1", record.ExecutionID)
	assert.Equal(t, [][2]string{{"asst_a", "11999998888"}}, exec.calls)

	snap := g.Snapshot()
	assert.Equal(t, "", snap.SelectedAI)
	assert.Equal(t, "", snap.Phone)
	assert.Equal(t, 300, snap.CooldownRemaining)
	assert.Equal(t, "5:00", snap.CooldownDisplay)
	assert.False(t, snap.Executing)
	assert.False(t, snap.CanExecute)
	require.NotNil(t, snap.LastExecution)
	assert.Equal(t, store.ExecutionCompleted, snap.LastExecution.Status)
}

func TestExecuteUnsuccessfulResult(t *testing.T) {
	exec := &fakeExecutor{result: attendant.PhoneResult{Success: false, Message: "número inválido"}}
	g := newGuard(t, exec, WithTick(time.Hour))
	ready(g)

	record, ok := g.Execute(context.Background())
	require.True(t, ok)
	assert.Equal(t, store.ExecutionFailed, record.Status)
	assert.Equal(t, "número inválido", record.Message)
	assert.Equal(t, 300, g.Snapshot().CooldownRemaining)
}

func TestExecuteErrorIsUniform(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("timeout")}
	g := newGuard(t, exec, WithTick(time.Hour))
	ready(g)

	record, ok := g.Execute(context.Background())
	require.True(t, ok)
	assert.Equal(t, store.ExecutionFailed, record.Status)
	assert.Empty(t, record.ExecutionID)

	snap := g.Snapshot()
	assert.Equal(t, "", snap.SelectedAI)
	assert.Equal(t, "", snap.Phone)
	assert.Equal(t, 300, snap.CooldownRemaining)
}

func TestExecuteRejectedWhenNotReady(t *testing.T) {
	exec := &fakeExecutor{result: attendant.PhoneResult{Success: true}}
	g := newGuard(t, exec)
	g.SelectAI("asst_a")
	g.SetPhone("119")

	_, ok := g.Execute(context.Background())
	assert.False(t, ok)
	assert.Equal(t, 0, exec.callCount())
	assert.Nil(t, g.Snapshot().LastExecution)
}

func TestFormLockedDuringCooldown(t *testing.T) {
	exec := &fakeExecutor{result: attendant.PhoneResult{Success: true}}
	g := newGuard(t, exec, WithTick(time.Hour))
	ready(g)
	_, ok := g.Execute(context.Background())
	require.True(t, ok)

	assert.False(t, g.SelectAI("asst_b"))
	assert.False(t, g.SetPhone("21988887777"))

	_, ok = g.Execute(context.Background())
	assert.False(t, ok)
	assert.Equal(t, 1, exec.callCount())
}

func TestExecuteRejectedWhileInFlight(t *testing.T) {
	exec := &fakeExecutor{result: attendant.PhoneResult{Success: true}, block: make(chan struct{})}
	g := newGuard(t, exec, WithTick(time.Hour))
	ready(g)

	done := make(chan struct{})
	go func() {
		defer close(done)
		g.Execute(context.Background())
	}()

	require.Eventually(t, func() bool { return g.Snapshot().Executing }, time.Second, time.Millisecond)
	snap := g.Snapshot()
	require.NotNil(t, snap.LastExecution)
	assert.Equal(t, store.ExecutionExecuting, snap.LastExecution.Status)

	_, ok := g.Execute(context.Background())
	assert.False(t, ok)
	assert.False(t, g.SetPhone("21988887777"))

	close(exec.block)
	<-done
	assert.Equal(t, 1, exec.callCount())
}

func TestCooldownTicksDownToZero(t *testing.T) {
	var mu sync.Mutex
	var seen []int
	observer := func(s Snapshot) {
		mu.Lock()
		seen = append(seen, s.CooldownRemaining)
		mu.Unlock()
	}

	exec := &fakeExecutor{result: attendant.PhoneResult{Success: true}}
	g := newGuard(t, exec, WithCooldown(3*time.Second), WithTick(5*time.Millisecond), WithObserver(observer))
	ready(g)

	_, ok := g.Execute(context.Background())
	require.True(t, ok)

	require.Eventually(t, func() bool { return g.Snapshot().CooldownRemaining == 0 }, 2*time.Second, 5*time.Millisecond)

	// form unlocks once the cooldown ends
	ready(g)
	assert.True(t, g.CanExecute())

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, seen, 3)
	assert.Contains(t, seen, 2)
	assert.Contains(t, seen, 1)
	assert.Contains(t, seen, 0)
}

func TestCloseFreezesCooldown(t *testing.T) {
	exec := &fakeExecutor{result: attendant.PhoneResult{Success: true}}
	g := NewGuard(exec, logger.NewNopLogger(), WithCooldown(1000*time.Second), WithTick(time.Millisecond))
	ready(g)
	_, ok := g.Execute(context.Background())
	require.True(t, ok)

	g.Close()
	frozen := g.Snapshot().CooldownRemaining
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, frozen, g.Snapshot().CooldownRemaining)
	assert.Greater(t, frozen, 0)

	// idempotent
	g.Close()
}

func TestExecuteFinishingAfterCloseDoesNotTick(t *testing.T) {
	exec := &fakeExecutor{result: attendant.PhoneResult{Success: true}, block: make(chan struct{})}
	g := NewGuard(exec, logger.NewNopLogger(), WithCooldown(5*time.Second), WithTick(time.Millisecond))
	ready(g)

	done := make(chan struct{})
	go func() {
		defer close(done)
		g.Execute(context.Background())
	}()
	require.Eventually(t, func() bool { return g.Snapshot().Executing }, time.Second, time.Millisecond)

	g.Close()
	close(exec.block)
	<-done

	snap := g.Snapshot()
	assert.Equal(t, 5, snap.CooldownRemaining)
	assert.False(t, snap.CanExecute)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 5, g.Snapshot().CooldownRemaining)
	g.tickers.Wait()
}
