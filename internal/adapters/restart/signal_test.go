package restart

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]error
}

func (r *recorder) run(dir, command string, wait bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, command)
	return r.fail[command]
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func TestTrigger_RunsStopThenStart(t *testing.T) {
	rec := &recorder{}
	s := NewSignal(t.TempDir(), "stop", "start", WithDelay(time.Millisecond), WithRunner(rec.run))

	s.Trigger()
	s.Wait()

	calls := rec.snapshot()
	if len(calls) != 2 || calls[0] != "stop" || calls[1] != "start" {
		t.Errorf("unexpected calls: %v", calls)
	}
}

func TestTrigger_ReturnsBeforeRestart(t *testing.T) {
	rec := &recorder{}
	s := NewSignal(t.TempDir(), "stop", "start", WithDelay(time.Hour), WithRunner(rec.run))

	s.Trigger()

	if calls := rec.snapshot(); len(calls) != 0 {
		t.Errorf("restart ran synchronously: %v", calls)
	}
}

func TestTrigger_CoalescesPendingRestarts(t *testing.T) {
	rec := &recorder{}
	s := NewSignal(t.TempDir(), "stop", "start", WithDelay(20*time.Millisecond), WithRunner(rec.run))

	s.Trigger()
	s.Trigger()
	s.Trigger()
	s.Wait()

	if calls := rec.snapshot(); len(calls) != 2 {
		t.Errorf("expected a single restart, got %v", calls)
	}
}

func TestTrigger_ToleratesNothingToStop(t *testing.T) {
	rec := &recorder{fail: map[string]error{"stop": errors.New("exit status 1")}}
	s := NewSignal(t.TempDir(), "stop", "start", WithDelay(time.Millisecond), WithRunner(rec.run))

	s.Trigger()
	s.Wait()

	calls := rec.snapshot()
	if len(calls) != 2 || calls[1] != "start" {
		t.Errorf("start must still run after a failed stop: %v", calls)
	}
}
