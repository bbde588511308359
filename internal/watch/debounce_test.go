package watch

import (
	"sync/atomic"
	"testing"
	"time"
)

// waitFor polls cond until it holds or the timeout passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Int32

	for i := 1; i <= 5; i++ {
		d.TriggerAfter(0, func() {
			calls.Add(1)
			last.Store(int32(i))
		})
		time.Sleep(5 * time.Millisecond)
	}

	if !waitFor(t, time.Second, func() bool { return calls.Load() == 1 }) {
		t.Fatalf("expected one call, got %d", calls.Load())
	}
	time.Sleep(60 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("expected exactly one call, got %d", got)
	}
	if got := last.Load(); got != 5 {
		t.Errorf("expected the last trigger to run, got trigger %d", got)
	}
	if d.Pending() {
		t.Error("nothing should be pending after the call ran")
	}
}

func TestDebouncer_TriggerAfterOverridesDelay(t *testing.T) {
	d := NewDebouncer(time.Hour)
	var calls atomic.Int32

	d.TriggerAfter(10*time.Millisecond, func() { calls.Add(1) })
	if !waitFor(t, time.Second, func() bool { return calls.Load() == 1 }) {
		t.Error("call with explicit delay did not run")
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32

	d.TriggerAfter(0, func() { calls.Add(1) })
	if !d.Pending() {
		t.Error("expected a pending call")
	}
	if !d.Cancel() {
		t.Error("Cancel should report the pending call")
	}
	if d.Cancel() {
		t.Error("second Cancel should find nothing")
	}

	time.Sleep(50 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("cancelled call ran %d times", got)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var calls atomic.Int32

	d.TriggerAfter(0, func() { calls.Add(1) })
	d.Stop()
	d.TriggerAfter(0, func() { calls.Add(1) })

	time.Sleep(40 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("calls after Stop: %d", got)
	}
	if d.Pending() {
		t.Error("nothing should be pending after Stop")
	}
}

func TestDebouncer_DefaultDelay(t *testing.T) {
	d := NewDebouncer(0)
	if d.delay != 500*time.Millisecond {
		t.Errorf("default delay = %v, want 500ms", d.delay)
	}
}
