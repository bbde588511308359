// Package watch regenerates heading numbers while a document is edited.
package watch

import (
	"sync"
	"time"

	"github.com/jackzampolin/headnum/internal/config"
)

// Debouncer coalesces bursts of triggers into one call. Each TriggerAfter
// cancels the pending call and schedules a new one; a superseded call never
// runs.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// NewDebouncer creates a debouncer whose delay applies when TriggerAfter is
// given a non-positive one. A non-positive delay here uses the default of
// 500ms.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = config.DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// TriggerAfter schedules fn after delay, replacing any pending call.
func (d *Debouncer) TriggerAfter(delay time.Duration, fn func()) {
	if delay <= 0 {
		delay = d.delay
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.cancelLocked()

	gen := d.gen
	d.timer = time.AfterFunc(delay, func() {
		d.mu.Lock()
		if d.gen != gen || d.stopped {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending call, reporting whether there was one.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelLocked()
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels the pending call and ignores every later TriggerAfter.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}

func (d *Debouncer) cancelLocked() bool {
	d.gen++
	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	return true
}
