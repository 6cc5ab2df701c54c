package views

import (
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
)

// FyneScheduler delays callbacks with a timer and then hops back onto the
// Fyne UI thread. Each animation tick schedules the next one only after it
// ran, so ticks never overlap.
type FyneScheduler struct {
	stopped atomic.Bool
}

// NewFyneScheduler creates a running scheduler
func NewFyneScheduler() *FyneScheduler {
	return &FyneScheduler{}
}

// AfterFunc runs fn on the UI thread after d. Calls after Shutdown are
// dropped.
func (s *FyneScheduler) AfterFunc(d time.Duration, fn func()) {
	if s.stopped.Load() {
		return
	}
	time.AfterFunc(d, func() {
		if s.stopped.Load() {
			return
		}
		fyne.Do(fn)
	})
}

// Shutdown stops delivering pending and future callbacks
func (s *FyneScheduler) Shutdown() {
	s.stopped.Store(true)
}
