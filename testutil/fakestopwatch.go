package testutil

import (
	"time"

	"github.com/stuphlabs/splitwatch/trigger"
)

// FakeStopwatch is a scripted stand-in for a running stopwatch. Tests set
// the elapsed reading directly instead of waiting for wall time to pass.
type FakeStopwatch struct {
	elapsed time.Duration
	stopped bool
}

func (f *FakeStopwatch) Split() (time.Duration, bool) {
	if f.stopped {
		return 0, false
	}
	return f.elapsed, true
}

// SetElapsed scripts the reading the next Split will report.
func (f *FakeStopwatch) SetElapsed(d time.Duration) {
	f.elapsed = d
}

// SetStopped makes subsequent Splits report a stopped stopwatch.
func (f *FakeStopwatch) SetStopped() {
	f.stopped = true
}

var _ trigger.Stopwatch = new(FakeStopwatch)
