package stopwatch

import (
	"fmt"
	"time"
)

// Stopwatch measures elapsed time against the monotonic clock. A Stopwatch
// is a plain value: copying one produces a fully independent timer, and the
// zero value is a usable stopped stopwatch.
//
// A Stopwatch is either running (a start instant has been captured and not
// yet cleared) or stopped. Elapsed holds the most recently captured
// measurement; it is refreshed only by Stop and Split, so it may be stale
// while running.
//
// A single instance offers no internal synchronization. Callers sharing one
// across goroutines must serialize access themselves.
type Stopwatch struct {
	startTime time.Time
	lastSplit time.Time
	elapsed   time.Duration
}

// New returns a stopped Stopwatch with no recorded measurement.
func New() Stopwatch {
	return Stopwatch{}
}

// StartNew returns a Stopwatch that is already running.
func StartNew() Stopwatch {
	var s Stopwatch
	s.Start()
	return s
}

// Start begins timing from the current instant. Any prior split or
// measurement is discarded, even if the stopwatch was already running.
func (s *Stopwatch) Start() {
	s.startTime = time.Now()
	s.lastSplit = time.Time{}
	s.elapsed = 0
}

// Stop halts timing and returns the measured duration, which is also
// retained for Elapsed and String. Stopping an already-stopped stopwatch
// changes nothing and returns zero, the same value a near-instantaneous
// measurement would produce; callers that need to tell the two apart
// should check Running first.
func (s *Stopwatch) Stop() time.Duration {
	if s.startTime.IsZero() {
		return 0
	}

	s.elapsed = time.Since(s.startTime)
	s.startTime = time.Time{}
	s.lastSplit = time.Time{}

	return s.elapsed
}

// Reset returns the stopwatch to the zero value from any state.
func (s *Stopwatch) Reset() {
	*s = Stopwatch{}
}

// Restart resets the stopwatch and immediately starts it again.
func (s *Stopwatch) Restart() {
	*s = Stopwatch{}
	s.Start()
}

// Split records an intermediate measurement without halting the timing.
// The returned duration is counted from the original start instant, not
// from the previous split, and is retained for Elapsed and String. If the
// stopwatch is not running, Split changes nothing and reports false.
func (s *Stopwatch) Split() (time.Duration, bool) {
	if s.startTime.IsZero() {
		return 0, false
	}

	s.lastSplit = time.Now()
	s.elapsed = time.Since(s.startTime)

	return s.elapsed, true
}

// Running reports whether the stopwatch is currently timing.
func (s *Stopwatch) Running() bool {
	return !s.startTime.IsZero()
}

// HasSplit reports whether a split has been recorded since the last start
// and not yet cleared by Stop or Reset.
func (s *Stopwatch) HasSplit() bool {
	return !s.lastSplit.IsZero()
}

// Elapsed returns the most recently captured measurement. While running it
// reflects the last Split, not the current instant.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// String renders the retained measurement in whole milliseconds, e.g.
// "1500ms".
func (s Stopwatch) String() string {
	return fmt.Sprintf("%dms", s.elapsed.Milliseconds())
}
