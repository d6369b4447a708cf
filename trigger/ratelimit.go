package trigger

import (
	"errors"
	"time"

	"github.com/proidiot/gone/log"

	"github.com/stuphlabs/splitwatch/stopwatch"
)

// ErrRateLimitExceeded indicates that the trigger has been called more than
// the allowed number of times within the specified duration, and so the
// guarded trigger will not be called.
var ErrRateLimitExceeded = errors.New("Rate limit exceeded for trigger")

// Stopwatch is the measurement surface RateLimitTrigger requires of the
// timers it keeps: an intermediate elapsed reading that does not halt the
// timer. *stopwatch.Stopwatch satisfies it.
type Stopwatch interface {
	Split() (time.Duration, bool)
}

// RateLimitTrigger is a Triggerrer that will prevent a guarded trigger
// from being called more than a specified number of times over a specified
// rolling duration. Each permitted call is tracked by a running stopwatch,
// and a tracked call stops counting against the limit once its measured
// age exceeds the period.
type RateLimitTrigger struct {
	GuardedTrigger   Triggerrer
	MaxAllowed       uint
	Period           time.Duration
	NewStopwatch     func() Stopwatch
	previousTriggers []Stopwatch
}

// Trigger executes its guarded trigger if and only if it has not been
// called more than the allowed number of times within the specified rolling
// window of time. If the rate limit is exceeded, ErrRateLimitExceeded will
// be returned, and the guarded trigger will not be called.
func (r *RateLimitTrigger) Trigger() error {
	_ = log.Debug("rate limit trigger initiated")

	if r.previousTriggers != nil {
		_ = log.Debug("determine if rate limit has been exceeded")
		for len(r.previousTriggers) > 0 {
			elapsed, running := r.previousTriggers[0].Split()
			if !running || elapsed > r.Period {
				r.previousTriggers = r.previousTriggers[1:]
			} else {
				break
			}
		}

		if uint(len(r.previousTriggers)) >= r.MaxAllowed {
			_ = log.Debug("rate limit has been exceeded")
			return ErrRateLimitExceeded
		}
	} else {
		_ = log.Debug("first rate limited trigger")
		r.previousTriggers = make([]Stopwatch, 0)
	}

	if nil == r.NewStopwatch {
		r.NewStopwatch = func() Stopwatch {
			s := stopwatch.StartNew()
			return &s
		}
	}
	r.previousTriggers = append(r.previousTriggers, r.NewStopwatch())

	_ = log.Debug("rate limit not exceeded, cascading the trigger")
	return r.GuardedTrigger.Trigger()
}
