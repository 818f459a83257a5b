package animation

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

var (
	clockMu sync.RWMutex
	// clock is the package-level time source, replaceable for testing.
	clock clockwork.Clock = clockwork.NewRealClock()
)

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup. Passing nil restores the
// real clock.
//
// Tests inject clockwork.NewFakeClock() and call Advance followed by
// StepTickers to move animations deterministically.
func SetClock(c clockwork.Clock) clockwork.Clock {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock.Now()
}
