// Package animation drives the overlay's fade transitions.
//
// An [AnimationController] moves a Value between 0 and 1 over a Duration,
// shaped by a curve such as [EaseInOut]. Controllers tick through [Ticker]s,
// and tickers only advance when the host frame loop calls [StepTickers].
// Nothing here starts goroutines: the host decides when frames happen, which
// keeps every value change on the interaction thread.
//
// Time comes from a clockwork clock installed with [SetClock], so tests can
// use a fake clock and step frames by hand.
package animation

import (
	"sync"
	"time"

	"github.com/go-drift/spotlight/pkg/errors"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host loop.
// A panicking callback is reported and its ticker stopped; the
// remaining tickers still run.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks can start and stop tickers.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.step(now.Sub(ticker.start))
		}
	}
}

func (t *Ticker) step(elapsed time.Duration) {
	defer errors.RecoverWithCallback("animation.StepTickers", func(any) {
		t.Stop()
	})
	t.callback(elapsed)
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
