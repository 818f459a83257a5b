package platform

import (
	"sync"

	"github.com/go-drift/spotlight/pkg/errors"
)

// Loop is a FIFO queue of callbacks run on the interaction thread.
//
// Post may be called from any goroutine. RunPending must be called from the
// interaction thread, typically once per frame before painting.
type Loop struct {
	mu    sync.Mutex
	queue []func()
	wake  func()
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{}
}

// OnPost sets a function called after every Post, such as a frame request.
func (l *Loop) OnPost(fn func()) {
	l.mu.Lock()
	l.wake = fn
	l.mu.Unlock()
}

// Post appends callback to the queue. Nil callbacks are ignored.
func (l *Loop) Post(callback func()) {
	if callback == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, callback)
	wake := l.wake
	l.mu.Unlock()
	if wake != nil {
		wake()
	}
}

// RunPending runs the callbacks queued before the call and returns how many
// ran. Callbacks posted while draining wait for the next call. A panicking
// callback is reported and the rest still run.
func (l *Loop) RunPending() int {
	l.mu.Lock()
	callbacks := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, cb := range callbacks {
		runTask(cb)
	}
	return len(callbacks)
}

// Len returns the number of queued callbacks.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

func runTask(cb func()) {
	defer errors.Recover("platform.Loop.RunPending")
	cb()
}
