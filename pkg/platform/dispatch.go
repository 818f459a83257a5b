// Package platform connects the overlay to the host interaction loop.
//
// The overlay never calls follow-up work inline from an input handler or a
// target tap listener. It hands callbacks to [Dispatch], which forwards them
// to whatever the host registered with [RegisterDispatch]. [Loop] is the
// default implementation: a FIFO task queue drained once per frame by the host.
package platform

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the dispatch function used to schedule callbacks on
// the interaction loop. Passing nil unregisters it.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the interaction loop.
// Returns true if the callback was successfully scheduled, false if no dispatch function
// is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

// SetupTestDispatch installs a Loop as the dispatcher and registers a
// cleanup that unregisters it.
//
//	loop := platform.SetupTestDispatch(t.Cleanup)
func SetupTestDispatch(cleanup func(func())) *Loop {
	loop := NewLoop()
	RegisterDispatch(loop.Post)
	cleanup(func() { RegisterDispatch(nil) })
	return loop
}
