package animation

import (
	"fmt"
	"math"
	"time"
)

// AnimationStatus represents the current state of an animation.
//
//	               Forward()
//	Dismissed ─────────────────► Completed
//	    ▲                             │
//	    │         Reverse()           │
//	    └─────────────────────────────┘
//
// While animating, status is AnimationForward or AnimationReverse.
type AnimationStatus int

const (
	// AnimationDismissed means the animation is stopped at 0.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the animation is playing toward 1.
	AnimationForward
	// AnimationReverse means the animation is playing toward 0.
	AnimationReverse
	// AnimationCompleted means the animation is stopped at 1.
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController drives a value between 0 and 1 over Duration.
//
// Listeners observe every value change; status listeners observe the
// transitions above. A Duration of zero or less jumps to the target inside
// Forward/Reverse, so completion is reported before they return.
//
// Always call Dispose when done to stop the ticker and drop listeners.
type AnimationController struct {
	// Value is the current animation value, ranging from 0.0 to 1.0.
	Value float64

	// Duration is the length of a full 0→1 run.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	status          AnimationStatus
	ticker          *Ticker
	target          float64
	startValue      float64
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewAnimationController creates an animation controller with the given duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		Curve:           LinearCurve,
		status:          AnimationDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Forward animates from the current value to 1.
func (c *AnimationController) Forward() {
	c.animateTo(1, AnimationForward)
}

// Reverse animates from the current value to 0.
func (c *AnimationController) Reverse() {
	c.animateTo(0, AnimationReverse)
}

func (c *AnimationController) animateTo(target float64, direction AnimationStatus) {
	c.Stop()

	c.target = target
	c.startValue = c.Value
	c.setStatus(direction)

	if c.Duration <= 0 || c.startValue == target {
		c.Value = target
		c.notifyListeners()
		c.settle()
		return
	}

	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	// Reversing from mid-flight covers a shorter distance, so it takes
	// proportionally less time.
	span := time.Duration(float64(c.Duration) * math.Abs(c.target-c.startValue))

	progress := 1.0
	if span > 0 {
		progress = float64(elapsed) / float64(span)
	}
	if progress > 1 {
		progress = 1
	}

	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if progress >= 1 {
		c.Value = c.target
		c.settle()
	}
}

// settle stops the ticker and publishes the resting status.
func (c *AnimationController) settle() {
	c.Stop()
	if c.Value <= 0 {
		c.setStatus(AnimationDismissed)
	} else if c.Value >= 1 {
		c.setStatus(AnimationCompleted)
	}
}

// Stop stops the animation at the current value without changing status.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *AnimationController) IsAnimating() bool {
	return c.status == AnimationForward || c.status == AnimationReverse
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose cleans up resources used by the controller.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = map[int]func(){}
	c.statusListeners = map[int]func(AnimationStatus){}
}
