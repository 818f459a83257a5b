package spotlight

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/go-drift/spotlight/pkg/animation"
	"github.com/go-drift/spotlight/pkg/errors"
	"github.com/go-drift/spotlight/pkg/graphics"
	"github.com/go-drift/spotlight/pkg/logging"
	"github.com/go-drift/spotlight/pkg/platform"
)

// Dismissal reasons reported to metrics.
const (
	reasonCaller         = "caller"
	reasonTargetTap      = "target_tap"
	reasonHighlightedTap = "highlighted_tap"
	reasonDismissControl = "dismiss_control"
)

// Controller presents one spotlight session over a Surface.
//
// All methods must be called from the interaction thread.
type Controller struct {
	surface Surface
	opts    Options
	log     *slog.Logger

	session *Session
	used    bool

	fade             *animation.AnimationController
	removeFadeStatus func()
	fadeStarted      time.Time

	dismissReason string
	dismissQueued bool
	onComplete    func()
}

// NewController creates a controller for surface.
func NewController(surface Surface, opts Options) *Controller {
	if opts.Measurer == nil {
		opts.Measurer = EstimateMeasurer{}
	}
	if opts.Dispatch == nil {
		opts.Dispatch = platform.Dispatch
	}
	log := opts.Logger
	if log == nil {
		log = logging.Logger()
	}
	return &Controller{
		surface: surface,
		opts:    opts,
		log:     log,
	}
}

// Options returns the controller configuration.
func (c *Controller) Options() Options {
	return c.opts
}

// Session returns the active session, or nil before Highlight and after a
// completed dismiss.
func (c *Controller) Session() *Session {
	return c.session
}

// Visibility returns the presentation state.
func (c *Controller) Visibility() Visibility {
	if c.session == nil {
		return Hidden
	}
	return c.session.Visibility
}

// Opacity returns the current fade value between 0 and 1.
func (c *Controller) Opacity() float64 {
	if c.fade == nil {
		return 0
	}
	return c.fade.Value
}

// Highlight presents the overlay around targets with an optional caption.
//
// It fails with an invalid-argument error when targets is empty or holds a
// nil target, and with an invalid-state error when the controller already
// presented a session or a target is detached. On failure nothing is
// attached and no listener is left on any target.
func (c *Controller) Highlight(targets []Target, caption string) (err error) {
	const op = "spotlight.Highlight"
	defer func() {
		if err != nil {
			c.opts.Metrics.HighlightFailed(errors.KindOf(err).String())
			errors.Report(err)
		}
	}()

	if len(targets) == 0 {
		return errors.InvalidArgument(op, errors.ErrNoTargets)
	}
	if c.session != nil {
		return errors.InvalidState(op, errors.ErrSessionActive)
	}
	if c.used {
		return errors.InvalidState(op, errors.ErrControllerUsed)
	}

	frames := make([]graphics.Rect, len(targets))
	for i, target := range targets {
		if target == nil {
			return errors.InvalidArgument(op, fmt.Errorf("target %d is nil", i))
		}
		frame, ok := target.FrameIn(c.surface)
		if !ok {
			return errors.InvalidState(op, fmt.Errorf("target %d: %w", i, errors.ErrTargetDetached))
		}
		frames[i] = frame
	}

	s := &Session{ID: uuid.New(), Visibility: Animating}
	for i, target := range targets {
		s.Regions = append(s.Regions, newRegion(target, frames[i], c.opts))
	}

	bounds := c.surface.Bounds()
	if caption != "" {
		size := c.opts.Measurer.MeasureText(caption, c.opts.CaptionFont)
		s.Caption = &Caption{Text: caption, Frame: CaptionFrame(bounds, frames, size)}
	}
	if c.opts.ShowDismissControl {
		avoid := frames
		if s.Caption != nil {
			avoid = append(frames[:len(frames):len(frames)], s.Caption.Frame)
		}
		s.DismissControl = &DismissControl{
			Label: c.opts.DismissLabel,
			Frame: DismissControlFrame(bounds, avoid),
		}
	}
	if c.opts.DismissOnTargetTap {
		for _, r := range s.Regions {
			r.listen(c.targetTapped)
		}
	}

	c.session = s
	c.used = true
	c.log = c.log.With("session_id", s.ID.String())
	c.log.Debug("highlight", "regions", len(s.Regions), "caption", caption != "")
	c.opts.Metrics.SessionStarted()

	c.surface.Attach(c)
	c.fade = animation.NewAnimationController(c.opts.AnimationDuration)
	c.fade.Curve = animation.EaseInOut
	c.removeFadeStatus = c.fade.AddStatusListener(c.fadeStatusChanged)
	c.fadeStarted = animation.Now()
	c.fade.Forward()
	return nil
}

// Dismiss fades the overlay out, then releases every region, detaches from
// the surface and calls onComplete. It is a no-op when nothing is presented
// or a dismissal is already running. Dismissing while the overlay is still
// fading in reverses the fade from its current opacity.
func (c *Controller) Dismiss(onComplete func()) {
	c.dismiss(reasonCaller, onComplete)
}

func (c *Controller) dismiss(reason string, onComplete func()) {
	s := c.session
	if s == nil || s.Visibility == Hidden || s.Visibility == Dismissing {
		return
	}
	s.Visibility = Dismissing
	c.dismissReason = reason
	c.onComplete = onComplete
	c.log.Debug("dismiss", "reason", reason, "opacity", c.fade.Value)
	c.fadeStarted = animation.Now()
	c.fade.Reverse()
}

// HitTest routes a pointer-down at position.
//
// Until the fade-in completes, and once dismissal starts, the overlay
// ignores input. Otherwise regions are tested in order against their
// expanded frames, then the dismiss control; anything else is absorbed.
func (c *Controller) HitTest(position graphics.Offset) Hit {
	hit := c.hitTest(position)
	c.opts.Metrics.Hit(hit.Kind.String())
	return hit
}

func (c *Controller) hitTest(position graphics.Offset) Hit {
	s := c.session
	if s == nil || s.Visibility != Visible {
		return Hit{Kind: HitIgnored}
	}
	s.controlPressed = false
	for i, r := range s.Regions {
		if r.ExpandedFrame.Contains(position) {
			s.TapDetected = true
			return Hit{Kind: HitTarget, Target: r.Target, Region: i}
		}
	}
	if s.DismissControl != nil && s.DismissControl.Frame.Contains(position) {
		s.controlPressed = true
		return Hit{Kind: HitDismissControl}
	}
	return Hit{Kind: HitAbsorbed}
}

// PointerUp completes a pointer sequence. After a hit on a highlighted
// region (with AutoDismissOnHighlightedTap) or on the dismiss control, it
// schedules a dismissal on the interaction loop.
func (c *Controller) PointerUp() {
	s := c.session
	if s == nil || s.Visibility != Visible {
		return
	}
	var reason string
	switch {
	case s.TapDetected && c.opts.AutoDismissOnHighlightedTap:
		reason = reasonHighlightedTap
	case s.controlPressed:
		reason = reasonDismissControl
	default:
		return
	}
	s.controlPressed = false
	c.scheduleDismiss(reason)
}

// scheduleDismiss queues one dismissal on the interaction loop. Further
// requests before it runs are dropped.
func (c *Controller) scheduleDismiss(reason string) {
	if c.dismissQueued {
		return
	}
	c.dismissQueued = true
	c.schedule(func() {
		c.dismissQueued = false
		c.dismiss(reason, nil)
	})
}

func (c *Controller) schedule(fn func()) {
	if c.opts.Dispatch(fn) {
		return
	}
	c.log.Warn("no dispatcher registered, dismissing inline")
	fn()
}

func (c *Controller) targetTapped() {
	c.scheduleDismiss(reasonTargetTap)
}

func (c *Controller) fadeStatusChanged(status animation.AnimationStatus) {
	s := c.session
	if s == nil {
		return
	}
	switch status {
	case animation.AnimationCompleted:
		if s.Visibility == Animating {
			s.Visibility = Visible
			c.opts.Metrics.ObserveFade("in", animation.Now().Sub(c.fadeStarted))
			c.log.Debug("visible")
		}
	case animation.AnimationDismissed:
		if s.Visibility == Dismissing {
			c.teardown()
		}
	}
}

// teardown releases the session. It runs once, when the fade-out settles.
func (c *Controller) teardown() {
	s := c.session
	s.release()
	s.Visibility = Hidden
	c.session = nil

	c.removeFadeStatus()
	c.fade.Dispose()
	c.surface.Detach(c)

	c.opts.Metrics.ObserveFade("out", animation.Now().Sub(c.fadeStarted))
	c.opts.Metrics.Dismissed(c.dismissReason)
	c.log.Debug("teardown", "reason", c.dismissReason)

	done := c.onComplete
	c.onComplete = nil
	if done != nil {
		done()
	}
}
