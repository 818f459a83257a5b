// Package spotlight implements a modal highlight overlay.
//
// A [Controller] dims a host [Surface] while leaving soft-edged holes around
// one or more [Target]s, optionally annotated with a caption and a dismiss
// control:
//
//	ctrl := spotlight.NewController(surface, spotlight.DefaultOptions())
//	if err := ctrl.Highlight([]spotlight.Target{button}, "Tap anywhere"); err != nil {
//		return err
//	}
//
// The controller attaches itself to the surface as a [Layer]. The host
// forwards pointer input through [Controller.HitTest] and
// [Controller.PointerUp], steps animations with animation.StepTickers, and
// drains the platform loop once per frame. A tap on a highlighted target
// schedules the dismissal on that loop rather than tearing down inside the
// input handler.
//
// Controllers are single use. Once a session has been dismissed, present a
// new one with a fresh controller.
package spotlight
