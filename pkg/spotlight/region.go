package spotlight

import "github.com/go-drift/spotlight/pkg/graphics"

// Region is one highlighted area of a session.
type Region struct {
	// Target is the highlighted element. Cleared on release.
	Target Target
	// Frame is the target frame in overlay coordinates.
	Frame graphics.Rect
	// ExpandedFrame is Frame inflated by the feather buffer.
	ExpandedFrame graphics.Rect
	// Mask feathers the hole.
	Mask *RegionMask

	removeListener func()
}

func newRegion(target Target, frame graphics.Rect, opts Options) *Region {
	return &Region{
		Target:        target,
		Frame:         frame,
		ExpandedFrame: frame.Inflate(opts.Buffer),
		Mask:          NewRegionMask(frame, opts.Buffer, opts.BackgroundColor),
	}
}

func (r *Region) listen(fn func()) {
	r.removeListener = r.Target.AddTapListener(fn)
}

// release removes the tap listener and drops the target reference.
func (r *Region) release() {
	if r.removeListener != nil {
		r.removeListener()
		r.removeListener = nil
	}
	r.Target = nil
}
