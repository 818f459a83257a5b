package spotlight

import "github.com/go-drift/spotlight/pkg/graphics"

// CaptionFrame places a caption of the given size next to the first region.
//
// The caption sits textBuffer above the first region, left aligned with it,
// unless that would put it within topBuffer of the top, in which case it
// goes textBuffer below. It is then shifted left to stay sideBuffer inside
// the right edge and clamped to sideBuffer on the left. If the chosen
// placement covers any region, the other vertical placement is used when it
// does not.
func CaptionFrame(bounds graphics.Rect, regions []graphics.Rect, size graphics.Size) graphics.Rect {
	if len(regions) == 0 {
		return graphics.Rect{}
	}
	first := regions[0]
	above := first.Top - (textBuffer + size.Height)
	below := first.Bottom + textBuffer

	x := first.Left
	if x+size.Width > bounds.Right {
		x = bounds.Right - (sideBuffer + size.Width)
	}
	if x < bounds.Left+sideBuffer {
		x = bounds.Left + sideBuffer
	}

	primary, alternate := above, below
	if above <= bounds.Top+topBuffer {
		primary, alternate = below, above
	}
	frame := graphics.RectFromLTWH(x, primary, size.Width, size.Height)
	if overlapsAny(frame, regions) {
		alt := graphics.RectFromLTWH(x, alternate, size.Width, size.Height)
		if alternate > bounds.Top+topBuffer && !overlapsAny(alt, regions) {
			frame = alt
		}
	}
	return frame
}

// DismissControlFrame places the dismiss control in a corner that does not
// intersect any of the avoid rects (region frames and the caption). It
// prefers top-right, then top-left, bottom-right and bottom-left, and falls
// back to top-left when every corner collides.
func DismissControlFrame(bounds graphics.Rect, avoid []graphics.Rect) graphics.Rect {
	w, h := dismissControlWidth, dismissControlHeight
	right := bounds.Right - sideBuffer - w
	left := bounds.Left + sideBuffer
	top := bounds.Top + topBuffer
	bottom := bounds.Bottom - sideBuffer - h

	topRight := graphics.RectFromLTWH(right, top, w, h)
	topLeft := graphics.RectFromLTWH(left, top, w, h)
	candidates := []graphics.Rect{
		topRight,
		topLeft,
		graphics.RectFromLTWH(right, bottom, w, h),
		graphics.RectFromLTWH(left, bottom, w, h),
	}
	for _, c := range candidates {
		if !overlapsAny(c, avoid) {
			return c
		}
	}
	return topLeft
}

func overlapsAny(r graphics.Rect, others []graphics.Rect) bool {
	for _, o := range others {
		if r.Overlaps(o) {
			return true
		}
	}
	return false
}
