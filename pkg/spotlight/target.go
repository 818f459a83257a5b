package spotlight

import (
	"strings"
	"unicode/utf8"

	"github.com/go-drift/spotlight/pkg/graphics"
)

// Surface is the top-level display surface the overlay covers.
type Surface interface {
	// Bounds returns the surface rectangle in overlay coordinates.
	Bounds() graphics.Rect

	// Attach adds layer as the topmost layer.
	Attach(layer Layer)

	// Detach removes layer from the surface.
	Detach(layer Layer)
}

// Target is a caller-owned UI element that can be highlighted.
//
// The overlay holds targets only for the life of a session and never owns
// them.
type Target interface {
	// FrameIn returns the element's frame in space's coordinates.
	// ok is false when the element is no longer attached to a hierarchy.
	FrameIn(space Surface) (frame graphics.Rect, ok bool)

	// AddTapListener registers fn to run when the element itself is tapped
	// and returns a function that removes it.
	AddTapListener(fn func()) (remove func())
}

// Layer is something a Surface paints and routes input to.
type Layer interface {
	Paint(canvas graphics.Canvas)
	HitTest(position graphics.Offset) Hit
}

// TextMeasurer sizes caption text for layout.
type TextMeasurer interface {
	MeasureText(text string, font graphics.Font) graphics.Size
}

// HitKind classifies where a pointer landed.
type HitKind int

const (
	// HitIgnored means the overlay does not take input; the event goes to
	// whatever lies beneath.
	HitIgnored HitKind = iota
	// HitTarget means the event passes through to a highlighted target.
	HitTarget
	// HitDismissControl means the event goes to the dismiss control.
	HitDismissControl
	// HitAbsorbed means the overlay swallows the event.
	HitAbsorbed
)

func (k HitKind) String() string {
	switch k {
	case HitTarget:
		return "target"
	case HitDismissControl:
		return "dismiss_control"
	case HitAbsorbed:
		return "absorbed"
	default:
		return "ignored"
	}
}

// Hit is the result of a hit test.
type Hit struct {
	Kind HitKind
	// Target is set when Kind is HitTarget.
	Target Target
	// Region is the index of the hit region when Kind is HitTarget.
	Region int
}

// EstimateMeasurer approximates text size from the font size, assuming
// glyphs half as wide as the font is tall and a 1.2 line height.
type EstimateMeasurer struct{}

// MeasureText implements TextMeasurer.
func (EstimateMeasurer) MeasureText(text string, font graphics.Font) graphics.Size {
	if text == "" {
		return graphics.Size{}
	}
	lines := strings.Split(text, "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, utf8.RuneCountInString(line))
	}
	return graphics.Size{
		Width:  float64(widest) * font.Size * 0.5,
		Height: float64(len(lines)) * font.Size * 1.2,
	}
}
