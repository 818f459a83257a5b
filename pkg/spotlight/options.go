package spotlight

import (
	"log/slog"
	"time"

	"github.com/go-drift/spotlight/pkg/graphics"
	"github.com/go-drift/spotlight/pkg/metrics"
)

// Layout constants for the caption and dismiss control.
const (
	textBuffer = 8.0
	sideBuffer = 8.0
	topBuffer  = 28.0

	dismissControlWidth  = 68.0
	dismissControlHeight = 44.0
)

// Options configures a Controller. Start from DefaultOptions.
type Options struct {
	// AnimationDuration is the length of the fade in and out.
	AnimationDuration time.Duration

	// AutoDismissOnHighlightedTap dismisses after a pointer-up that followed
	// a hit on a highlighted region.
	AutoDismissOnHighlightedTap bool

	// DismissOnTargetTap attaches a tap listener to every target that
	// dismisses the overlay.
	DismissOnTargetTap bool

	// Buffer is the feather width around each region.
	Buffer float64

	// CaptionFont is the caption font.
	CaptionFont graphics.Font

	// BackgroundColor is the dim fill.
	BackgroundColor graphics.Color

	// CaptionColor is the caption text color.
	CaptionColor graphics.Color

	// ShowDismissControl lays out and paints the dismiss control.
	ShowDismissControl bool

	// DismissLabel is the dismiss control's text.
	DismissLabel string

	// Measurer sizes caption text. Nil uses EstimateMeasurer.
	Measurer TextMeasurer

	// Dispatch schedules work on the interaction loop. Nil uses
	// platform.Dispatch.
	Dispatch func(callback func()) bool

	// Logger receives lifecycle records. Nil uses logging.Logger().
	Logger *slog.Logger

	// Metrics records session metrics. Nil records nothing.
	Metrics *metrics.Collector
}

// DefaultOptions returns the standard overlay configuration.
func DefaultOptions() Options {
	return Options{
		AnimationDuration:           350 * time.Millisecond,
		AutoDismissOnHighlightedTap: true,
		DismissOnTargetTap:          true,
		Buffer:                      10,
		CaptionFont:                 graphics.DefaultFont(),
		BackgroundColor:             graphics.RGBA(0, 0, 0, 0.8),
		CaptionColor:                graphics.ColorWhite,
		ShowDismissControl:          true,
		DismissLabel:                "Done",
	}
}
