package spotlight

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/go-drift/spotlight/pkg/graphics"
)

// Visibility is the presentation state of a session.
//
//	Hidden ──Highlight──► Animating ──fade done──► Visible
//	   ▲                      │                       │
//	   │                      └───────Dismiss─────────┤
//	   │                                              ▼
//	   └────────────────fade done────────────── Dismissing
type Visibility int

const (
	Hidden Visibility = iota
	Animating
	Visible
	Dismissing
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Animating:
		return "animating"
	case Visible:
		return "visible"
	case Dismissing:
		return "dismissing"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// Caption is the laid-out help text.
type Caption struct {
	Text  string
	Frame graphics.Rect
}

// DismissControl is the laid-out dismiss affordance.
type DismissControl struct {
	Label string
	Frame graphics.Rect
}

// Session is the state of one presentation, from Highlight to the end of
// Dismiss.
type Session struct {
	ID             uuid.UUID
	Regions        []*Region
	Caption        *Caption
	DismissControl *DismissControl
	Visibility     Visibility
	TapDetected    bool

	// controlPressed is set when the last pointer-down hit the dismiss control.
	controlPressed bool
}

// release drops every region and its listener.
func (s *Session) release() {
	for _, r := range s.Regions {
		r.release()
	}
	s.Regions = nil
}
