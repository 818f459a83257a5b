package overlay

import (
	"github.com/go-drift/spotlight/pkg/graphics"
	"github.com/go-drift/spotlight/pkg/spotlight"
)

// Button is a tappable labelled rectangle. It implements spotlight.Target.
type Button struct {
	Label     string
	Frame     graphics.Rect
	Color     graphics.Color
	TextColor graphics.Color
	Font      graphics.Font

	// OnTap runs on every tap, before tap listeners.
	OnTap func()
	// Taps counts completed taps.
	Taps int

	screen    *Screen
	listeners map[int]func()
	nextID    int
}

func newButton(label string, frame graphics.Rect) *Button {
	return &Button{
		Label:     label,
		Frame:     frame,
		Color:     graphics.RGB(0x21, 0x96, 0xF3),
		TextColor: graphics.ColorWhite,
		Font:      graphics.Font{Size: 16},
		listeners: make(map[int]func()),
	}
}

// FrameIn implements spotlight.Target. Buttons only resolve against the
// screen that holds them.
func (b *Button) FrameIn(space spotlight.Surface) (graphics.Rect, bool) {
	if b.screen == nil {
		return graphics.Rect{}, false
	}
	if s, ok := space.(*Screen); ok && s != b.screen {
		return graphics.Rect{}, false
	}
	return b.Frame, true
}

// AddTapListener implements spotlight.Target.
func (b *Button) AddTapListener(fn func()) func() {
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	return func() {
		delete(b.listeners, id)
	}
}

// Listeners returns the number of registered tap listeners.
func (b *Button) Listeners() int {
	return len(b.listeners)
}

// Tap records a tap and notifies OnTap and the listeners.
func (b *Button) Tap() {
	b.Taps++
	if b.OnTap != nil {
		b.OnTap()
	}
	for _, fn := range b.listeners {
		fn()
	}
}

func (b *Button) paint(canvas graphics.Canvas, measurer spotlight.TextMeasurer) {
	canvas.DrawRect(b.Frame, graphics.SolidPaint(b.Color))
	if b.Label == "" {
		return
	}
	size := measurer.MeasureText(b.Label, b.Font)
	center := b.Frame.Center()
	canvas.DrawText(b.Label, graphics.Offset{
		X: center.X - size.Width/2,
		Y: center.Y - size.Height/2,
	}, graphics.TextStyle{Font: b.Font, Color: b.TextColor})
}
