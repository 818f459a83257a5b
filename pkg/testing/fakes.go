package testing

import (
	"slices"

	"github.com/go-drift/spotlight/pkg/graphics"
	"github.com/go-drift/spotlight/pkg/spotlight"
)

// FakeSurface is an in-memory spotlight.Surface.
type FakeSurface struct {
	Rect     graphics.Rect
	Layers   []spotlight.Layer
	Attaches int
	Detaches int
}

// NewFakeSurface returns a surface of the given size at the origin.
func NewFakeSurface(width, height float64) *FakeSurface {
	return &FakeSurface{Rect: graphics.RectFromLTWH(0, 0, width, height)}
}

func (s *FakeSurface) Bounds() graphics.Rect {
	return s.Rect
}

func (s *FakeSurface) Attach(layer spotlight.Layer) {
	s.Attaches++
	s.Layers = append(s.Layers, layer)
}

func (s *FakeSurface) Detach(layer spotlight.Layer) {
	s.Detaches++
	s.Layers = slices.DeleteFunc(s.Layers, func(l spotlight.Layer) bool { return l == layer })
}

// Attached reports whether layer is currently attached.
func (s *FakeSurface) Attached(layer spotlight.Layer) bool {
	return slices.Contains(s.Layers, layer)
}

// FakeTarget is a spotlight.Target with a fixed frame.
type FakeTarget struct {
	Frame    graphics.Rect
	Detached bool

	listeners map[int]func()
	nextID    int
}

// NewFakeTarget returns an attached target at frame.
func NewFakeTarget(frame graphics.Rect) *FakeTarget {
	return &FakeTarget{Frame: frame, listeners: make(map[int]func())}
}

func (t *FakeTarget) FrameIn(spotlight.Surface) (graphics.Rect, bool) {
	return t.Frame, !t.Detached
}

func (t *FakeTarget) AddTapListener(fn func()) func() {
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	return func() {
		delete(t.listeners, id)
	}
}

// Tap calls every registered tap listener.
func (t *FakeTarget) Tap() {
	for _, fn := range t.listeners {
		fn()
	}
}

// Listeners returns the number of registered tap listeners.
func (t *FakeTarget) Listeners() int {
	return len(t.listeners)
}
