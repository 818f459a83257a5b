// Package overlay hosts spotlight layers above a simple screen of buttons.
//
// A [Screen] is the top-level surface a spotlight controller attaches to.
// It paints its buttons first (bottom), then attached layers in order
// (first = bottom, last = top), and routes pointer input top to bottom: the
// first layer that does not ignore a pointer-down owns the whole pointer
// sequence, and a layer that passes the event through to a target hands it
// to that button.
package overlay

import (
	"slices"

	"github.com/go-drift/spotlight/pkg/graphics"
	"github.com/go-drift/spotlight/pkg/spotlight"
)

// PointerUpHandler is implemented by layers that want pointer-up events for
// sequences they accepted.
type PointerUpHandler interface {
	PointerUp()
}

// Screen is a spotlight.Surface with buttons and a layer stack.
type Screen struct {
	Size       graphics.Size
	Background graphics.Color
	// Measurer centers button labels. Nil uses spotlight.EstimateMeasurer.
	Measurer spotlight.TextMeasurer

	buttons []*Button
	layers  []spotlight.Layer

	// Pointer sequence state, set on PointerDown.
	pressed      *Button
	pointerLayer spotlight.Layer
}

// NewScreen returns an empty white screen.
func NewScreen(width, height float64) *Screen {
	return &Screen{
		Size:       graphics.Size{Width: width, Height: height},
		Background: graphics.ColorWhite,
	}
}

// Bounds implements spotlight.Surface.
func (s *Screen) Bounds() graphics.Rect {
	return graphics.RectFromSize(s.Size)
}

// Attach inserts layer at the top of the stack. Attaching a layer twice
// moves it to the top.
func (s *Screen) Attach(layer spotlight.Layer) {
	s.layers = slices.DeleteFunc(s.layers, func(l spotlight.Layer) bool { return l == layer })
	s.layers = append(s.layers, layer)
}

// Detach removes layer from the stack.
func (s *Screen) Detach(layer spotlight.Layer) {
	s.layers = slices.DeleteFunc(s.layers, func(l spotlight.Layer) bool { return l == layer })
	if s.pointerLayer == layer {
		s.pointerLayer = nil
	}
}

// Layers returns the attached layers, bottom first.
func (s *Screen) Layers() []spotlight.Layer {
	return slices.Clone(s.layers)
}

// AddButton places a new button on the screen.
func (s *Screen) AddButton(label string, frame graphics.Rect) *Button {
	b := newButton(label, frame)
	b.screen = s
	s.buttons = append(s.buttons, b)
	return b
}

// RemoveButton takes b off the screen. Its frame can no longer be resolved.
func (s *Screen) RemoveButton(b *Button) {
	s.buttons = slices.DeleteFunc(s.buttons, func(other *Button) bool { return other == b })
	b.screen = nil
}

// Buttons returns the buttons on the screen.
func (s *Screen) Buttons() []*Button {
	return slices.Clone(s.buttons)
}

// Paint draws the background, the buttons, then every layer.
func (s *Screen) Paint(canvas graphics.Canvas) {
	canvas.DrawRect(s.Bounds(), graphics.SolidPaint(s.Background))
	measurer := s.measurer()
	for _, b := range s.buttons {
		b.paint(canvas, measurer)
	}
	for _, layer := range s.layers {
		layer.Paint(canvas)
	}
}

// PointerDown starts a pointer sequence at position.
func (s *Screen) PointerDown(position graphics.Offset) {
	s.pressed = nil
	s.pointerLayer = nil
	if !s.Bounds().Contains(position) {
		return
	}

	for i := len(s.layers) - 1; i >= 0; i-- {
		layer := s.layers[i]
		hit := layer.HitTest(position)
		if hit.Kind == spotlight.HitIgnored {
			continue
		}
		s.pointerLayer = layer
		if hit.Kind == spotlight.HitTarget {
			if b, ok := hit.Target.(*Button); ok {
				s.pressed = b
			}
		}
		return
	}
	s.pressed = s.buttonAt(position)
}

// PointerUp ends the pointer sequence. A button pressed on down is tapped
// when the pointer is released inside it.
func (s *Screen) PointerUp(position graphics.Offset) {
	pressed, layer := s.pressed, s.pointerLayer
	s.pressed, s.pointerLayer = nil, nil

	if pressed != nil && pressed.screen == s && pressed.Frame.Contains(position) {
		pressed.Tap()
	}
	if h, ok := layer.(PointerUpHandler); ok {
		h.PointerUp()
	}
}

func (s *Screen) buttonAt(position graphics.Offset) *Button {
	for i := len(s.buttons) - 1; i >= 0; i-- {
		if s.buttons[i].Frame.Contains(position) {
			return s.buttons[i]
		}
	}
	return nil
}

func (s *Screen) measurer() spotlight.TextMeasurer {
	if s.Measurer != nil {
		return s.Measurer
	}
	return spotlight.EstimateMeasurer{}
}
