// Package demo builds the sample screen used by the spotlight CLI: a
// single button that an overlay highlights with a caption.
package demo

import (
	"github.com/go-drift/spotlight/pkg/graphics"
	"github.com/go-drift/spotlight/pkg/overlay"
	"github.com/go-drift/spotlight/pkg/spotlight"
)

const (
	// ButtonLabel is the highlighted button's label.
	ButtonLabel = "Show tip"

	// Caption is the overlay caption.
	Caption = "Tap anywhere"

	buttonLeft = 20.0
)

// Scene is a screen holding the demo button.
type Scene struct {
	Screen  *overlay.Screen
	Button  *overlay.Button
	Caption string
}

// NewScene places a button of buttonSize 20 units from the left edge and
// 45% of the way down a screen of the given size.
func NewScene(size, buttonSize graphics.Size, measurer spotlight.TextMeasurer) *Scene {
	screen := overlay.NewScreen(size.Width, size.Height)
	screen.Measurer = measurer
	top := size.Height * 0.45
	button := screen.AddButton(ButtonLabel,
		graphics.RectFromLTWH(buttonLeft, top, buttonSize.Width, buttonSize.Height))
	return &Scene{Screen: screen, Button: button, Caption: Caption}
}

// Present creates a controller with opts and highlights the button.
// Controllers are single use, so every call returns a new one.
func (s *Scene) Present(opts spotlight.Options) (*spotlight.Controller, error) {
	ctrl := spotlight.NewController(s.Screen, opts)
	if err := ctrl.Highlight([]spotlight.Target{s.Button}, s.Caption); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// Snapshot records the whole screen, overlay included.
func (s *Scene) Snapshot() *graphics.DisplayList {
	var recorder graphics.PictureRecorder
	canvas := recorder.BeginRecording(s.Screen.Size)
	s.Screen.Paint(canvas)
	return recorder.EndRecording()
}
