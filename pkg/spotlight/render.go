package spotlight

import "github.com/go-drift/spotlight/pkg/graphics"

// dismissPlateAlpha is the opacity of the dismiss control's backing plate.
const dismissPlateAlpha = 0.2

// Paint draws the overlay at its current opacity: the dim background
// around every expanded frame, each region's feathering, the caption and
// the dismiss control.
func (c *Controller) Paint(canvas graphics.Canvas) {
	s := c.session
	if s == nil {
		return
	}
	bounds := c.surface.Bounds()

	canvas.SaveLayerAlpha(bounds, c.Opacity())
	defer canvas.Restore()

	holes := make([]graphics.Rect, len(s.Regions))
	frames := make([]graphics.Rect, len(s.Regions))
	for i, r := range s.Regions {
		holes[i] = r.ExpandedFrame
		frames[i] = r.Frame
	}
	background := graphics.SolidPaint(c.opts.BackgroundColor)
	for _, rect := range bounds.SubtractAll(holes) {
		canvas.DrawRect(rect, background)
	}
	for i, r := range s.Regions {
		others := append(frames[:i:i], frames[i+1:]...)
		r.Mask.PaintExcluding(canvas, others)
	}

	if s.Caption != nil {
		canvas.DrawText(s.Caption.Text, s.Caption.Frame.Origin(), graphics.TextStyle{
			Font:  c.opts.CaptionFont,
			Color: c.opts.CaptionColor,
		})
	}
	if dc := s.DismissControl; dc != nil {
		canvas.DrawRect(dc.Frame, graphics.SolidPaint(c.opts.CaptionColor.WithAlpha(dismissPlateAlpha)))
		if dc.Label != "" {
			size := c.opts.Measurer.MeasureText(dc.Label, c.opts.CaptionFont)
			center := dc.Frame.Center()
			canvas.DrawText(dc.Label, graphics.Offset{
				X: center.X - size.Width/2,
				Y: center.Y - size.Height/2,
			}, graphics.TextStyle{Font: c.opts.CaptionFont, Color: c.opts.CaptionColor})
		}
	}
}

// Record captures the overlay's current frame as a display list.
func (c *Controller) Record() *graphics.DisplayList {
	var rec graphics.PictureRecorder
	canvas := rec.BeginRecording(c.surface.Bounds().Size())
	c.Paint(canvas)
	return rec.EndRecording()
}
