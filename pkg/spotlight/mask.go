package spotlight

import (
	"math"

	"github.com/go-drift/spotlight/pkg/graphics"
)

// MaskPiece is one gradient-filled rectangle of a RegionMask.
type MaskPiece struct {
	Rect  graphics.Rect
	Paint graphics.Paint
}

// RegionMask feathers the hole around one region.
//
// The annulus between Frame and Frame inflated by Buffer is tiled by four
// corner squares with radial gradients and four edge strips with linear
// gradients, each blending from transparent at the frame to Color at the
// outer edge. The frame interior is never painted.
type RegionMask struct {
	Frame  graphics.Rect
	Buffer float64
	Color  graphics.Color
}

// NewRegionMask creates the mask for frame.
func NewRegionMask(frame graphics.Rect, buffer float64, dim graphics.Color) *RegionMask {
	return &RegionMask{Frame: frame, Buffer: buffer, Color: dim}
}

// Bounds returns the expanded frame the mask draws into.
func (m *RegionMask) Bounds() graphics.Rect {
	return m.Frame.Inflate(m.Buffer)
}

// Pieces returns the corner pieces (top-left, top-right, bottom-left,
// bottom-right) followed by the edge pieces (top, bottom, left, right).
// A non-positive buffer yields no pieces.
func (m *RegionMask) Pieces() []MaskPiece {
	b := m.Buffer
	if b <= 0 {
		return nil
	}
	f := m.Frame
	outer := m.Bounds()
	clear := m.Color.WithAlpha(0)
	radius := b * math.Sqrt2
	cornerStops := []graphics.GradientStop{
		{Position: 0, Color: clear},
		{Position: b / radius, Color: m.Color},
	}
	edgeStops := []graphics.GradientStop{
		{Position: 0, Color: clear},
		{Position: 1, Color: m.Color},
	}

	w := math.Max(0, f.Width())
	h := math.Max(0, f.Height())
	right := f.Left + w
	bottom := f.Top + h

	corner := func(left, top float64, inner graphics.Offset) MaskPiece {
		return MaskPiece{
			Rect:  graphics.RectFromLTWH(left, top, b, b),
			Paint: graphics.GradientPaint(graphics.NewRadialGradient(inner, radius, cornerStops)),
		}
	}
	edge := func(rect graphics.Rect, from, to graphics.Offset) MaskPiece {
		return MaskPiece{
			Rect:  rect,
			Paint: graphics.GradientPaint(graphics.NewLinearGradient(from, to, edgeStops)),
		}
	}

	return []MaskPiece{
		corner(outer.Left, outer.Top, graphics.Offset{X: f.Left, Y: f.Top}),
		corner(right, outer.Top, graphics.Offset{X: right, Y: f.Top}),
		corner(outer.Left, bottom, graphics.Offset{X: f.Left, Y: bottom}),
		corner(right, bottom, graphics.Offset{X: right, Y: bottom}),

		edge(graphics.RectFromLTWH(f.Left, outer.Top, w, b),
			graphics.Offset{X: f.Left, Y: f.Top}, graphics.Offset{X: f.Left, Y: outer.Top}),
		edge(graphics.RectFromLTWH(f.Left, bottom, w, b),
			graphics.Offset{X: f.Left, Y: bottom}, graphics.Offset{X: f.Left, Y: bottom + b}),
		edge(graphics.RectFromLTWH(outer.Left, f.Top, b, h),
			graphics.Offset{X: f.Left, Y: f.Top}, graphics.Offset{X: outer.Left, Y: f.Top}),
		edge(graphics.RectFromLTWH(right, f.Top, b, h),
			graphics.Offset{X: right, Y: f.Top}, graphics.Offset{X: right + b, Y: f.Top}),
	}
}

// Paint draws every non-empty piece onto canvas.
func (m *RegionMask) Paint(canvas graphics.Canvas) {
	m.PaintExcluding(canvas, nil)
}

// PaintExcluding draws the pieces with the parts inside any of holes cut
// away. Overlapping regions pass each other's frames so no region's
// interior is dimmed by a neighbour's feathering.
func (m *RegionMask) PaintExcluding(canvas graphics.Canvas, holes []graphics.Rect) {
	for _, piece := range m.Pieces() {
		for _, rect := range piece.Rect.SubtractAll(holes) {
			canvas.DrawRect(rect, piece.Paint)
		}
	}
}
