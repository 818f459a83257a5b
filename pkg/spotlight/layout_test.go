package spotlight

import (
	"testing"

	"github.com/go-drift/spotlight/pkg/graphics"
)

func TestCaptionFrame(t *testing.T) {
	bounds := graphics.RectFromLTWH(0, 0, 320, 480)
	tests := []struct {
		name    string
		regions []graphics.Rect
		size    graphics.Size
		want    graphics.Rect
	}{
		{
			name:    "falls below when above crosses top margin",
			regions: []graphics.Rect{graphics.RectFromLTWH(20, 40, 100, 40)},
			size:    graphics.Size{Width: 80, Height: 30},
			want:    graphics.RectFromLTWH(20, 88, 80, 30),
		},
		{
			name:    "above when there is room",
			regions: []graphics.Rect{graphics.RectFromLTWH(20, 200, 100, 40)},
			size:    graphics.Size{Width: 80, Height: 30},
			want:    graphics.RectFromLTWH(20, 162, 80, 30),
		},
		{
			name:    "shifted left from the right edge",
			regions: []graphics.Rect{graphics.RectFromLTWH(250, 200, 60, 40)},
			size:    graphics.Size{Width: 120, Height: 30},
			want:    graphics.RectFromLTWH(192, 162, 120, 30),
		},
		{
			name:    "clamped to side buffer when wider than the surface",
			regions: []graphics.Rect{graphics.RectFromLTWH(100, 200, 60, 40)},
			size:    graphics.Size{Width: 400, Height: 30},
			want:    graphics.RectFromLTWH(8, 162, 400, 30),
		},
		{
			name: "alternate placement when above covers another region",
			regions: []graphics.Rect{
				graphics.RectFromLTWH(20, 200, 100, 40),
				graphics.RectFromLTWH(20, 150, 100, 30),
			},
			size: graphics.Size{Width: 80, Height: 30},
			want: graphics.RectFromLTWH(20, 248, 80, 30),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CaptionFrame(bounds, tt.regions, tt.size)
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCaptionFrame_NoRegions(t *testing.T) {
	got := CaptionFrame(graphics.RectFromLTWH(0, 0, 320, 480), nil, graphics.Size{Width: 10, Height: 10})
	if !got.IsEmpty() {
		t.Errorf("expected empty frame, got %v", got)
	}
}

func TestDismissControlFrame(t *testing.T) {
	bounds := graphics.RectFromLTWH(0, 0, 320, 480)
	rects := func(rs ...graphics.Rect) []graphics.Rect { return rs }
	tests := []struct {
		name  string
		avoid []graphics.Rect
		want  graphics.Rect
	}{
		{
			name:  "top right by default",
			avoid: rects(graphics.RectFromLTWH(20, 200, 100, 40)),
			want:  graphics.RectFromLTWH(244, 28, 68, 44),
		},
		{
			name:  "top left when top right is covered",
			avoid: rects(graphics.RectFromLTWH(200, 20, 120, 80)),
			want:  graphics.RectFromLTWH(8, 28, 68, 44),
		},
		{
			name:  "bottom right when both top corners are covered",
			avoid: rects(graphics.RectFromLTWH(0, 0, 320, 100)),
			want:  graphics.RectFromLTWH(244, 428, 68, 44),
		},
		{
			name: "top left when a later region covers top right",
			avoid: rects(
				graphics.RectFromLTWH(20, 200, 100, 40),
				graphics.RectFromLTWH(230, 20, 80, 60),
			),
			want: graphics.RectFromLTWH(8, 28, 68, 44),
		},
		{
			name: "bottom right when the caption covers top left",
			avoid: rects(
				graphics.RectFromLTWH(230, 20, 80, 60),
				graphics.RectFromLTWH(8, 40, 120, 24),
			),
			want: graphics.RectFromLTWH(244, 428, 68, 44),
		},
		{
			name:  "top left when every corner is covered",
			avoid: rects(graphics.RectFromLTWH(0, 0, 320, 480)),
			want:  graphics.RectFromLTWH(8, 28, 68, 44),
		},
		{
			name: "top right with nothing to avoid",
			want: graphics.RectFromLTWH(244, 28, 68, 44),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DismissControlFrame(bounds, tt.avoid)
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestEstimateMeasurer(t *testing.T) {
	m := EstimateMeasurer{}
	got := m.MeasureText("Tap anywhere", graphics.Font{Size: 20})
	if got.Width != 120 || got.Height != 24 {
		t.Errorf("expected 120x24, got %v", got)
	}
	got = m.MeasureText("ab\nabcd", graphics.Font{Size: 10})
	if got.Width != 20 || got.Height != 24 {
		t.Errorf("expected 20x24, got %v", got)
	}
	if got = m.MeasureText("", graphics.Font{Size: 10}); got != (graphics.Size{}) {
		t.Errorf("expected zero size, got %v", got)
	}
}
