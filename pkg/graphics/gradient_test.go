package graphics

import (
	"math"
	"testing"
)

func TestGradient_IsValid(t *testing.T) {
	stops := []GradientStop{{0, ColorTransparent}, {1, ColorBlack}}
	tests := []struct {
		name string
		g    *Gradient
		want bool
	}{
		{"nil", nil, false},
		{"linear", NewLinearGradient(Offset{}, Offset{X: 10}, stops), true},
		{"radial", NewRadialGradient(Offset{}, 5, stops), true},
		{"radial zero radius", NewRadialGradient(Offset{}, 0, stops), false},
		{"single stop", NewLinearGradient(Offset{}, Offset{X: 10}, stops[:1]), false},
		{"out of range stop", NewLinearGradient(Offset{}, Offset{X: 10}, []GradientStop{{0, ColorBlack}, {1.5, ColorWhite}}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGradient_LinearColorAt(t *testing.T) {
	g := NewLinearGradient(Offset{X: 10}, Offset{X: 0}, []GradientStop{
		{Position: 0, Color: ColorTransparent},
		{Position: 1, Color: ColorBlack},
	})

	if got := g.ColorAt(Offset{X: 10}).Alpha(); got != 0 {
		t.Errorf("expected transparent at start, got alpha %v", got)
	}
	if got := g.ColorAt(Offset{X: 0}).Alpha(); got != 1 {
		t.Errorf("expected opaque at end, got alpha %v", got)
	}
	if got := g.ColorAt(Offset{X: 5}).Alpha(); math.Abs(got-0.5) > 0.01 {
		t.Errorf("expected half alpha at midpoint, got %v", got)
	}
	// Padded beyond the end point.
	if got := g.ColorAt(Offset{X: -20}).Alpha(); got != 1 {
		t.Errorf("expected padded opaque, got %v", got)
	}
}

func TestGradient_RadialColorAt(t *testing.T) {
	radius := 10 * math.Sqrt2
	g := NewRadialGradient(Offset{}, radius, []GradientStop{
		{Position: 0, Color: ColorTransparent},
		{Position: 10 / radius, Color: ColorBlack},
	})

	if got := g.ColorAt(Offset{}).Alpha(); got != 0 {
		t.Errorf("expected transparent at center, got %v", got)
	}
	if got := g.ColorAt(Offset{X: 10}).Alpha(); got != 1 {
		t.Errorf("expected opaque at distance 10, got %v", got)
	}
	if got := g.ColorAt(Offset{X: 10, Y: 10}).Alpha(); got != 1 {
		t.Errorf("expected opaque at far corner, got %v", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#000000", ColorBlack, false},
		{"#CC000000", RGBA(0, 0, 0, 0.8), false},
		{"#FFFFFF", ColorWhite, false},
		{"000000", 0, true},
		{"#12345", 0, true},
		{"#GGGGGG", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got.Hex(), tt.want.Hex())
			}
		})
	}
}
