package graphics

import (
	"fmt"
	"math"
)

// GradientType describes the gradient variant.
type GradientType int

const (
	// GradientTypeNone indicates no gradient is applied.
	GradientTypeNone GradientType = iota
	// GradientTypeLinear indicates a linear gradient.
	GradientTypeLinear
	// GradientTypeRadial indicates a radial gradient.
	GradientTypeRadial
)

// String returns a human-readable representation of the gradient type.
func (t GradientType) String() string {
	switch t {
	case GradientTypeNone:
		return "none"
	case GradientTypeLinear:
		return "linear"
	case GradientTypeRadial:
		return "radial"
	default:
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// RadialGradient defines a gradient from a center point.
type RadialGradient struct {
	Center Offset
	Radius float64
	Stops  []GradientStop
}

// Gradient describes a linear or radial gradient.
// Colors outside the first and last stop are padded.
type Gradient struct {
	Type   GradientType
	Linear LinearGradient
	Radial RadialGradient
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *Gradient {
	return &Gradient{
		Type: GradientTypeLinear,
		Linear: LinearGradient{
			Start: start,
			End:   end,
			Stops: cloneGradientStops(stops),
		},
	}
}

// NewRadialGradient constructs a radial gradient definition.
func NewRadialGradient(center Offset, radius float64, stops []GradientStop) *Gradient {
	return &Gradient{
		Type: GradientTypeRadial,
		Radial: RadialGradient{
			Center: center,
			Radius: radius,
			Stops:  cloneGradientStops(stops),
		},
	}
}

// Stops returns the gradient stops for the configured type.
func (g *Gradient) Stops() []GradientStop {
	if g == nil {
		return nil
	}
	switch g.Type {
	case GradientTypeLinear:
		return g.Linear.Stops
	case GradientTypeRadial:
		return g.Radial.Stops
	default:
		return nil
	}
}

// IsValid reports whether the gradient has usable stops.
func (g *Gradient) IsValid() bool {
	if g == nil {
		return false
	}
	stops := g.Stops()
	if len(stops) < 2 {
		return false
	}
	if g.Type == GradientTypeRadial && g.Radial.Radius <= 0 {
		return false
	}
	for _, stop := range stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return g.Type == GradientTypeLinear || g.Type == GradientTypeRadial
}

// ColorAt evaluates the gradient at p. Stops are interpolated in
// non-premultiplied space; t is clamped to the first and last stop.
// This is the reference used by software and terminal backends.
func (g *Gradient) ColorAt(p Offset) Color {
	if !g.IsValid() {
		return ColorTransparent
	}
	return sampleStops(g.Stops(), g.parameter(p))
}

// parameter maps p to the gradient's t value.
func (g *Gradient) parameter(p Offset) float64 {
	switch g.Type {
	case GradientTypeLinear:
		s, e := g.Linear.Start, g.Linear.End
		dx, dy := e.X-s.X, e.Y-s.Y
		lengthSq := dx*dx + dy*dy
		if lengthSq == 0 {
			return 0
		}
		return ((p.X-s.X)*dx + (p.Y-s.Y)*dy) / lengthSq
	case GradientTypeRadial:
		c := g.Radial.Center
		return math.Hypot(p.X-c.X, p.Y-c.Y) / g.Radial.Radius
	default:
		return 0
	}
}

func sampleStops(stops []GradientStop, t float64) Color {
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span <= 0 {
			return b.Color
		}
		return lerpColor(a.Color, b.Color, (t-a.Position)/span)
	}
	return last.Color
}

func lerpColor(a, b Color, t float64) Color {
	ar, ag, ab, aa := a.RGBAF()
	br, bg, bb, ba := b.RGBAF()
	mix := func(x, y float64) uint8 {
		return uint8(math.Round((x + (y-x)*t) * maxByte))
	}
	return Color(uint32(mix(aa, ba))<<24 | uint32(mix(ar, br))<<16 | uint32(mix(ag, bg))<<8 | uint32(mix(ab, bb)))
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
