package graphics

// Paint describes how to fill a shape on the canvas.
//
// A zero-value Paint fills with transparent black, which draws nothing.
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Color    Color
	Gradient *Gradient // If set, overrides Color for the fill
}

// DefaultPaint returns a basic opaque white fill paint.
func DefaultPaint() Paint {
	return Paint{Color: ColorWhite}
}

// SolidPaint returns a paint filling with c.
func SolidPaint(c Color) Paint {
	return Paint{Color: c}
}

// GradientPaint returns a paint filling with g.
func GradientPaint(g *Gradient) Paint {
	return Paint{Gradient: g}
}

// ColorAt returns the paint color at p.
func (p Paint) ColorAt(at Offset) Color {
	if p.Gradient != nil && p.Gradient.IsValid() {
		return p.Gradient.ColorAt(at)
	}
	return p.Color
}

// Font describes a caption font. Family is advisory: backends without the
// family fall back to their default face.
type Font struct {
	Family string
	Size   float64
}

// DefaultFont returns the system caption font at size 20.
func DefaultFont() Font {
	return Font{Size: 20}
}

// TextStyle configures DrawText.
type TextStyle struct {
	Font  Font
	Color Color
}
