// Package raster renders overlay frames to images with gg.
package raster

import (
	"image"
	"io"
	"strings"

	"github.com/gogpu/gg"

	"github.com/go-drift/spotlight/pkg/graphics"
)

type saveKind int

const (
	saveState saveKind = iota
	saveLayer
)

// Canvas is a graphics.Canvas backed by a software gg context.
type Canvas struct {
	dc    *gg.Context
	fonts *Fonts
	size  graphics.Size
	saves []saveKind
	err   error
}

// NewCanvas creates a transparent canvas of the given pixel size.
func NewCanvas(width, height int, fonts *Fonts) *Canvas {
	return &Canvas{
		dc:    gg.NewContext(width, height),
		fonts: fonts,
		size:  graphics.Size{Width: float64(width), Height: float64(height)},
	}
}

func (c *Canvas) Save() {
	c.dc.Push()
	c.saves = append(c.saves, saveState)
}

func (c *Canvas) SaveLayerAlpha(_ graphics.Rect, alpha float64) {
	c.dc.PushLayer(gg.BlendNormal, alpha)
	c.saves = append(c.saves, saveLayer)
}

func (c *Canvas) Restore() {
	if len(c.saves) == 0 {
		return
	}
	kind := c.saves[len(c.saves)-1]
	c.saves = c.saves[:len(c.saves)-1]
	if kind == saveLayer {
		c.dc.PopLayer()
	} else {
		c.dc.Pop()
	}
}

func (c *Canvas) ClipRect(rect graphics.Rect) {
	c.dc.ClipRect(rect.Left, rect.Top, rect.Width(), rect.Height())
}

func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	if rect.IsEmpty() {
		return
	}
	c.dc.DrawRectangle(rect.Left, rect.Top, rect.Width(), rect.Height())
	c.dc.SetFillBrush(brushFor(paint))
	c.fill()
}

// DrawText draws s with its first line's top at position.Y.
func (c *Canvas) DrawText(s string, position graphics.Offset, style graphics.TextStyle) {
	if s == "" || c.fonts == nil {
		return
	}
	face := c.fonts.Face(style.Font)
	metrics := face.Metrics()
	c.dc.SetFont(face)
	c.dc.SetColor(style.Color.NRGBA())
	for i, line := range strings.Split(s, "\n") {
		baseline := position.Y + metrics.Ascent + float64(i)*metrics.LineHeight()
		c.dc.DrawString(line, position.X, baseline)
	}
}

func (c *Canvas) Size() graphics.Size {
	return c.size
}

// Fill clears the canvas to color.
func (c *Canvas) Fill(color graphics.Color) {
	c.dc.ClearWithColor(toRGBA(color))
}

// Err returns the first fill error, if any.
func (c *Canvas) Err() error {
	return c.err
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.EncodePNG(w)
}

// Close releases the gg context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

func (c *Canvas) fill() {
	if err := c.dc.Fill(); err != nil && c.err == nil {
		c.err = err
	}
}

func brushFor(paint graphics.Paint) gg.Brush {
	g := paint.Gradient
	if !g.IsValid() {
		return gg.Solid(toRGBA(paint.Color))
	}
	switch g.Type {
	case graphics.GradientTypeRadial:
		b := gg.NewRadialGradientBrush(g.Radial.Center.X, g.Radial.Center.Y, 0, g.Radial.Radius)
		for _, stop := range g.Radial.Stops {
			b.AddColorStop(stop.Position, toRGBA(stop.Color))
		}
		return b
	default:
		b := gg.NewLinearGradientBrush(g.Linear.Start.X, g.Linear.Start.Y, g.Linear.End.X, g.Linear.End.Y)
		for _, stop := range g.Linear.Stops {
			b.AddColorStop(stop.Position, toRGBA(stop.Color))
		}
		return b
	}
}

func toRGBA(c graphics.Color) gg.RGBA {
	r, g, b, a := c.RGBAF()
	return gg.RGBA{R: r, G: g, B: b, A: a}
}
