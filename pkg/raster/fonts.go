package raster

import (
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-drift/spotlight/pkg/graphics"
)

// Fonts resolves caption fonts to gg faces. Every family maps to Go Regular.
// Safe for concurrent use.
type Fonts struct {
	source *text.FontSource

	mu    sync.Mutex
	faces map[float64]text.Face
}

// NewFonts parses the embedded Go Regular font.
func NewFonts() (*Fonts, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Fonts{source: source, faces: make(map[float64]text.Face)}, nil
}

// Face returns the face for font, creating it on first use.
func (f *Fonts) Face(font graphics.Font) text.Face {
	size := font.Size
	if size <= 0 {
		size = graphics.DefaultFont().Size
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	face, ok := f.faces[size]
	if !ok {
		face = f.source.Face(size)
		f.faces[size] = face
	}
	return face
}

// MeasureText implements spotlight.TextMeasurer. Lines are separated by
// newlines and stacked at the face's line height.
func (f *Fonts) MeasureText(s string, font graphics.Font) graphics.Size {
	if s == "" {
		return graphics.Size{}
	}
	face := f.Face(font)
	lineHeight := face.Metrics().LineHeight()
	lines := strings.Split(s, "\n")
	var width float64
	for _, line := range lines {
		width = max(width, face.Advance(line))
	}
	return graphics.Size{Width: width, Height: lineHeight * float64(len(lines))}
}

// Close releases the font source.
func (f *Fonts) Close() error {
	return f.source.Close()
}
