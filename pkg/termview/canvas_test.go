package termview

import (
	"strings"
	"testing"

	"github.com/go-drift/spotlight/pkg/graphics"
)

var unit = graphics.Size{Width: 1, Height: 1}

func TestCanvasDrawRectComposites(t *testing.T) {
	c := NewCanvas(10, 4, unit)
	c.DrawRect(graphics.RectFromLTWH(0, 0, 10, 4), graphics.SolidPaint(graphics.ColorWhite))
	c.DrawRect(graphics.RectFromLTWH(2, 1, 3, 2), graphics.SolidPaint(graphics.RGBA(0, 0, 0, 0.5)))

	if got := c.Cell(0, 0).BG; got != graphics.ColorWhite {
		t.Errorf("expected white outside, got %s", got.Hex())
	}
	// Alpha 0.5 quantizes to 128/255.
	if got := c.Cell(3, 2).BG; got != graphics.RGB(127, 127, 127) {
		t.Errorf("expected half grey inside, got %s", got.Hex())
	}
	if got := c.Cell(5, 1).BG; got != graphics.ColorWhite {
		t.Errorf("expected right edge exclusive, got %s", got.Hex())
	}
}

func TestCanvasLayerAlphaAndClip(t *testing.T) {
	c := NewCanvas(4, 1, unit)
	c.DrawRect(graphics.RectFromLTWH(0, 0, 4, 1), graphics.SolidPaint(graphics.ColorWhite))

	c.SaveLayerAlpha(graphics.RectFromLTWH(0, 0, 4, 1), 0.5)
	c.ClipRect(graphics.RectFromLTWH(0, 0, 2, 1))
	c.DrawRect(graphics.RectFromLTWH(0, 0, 4, 1), graphics.SolidPaint(graphics.ColorBlack))
	c.Restore()
	c.DrawRect(graphics.RectFromLTWH(3, 0, 1, 1), graphics.SolidPaint(graphics.ColorBlack))

	if got := c.Cell(0, 0).BG; got != graphics.RGB(128, 128, 128) {
		t.Errorf("expected layer alpha applied, got %s", got.Hex())
	}
	if got := c.Cell(2, 0).BG; got != graphics.ColorWhite {
		t.Errorf("expected clipped cell untouched, got %s", got.Hex())
	}
	if got := c.Cell(3, 0).BG; got != graphics.ColorBlack {
		t.Errorf("expected full alpha after restore, got %s", got.Hex())
	}
}

func TestCanvasDrawTextWideRunes(t *testing.T) {
	c := NewCanvas(8, 2, unit)
	c.DrawText("a世b\nc", graphics.Offset{X: 1, Y: 0}, graphics.TextStyle{Color: graphics.ColorWhite})

	want := []rune{' ', 'a', '世', 0, 'b'}
	for col, r := range want {
		if got := c.Cell(col, 0).Rune; got != r {
			t.Errorf("cell %d: expected %q, got %q", col, r, got)
		}
	}
	if got := c.Cell(1, 1).Rune; got != 'c' {
		t.Errorf("expected second line at same column, got %q", got)
	}
}

func TestCanvasRender(t *testing.T) {
	c := NewCanvas(5, 2, unit)
	c.DrawText("hi", graphics.Offset{X: 0, Y: 1}, graphics.TextStyle{Color: graphics.ColorWhite})

	lines := strings.Split(c.Render(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "hi") {
		t.Errorf("expected second line to contain text, got %q", lines[1])
	}
}

func TestCanvasDefaultCellSize(t *testing.T) {
	c := NewCanvas(10, 5, graphics.Size{})
	if got := c.Size(); got != (graphics.Size{Width: 80, Height: 80}) {
		t.Fatalf("expected 80x80 units, got %v", got)
	}

	// Row 1 spans y 16..32, so only cells with centers inside are painted.
	c.DrawRect(graphics.RectFromLTWH(8, 16, 16, 16), graphics.SolidPaint(graphics.ColorWhite))
	if got := c.Cell(1, 1).BG; got != graphics.ColorWhite {
		t.Errorf("expected cell (1,1) painted, got %s", got.Hex())
	}
	if got := c.Cell(2, 1).BG; got != graphics.ColorWhite {
		t.Errorf("expected cell (2,1) painted, got %s", got.Hex())
	}
	if got := c.Cell(3, 1).BG; got != graphics.ColorBlack {
		t.Errorf("expected cell (3,1) untouched, got %s", got.Hex())
	}

	c.DrawText("x", graphics.Offset{X: 24, Y: 48}, graphics.TextStyle{Color: graphics.ColorWhite})
	if got := c.Cell(3, 3).Rune; got != 'x' {
		t.Errorf("expected text at cell (3,3), got %q", got)
	}
}

func TestCellMeasurer(t *testing.T) {
	m := CellMeasurer{Cell: unit}
	tests := []struct {
		text string
		want graphics.Size
	}{
		{"", graphics.Size{}},
		{"Done", graphics.Size{Width: 4, Height: 1}},
		{"世界", graphics.Size{Width: 4, Height: 1}},
		{"ab\nabcd", graphics.Size{Width: 4, Height: 2}},
	}
	for _, tt := range tests {
		if got := m.MeasureText(tt.text, graphics.Font{}); got != tt.want {
			t.Errorf("MeasureText(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}

	if got := (CellMeasurer{}).MeasureText("Done", graphics.Font{}); got != (graphics.Size{Width: 32, Height: 16}) {
		t.Errorf("expected default cell scaling, got %v", got)
	}
}
