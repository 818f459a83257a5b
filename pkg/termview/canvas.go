// Package termview renders overlay frames to terminal cells and runs an
// interactive preview with Bubble Tea.
//
// Overlay coordinates stay in the same units the raster backend uses; each
// terminal cell covers a block of them, 8 by 16 unless told otherwise.
package termview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/spotlight/pkg/graphics"
)

// Cell is one terminal cell. Rune 0 marks the right half of a wide rune.
type Cell struct {
	Rune rune
	FG   graphics.Color
	BG   graphics.Color
}

type saveEntry struct {
	clip  graphics.Rect
	alpha float64
}

// DefaultCellSize is the overlay area one terminal cell covers.
var DefaultCellSize = graphics.Size{Width: 8, Height: 16}

// Canvas is a graphics.Canvas over a grid of cells. Colors are composited
// onto opaque cells; a layer's alpha scales everything drawn inside it.
type Canvas struct {
	cols, rows int
	cell       graphics.Size
	cells      []Cell
	clip       graphics.Rect
	alpha      float64
	stack      []saveEntry
}

// NewCanvas returns a black canvas of cols by rows cells, each covering
// cell units. A zero cell uses DefaultCellSize.
func NewCanvas(cols, rows int, cell graphics.Size) *Canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	cell = cellOrDefault(cell)
	cells := make([]Cell, cols*rows)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', FG: graphics.ColorWhite, BG: graphics.ColorBlack}
	}
	return &Canvas{
		cols:  cols,
		rows:  rows,
		cell:  cell,
		cells: cells,
		clip:  graphics.RectFromLTWH(0, 0, float64(cols)*cell.Width, float64(rows)*cell.Height),
		alpha: 1,
	}
}

func cellOrDefault(cell graphics.Size) graphics.Size {
	if cell.Width <= 0 || cell.Height <= 0 {
		return DefaultCellSize
	}
	return cell
}

// cellCenter returns the overlay point at the middle of a cell.
func (c *Canvas) cellCenter(col, row int) graphics.Offset {
	return graphics.Offset{
		X: (float64(col) + 0.5) * c.cell.Width,
		Y: (float64(row) + 0.5) * c.cell.Height,
	}
}

// Cell returns the cell at col, row.
func (c *Canvas) Cell(col, row int) Cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return Cell{}
	}
	return c.cells[row*c.cols+col]
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, saveEntry{clip: c.clip, alpha: c.alpha})
}

func (c *Canvas) SaveLayerAlpha(_ graphics.Rect, alpha float64) {
	c.Save()
	c.alpha *= math.Min(math.Max(alpha, 0), 1)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.clip, c.alpha = top.clip, top.alpha
}

func (c *Canvas) ClipRect(rect graphics.Rect) {
	c.clip = c.clip.Intersect(rect)
}

// DrawRect composites paint onto every cell whose center lies in rect.
func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	area := rect.Intersect(c.clip)
	if area.IsEmpty() || c.alpha <= 0 {
		return
	}
	top := int(math.Floor(area.Top / c.cell.Height))
	bottom := min(int(math.Ceil(area.Bottom/c.cell.Height)), c.rows)
	left := int(math.Floor(area.Left / c.cell.Width))
	right := min(int(math.Ceil(area.Right/c.cell.Width)), c.cols)
	for row := max(top, 0); row < bottom; row++ {
		for col := max(left, 0); col < right; col++ {
			center := c.cellCenter(col, row)
			if !area.Contains(center) {
				continue
			}
			src := paint.ColorAt(center)
			cell := &c.cells[row*c.cols+col]
			a := src.Alpha() * c.alpha
			cell.BG = over(cell.BG, src, a)
			cell.FG = over(cell.FG, src, a)
		}
	}
}

// DrawText writes runes starting at the cell nearest position. Each
// newline starts a new row at the same column.
func (c *Canvas) DrawText(text string, position graphics.Offset, style graphics.TextStyle) {
	if c.alpha <= 0 {
		return
	}
	row := int(math.Round(position.Y / c.cell.Height))
	startCol := int(math.Round(position.X / c.cell.Width))
	for _, line := range strings.Split(text, "\n") {
		col := startCol
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			c.putRune(col, row, r, style.Color)
			if w == 2 {
				c.putRune(col+1, row, 0, style.Color)
			}
			col += w
		}
		row++
	}
}

func (c *Canvas) putRune(col, row int, r rune, color graphics.Color) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	if !c.clip.Contains(c.cellCenter(col, row)) {
		return
	}
	cell := &c.cells[row*c.cols+col]
	cell.Rune = r
	cell.FG = over(cell.BG, color, color.Alpha()*c.alpha)
}

func (c *Canvas) Size() graphics.Size {
	return graphics.Size{Width: float64(c.cols) * c.cell.Width, Height: float64(c.rows) * c.cell.Height}
}

// Render returns the grid as styled lines joined by newlines.
func (c *Canvas) Render() string {
	var sb strings.Builder
	for row := range c.rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		var run strings.Builder
		var runFG, runBG graphics.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexRGB(runFG))).
				Background(lipgloss.Color(hexRGB(runBG)))
			sb.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for col := range c.cols {
			cell := c.cells[row*c.cols+col]
			if cell.Rune == 0 {
				continue
			}
			if run.Len() > 0 && (cell.FG != runFG || cell.BG != runBG) {
				flush()
			}
			runFG, runBG = cell.FG, cell.BG
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return sb.String()
}

// over composites src with alpha a onto an opaque dst.
func over(dst, src graphics.Color, a float64) graphics.Color {
	if a <= 0 {
		return dst
	}
	dr, dg, db, _ := dst.RGBAF()
	sr, sg, sb, _ := src.RGBAF()
	mix := func(d, s float64) uint8 {
		return uint8(math.Round((d + (s-d)*a) * 255))
	}
	return graphics.RGB(mix(dr, sr), mix(dg, sg), mix(db, sb))
}

func hexRGB(c graphics.Color) string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

// CellMeasurer measures text by terminal display width. It implements
// spotlight.TextMeasurer.
type CellMeasurer struct {
	// Cell is the overlay area of one cell. Zero uses DefaultCellSize.
	Cell graphics.Size
}

// MeasureText returns the widest line's display width and the line count,
// scaled by the cell size.
func (m CellMeasurer) MeasureText(text string, _ graphics.Font) graphics.Size {
	if text == "" {
		return graphics.Size{}
	}
	cell := cellOrDefault(m.Cell)
	lines := strings.Split(text, "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, runewidth.StringWidth(line))
	}
	return graphics.Size{Width: float64(widest) * cell.Width, Height: float64(len(lines)) * cell.Height}
}
