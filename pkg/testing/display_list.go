package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/spotlight/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// RecordingCanvas implements graphics.Canvas and records ops as DisplayOp.
type RecordingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

// NewRecordingCanvas returns an empty canvas of the given size.
func NewRecordingCanvas(size graphics.Size) *RecordingCanvas {
	return &RecordingCanvas{size: size}
}

// Ops returns every recorded op in order.
func (c *RecordingCanvas) Ops() []DisplayOp {
	return c.ops
}

// OpsNamed returns the recorded ops whose name is op.
func (c *RecordingCanvas) OpsNamed(op string) []DisplayOp {
	var out []DisplayOp
	for _, o := range c.ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

func (c *RecordingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *RecordingCanvas) SaveLayerAlpha(bounds graphics.Rect, alpha float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "saveLayerAlpha",
		Params: paramMap("bounds", serializeRect(bounds), "alpha", round2(alpha)),
	})
}

func (c *RecordingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *RecordingCanvas) ClipRect(rect graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: paramMap("rect", serializeRect(rect)),
	})
}

func (c *RecordingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	params := paramMap("rect", serializeRect(rect), "color", serializeColor(paint.Color))
	if paint.Gradient != nil {
		params["gradient"] = paint.Gradient.Type.String()
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawRect", Params: params})
}

func (c *RecordingCanvas) DrawText(text string, position graphics.Offset, style graphics.TextStyle) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: paramMap(
			"text", text,
			"x", round2(position.X),
			"y", round2(position.Y),
			"color", serializeColor(style.Color),
			"size", round2(style.Font.Size),
		),
	})
}

func (c *RecordingCanvas) Size() graphics.Size {
	return c.size
}

// SerializeDisplayList replays a DisplayList through a RecordingCanvas.
func SerializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := NewRecordingCanvas(dl.Size())
	dl.Paint(canvas)
	return canvas.ops
}

// RectParam reads back a rect recorded under key.
func RectParam(op DisplayOp, key string) graphics.Rect {
	m, _ := op.Params[key].(map[string]any)
	f := func(k string) float64 {
		v, _ := m[k].(float64)
		return v
	}
	return graphics.Rect{Left: f("left"), Top: f("top"), Right: f("right"), Bottom: f("bottom")}
}

func serializeRect(r graphics.Rect) map[string]any {
	return paramMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// paramMap creates a map from alternating key-value pairs.
func paramMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
