package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in overlay coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromSize constructs a Rect at the origin with the given size.
func RectFromSize(size Size) Rect {
	return Rect{Right: size.Width, Bottom: size.Height}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Inflate returns the rect grown by delta on every side.
// A negative delta shrinks it.
func (r Rect) Inflate(delta float64) Rect {
	return Rect{
		Left:   r.Left - delta,
		Top:    r.Top - delta,
		Right:  r.Right + delta,
		Bottom: r.Bottom + delta,
	}
}

// Contains reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Overlaps reports whether r and other share a region of positive area.
// Rects that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.Left < other.Right && other.Left < r.Right &&
		r.Top < other.Bottom && other.Top < r.Bottom
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{} // Empty
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Union returns the smallest rect containing both r and other.
// An empty operand is ignored.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Subtract returns a set of non-overlapping rects covering r minus hole.
// The result has at most four rects: full-width bands above and below the
// hole, and the left and right remainders beside it.
func (r Rect) Subtract(hole Rect) []Rect {
	cut := r.Intersect(hole)
	if cut.IsEmpty() {
		if r.IsEmpty() {
			return nil
		}
		return []Rect{r}
	}
	out := make([]Rect, 0, 4)
	if cut.Top > r.Top {
		out = append(out, Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: cut.Top})
	}
	if cut.Bottom < r.Bottom {
		out = append(out, Rect{Left: r.Left, Top: cut.Bottom, Right: r.Right, Bottom: r.Bottom})
	}
	if cut.Left > r.Left {
		out = append(out, Rect{Left: r.Left, Top: cut.Top, Right: cut.Left, Bottom: cut.Bottom})
	}
	if cut.Right < r.Right {
		out = append(out, Rect{Left: cut.Right, Top: cut.Top, Right: r.Right, Bottom: cut.Bottom})
	}
	return out
}

// SubtractAll removes every hole from r and returns the remaining area as
// non-overlapping rects.
func (r Rect) SubtractAll(holes []Rect) []Rect {
	remaining := []Rect{r}
	if r.IsEmpty() {
		return nil
	}
	for _, hole := range holes {
		next := remaining[:0:0]
		for _, piece := range remaining {
			next = append(next, piece.Subtract(hole)...)
		}
		remaining = next
	}
	return remaining
}

// Equal reports whether two rects match within a small tolerance.
func (r Rect) Equal(other Rect) bool {
	return floatEqual(r.Left, other.Left) &&
		floatEqual(r.Top, other.Top) &&
		floatEqual(r.Right, other.Right) &&
		floatEqual(r.Bottom, other.Bottom)
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
