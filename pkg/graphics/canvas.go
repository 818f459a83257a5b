// Package graphics provides the geometry, color, paint and canvas types used
// to describe an overlay frame independently of any rendering backend.
//
// Drawing code targets the [Canvas] interface. A [PictureRecorder] captures
// the calls into a replayable [DisplayList]; raster and terminal backends
// implement Canvas directly.
package graphics

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current clip state.
	Save()

	// SaveLayerAlpha saves a new layer with the given opacity (0.0 to 1.0).
	// All drawing until the matching Restore() call will be composited with this opacity.
	SaveLayerAlpha(bounds Rect, alpha float64)

	// Restore pops the most recent clip state or layer.
	Restore()

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// DrawRect fills a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawText draws a single- or multi-line string with its top-left
	// corner at position.
	DrawText(text string, position Offset, style TextStyle)

	// Size returns the size of the canvas.
	Size() Size
}
