package graphics

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(opSave{})
}

func (c *recordingCanvas) SaveLayerAlpha(bounds Rect, alpha float64) {
	c.recorder.append(opSaveLayerAlpha{bounds: bounds, alpha: alpha})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(opRestore{})
}

func (c *recordingCanvas) ClipRect(rect Rect) {
	c.recorder.append(opClipRect{rect: rect})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	// Gradients are shared by pointer; copy so later edits don't leak in.
	if paint.Gradient != nil {
		g := *paint.Gradient
		g.Linear.Stops = cloneGradientStops(g.Linear.Stops)
		g.Radial.Stops = cloneGradientStops(g.Radial.Stops)
		paint.Gradient = &g
	}
	c.recorder.append(opRect{rect: rect, paint: paint})
}

func (c *recordingCanvas) DrawText(text string, position Offset, style TextStyle) {
	c.recorder.append(opText{text: text, position: position, style: style})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

type opSave struct{}

func (op opSave) execute(canvas Canvas) {
	canvas.Save()
}

type opSaveLayerAlpha struct {
	bounds Rect
	alpha  float64
}

func (op opSaveLayerAlpha) execute(canvas Canvas) {
	canvas.SaveLayerAlpha(op.bounds, op.alpha)
}

type opRestore struct{}

func (op opRestore) execute(canvas Canvas) {
	canvas.Restore()
}

type opClipRect struct {
	rect Rect
}

func (op opClipRect) execute(canvas Canvas) {
	canvas.ClipRect(op.rect)
}

type opRect struct {
	rect  Rect
	paint Paint
}

func (op opRect) execute(canvas Canvas) {
	canvas.DrawRect(op.rect, op.paint)
}

type opText struct {
	text     string
	position Offset
	style    TextStyle
}

func (op opText) execute(canvas Canvas) {
	canvas.DrawText(op.text, op.position, op.style)
}
