package fractree

// Surface is the drawing target shared by every tree in a frame. Coordinates
// are canvas pixels with the origin at the top-left. Implementations only
// need to be safe for use from the goroutine driving the frame.
type Surface interface {
	// Size returns the canvas dimensions.
	Size() (width, height float64)

	// Fill paints the whole canvas with c, discarding previous pixels.
	Fill(c Color) error

	// FillCircle draws a filled circle of radius r centered on (x, y).
	FillCircle(x, y, r float64, c Color) error

	// DrawGlyph draws s centered on (x, y) at the given font size.
	DrawGlyph(s string, x, y, size float64, c Color) error

	// DrawLine strokes a segment from (x1, y1) to (x2, y2).
	DrawLine(x1, y1, x2, y2, width float64, c Color) error

	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y, size float64, c Color) error
}

// FrameScheduler runs a callback on the host's next display refresh.
type FrameScheduler interface {
	ScheduleNextFrame(fn func())
}
