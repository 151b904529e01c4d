package frost

import "golang.org/x/image/draw"

// Host is the UI layer that owns the widget.
//
// The compositor calls into the host to capture what lies behind the widget
// and to ask for another frame. All calls happen on the goroutine that drives
// the compositor.
type Host interface {
	// CaptureParentContent renders the content visually behind the widget
	// into target, mapping parent coordinates through t. The target has
	// already been cleared to transparent.
	//
	// Drawing the parent may draw the widget itself; the resulting nested
	// RenderFrame call returns immediately without doing any work.
	CaptureParentContent(target *Surface, t Transform) error

	// RequestRedraw schedules a future RenderFrame call.
	RequestRedraw()
}

// ContentDrawer is implemented by hosts whose widget has its own content
// (children, labels) drawn on top of the frosted background. DrawContent is
// called after compositing, on every top-level RenderFrame.
type ContentDrawer interface {
	DrawContent(dst draw.Image) error
}
