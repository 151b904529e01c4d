// Package frost renders a frosted-glass background for a UI widget: a
// blurred snapshot of whatever lies behind the widget, redrawn whenever the
// host asks for a frame.
//
// # Overview
//
// A [Compositor] owns two small working buffers, sized at the widget's
// measured size divided by the downsample factor and rounded up to a
// multiple of 16 pixels. Each call to [Compositor.RenderFrame]:
//
//  1. Clears the first buffer and asks the [Host] to draw the parent content
//     into it through a [Transform] that moves the widget origin to (0,0)
//     and shrinks by the scale factors.
//  2. Blurs it into the second buffer with a [BlurFilter].
//  3. Scales the blurred buffer back up over the output image.
//  4. Lets the host draw the widget's own content on top ([ContentDrawer]).
//
// If drawing the parent draws the widget again, the nested RenderFrame call
// returns immediately, so the widget never captures itself.
//
// # Quick Start
//
//	c, err := frost.New(host, frost.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	c.SetPosition(0, 400)
//	c.OnMeasuredSizeChanged(300, 200)
//
//	out := image.NewRGBA(image.Rect(0, 0, 300, 200))
//	if err := c.RenderFrame(out); err != nil {
//	    return err
//	}
//
// # Pixel Format
//
// Buffers are 8-bit RGBA with premultiplied alpha, the same layout as
// [image.RGBA]. Blurring premultiplied values lets transparent regions fade
// out without darkening the colors next to them.
//
// # Blur Filters
//
// Filters are registered by name with a priority. [New] picks one at
// construction: the parallel CPU Gaussian on multi-core systems, otherwise
// the serial Gaussian. A box approximation and a filter backed by
// github.com/anthonynsimon/bild are also registered. Radius is measured in
// working-buffer pixels, so the on-screen spread is roughly radius times
// the downsample factor.
//
// # Threading
//
// A Compositor is driven from a single goroutine, the host's UI thread.
// Filters may use goroutines internally but return only when done.
package frost
