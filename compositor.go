package frost

import (
	"errors"
	"fmt"

	"golang.org/x/image/draw"

	"github.com/gogpu/frost/internal/filter"
)

// Errors returned by New and RenderFrame.
var (
	// ErrNilHost is returned by New when host is nil.
	ErrNilHost = errors.New("frost: nil host")

	// ErrNilOutput is returned by RenderFrame when dst is nil.
	ErrNilOutput = errors.New("frost: nil output image")

	// ErrCapture wraps errors returned by Host.CaptureParentContent.
	ErrCapture = errors.New("frost: capture failed")

	// ErrBlur wraps errors returned by the blur filter.
	ErrBlur = errors.New("frost: blur failed")
)

// renderState tracks whether a frame is in progress.
type renderState uint8

const (
	stateIdle renderState = iota
	stateRendering
)

// String returns the state name.
func (s renderState) String() string {
	switch s {
	case stateIdle:
		return "Idle"
	case stateRendering:
		return "Rendering"
	default:
		return "Unknown"
	}
}

// Compositor renders a frosted-glass background: a blurred, downsampled
// snapshot of whatever the host draws behind the widget.
//
// A frame runs four steps: capture the parent content into the working
// buffer, blur it, scale the result up over the output, then let the host
// draw the widget's own content. Working buffers are reallocated only when
// the measured size or the downsample factor changes.
//
// Compositor is not safe for concurrent use. It expects every call to come
// from the host's UI goroutine.
type Compositor struct {
	host   Host
	filter BlurFilter // nil disables the blur pipeline
	interp draw.Interpolator

	radius     int
	downsample float64

	width, height int
	left, top     float64

	scale    ScaleFactors
	original *Surface
	blurred  *Surface

	state renderState
}

// New creates a compositor for host.
//
// The blur filter is chosen once, here: an injected WithFilter wins, then
// Config.Filter by name, then the best available filter of the registry
// (the global one unless WithRegistry is given). When
// Config.Preview is set or no filter is available, the compositor runs in
// degraded mode and only draws the widget's own content.
func New(host Host, cfg Config, opts ...Option) (*Compositor, error) {
	if host == nil {
		return nil, ErrNilHost
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Compositor{
		host:       host,
		interp:     o.interp,
		radius:     cfg.BlurRadius,
		downsample: normalizeDownsample(cfg.Downsample),
		scale:      ScaleFactors{X: 1, Y: 1},
	}

	f, err := selectFilter(cfg, o.filter, o.registry)
	if err != nil {
		return nil, err
	}
	c.filter = f

	return c, nil
}

// selectFilter resolves the blur filter for a new compositor.
func selectFilter(cfg Config, injected BlurFilter, reg *FilterRegistry) (BlurFilter, error) {
	log := Logger()

	if injected != nil {
		log.Info("frost: using injected blur filter", "filter", injected.Name())
		return injected, nil
	}
	if cfg.Preview {
		log.Info("frost: preview mode, blur disabled")
		return nil, nil
	}

	if cfg.Filter != "" {
		f, err := reg.NewFilterByName(cfg.Filter)
		if err == nil {
			log.Info("frost: blur filter selected", "filter", f.Name())
			return f, nil
		}
		var unavailable *FilterUnavailableError
		if !errors.As(err, &unavailable) {
			return nil, err
		}
		log.Warn("frost: requested blur filter unavailable, selecting another", "filter", cfg.Filter)
	}

	f, err := reg.NewFilter()
	if err != nil {
		log.Warn("frost: no blur filter available, blur disabled", "err", err)
		return nil, nil
	}
	log.Info("frost: blur filter selected", "filter", f.Name())
	return f, nil
}

// SetBlurRadius sets the blur radius and requests a redraw. The value is
// stored as given; it is clamped to [1, MaxBlurRadius] when the blur runs.
func (c *Compositor) SetBlurRadius(r int) {
	c.radius = r
	c.host.RequestRedraw()
}

// BlurRadius returns the radius last set, before clamping.
func (c *Compositor) BlurRadius() int {
	return c.radius
}

// EffectiveBlurRadius returns the radius the blur will use.
func (c *Compositor) EffectiveBlurRadius() int {
	return filter.ClampRadius(c.radius)
}

// Downsample returns the downsample factor.
func (c *Compositor) Downsample() float64 {
	return c.downsample
}

// SetDownsample changes the downsample factor. The working buffers are
// reallocated right away if the widget has been measured, and a redraw is
// requested.
func (c *Compositor) SetDownsample(d float64) {
	c.downsample = normalizeDownsample(d)
	if c.width > 0 && c.height > 0 {
		c.allocate()
	}
	c.host.RequestRedraw()
}

// SetPosition sets the widget's top-left corner in parent coordinates.
// Capture maps this point to the working buffer origin.
func (c *Compositor) SetPosition(left, top float64) {
	c.left, c.top = left, top
}

// Position returns the widget's top-left corner in parent coordinates.
func (c *Compositor) Position() (left, top float64) {
	return c.left, c.top
}

// OnMeasuredSizeChanged reallocates the working buffers for a widget of
// width x height real pixels and requests a redraw. A zero or negative
// dimension is ignored: allocation waits until a positive size arrives.
func (c *Compositor) OnMeasuredSizeChanged(width, height int) {
	if width <= 0 || height <= 0 {
		Logger().Debug("frost: ignoring empty size", "width", width, "height", height)
		return
	}

	c.width, c.height = width, height
	c.allocate()
	c.host.RequestRedraw()
}

// allocate replaces both working buffers and recomputes the scale factors.
func (c *Compositor) allocate() {
	workW, workH := WorkingSize(c.width, c.height, c.downsample)

	c.scale = scaleFactors(c.width, c.height, workW, workH)
	c.original = NewSurface(workW, workH)
	c.blurred = NewSurface(workW, workH)

	Logger().Debug("frost: working buffers allocated",
		"width", c.width, "height", c.height,
		"workWidth", workW, "workHeight", workH,
		"xScale", c.scale.X, "yScale", c.scale.Y)
}

// Size returns the measured widget size.
func (c *Compositor) Size() (width, height int) {
	return c.width, c.height
}

// WorkingSize returns the working buffer size, or 0x0 before the first
// positive measurement.
func (c *Compositor) WorkingSize() (width, height int) {
	if c.original == nil {
		return 0, 0
	}
	return c.original.Size()
}

// ScaleFactors returns the real/working ratios.
func (c *Compositor) ScaleFactors() ScaleFactors {
	return c.scale
}

// Rendering reports whether a frame is in progress.
func (c *Compositor) Rendering() bool {
	return c.state == stateRendering
}

// FilterName returns the name of the active blur filter, or "" when the
// blur pipeline is disabled.
func (c *Compositor) FilterName() string {
	if c.filter == nil {
		return ""
	}
	return c.filter.Name()
}

// BlurEnabled reports whether frames run the blur pipeline. It is false in
// preview mode, without a filter, and before the first positive size.
func (c *Compositor) BlurEnabled() bool {
	return c.filter != nil && c.original != nil
}

// CaptureTransform returns the parent-to-working-buffer transform used by
// the capture step: translate the widget origin to (0,0), then scale by
// (1/xScale, 1/yScale).
func (c *Compositor) CaptureTransform() Transform {
	return Scale(1/c.scale.X, 1/c.scale.Y).Multiply(Translate(-c.left, -c.top))
}

// RenderFrame draws one frame into dst: the frosted background scaled to
// dst's bounds, then the host's own content if the host is a ContentDrawer.
//
// A call made while another RenderFrame is in progress (typically because
// capturing the parent drew this widget again) returns nil without doing
// anything. The in-progress state is cleared on every exit path, including
// errors and panics from the host.
//
// Capture and blur errors fail the frame; they are returned wrapped in
// ErrCapture or ErrBlur and nothing is composited.
func (c *Compositor) RenderFrame(dst draw.Image) error {
	if c.state == stateRendering {
		Logger().Debug("frost: skipping re-entrant render")
		return nil
	}
	if dst == nil {
		return ErrNilOutput
	}

	c.state = stateRendering
	defer func() { c.state = stateIdle }()

	if c.BlurEnabled() {
		if err := c.capture(); err != nil {
			return err
		}
		if err := c.blur(); err != nil {
			return err
		}
		c.composite(dst)
	}

	if cd, ok := c.host.(ContentDrawer); ok {
		return cd.DrawContent(dst)
	}
	return nil
}

// capture renders the parent content into the original buffer.
func (c *Compositor) capture() error {
	c.original.Clear()
	if err := c.host.CaptureParentContent(c.original, c.CaptureTransform()); err != nil {
		return fmt.Errorf("%w: %w", ErrCapture, err)
	}
	return nil
}

// blur fills the blurred buffer from the original buffer.
func (c *Compositor) blur() error {
	if err := c.filter.Apply(c.blurred, c.original, c.EffectiveBlurRadius()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBlur, c.filter.Name(), err)
	}
	return nil
}

// composite draws the blurred buffer over dst, scaled to the real size and
// anchored at dst's top-left corner.
func (c *Compositor) composite(dst draw.Image) {
	origin := dst.Bounds().Min
	t := Translate(float64(origin.X), float64(origin.Y)).Multiply(Scale(c.scale.X, c.scale.Y))
	c.interp.Transform(dst, t.Aff3(), c.blurred.RGBA(), c.blurred.Bounds(), draw.Over, nil)
}

// Close releases filter resources such as worker pools.
func (c *Compositor) Close() {
	if closer, ok := c.filter.(interface{ Close() }); ok {
		closer.Close()
	}
}
