package frost

import (
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/frost/internal/filter"
)

// Defaults applied by DefaultConfig.
const (
	// DefaultBlurRadius is the blur radius in working-buffer pixels.
	DefaultBlurRadius = 10

	// DefaultDownsample is the ratio between real and working resolution.
	DefaultDownsample = 3.0

	// MaxBlurRadius is the largest radius applied at blur time.
	// Larger radii are clamped.
	MaxBlurRadius = filter.MaxRadius
)

// Config holds the parameters a host passes to New.
// Start from DefaultConfig and override fields as needed.
type Config struct {
	// BlurRadius controls filter spread in working-buffer pixels.
	// Values below 1 are applied as 1, values above MaxBlurRadius as
	// MaxBlurRadius.
	BlurRadius int

	// Downsample is the ratio between the widget's real size and the
	// working buffers. Values in (0, 1) are raised to 1; zero, negative
	// and non-finite values select DefaultDownsample.
	Downsample float64

	// Filter names the blur filter to use. Empty selects the best
	// available registered filter.
	Filter string

	// Preview disables the blur pipeline entirely, as in design-time
	// previews where no blur backend exists. Own content is still drawn.
	Preview bool
}

// DefaultConfig returns the default configuration: radius 10, downsample 3,
// automatic filter selection.
func DefaultConfig() Config {
	return Config{
		BlurRadius: DefaultBlurRadius,
		Downsample: DefaultDownsample,
	}
}

// normalizeDownsample maps any input to a usable downsample factor >= 1.
func normalizeDownsample(d float64) float64 {
	if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return DefaultDownsample
	}
	if d < 1 {
		return 1
	}
	return d
}

// Option configures a Compositor during creation.
type Option func(*options)

// options holds optional Compositor dependencies.
type options struct {
	filter   BlurFilter
	interp   draw.Interpolator
	registry *FilterRegistry
}

func defaultOptions() options {
	return options{
		interp:   draw.ApproxBiLinear,
		registry: globalRegistry,
	}
}

// WithFilter injects a blur filter, bypassing registry selection and
// Config.Filter.
func WithFilter(f BlurFilter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithRegistry selects the blur filter from r instead of the global
// registry. A nil registry is ignored.
func WithRegistry(r *FilterRegistry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithInterpolator sets the interpolator used to scale the blurred buffer
// up to the output. The default is draw.ApproxBiLinear; draw.NearestNeighbor
// gives the blocky look of an unfiltered bitmap draw.
func WithInterpolator(i draw.Interpolator) Option {
	return func(o *options) {
		if i != nil {
			o.interp = i
		}
	}
}
