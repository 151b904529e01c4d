package frost

import (
	"runtime"

	"github.com/anthonynsimon/bild/blur"

	"github.com/gogpu/frost/internal/filter"
	"github.com/gogpu/frost/internal/parallel"
)

// Names of the built-in blur filters.
const (
	FilterParallel = "parallel"
	FilterGaussian = "gaussian"
	FilterBox      = "box"
	FilterBild     = "bild"
)

// boxPasses is the number of box passes used to approximate a Gaussian.
const boxPasses = 3

func init() {
	RegisterFilter(FilterParallel, 50, func() (BlurFilter, error) {
		return NewParallelFilter(0), nil
	}, func() bool {
		return runtime.GOMAXPROCS(0) > 1
	})
	RegisterFilter(FilterGaussian, 10, func() (BlurFilter, error) {
		return GaussianFilter{}, nil
	}, nil)
	RegisterFilter(FilterBox, 5, func() (BlurFilter, error) {
		return BoxFilter{Passes: boxPasses}, nil
	}, nil)
	RegisterFilter(FilterBild, 1, func() (BlurFilter, error) {
		return BildFilter{}, nil
	}, nil)
}

// GaussianFilter is the portable CPU blur: a separable Gaussian whose
// kernel spans radius pixels on each side, run on the calling goroutine.
type GaussianFilter struct{}

// Name implements BlurFilter.
func (GaussianFilter) Name() string { return FilterGaussian }

// Apply implements BlurFilter.
func (GaussianFilter) Apply(dst, src *Surface, radius int) error {
	if err := checkSurfaces(dst, src); err != nil {
		return err
	}
	return filter.Gaussian(dst.RGBA(), src.RGBA(), radius, filter.Serial)
}

// ParallelFilter computes the same result as GaussianFilter, splitting rows
// across a worker pool. Apply still blocks until the blur is complete.
type ParallelFilter struct {
	pool *parallel.WorkerPool
}

// NewParallelFilter creates a parallel filter with the given number of
// workers; 0 uses GOMAXPROCS. Call Close to stop the workers.
func NewParallelFilter(workers int) *ParallelFilter {
	return &ParallelFilter{pool: parallel.NewWorkerPool(workers)}
}

// Name implements BlurFilter.
func (f *ParallelFilter) Name() string { return FilterParallel }

// Apply implements BlurFilter.
func (f *ParallelFilter) Apply(dst, src *Surface, radius int) error {
	if err := checkSurfaces(dst, src); err != nil {
		return err
	}
	return filter.Gaussian(dst.RGBA(), src.RGBA(), radius, f.pool.ForEachRange)
}

// Close stops the worker pool. Apply keeps working afterwards, serially.
func (f *ParallelFilter) Close() {
	f.pool.Close()
}

// BoxFilter approximates a Gaussian with repeated box blurs. Cheaper per
// tap than GaussianFilter, with slightly blockier falloff.
type BoxFilter struct {
	// Passes is the number of box passes; values below 1 mean 1.
	Passes int
}

// Name implements BlurFilter.
func (BoxFilter) Name() string { return FilterBox }

// Apply implements BlurFilter. Each pass uses a third of the radius so the
// overall spread matches the requested radius.
func (f BoxFilter) Apply(dst, src *Surface, radius int) error {
	if err := checkSurfaces(dst, src); err != nil {
		return err
	}
	passes := max(f.Passes, 1)
	r := max(filter.ClampRadius(radius)/passes, 1)
	return filter.Box(dst.RGBA(), src.RGBA(), r, passes, filter.Serial)
}

// BildFilter delegates to github.com/anthonynsimon/bild/blur.Gaussian.
type BildFilter struct{}

// Name implements BlurFilter.
func (BildFilter) Name() string { return FilterBild }

// Apply implements BlurFilter.
func (BildFilter) Apply(dst, src *Surface, radius int) error {
	if err := checkSurfaces(dst, src); err != nil {
		return err
	}
	out := blur.Gaussian(src.RGBA(), float64(filter.ClampRadius(radius)))
	copy(dst.data, out.Pix)
	return nil
}
