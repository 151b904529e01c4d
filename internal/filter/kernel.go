package filter

import (
	"math"
	"sync"
)

// MaxRadius is the largest blur radius accepted by the filters.
// Larger radii are clamped to it.
const MaxRadius = 25

// ClampRadius limits radius to [1, MaxRadius].
func ClampRadius(radius int) int {
	if radius < 1 {
		return 1
	}
	if radius > MaxRadius {
		return MaxRadius
	}
	return radius
}

// Sigma returns the Gaussian standard deviation used for a blur radius.
// The radius is the kernel half-width. The linear mapping reproduces the
// radius-to-sigma relation of the platform blur the widget emulates.
func Sigma(radius int) float64 {
	return 0.4*float64(radius) + 0.6
}

// GaussianKernel generates a normalized 1D Gaussian kernel with
// 2*radius+1 taps. For radius <= 0 it returns the identity kernel [1.0].
func GaussianKernel(radius int) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	size := radius*2 + 1
	kernel := make([]float32, size)

	sigma := Sigma(radius)
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := range size {
		x := float64(i - radius)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	invSum := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= invSum
	}

	return kernel
}

// BoxKernel generates a 1D box (uniform) kernel for the given radius.
// All values are equal: 1/(2*radius+1).
func BoxKernel(radius int) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	size := radius*2 + 1
	kernel := make([]float32, size)
	val := float32(1.0) / float32(size)

	for i := range kernel {
		kernel[i] = val
	}

	return kernel
}

// kernelCache holds one Gaussian kernel per radius. Radii are bounded by
// MaxRadius, so the cache never needs eviction.
type kernelCache struct {
	mu    sync.RWMutex
	cache map[int][]float32
}

var defaultKernelCache = &kernelCache{cache: make(map[int][]float32)}

func (c *kernelCache) get(radius int) []float32 {
	c.mu.RLock()
	kernel, ok := c.cache[radius]
	c.mu.RUnlock()
	if ok {
		return kernel
	}

	kernel = GaussianKernel(radius)

	c.mu.Lock()
	c.cache[radius] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns the Gaussian kernel for the clamped radius,
// computing it at most once. The returned slice must not be modified.
func CachedGaussianKernel(radius int) []float32 {
	return defaultKernelCache.get(ClampRadius(radius))
}
