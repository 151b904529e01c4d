package filter

import (
	"errors"
	"image"
	"sync"
)

// Errors returned by the blur functions.
var (
	// ErrNilImage is returned when the source or destination is nil.
	ErrNilImage = errors.New("filter: nil image")

	// ErrSizeMismatch is returned when source and destination differ in size.
	ErrSizeMismatch = errors.New("filter: source and destination sizes differ")
)

// Runner executes fn over the row range [0, n), possibly split into
// several contiguous sub-ranges. A Runner must not return before every
// sub-range has completed.
type Runner func(n int, fn func(lo, hi int))

// Serial is a Runner that processes all rows inline on the caller's goroutine.
func Serial(n int, fn func(lo, hi int)) {
	if n > 0 {
		fn(0, n)
	}
}

// Gaussian blurs src into dst with the Gaussian kernel for radius.
// The radius is clamped to [1, MaxRadius]. dst may be the same image as src.
func Gaussian(dst, src *image.RGBA, radius int, run Runner) error {
	return Convolve(dst, src, CachedGaussianKernel(radius), run)
}

// Box blurs src into dst with passes successive box blurs of the given
// radius. Three passes closely approximate a Gaussian.
func Box(dst, src *image.RGBA, radius, passes int, run Runner) error {
	if passes < 1 {
		passes = 1
	}
	kernel := BoxKernel(ClampRadius(radius))

	if err := Convolve(dst, src, kernel, run); err != nil {
		return err
	}
	for range passes - 1 {
		if err := Convolve(dst, dst, kernel, run); err != nil {
			return err
		}
	}
	return nil
}

// Convolve applies kernel along rows and then along columns.
// The source is read completely before the destination is written, so dst
// may alias src. A nil run is treated as Serial.
func Convolve(dst, src *image.RGBA, kernel []float32, run Runner) error {
	if dst == nil || src == nil {
		return ErrNilImage
	}
	if dst.Rect.Dx() != src.Rect.Dx() || dst.Rect.Dy() != src.Rect.Dy() {
		return ErrSizeMismatch
	}
	if run == nil {
		run = Serial
	}

	width := src.Rect.Dx()
	height := src.Rect.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	temp := getTempBuffer(width, height)
	defer putTempBuffer(temp)

	// Pass 1: horizontal (src -> temp)
	run(height, func(lo, hi int) {
		blurHorizontal(src, temp, width, lo, hi, kernel)
	})

	// Pass 2: vertical (temp -> dst)
	run(height, func(lo, hi int) {
		blurVertical(temp, dst, width, height, lo, hi, kernel)
	})

	return nil
}

// blurHorizontal convolves rows [lo, hi) of src into temp.
func blurHorizontal(src *image.RGBA, temp []float32, width, lo, hi int, kernel []float32) {
	halfKernel := len(kernel) / 2
	srcData := src.Pix

	for y := lo; y < hi; y++ {
		rowOff := y * src.Stride

		for x := range width {
			var r, g, b, a float32

			for k, weight := range kernel {
				kx := x + k - halfKernel

				// Clamp to source bounds (edge extension)
				if kx < 0 {
					kx = 0
				} else if kx >= width {
					kx = width - 1
				}

				srcIdx := rowOff + kx*4
				r += float32(srcData[srcIdx+0]) * weight
				g += float32(srcData[srcIdx+1]) * weight
				b += float32(srcData[srcIdx+2]) * weight
				a += float32(srcData[srcIdx+3]) * weight
			}

			tempIdx := (y*width + x) * 4
			temp[tempIdx+0] = r
			temp[tempIdx+1] = g
			temp[tempIdx+2] = b
			temp[tempIdx+3] = a
		}
	}
}

// blurVertical convolves the columns of temp into rows [lo, hi) of dst.
func blurVertical(temp []float32, dst *image.RGBA, width, height, lo, hi int, kernel []float32) {
	halfKernel := len(kernel) / 2
	dstData := dst.Pix

	for y := lo; y < hi; y++ {
		rowOff := y * dst.Stride

		for x := range width {
			var r, g, b, a float32

			for k, weight := range kernel {
				ky := y + k - halfKernel

				// Clamp to buffer bounds (edge extension)
				if ky < 0 {
					ky = 0
				} else if ky >= height {
					ky = height - 1
				}

				tempIdx := (ky*width + x) * 4
				r += temp[tempIdx+0] * weight
				g += temp[tempIdx+1] * weight
				b += temp[tempIdx+2] * weight
				a += temp[tempIdx+3] * weight
			}

			dstIdx := rowOff + x*4
			dstData[dstIdx+0] = clampUint8(r)
			dstData[dstIdx+1] = clampUint8(g)
			dstData[dstIdx+2] = clampUint8(b)
			dstData[dstIdx+3] = clampUint8(a)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Scratch buffers for the horizontal pass. Working buffers are small
// (the compositor downsamples first), so 256x256 covers the common case.
var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 256*256*4)}
	},
}

// getTempBuffer retrieves a scratch buffer of exactly width*height*4 elements.
// Every element is overwritten by the horizontal pass, so it is not cleared.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}

	return wrapper.data[:size]
}

// putTempBuffer returns a scratch buffer to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
