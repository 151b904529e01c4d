package filter

import (
	"image"
	"image/color"
)

// Test helper functions shared across filter tests.

// createTestImage creates an image filled with the given premultiplied color.
func createTestImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// chunkedRunner splits rows into ranges of at most size rows and runs them
// in order, mimicking a pool that hands out bands.
func chunkedRunner(size int) Runner {
	return func(n int, fn func(lo, hi int)) {
		for lo := 0; lo < n; lo += size {
			fn(lo, min(lo+size, n))
		}
	}
}

// absf32 returns the absolute value of a float32.
func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
