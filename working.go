package frost

import "math"

// bufferAlignment is the granularity of working buffer dimensions.
const bufferAlignment = 16

// ScaleFactors map working-buffer pixels to real pixels:
// X = realWidth / workingWidth, Y = realHeight / workingHeight.
type ScaleFactors struct {
	X, Y float64
}

// roundUpToMultipleOf16 returns ceil(x/16)*16.
func roundUpToMultipleOf16(x float64) int {
	return int(math.Ceil(x/bufferAlignment) * bufferAlignment)
}

// WorkingSize returns the working buffer size for a widget of
// width x height real pixels: each dimension is divided by downsample and
// rounded up to the next multiple of 16. The downsample factor is normalized
// the same way Config.Downsample is.
func WorkingSize(width, height int, downsample float64) (int, int) {
	d := normalizeDownsample(downsample)
	return roundUpToMultipleOf16(float64(width) / d), roundUpToMultipleOf16(float64(height) / d)
}

// scaleFactors returns real/working ratios. Zero working dimensions yield
// a factor of 1.
func scaleFactors(width, height, workW, workH int) ScaleFactors {
	sf := ScaleFactors{X: 1, Y: 1}
	if workW > 0 {
		sf.X = float64(width) / float64(workW)
	}
	if workH > 0 {
		sf.Y = float64(height) / float64(workH)
	}
	return sf
}
