package frost

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Surface is an owned 8-bit RGBA pixel buffer.
//
// Pixels are stored premultiplied by alpha, four bytes per pixel, row by row
// with no padding. This matches image.RGBA, and RGBA returns a view that
// shares the same backing memory.
type Surface struct {
	width  int
	height int
	data   []uint8
}

// NewSurface creates a fully transparent surface.
// Negative dimensions are treated as zero.
func NewSurface(width, height int) *Surface {
	width = max(width, 0)
	height = max(height, 0)
	return &Surface{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Size returns the surface dimensions.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Data returns the raw premultiplied RGBA bytes.
func (s *Surface) Data() []uint8 {
	return s.data
}

// Clear makes every pixel fully transparent.
func (s *Surface) Clear() {
	clear(s.data)
}

// Fill sets every pixel to the premultiplied color c.
func (s *Surface) Fill(c color.RGBA) {
	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0] = c.R
		s.data[i+1] = c.G
		s.data[i+2] = c.B
		s.data[i+3] = c.A
	}
}

// SetRGBA sets the premultiplied color of a pixel.
// Out-of-bounds coordinates are ignored.
func (s *Surface) SetRGBA(x, y int, c color.RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.data[i+0] = c.R
	s.data[i+1] = c.G
	s.data[i+2] = c.B
	s.data[i+3] = c.A
}

// RGBAAt returns the premultiplied color of a pixel.
// Out-of-bounds coordinates return transparent.
func (s *Surface) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.RGBA{}
	}
	i := (y*s.width + x) * 4
	return color.RGBA{R: s.data[i+0], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// RGBA returns an *image.RGBA sharing the surface's pixel memory.
// Writes through the returned image are visible in the surface.
func (s *Surface) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    s.data,
		Stride: s.width * 4,
		Rect:   image.Rect(0, 0, s.width, s.height),
	}
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

// Set implements the draw.Image interface.
func (s *Surface) Set(x, y int, c color.Color) {
	s.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}

	if err := png.Encode(f, s.RGBA()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
