package frost

import (
	"image"
	"image/color"
	"math/rand"

	"golang.org/x/image/draw"
)

// Test helpers shared across frost tests.

var (
	opaqueRed   = color.RGBA{R: 255, A: 255}
	opaqueGreen = color.RGBA{G: 255, A: 255}
	opaqueBlue  = color.RGBA{B: 255, A: 255}
)

// fakeHost records every call the compositor makes.
type fakeHost struct {
	capture func(target *Surface, t Transform) error
	content func(dst draw.Image) error

	captures   int
	redraws    int
	contents   int
	transforms []Transform
}

func (h *fakeHost) CaptureParentContent(target *Surface, t Transform) error {
	h.captures++
	h.transforms = append(h.transforms, t)
	if h.capture != nil {
		return h.capture(target, t)
	}
	return nil
}

func (h *fakeHost) RequestRedraw() {
	h.redraws++
}

func (h *fakeHost) DrawContent(dst draw.Image) error {
	h.contents++
	if h.content != nil {
		return h.content(dst)
	}
	return nil
}

// captureOnlyHost implements Host without ContentDrawer.
type captureOnlyHost struct {
	fill color.RGBA
}

func (h *captureOnlyHost) CaptureParentContent(target *Surface, _ Transform) error {
	target.Fill(h.fill)
	return nil
}

func (h *captureOnlyHost) RequestRedraw() {}

// countingFilter wraps GaussianFilter and records calls.
type countingFilter struct {
	applies    int
	lastRadius int
	err        error
}

func (f *countingFilter) Name() string { return "counting" }

func (f *countingFilter) Apply(dst, src *Surface, radius int) error {
	f.applies++
	f.lastRadius = radius
	if f.err != nil {
		return f.err
	}
	return GaussianFilter{}.Apply(dst, src, radius)
}

// newTestCompositor builds a compositor with a counting filter.
func newTestCompositor(h Host, cfg Config) (*Compositor, *countingFilter) {
	f := &countingFilter{}
	c, err := New(h, cfg, WithFilter(f))
	if err != nil {
		panic(err)
	}
	return c, f
}

// solidImage returns an image filled with c.
func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// randomSurface builds a deterministic premultiplied surface.
func randomSurface(w, h int, seed int64) *Surface {
	rng := rand.New(rand.NewSource(seed))
	s := NewSurface(w, h)
	for y := range h {
		for x := range w {
			a := uint8(rng.Intn(256))
			s.SetRGBA(x, y, color.RGBA{
				R: uint8(rng.Intn(int(a) + 1)),
				G: uint8(rng.Intn(int(a) + 1)),
				B: uint8(rng.Intn(int(a) + 1)),
				A: a,
			})
		}
	}
	return s
}
