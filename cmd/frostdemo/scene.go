package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/frost"
)

const rowHeight = 48

// scene is the demo window: a scrolling list of colored rows with a frosted
// panel pinned to the bottom edge. It hosts the panel's compositor.
//
// Drawing the window draws the panel too, so capturing the parent content
// renders the panel again while it is mid-frame.
type scene struct {
	width, height int
	rows          int
	scroll        int
	panel         image.Rectangle

	window *image.RGBA
	dc     *gg.Context
	widget *frost.Compositor

	parentDraws int
	dirty       bool
}

// newScene builds the window and its frosted panel. The panel spans the
// full width and the bottom panelHeight pixels.
func newScene(width, height, rows, panelHeight int, cfg frost.Config) (*scene, error) {
	panelHeight = min(max(panelHeight, 1), height)

	s := &scene{
		width:  width,
		height: height,
		rows:   rows,
		panel:  image.Rect(0, height-panelHeight, width, height),
		window: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	s.dc = gg.NewContextForRGBA(s.window)
	s.dc.SetFontFace(basicfont.Face7x13)

	widget, err := frost.New(s, cfg)
	if err != nil {
		return nil, err
	}
	s.widget = widget
	s.widget.SetPosition(float64(s.panel.Min.X), float64(s.panel.Min.Y))
	s.widget.OnMeasuredSizeChanged(s.panel.Dx(), s.panel.Dy())

	return s, nil
}

// Close releases the compositor.
func (s *scene) Close() {
	s.widget.Close()
}

// maxScroll is the largest scroll offset that keeps the list on screen.
func (s *scene) maxScroll() int {
	return max(s.rows*rowHeight-s.height, 0)
}

// ScrollBy moves the list and invalidates the panel, like a scroll listener.
func (s *scene) ScrollBy(dy int) {
	s.scroll = min(max(s.scroll+dy, 0), s.maxScroll())
	s.RequestRedraw()
}

// Frame draws the whole window and returns it.
func (s *scene) Frame() (*image.RGBA, error) {
	s.dirty = false
	if err := s.drawWindow(); err != nil {
		return nil, err
	}
	return s.window, nil
}

// drawWindow paints the list and then the panel on top of it.
func (s *scene) drawWindow() error {
	s.parentDraws++
	s.drawList()

	panel := s.window.SubImage(s.panel).(*image.RGBA)
	return s.widget.RenderFrame(panel)
}

func (s *scene) drawList() {
	s.dc.SetRGB(0.95, 0.95, 0.95)
	s.dc.Clear()

	first := s.scroll / rowHeight
	for i := first; i < s.rows; i++ {
		y := float64(i*rowHeight - s.scroll)
		if y >= float64(s.height) {
			break
		}

		s.dc.SetColor(rowColor(i))
		s.dc.DrawRectangle(0, y, float64(s.width), rowHeight-2)
		s.dc.Fill()

		s.dc.SetRGB(1, 1, 1)
		s.dc.DrawStringAnchored(fmt.Sprintf("Item %d", i+1), 16, y+rowHeight/2, 0, 0.5)
	}
}

// rowColor cycles the hue along the list.
func rowColor(i int) color.Color {
	return colorful.Hsv(float64(i*37%360), 0.55, 0.85)
}

// CaptureParentContent implements frost.Host.
func (s *scene) CaptureParentContent(target *frost.Surface, t frost.Transform) error {
	if err := s.drawWindow(); err != nil {
		return err
	}
	frost.DrawTransformed(target, s.window, t, nil)
	return nil
}

// RequestRedraw implements frost.Host.
func (s *scene) RequestRedraw() {
	s.dirty = true
}

// DrawContent implements frost.ContentDrawer: a caption over the frosted
// background.
func (s *scene) DrawContent(dst draw.Image) error {
	b := dst.Bounds()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(b.Min.X+16, b.Min.Y+24),
	}
	d.DrawString(fmt.Sprintf("blur radius %d", s.widget.EffectiveBlurRadius()))

	d.Dot = fixed.P(b.Min.X+16, b.Min.Y+42)
	filter := s.widget.FilterName()
	if filter == "" {
		filter = "off"
	}
	d.DrawString("filter " + filter)
	return nil
}
