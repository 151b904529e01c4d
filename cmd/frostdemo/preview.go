package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/frost"
)

const scrollStep = rowHeight / 2

var (
	statusStyle = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// previewModel shows the demo window in the terminal, two pixels per cell.
type previewModel struct {
	scene  *scene
	radius int

	cols, lines int
	frame       *image.RGBA
	err         error
}

func newPreviewModel(s *scene) previewModel {
	m := previewModel{
		scene:  s,
		radius: s.widget.EffectiveBlurRadius(),
		cols:   80,
		lines:  24,
	}
	return m.redraw()
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.lines = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.scene.ScrollBy(-scrollStep)
		case "down", "j":
			m.scene.ScrollBy(scrollStep)
		case "left", "h":
			m.setRadius(m.radius - 1)
		case "right", "l":
			m.setRadius(m.radius + 1)
		default:
			return m, nil
		}
		return m.redraw(), nil
	}
	return m, nil
}

// setRadius mirrors a slider: the value never drops below 1.
func (m *previewModel) setRadius(r int) {
	m.radius = min(max(r, 1), frost.MaxBlurRadius)
	m.scene.widget.SetBlurRadius(m.radius)
}

// redraw renders a new frame if the scene was invalidated.
func (m previewModel) redraw() previewModel {
	if m.frame != nil && !m.scene.dirty {
		return m
	}
	m.frame, m.err = m.scene.Frame()
	return m
}

func (m previewModel) View() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorStyle.Render("render failed: "+m.err.Error()) + "\n")
	} else if m.frame != nil {
		b.WriteString(renderCells(m.frame, m.cols, max(m.lines-2, 1)*2))
	}

	b.WriteString(statusStyle.Render(fmt.Sprintf("radius %d  scroll %d/%d", m.radius, m.scene.scroll, m.scene.maxScroll())))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ scroll  ←/→ radius  q quit"))
	return b.String()
}

// renderCells samples img on a cols x rows pixel grid and draws each pair of
// rows as one line of upper half blocks.
func renderCells(img *image.RGBA, cols, rows int) string {
	bounds := img.Bounds()
	if cols <= 0 || rows <= 0 || bounds.Empty() {
		return ""
	}

	// Keep the aspect ratio; terminal cells are about twice as tall as wide.
	scale := max(float64(bounds.Dx())/float64(cols), float64(bounds.Dy())/float64(rows))
	w := min(cols, int(float64(bounds.Dx())/scale))
	h := min(rows, int(float64(bounds.Dy())/scale))

	sample := func(x, y int) color.RGBA {
		return img.RGBAAt(bounds.Min.X+int(float64(x)*scale), bounds.Min.Y+int(float64(y)*scale))
	}

	var b strings.Builder
	for y := 0; y+1 < h; y += 2 {
		for x := range w {
			top, bottom := sample(x, y), sample(x, y+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top))).
				Background(lipgloss.Color(hex(bottom))).
				Render("▀"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
