// Command frostdemo renders a scrolling list behind a frosted-glass panel,
// either to a PNG file or interactively in the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fogleman/gg"

	"github.com/gogpu/frost"
	"github.com/gogpu/frost/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "frostdemo:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("frostdemo", flag.ContinueOnError)
	var (
		configPath  = fs.String("config", "", "config file (TOML)")
		width       = fs.Int("width", 0, "window width")
		height      = fs.Int("height", 0, "window height")
		scroll      = fs.Int("scroll", 0, "initial list scroll offset")
		radius      = fs.Int("radius", 0, "blur radius (1-25)")
		filter      = fs.String("filter", "", "blur filter name")
		output      = fs.String("output", "frost.png", "output file")
		interactive = fs.Bool("interactive", false, "run the terminal preview")
		verbose     = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	frost.SetLogger(log)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	// Flags given explicitly override the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Scene.Width = *width
		case "height":
			cfg.Scene.Height = *height
		case "scroll":
			cfg.Scene.Scroll = *scroll
		case "radius":
			cfg.Blur.Radius = *radius
		case "filter":
			cfg.Blur.Filter = *filter
		}
	})

	if cfg.Scene.Width <= 0 || cfg.Scene.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", cfg.Scene.Width, cfg.Scene.Height)
	}

	s, err := newScene(cfg.Scene.Width, cfg.Scene.Height, cfg.Scene.Rows, cfg.Scene.PanelHeight, cfg.Frost())
	if err != nil {
		return err
	}
	defer s.Close()
	s.ScrollBy(cfg.Scene.Scroll)

	if *interactive {
		// The terminal belongs to the preview; keep logs quiet.
		frost.SetLogger(nil)
		_, err := tea.NewProgram(newPreviewModel(s), tea.WithAltScreen()).Run()
		return err
	}

	img, err := s.Frame()
	if err != nil {
		return err
	}
	if err := gg.SavePNG(*output, img); err != nil {
		return err
	}

	log.Info("frame saved", "path", *output, "width", cfg.Scene.Width, "height", cfg.Scene.Height,
		"filter", s.widget.FilterName(), "radius", s.widget.EffectiveBlurRadius())
	return nil
}
