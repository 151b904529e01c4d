package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/frost"
)

// isolate points HOME and the working directory at an empty temp dir so no
// user config is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("FROST_CONFIG", "")
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Blur.Radius != frost.DefaultBlurRadius {
		t.Errorf("Blur.Radius = %d, want %d", c.Blur.Radius, frost.DefaultBlurRadius)
	}
	if c.Blur.Downsample != frost.DefaultDownsample {
		t.Errorf("Blur.Downsample = %v, want %v", c.Blur.Downsample, frost.DefaultDownsample)
	}
	if c.Blur.Filter != "" || c.Blur.Preview {
		t.Errorf("Blur = %+v, want no filter and no preview", c.Blur)
	}
	if c.Scene.Width != 360 || c.Scene.Height != 640 || c.Scene.Rows != 40 {
		t.Errorf("Scene = %+v, want 360x640 with 40 rows", c.Scene)
	}
	if c.Scene.PanelHeight != 160 {
		t.Errorf("Scene.PanelHeight = %d, want 160", c.Scene.PanelHeight)
	}
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	data := `
[blur]
radius = 18
downsample = 2.5
filter = "box"

[scene]
width = 480
scroll = 120
panel_height = 200
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Blur.Radius != 18 || c.Blur.Downsample != 2.5 || c.Blur.Filter != "box" {
		t.Errorf("Blur = %+v, want radius 18, downsample 2.5, filter box", c.Blur)
	}
	if c.Scene.Width != 480 || c.Scene.Scroll != 120 || c.Scene.PanelHeight != 200 {
		t.Errorf("Scene = %+v", c.Scene)
	}
	// Unset keys keep their defaults.
	if c.Scene.Height != 640 {
		t.Errorf("Scene.Height = %d, want default 640", c.Scene.Height)
	}
}

func TestLoadDefaultLocation(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "frost.toml"), []byte("[blur]\npreview = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !c.Blur.Preview {
		t.Error("Blur.Preview = false, want true from ./frost.toml")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("FROST_BLUR_RADIUS", "7")
	t.Setenv("FROST_SCENE_ROWS", "12")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Blur.Radius != 7 {
		t.Errorf("Blur.Radius = %d, want 7", c.Blur.Radius)
	}
	if c.Scene.Rows != 12 {
		t.Errorf("Scene.Rows = %d, want 12", c.Scene.Rows)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load(missing) error = nil, want an error")
	}
}

func TestFrost(t *testing.T) {
	c := Config{Blur: BlurConfig{Radius: 4, Downsample: 2, Filter: "gaussian", Preview: true}}

	got := c.Frost()
	want := frost.Config{BlurRadius: 4, Downsample: 2, Filter: "gaussian", Preview: true}
	if got != want {
		t.Errorf("Frost() = %+v, want %+v", got, want)
	}
}
