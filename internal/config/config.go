// Package config loads frostdemo settings from defaults, an optional TOML
// file and FROST_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/frost"
)

// Config holds demo configuration.
type Config struct {
	Blur  BlurConfig  `mapstructure:"blur"`
	Scene SceneConfig `mapstructure:"scene"`
}

// BlurConfig holds compositor settings.
type BlurConfig struct {
	Radius     int     `mapstructure:"radius"`
	Downsample float64 `mapstructure:"downsample"`
	Filter     string  `mapstructure:"filter"`
	Preview    bool    `mapstructure:"preview"`
}

// SceneConfig holds the demo parent scene and panel geometry.
type SceneConfig struct {
	Width       int `mapstructure:"width"`
	Height      int `mapstructure:"height"`
	Rows        int `mapstructure:"rows"`
	Scroll      int `mapstructure:"scroll"`
	PanelHeight int `mapstructure:"panel_height"`
}

// Load reads configuration from path, or from the default locations when
// path is empty. Env var overrides use prefix FROST_, e.g. FROST_BLUR_RADIUS.
// A missing default file is not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("blur.radius", frost.DefaultBlurRadius)
	v.SetDefault("blur.downsample", frost.DefaultDownsample)
	v.SetDefault("blur.filter", "")
	v.SetDefault("blur.preview", false)
	v.SetDefault("scene.width", 360)
	v.SetDefault("scene.height", 640)
	v.SetDefault("scene.rows", 40)
	v.SetDefault("scene.scroll", 0)
	v.SetDefault("scene.panel_height", 160)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("FROST_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "frost"))
		v.AddConfigPath(".")
		v.SetConfigName("frost")
	}

	v.SetEnvPrefix("FROST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Frost returns the compositor configuration.
func (c Config) Frost() frost.Config {
	return frost.Config{
		BlurRadius: c.Blur.Radius,
		Downsample: c.Blur.Downsample,
		Filter:     c.Blur.Filter,
		Preview:    c.Blur.Preview,
	}
}
