// SPDX-License-Identifier: Unlicense OR MIT

// Package config holds the configuration of the rectlayout command.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"rectlayout.org/layout"
	"rectlayout.org/scene"
	"rectlayout.org/unit"
)

// Config is the complete configuration, as read from file,
// environment and flags.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout"`
	Scene  SceneConfig  `mapstructure:"scene" yaml:"scene"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// LoggerConfig configures the application logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// LayoutConfig configures the viewports a scene is laid out in.
type LayoutConfig struct {
	// Sizes are viewport sizes written WIDTHxHEIGHT, in pixels.
	Sizes []string `mapstructure:"sizes" yaml:"sizes"`
	// PxPerDp converts dp values in scenes to pixels.
	PxPerDp float32 `mapstructure:"px_per_dp" yaml:"px_per_dp"`
}

// SceneConfig selects the scene description. File takes precedence
// over Source; with neither, the demo scene is used.
type SceneConfig struct {
	Source string `mapstructure:"source" yaml:"source"`
	File   string `mapstructure:"file" yaml:"file"`
}

// OutputConfig configures where and how results are written.
type OutputConfig struct {
	Dir    string  `mapstructure:"dir" yaml:"dir"`
	Scale  float32 `mapstructure:"scale" yaml:"scale"`
	Format string  `mapstructure:"format" yaml:"format"`
	Frames int     `mapstructure:"frames" yaml:"frames"`
}

// NewDefaultConfig returns the configuration used when nothing is
// set.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults registers the default value of every key with v.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "rectlayout")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	// -- Layout --
	v.SetDefault("layout.sizes", []string{"900x600"})
	v.SetDefault("layout.px_per_dp", 1.0)

	// -- Scene --
	v.SetDefault("scene.source", "")
	v.SetDefault("scene.file", "")

	// -- Output --
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.scale", 1.0)
	v.SetDefault("output.format", "table")
	v.SetDefault("output.frames", 100)
}

// NewConfigFromViper decodes and validates the configuration held by
// v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if len(c.Layout.Sizes) == 0 {
		return fmt.Errorf("layout.sizes must name at least one viewport")
	}
	if _, err := c.Layout.Viewports(); err != nil {
		return err
	}
	if c.Layout.PxPerDp <= 0 {
		return fmt.Errorf("layout.px_per_dp must be positive")
	}
	if c.Output.Scale <= 0 {
		return fmt.Errorf("output.scale must be positive")
	}
	if c.Output.Frames <= 0 {
		return fmt.Errorf("output.frames must be a positive integer")
	}
	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("output.format must be table or json, got %q", c.Output.Format)
	}
	return nil
}

// Viewports parses Sizes.
func (l LayoutConfig) Viewports() ([]layout.Size, error) {
	sizes := make([]layout.Size, 0, len(l.Sizes))
	for _, s := range l.Sizes {
		sz, err := ParseSize(s)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, sz)
	}
	return sizes, nil
}

// Metric returns the unit conversion for scenes.
func (l LayoutConfig) Metric() unit.Metric {
	return unit.Metric{PxPerDp: l.PxPerDp}
}

// ParseSize parses a viewport size written WIDTHxHEIGHT.
func ParseSize(s string) (layout.Size, error) {
	w, h, ok := strings.Cut(strings.TrimSpace(s), "x")
	if !ok {
		return layout.Size{}, fmt.Errorf("invalid viewport size %q: want WIDTHxHEIGHT", s)
	}
	wv, werr := strconv.ParseFloat(w, 32)
	hv, herr := strconv.ParseFloat(h, 32)
	if werr != nil || herr != nil || wv <= 0 || hv <= 0 {
		return layout.Size{}, fmt.Errorf("invalid viewport size %q: dimensions must be positive numbers", s)
	}
	return layout.Size{Width: float32(wv), Height: float32(hv)}, nil
}

// Load returns the scene description selected by c.
func (c SceneConfig) Load() (string, error) {
	if c.File != "" {
		b, err := os.ReadFile(c.File)
		if err != nil {
			return "", fmt.Errorf("reading scene file: %w", err)
		}
		return string(b), nil
	}
	if c.Source != "" {
		return c.Source, nil
	}
	return scene.Demo, nil
}
