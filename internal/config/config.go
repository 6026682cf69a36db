package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/mandelview/internal/compute"
	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/viewport"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Monochrome  bool    `yaml:"monochrome"`
	Verbose     bool    `yaml:"verbose"`
	Iterations  uint32  `yaml:"iterations"`
	Periodicity uint32  `yaml:"periodicity"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	CenterX     float64 `yaml:"center_x"`
	CenterY     float64 `yaml:"center_y"`
	// Scale is plane units per pixel; zero fits the reference span.
	Scale   float64 `yaml:"scale"`
	Backend string  `yaml:"backend"`
}

func DefaultConfig() *Config {
	return &Config{
		Iterations:  fractal.DefaultIterations,
		Periodicity: fractal.DefaultPeriodicity,
		Width:       viewport.DefaultWidth,
		Height:      viewport.DefaultHeight,
		CenterX:     viewport.DefaultCenterX,
		CenterY:     viewport.DefaultCenterY,
		Backend:     compute.CPU,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations must be at least 1, got %d", ErrInvalidConfig, c.Iterations)
	case c.Periodicity < 1:
		return fmt.Errorf("%w: periodicity must be at least 1, got %d", ErrInvalidConfig, c.Periodicity)
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Scale < 0 || !finite(c.Scale):
		return fmt.Errorf("%w: scale must be a non-negative number, got %g", ErrInvalidConfig, c.Scale)
	case !finite(c.CenterX) || !finite(c.CenterY):
		return fmt.Errorf("%w: center must be finite, got (%g, %g)", ErrInvalidConfig, c.CenterX, c.CenterY)
	case !compute.Known(c.Backend):
		return fmt.Errorf("%w: unknown backend %q (want one of %v)", ErrInvalidConfig, c.Backend, compute.Names())
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (c *Config) Params() fractal.Params {
	return fractal.Params{
		MaxIterations: c.Iterations,
		Periodicity:   c.Periodicity,
		Monochrome:    c.Monochrome,
	}
}

// Viewport builds the initial viewport. Reset returns to this center.
func (c *Config) Viewport() (*viewport.Viewport, error) {
	return viewport.New(c.Width, c.Height, c.CenterX, c.CenterY, c.Scale)
}
