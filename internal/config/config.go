// Package config holds chart view settings.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chartkit/internal/geom"
)

// ErrInvalid marks a configuration that fails validation.
var ErrInvalid = errors.New("invalid config")

// Config controls how datasets are turned into geometry.
type Config struct {
	// Padding is the canvas padding in braille dots (render) or units.
	Padding float64 `yaml:"padding"`
	// Inset widens value ranges by this fraction of their span.
	Inset float64 `yaml:"inset"`
	// Smoothing is "linear" or "quadratic".
	Smoothing string `yaml:"smoothing"`
	// Hue of the heatmap ramp, in degrees.
	Hue float64 `yaml:"hue"`
	// DonutRatio is the inner radius of donut charts as a fraction of the
	// outer radius.
	DonutRatio float64 `yaml:"donut_ratio"`
	// Gap is the fraction of each bar slot left empty.
	Gap float64 `yaml:"gap"`
	// Animate enables the reveal animation in the viewer.
	Animate bool `yaml:"animate"`
	// Frames is the number of animation frames.
	Frames int `yaml:"frames"`
}

func Default() Config {
	return Config{
		Padding:    2,
		Inset:      0.1,
		Smoothing:  "quadratic",
		Hue:        210,
		DonutRatio: 0.55,
		Gap:        0.25,
		Animate:    true,
		Frames:     12,
	}
}

// Load reads a YAML config file over the defaults. Environment references
// like ${CHARTKIT_HUE} are expanded before decoding.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("config not found: %s", path)
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Padding < 0 {
		errs = append(errs, fmt.Errorf("%w: padding must not be negative", ErrInvalid))
	}
	if c.Inset < 0 || c.Inset >= 0.5 {
		errs = append(errs, fmt.Errorf("%w: inset must be in [0, 0.5)", ErrInvalid))
	}
	if _, err := geom.ParseSmoothing(c.Smoothing); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalid, err))
	}
	if c.DonutRatio < 0 || c.DonutRatio >= 1 {
		errs = append(errs, fmt.Errorf("%w: donut_ratio must be in [0, 1)", ErrInvalid))
	}
	if c.Gap < 0 || c.Gap > 0.9 {
		errs = append(errs, fmt.Errorf("%w: gap must be in [0, 0.9]", ErrInvalid))
	}
	if c.Frames < 1 {
		errs = append(errs, fmt.Errorf("%w: frames must be positive", ErrInvalid))
	}
	return errors.Join(errs...)
}

// Mode returns the parsed smoothing mode, linear when unparseable.
func (c Config) Mode() geom.Smoothing {
	m, _ := geom.ParseSmoothing(c.Smoothing)
	return m
}

// Canvas sizes a canvas with the configured padding and inset.
func (c Config) Canvas(width, height float64) geom.Canvas {
	return geom.Canvas{Width: width, Height: height, Padding: c.Padding, Inset: c.Inset}
}
