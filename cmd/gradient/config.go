// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/gradients/base/errors"
	"cogentcore.org/gradients/base/randx"
	"cogentcore.org/gradients/cli"
	"cogentcore.org/gradients/colors"
	"cogentcore.org/gradients/colors/gradient"
	"cogentcore.org/gradients/colors/spaces"
	"cogentcore.org/gradients/easing"
	"cogentcore.org/gradients/math32"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration of a gradient and of how it is sampled.
// It is read from `default:` tags, then a TOML or YAML config file,
// then command line flags.
type Config struct {

	// Includes are other config files to open first, given
	// relative to the file that includes them.
	Includes []string

	// Colors are the stop colors, as names, #hex or 0xAARRGGBB strings,
	// spread evenly from 0 to 1 unless Positions are given.
	Colors []colors.ARGB `default:"red,yellow,blue"`

	// Positions are the stop positions, one for each color.
	Positions []float32

	// Space is the color space that colors are interpolated in.
	Space spaces.Spaces `default:"LUV"`

	// Easing is the easing applied between stops.
	Easing easing.Easings `default:"SmoothStep"`

	// Offset is added to every sampled position.
	Offset float32

	// Rotate moves every stop by this amount, wrapping around.
	Rotate float32

	// Samples is the number of evenly spaced positions printed.
	Samples int `default:"16"`

	// Width is the width of each swatch in terminal cells.
	Width int `default:"24"`

	// Random, if positive, replaces Colors with this many random colors.
	Random int

	// RandomStops places random colors at random positions
	// instead of spreading them evenly.
	RandomStops bool

	// Seed seeds the random colors and mutation.
	Seed int64 `default:"1"`

	// Mutate randomly perturbs each stop channel by up to this amount.
	Mutate float32

	// Prime copies the first color to the end, for a gradient
	// that wraps around without a seam.
	Prime bool

	// Precision is the fast power table precision, in [0, 18].
	Precision int `default:"11"`

	// Hex prints hex colors instead of swatches.
	Hex bool

	// Describe prints the stop table before the samples.
	Describe bool
}

func (c *Config) IncludesPtr() *[]string { return &c.Includes }

// LoadConfig returns the config with its defaults, updated
// from the given file unless it is empty.
func LoadConfig(file string) (*Config, error) {
	cfg := &Config{}
	if err := cli.SetFromDefaults(cfg); err != nil {
		return nil, err
	}
	if file == "" {
		return cfg, nil
	}
	if err := cli.Open(cfg, file); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error for settings that cannot make a gradient,
// joining one error for each problem found.
func (c *Config) Validate() error {
	var errs []error
	if c.Samples < 1 {
		errs = append(errs, errors.Errorf("samples must be at least 1, not %d", c.Samples))
	}
	if c.Width < 0 {
		errs = append(errs, errors.Errorf("width must not be negative, not %d", c.Width))
	}
	if c.Random < 0 {
		errs = append(errs, errors.Errorf("random must not be negative, not %d", c.Random))
	}
	if c.Mutate < 0 || c.Mutate > 255 {
		errs = append(errs, errors.Errorf("mutate must be in [0, 255], not %g", c.Mutate))
	}
	if c.Random == 0 && len(c.Positions) > 0 && len(c.Positions) != len(c.Colors) {
		errs = append(errs, errors.Errorf("got %d positions for %d colors", len(c.Positions), len(c.Colors)))
	}
	for _, p := range c.Positions {
		// NaN fails both comparisons
		if !(p >= 0 && p <= 1) {
			errs = append(errs, errors.Errorf("position %g not in [0, 1]", p))
		}
	}
	return errors.Join(errs...)
}

// Gradient returns the gradient described by the config. It also sets
// the fast power table precision, which is process-wide.
func (c *Config) Gradient() (*gradient.Gradient, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := math32.InitFastPow(c.Precision); err != nil {
		return nil, err
	}
	rnd := randx.NewSysRand(c.Seed)
	var g *gradient.Gradient
	switch {
	case c.Random > 0 && c.RandomStops:
		g = gradient.NewRandomWithStops(c.Random, rnd)
	case c.Random > 0:
		g = gradient.NewRandom(c.Random, rnd)
	case len(c.Positions) > 0:
		stops := make([]gradient.ColorStop, len(c.Colors))
		for i, col := range c.Colors {
			stops[i] = gradient.NewStop(c.Positions[i], col)
		}
		g = gradient.NewFromStops(stops...)
	default:
		g = gradient.New(c.Colors...)
	}
	g.SetSpace(c.Space).SetEasing(c.Easing).SetOffset(c.Offset)
	if c.Prime {
		g.PrimeAnimation()
	}
	if c.Rotate != 0 {
		g.RotateStops(c.Rotate)
	}
	if c.Mutate > 0 {
		g.Mutate(c.Mutate, rnd)
	}
	return g, nil
}

// Files returns the config file and the files it includes, recursively,
// as they are resolved when opening it.
func (c *Config) Files(file string) []string {
	if file == "" {
		return nil
	}
	file, err := homedir.Expand(file)
	if err != nil {
		return nil
	}
	files := []string{file}
	seen := map[string]bool{file: true}
	var add func(from string, incs []string, depth int)
	add = func(from string, incs []string, depth int) {
		if depth > cli.MaxIncludeDepth {
			return
		}
		for _, inc := range incs {
			inc, err := cli.IncludePath(from, inc)
			if err != nil || seen[inc] {
				continue
			}
			seen[inc] = true
			files = append(files, inc)
			sub := &Config{}
			if cli.Open(sub, inc) == nil {
				add(inc, sub.Includes, depth+1)
			}
		}
	}
	add(file, c.Includes, 0)
	return files
}
