// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gradient prints evenly spaced samples of a color gradient
// as terminal swatches or hex colors. The gradient is read from a
// TOML or YAML config file and command line flags, and can be
// re-rendered whenever the config file changes.
//
// Usage:
//
//	gradient [flags] [colors...]
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"cogentcore.org/gradients/base/errors"
	"cogentcore.org/gradients/base/logx"
	"cogentcore.org/gradients/colors"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// options are the command line flags. Flags that are set
// override the matching settings of the config file.
type options struct {
	config    string
	watch     bool
	space     string
	easing    string
	positions string
	offset    float32
	rotate    float32
	samples   int
	width     int
	random    int
	randStops bool
	seed      int64
	mutate    float32
	prime     bool
	precision int
	hex       bool
	describe  bool
	vv, v, q  bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "gradient [flags] [colors...]",
		Short: "Print samples of a color gradient",
		Long: "gradient prints evenly spaced samples of a color gradient, interpolated in a\n" +
			"selectable color space with a selectable easing between stops. Colors are CSS\n" +
			"names, #hex or 0xAARRGGBB strings and override the colors of the config file.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(o.vv, o.v, o.q)
			logx.SetDefaultLogger(cmd.ErrOrStderr())
			return run(cmd, o, args)
		},
	}
	cmd.SetOut(out)

	f := cmd.Flags()
	f.StringVarP(&o.config, "config", "c", "", "TOML or YAML config file")
	f.BoolVarP(&o.watch, "watch", "w", false, "re-render whenever the config file changes")
	f.StringVarP(&o.space, "space", "s", "", "color space to interpolate in (e.g. LUV, LAB, RGB, HSBShort)")
	f.StringVarP(&o.easing, "easing", "e", "", "easing between stops (e.g. Linear, SmoothStep, Sine)")
	f.StringVar(&o.positions, "positions", "", "comma separated stop positions, one for each color")
	f.Float32Var(&o.offset, "offset", 0, "offset added to every sampled position")
	f.Float32Var(&o.rotate, "rotate", 0, "amount to move every stop by, wrapping around")
	f.IntVarP(&o.samples, "samples", "n", 0, "number of samples to print")
	f.IntVar(&o.width, "width", 0, "swatch width in terminal cells")
	f.IntVar(&o.random, "random", 0, "use this many random colors")
	f.BoolVar(&o.randStops, "random-stops", false, "place random colors at random positions")
	f.Int64Var(&o.seed, "seed", 0, "seed for random colors and mutation")
	f.Float32Var(&o.mutate, "mutate", 0, "randomly perturb stop channels by up to this amount")
	f.BoolVar(&o.prime, "prime", false, "copy the first color to the end for seamless wrapping")
	f.IntVar(&o.precision, "precision", 0, "fast power table precision in [0, 18]")
	f.BoolVarP(&o.hex, "hex", "x", false, "print hex colors instead of swatches")
	f.BoolVarP(&o.describe, "describe", "d", false, "print the stop table before the samples")
	f.BoolVar(&o.vv, "vv", false, "print debug messages")
	f.BoolVarP(&o.v, "verbose", "v", false, "print informational messages")
	f.BoolVarP(&o.q, "quiet", "q", false, "only print errors")
	return cmd
}

// run renders the gradient once, then again on every
// config change until the command context is done.
func run(cmd *cobra.Command, o *options, args []string) error {
	if o.watch && o.config == "" {
		return errors.New("--watch needs a config file")
	}
	render := func() (*Config, error) {
		cfg, err := loadWithFlags(cmd, o, args)
		if err != nil {
			return nil, err
		}
		g, err := cfg.Gradient()
		if err != nil {
			return nil, err
		}
		return cfg, Render(cmd.OutOrStdout(), g, cfg)
	}
	cfg, err := render()
	if err != nil || !o.watch {
		return err
	}
	files := cfg.Files(o.config)
	slog.Info("watching config", "files", files)
	return Watch(cmd.Context(), files, DefaultDebounce, func() error {
		_, err := render()
		return err
	}, func(err error) {
		errors.Log(err)
	})
}

// loadWithFlags loads the config file and applies the
// flags that were set and the positional colors.
func loadWithFlags(cmd *cobra.Command, o *options, args []string) (*Config, error) {
	cfg, err := LoadConfig(o.config)
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("space") {
		if err := setEnum(&cfg.Space, o.space); err != nil {
			return nil, err
		}
	}
	if f.Changed("easing") {
		if err := setEnum(&cfg.Easing, o.easing); err != nil {
			return nil, err
		}
	}
	if f.Changed("positions") {
		pos, err := parsePositions(o.positions)
		if err != nil {
			return nil, err
		}
		cfg.Positions = pos
	}
	setIf(f.Changed("offset"), &cfg.Offset, o.offset)
	setIf(f.Changed("rotate"), &cfg.Rotate, o.rotate)
	setIf(f.Changed("samples"), &cfg.Samples, o.samples)
	setIf(f.Changed("width"), &cfg.Width, o.width)
	setIf(f.Changed("random"), &cfg.Random, o.random)
	setIf(f.Changed("random-stops"), &cfg.RandomStops, o.randStops)
	setIf(f.Changed("seed"), &cfg.Seed, o.seed)
	setIf(f.Changed("mutate"), &cfg.Mutate, o.mutate)
	setIf(f.Changed("prime"), &cfg.Prime, o.prime)
	setIf(f.Changed("precision"), &cfg.Precision, o.precision)
	setIf(f.Changed("hex"), &cfg.Hex, o.hex)
	setIf(f.Changed("describe"), &cfg.Describe, o.describe)
	if len(args) > 0 {
		cols := make([]colors.ARGB, len(args))
		for i, a := range args {
			if cols[i], err = colors.FromString(a); err != nil {
				return nil, err
			}
		}
		cfg.Colors = cols
	}
	return cfg, nil
}

func setIf[T any](changed bool, dst *T, v T) {
	if changed {
		*dst = v
	}
}

// parsePositions parses a comma separated list of positions.
func parsePositions(s string) ([]float32, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	pos := make([]float32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, errors.Errorf("invalid position %q: %w", p, err)
		}
		pos[i] = float32(v)
	}
	return pos, nil
}
