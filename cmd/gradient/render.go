// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/gradients/colors"
	"cogentcore.org/gradients/colors/gradient"
	"github.com/muesli/termenv"
)

// Positions returns n evenly spaced positions from 0 to 1.
// A single position is 0.
func Positions(n int) []float32 {
	pos := make([]float32, n)
	for i := range pos {
		if n > 1 {
			pos[i] = float32(i) / float32(n-1)
		}
	}
	return pos
}

// Render writes cfg.Samples evenly spaced colors of g to w, one per line.
// Each line is the hex color, or the position, hex color and a swatch
// in the color when the terminal of w supports it.
func Render(w io.Writer, g *gradient.Gradient, cfg *Config) error {
	if cfg.Describe {
		if _, err := io.WriteString(w, g.String()); err != nil {
			return err
		}
	}
	out := termenv.NewOutput(w)
	block := strings.Repeat(" ", cfg.Width)
	for _, pos := range Positions(cfg.Samples) {
		c := g.Evaluate(pos)
		var err error
		if cfg.Hex {
			_, err = fmt.Fprintln(w, c)
		} else {
			sw := out.String(block).Background(out.Color(opaqueHex(c)))
			_, err = fmt.Fprintf(w, "%5.3f %-9v %s\n", pos, c, sw)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// opaqueHex returns the #rrggbb form of c, which terminals can show.
func opaqueHex(c colors.ARGB) string {
	return c.WithAlpha(255).String()
}
