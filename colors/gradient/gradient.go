// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient provides one dimensional color gradients: color stops
// along [0, 1], interpolated in a selectable color space with a
// selectable easing between each pair of stops.
package gradient

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"cogentcore.org/gradients/base/errors"
	"cogentcore.org/gradients/colors"
	"cogentcore.org/gradients/colors/spaces"
	"cogentcore.org/gradients/easing"
	"cogentcore.org/gradients/math32"
)

// Tolerance is the distance below which two stop positions are
// considered duplicates. Inserting a stop within Tolerance of an
// existing one replaces the existing stop.
const Tolerance = 1e-3

const (
	// DefaultSpace is the color space of new gradients.
	DefaultSpace = spaces.LUV

	// DefaultEasing is the easing of new gradients.
	DefaultEasing = easing.SmoothStep
)

// ErrStopIndex is returned for a stop index outside of the gradient.
var ErrStopIndex = errors.New("gradient: stop index out of range")

// Gradient is a one dimensional color gradient. Stops are always sorted
// by position. A Gradient is not safe for concurrent use, including
// concurrent calls to [Gradient.Evaluate], which updates a search cursor.
type Gradient struct {
	stops  []ColorStop
	offset float32
	space  spaces.Spaces
	easing easing.Easings

	// cursor is the index of the upper stop of the last evaluated
	// bracket, where the search for the next bracket starts.
	cursor int
}

// New returns a new gradient with the given colors spread evenly from 0 to 1.
// A single color is placed at 0.
func New(cols ...colors.ARGB) *Gradient {
	g := &Gradient{space: DefaultSpace, easing: DefaultEasing}
	n := len(cols)
	for i, c := range cols {
		pos := float32(0)
		if n > 1 {
			pos = float32(i) / float32(n-1)
		}
		g.insert(NewStop(pos, c))
	}
	return g
}

// NewFromStops returns a new gradient with copies of the given stops,
// filled in as by [Gradient.AddStop]. Stops are inserted in order, so
// of two near-duplicate stops the later one is kept.
func NewFromStops(stops ...ColorStop) *Gradient {
	g := &Gradient{space: DefaultSpace, easing: DefaultEasing}
	for _, s := range stops {
		g.insert(s.withDefaults())
	}
	return g
}

// Evaluate returns the color of the gradient at the given position,
// after adding the offset. Positions outside of [0, 1] wrap around, and
// positions before the first or after the last stop take its color.
// A gradient without stops is [colors.Black]; non-finite positions
// evaluate as 0.
func (g *Gradient) Evaluate(pos float32) colors.ARGB {
	n := len(g.stops)
	switch n {
	case 0:
		return colors.Black
	case 1:
		return g.stops[0].Color
	}

	pos = wrapPos(pos + g.offset)
	if pos <= g.stops[0].Pos {
		return g.stops[0].Color
	}
	if pos >= g.stops[n-1].Pos {
		return g.stops[n-1].Color
	}

	// walk until stops[c-1].Pos < pos <= stops[c].Pos
	c := math32.Clamp(g.cursor, 1, n-1)
	for c < n-1 && pos > g.stops[c].Pos {
		c++
	}
	for c > 1 && pos <= g.stops[c-1].Pos {
		c--
	}
	g.cursor = c

	curr, prev := &g.stops[c], &g.stops[c-1]
	den := prev.Pos - curr.Pos
	if den == 0 {
		den = 1
	}
	t := (pos - curr.Pos) / den
	if t == 0 {
		return curr.Color
	}

	mix := g.space.Interpolate(curr.Components(g.space), prev.Components(g.space), float64(g.easing.Apply(t)))
	alpha := curr.Alpha + t*(prev.Alpha-curr.Alpha)
	rgb := g.space.ToRGB(mix)
	return colors.FromFloat(rgb[0], rgb[1], rgb[2], alpha)
}

// wrapPos returns pos wrapped around into [0, 1]. Positions already
// in [0, 1] are kept as is, so 1 stays 1. Non-finite positions are 0.
func wrapPos(pos float32) float32 {
	switch {
	case math32.IsNaN(pos) || math32.IsInf(pos, 0):
		return 0
	case pos < 0 || pos > 1:
		return math32.Wrap(pos)
	}
	return pos
}

// insert adds a copy of the stop, replacing any stops within
// [Tolerance] of it, and keeps the stops sorted. A position outside
// of [0, 1] is wrapped and also becomes the unrotated position.
func (g *Gradient) insert(s ColorStop) {
	if p := wrapPos(s.Pos); p != s.Pos {
		s.Pos, s.OrigPos = p, p
	}
	if math32.IsNaN(s.OrigPos) || math32.IsInf(s.OrigPos, 0) {
		s.OrigPos = s.Pos
	}
	g.stops = slices.DeleteFunc(g.stops, func(o ColorStop) bool {
		if !(math32.Abs(o.Pos-s.Pos) < Tolerance) {
			return false
		}
		slog.Warn("Gradient: replacing near-duplicate stop", "pos", o.Pos, "color", o.Color, "newPos", s.Pos, "newColor", s.Color)
		return true
	})
	g.stops = append(g.stops, s)
	g.sort()
}

// sort sorts the stops by position, keeping the order of equal
// positions, and resets the search cursor.
func (g *Gradient) sort() {
	slices.SortStableFunc(g.stops, func(a, b ColorStop) int {
		switch {
		case a.Pos < b.Pos:
			return -1
		case a.Pos > b.Pos:
			return 1
		}
		return 0
	})
	g.cursor = 1
}

// Len returns the number of stops.
func (g *Gradient) Len() int {
	return len(g.stops)
}

// Stops returns a copy of the stops, sorted by position.
func (g *Gradient) Stops() []ColorStop {
	return slices.Clone(g.stops)
}

// Space returns the color space that colors are interpolated in.
func (g *Gradient) Space() spaces.Spaces {
	return g.space
}

// SetSpace sets the color space that colors are interpolated in.
// Stop components are recomputed on the next evaluation.
func (g *Gradient) SetSpace(s spaces.Spaces) *Gradient {
	slog.Debug("Gradient.SetSpace", "from", g.space, "to", s)
	g.space = s
	return g
}

// NextSpace switches to the next color space.
func (g *Gradient) NextSpace() *Gradient {
	return g.SetSpace(g.space.Next())
}

// PrevSpace switches to the previous color space.
func (g *Gradient) PrevSpace() *Gradient {
	return g.SetSpace(g.space.Prev())
}

// Easing returns the easing applied between stops.
func (g *Gradient) Easing() easing.Easings {
	return g.easing
}

// SetEasing sets the easing applied between stops.
func (g *Gradient) SetEasing(e easing.Easings) *Gradient {
	slog.Debug("Gradient.SetEasing", "from", g.easing, "to", e)
	g.easing = e
	return g
}

// NextEasing switches to the next easing.
func (g *Gradient) NextEasing() *Gradient {
	return g.SetEasing(g.easing.Next())
}

// PrevEasing switches to the previous easing.
func (g *Gradient) PrevEasing() *Gradient {
	return g.SetEasing(g.easing.Prev())
}

// String returns a table of the stops, with the color of each stop
// in the current color space.
func (g *Gradient) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Gradient %v %v\n", g.space, g.easing)
	fmt.Fprintf(&b, "Offset: %g\n", g.offset)
	fmt.Fprintf(&b, "Color stops (%d):\n", len(g.stops))
	fmt.Fprintf(&b, "    %-10s%-12s%-8s%s\n", "Position", "Color", "Alpha", g.space)
	for i := range g.stops {
		s := &g.stops[i]
		c := s.Components(g.space)
		fmt.Fprintf(&b, "    %-10.3f%-12v%-8.0f[%.3f, %.3f, %.3f]\n", s.Pos, s.Color, s.Alpha, c[0], c[1], c[2])
	}
	return b.String()
}
