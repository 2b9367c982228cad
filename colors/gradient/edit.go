// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"cmp"
	"slices"

	"cogentcore.org/gradients/base/errors"
	"cogentcore.org/gradients/base/randx"
	"cogentcore.org/gradients/colors"
)

// checkIndex returns an error wrapping [ErrStopIndex] if i is not
// the index of a stop. fun names the calling method.
func (g *Gradient) checkIndex(fun string, i int) error {
	if i < 0 || i >= len(g.stops) {
		return errors.Errorf("Gradient.%s: %w: %d not in [0, %d)", fun, ErrStopIndex, i, len(g.stops))
	}
	return nil
}

// Add adds a stop of the given color at the given position, which
// wraps around if outside of [0, 1]. A non-finite position is 0.
// Stops within [Tolerance] of the position are replaced.
func (g *Gradient) Add(pos float32, c colors.ARGB) *Gradient {
	g.insert(NewStop(pos, c))
	return g
}

// AddStop adds a copy of the given stop, with its position handled as
// by [Gradient.Add]. A zero OrigPos is taken from Pos, and a zero Alpha
// from the color unless it is transparent, so a literal with only Pos
// and Color set behaves like [NewStop].
func (g *Gradient) AddStop(s ColorStop) *Gradient {
	g.insert(s.withDefaults())
	return g
}

// Push adds a stop of the given color at position 1, first compressing
// the positions of the existing n stops by (n-1)/n to make room.
// [Gradient.RemoveLast] undoes a Push. The unrotated positions are
// compressed alike, so a later RotateStops(0) gives the pushed layout.
// A single stop is compressed to 0, and RemoveLast does not expand a
// lone stop, so a Push onto a single stop is not undone.
func (g *Gradient) Push(c colors.ARGB) *Gradient {
	if n := len(g.stops); n > 0 {
		scale := float32(n-1) / float32(n)
		for i := range g.stops {
			g.stops[i].scale(scale)
		}
	}
	g.insert(NewStop(1, c))
	return g
}

// PrimeAnimation pushes a copy of the first color to the end, so that
// the gradient has no seam where it wraps around when animated with
// [Gradient.Animate]. It does nothing for a gradient without stops.
func (g *Gradient) PrimeAnimation() *Gradient {
	if len(g.stops) == 0 {
		return g
	}
	return g.Push(g.stops[0].Color)
}

// RemoveLast removes the last stop and expands the positions of the
// remaining n stops by n/(n-1), undoing [Gradient.Push]. A single
// remaining stop keeps its position.
func (g *Gradient) RemoveLast() error {
	if len(g.stops) == 0 {
		return errors.Errorf("Gradient.RemoveLast: %w: no stops", ErrStopIndex)
	}
	g.stops = g.stops[:len(g.stops)-1]
	if n := len(g.stops); n > 1 {
		scale := float32(n) / float32(n-1)
		for i := range g.stops {
			g.stops[i].scale(scale)
		}
	}
	g.cursor = 1
	return nil
}

// Remove removes the stop at index i. The other stops keep their positions.
func (g *Gradient) Remove(i int) error {
	if err := g.checkIndex("Remove", i); err != nil {
		return err
	}
	g.stops = slices.Delete(g.stops, i, i+1)
	g.cursor = 1
	return nil
}

// SetStopColor sets the color of the stop at index i.
func (g *Gradient) SetStopColor(i int, c colors.ARGB) error {
	if err := g.checkIndex("SetStopColor", i); err != nil {
		return err
	}
	g.stops[i].SetColor(c)
	g.cursor = 1
	return nil
}

// SetStopPosition moves the stop at index i to the given position,
// which is handled as by [Gradient.Add]. Other stops within
// [Tolerance] of the new position are replaced.
func (g *Gradient) SetStopPosition(i int, pos float32) error {
	if err := g.checkIndex("SetStopPosition", i); err != nil {
		return err
	}
	s := g.stops[i]
	s.setPos(wrapPos(pos))
	g.stops = slices.Delete(g.stops, i, i+1)
	g.insert(s)
	return nil
}

// StopColor returns the color of the stop at index i.
func (g *Gradient) StopColor(i int) (colors.ARGB, error) {
	if err := g.checkIndex("StopColor", i); err != nil {
		return 0, err
	}
	return g.stops[i].Color, nil
}

// LastColor returns the color of the last stop,
// or [colors.Black] if there are no stops.
func (g *Gradient) LastColor() colors.ARGB {
	if len(g.stops) == 0 {
		return colors.Black
	}
	return g.stops[len(g.stops)-1].Color
}

// Offset returns the offset added to every evaluated position.
func (g *Gradient) Offset() float32 {
	return g.offset
}

// SetOffset sets the offset added to every evaluated position.
func (g *Gradient) SetOffset(offset float32) *Gradient {
	g.offset = offset
	return g
}

// Animate adds amount to the offset, shifting the gradient along its
// axis. Calls accumulate, and the offset wraps at evaluation. Use
// [Gradient.PrimeAnimation] first to avoid a seam.
func (g *Gradient) Animate(amount float32) *Gradient {
	g.offset += amount
	return g
}

// RotateStops moves every stop to its unrotated position plus amount,
// wrapping around positions outside of [0, 1]. Unlike [Gradient.Animate]
// this changes the stops, but repeated calls with a growing amount do
// not accumulate error, and RotateStops(0) restores the stops.
//
// Stops that land within [Tolerance] of each other, such as the end
// stops at 0 and 1, are kept and spread twice [Tolerance] apart, with
// the stop of the higher unrotated position first.
func (g *Gradient) RotateStops(amount float32) *Gradient {
	for i := range g.stops {
		g.stops[i].Pos = wrapPos(g.stops[i].OrigPos + amount)
	}
	slices.SortStableFunc(g.stops, func(a, b ColorStop) int {
		if c := cmp.Compare(a.Pos, b.Pos); c != 0 {
			return c
		}
		return cmp.Compare(b.OrigPos, a.OrigPos)
	})
	g.spread()
	g.cursor = 1
	return g
}

// spread moves sorted stops closer than [Tolerance] apart, keeping
// them within [0, 1]. The gap is twice the tolerance, so that the
// stops stay distinct when inserted again.
func (g *Gradient) spread() {
	const gap = 2 * Tolerance
	n := len(g.stops)
	for i := 1; i < n; i++ {
		if g.stops[i].Pos-g.stops[i-1].Pos < Tolerance {
			g.stops[i].Pos = g.stops[i-1].Pos + gap
		}
	}
	if n == 0 || g.stops[n-1].Pos <= 1 {
		return
	}
	g.stops[n-1].Pos = 1
	for i := n - 2; i >= 0; i-- {
		if g.stops[i+1].Pos-g.stops[i].Pos < Tolerance {
			g.stops[i].Pos = g.stops[i+1].Pos - gap
		}
	}
}

// Mutate randomly perturbs the red, green and blue channels of every
// stop by amount in [0, 255]; see [ColorStop.Mutate].
func (g *Gradient) Mutate(amount float32, rnd randx.Rand) *Gradient {
	for i := range g.stops {
		g.stops[i].Mutate(amount, rnd)
	}
	g.cursor = 1
	return g
}
