// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"cogentcore.org/gradients/base/randx"
	"cogentcore.org/gradients/colors"
)

// randomColor returns an opaque color with uniformly random channels.
func randomColor(rnd randx.Rand) colors.ARGB {
	return colors.FromFloat(rnd.Float64(), rnd.Float64(), rnd.Float64(), 255)
}

// NewRandom returns a new gradient of n random opaque colors
// spread evenly from 0 to 1. The same seeded rnd gives the same gradient.
// A negative n gives an empty gradient.
func NewRandom(n int, rnd randx.Rand) *Gradient {
	cols := make([]colors.ARGB, max(n, 0))
	for i := range cols {
		cols[i] = randomColor(rnd)
	}
	return New(cols...)
}

// NewRandomWithStops returns a new gradient of n random opaque colors
// at random positions, except for the first at 0 and the last at 1.
// Random positions within [Tolerance] of an earlier stop replace it,
// and the end stops replace any within Tolerance of them, so the
// gradient can have fewer than n stops. A negative n gives an empty
// gradient.
func NewRandomWithStops(n int, rnd randx.Rand) *Gradient {
	n = max(n, 0)
	stops := make([]ColorStop, n)
	for i := range stops {
		var pos float32
		switch i {
		case 0:
		case n - 1:
			pos = 1
		default:
			pos = rnd.Float32()
		}
		stops[i] = NewStop(pos, randomColor(rnd))
	}
	if n < 2 {
		return NewFromStops(stops...)
	}
	ends := []ColorStop{stops[0], stops[n-1]}
	return NewFromStops(append(stops[1:n-1], ends...)...)
}
