// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"fmt"

	"cogentcore.org/gradients/base/randx"
	"cogentcore.org/gradients/colors"
	"cogentcore.org/gradients/colors/spaces"
	"cogentcore.org/gradients/math32"
)

// ColorStop anchors a color at a position along a gradient.
type ColorStop struct {

	// Pos is the position of the stop, in [0, 1].
	Pos float32

	// OrigPos is the position of the stop before any rotation
	// by [Gradient.RotateStops].
	OrigPos float32

	// Color is the packed color of the stop.
	Color colors.ARGB

	// Alpha is the opacity of the stop in [0, 255]. It is blended
	// linearly, independent of the color space and easing.
	Alpha float32

	// comps are the components of Color in space, valid if cached is set.
	comps  spaces.Triplet
	space  spaces.Spaces
	cached bool
}

// NewStop returns a new stop of the given color at the given position.
func NewStop(pos float32, color colors.ARGB) ColorStop {
	return ColorStop{Pos: pos, OrigPos: pos, Color: color, Alpha: color.Alpha()}
}

// NewStopComponents returns a new stop at the given position whose color
// is given by its components in the given space, and an alpha in [0, 255].
func NewStopComponents(pos float32, space spaces.Spaces, comps spaces.Triplet, alpha float32) ColorStop {
	rgb := space.ToRGB(comps)
	c := colors.FromFloat(rgb[0], rgb[1], rgb[2], alpha)
	return ColorStop{Pos: pos, OrigPos: pos, Color: c, Alpha: math32.Clamp(alpha, 0, 255),
		comps: comps, space: space, cached: true}
}

// SetColor sets the color of the stop, including its alpha.
func (cs *ColorStop) SetColor(c colors.ARGB) {
	cs.Color = c
	cs.Alpha = c.Alpha()
	cs.cached = false
}

// setPos sets the position, which also becomes the unrotated position.
func (cs *ColorStop) setPos(pos float32) {
	cs.Pos = pos
	cs.OrigPos = pos
}

// scale multiplies both the position and the unrotated position by f.
func (cs *ColorStop) scale(f float32) {
	cs.Pos *= f
	cs.OrigPos *= f
}

// withDefaults returns the stop with the fields a [ColorStop] literal
// usually leaves zero filled in: a zero OrigPos is taken from Pos, and
// a zero Alpha of a color that is not transparent from the color.
func (cs ColorStop) withDefaults() ColorStop {
	if cs.OrigPos == 0 {
		cs.OrigPos = cs.Pos
	}
	if cs.Alpha == 0 && cs.Color.A() != 0 {
		cs.Alpha = cs.Color.Alpha()
	}
	return cs
}

// Components returns the components of the stop color in the given space,
// computing them only when the space differs from the last call.
func (cs *ColorStop) Components(space spaces.Spaces) spaces.Triplet {
	if !cs.cached || cs.space != space {
		r, g, b := cs.Color.Float()
		cs.comps = space.FromRGB(spaces.Triplet{r, g, b})
		cs.space = space
		cs.cached = true
	}
	return cs.comps
}

// Mutate randomly adds or subtracts amount, in [0, 255], to each of the
// red, green and blue channels of the stop, clamping the result.
// Alpha is unchanged.
func (cs *ColorStop) Mutate(amount float32, rnd randx.Rand) {
	ch := func(v uint8) uint8 {
		return uint8(math32.Clamp(float32(v)+randx.Sign(rnd)*amount, 0, 255) + 0.5)
	}
	r, g, b := ch(cs.Color.R()), ch(cs.Color.G()), ch(cs.Color.B())
	cs.Color = colors.FromRGBA(r, g, b, cs.Color.A())
	cs.cached = false
}

// String returns the position and color of the stop.
func (cs ColorStop) String() string {
	return fmt.Sprintf("%.3f %v", cs.Pos, cs.Color)
}
