// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the packed ARGB color type returned by
// gradient evaluation, along with parsing from names and hex strings.
package colors

import (
	"fmt"
	"image/color"
)

// ARGB is a packed 32 bit color with 8 bits per channel: alpha in the
// highest byte, followed by red, green and blue. Channels are not
// premultiplied by alpha. ARGB implements [color.Color].
type ARGB uint32

const (
	// Black is opaque black, which is also what an empty gradient evaluates to.
	Black ARGB = 0xFF000000

	// White is opaque white.
	White ARGB = 0xFFFFFFFF

	// Transparent is fully transparent black.
	Transparent ARGB = 0
)

// FromRGBA returns the packed color with the given channel values.
func FromRGBA(r, g, b, a uint8) ARGB {
	return ARGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromColor converts any [color.Color] to a packed color,
// undoing any alpha premultiplication.
func FromColor(c color.Color) ARGB {
	if a, ok := c.(ARGB); ok {
		return a
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGBA(n.R, n.G, n.B, n.A)
}

// FromFloat returns the packed color for normalized sRGB channel values
// in [0, 1] and an alpha in [0, 255]. Out of range values are clamped
// and each channel is rounded to the nearest 8 bit value.
func FromFloat(r, g, b float64, alpha float32) ARGB {
	return FromRGBA(toUint8(r*255), toUint8(g*255), toUint8(b*255), toUint8(float64(alpha)))
}

// toUint8 rounds and clamps v to the range of a uint8.
func toUint8(v float64) uint8 {
	switch {
	case v >= 255:
		return 255
	case v > 0:
		return uint8(v + 0.5)
	default:
		// includes NaN
		return 0
	}
}

// A returns the alpha channel.
func (c ARGB) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c ARGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c ARGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c ARGB) B() uint8 { return uint8(c) }

// Alpha returns the alpha channel as a float in [0, 255].
func (c ARGB) Alpha() float32 {
	return float32(c.A())
}

// Float returns the red, green and blue channels normalized to [0, 1].
func (c ARGB) Float() (r, g, b float64) {
	return float64(c.R()) / 255, float64(c.G()) / 255, float64(c.B()) / 255
}

// WithAlpha returns the color with its alpha channel replaced.
func (c ARGB) WithAlpha(a uint8) ARGB {
	return c&0x00FFFFFF | ARGB(a)<<24
}

// NRGBA returns the color as a non-premultiplied [color.NRGBA].
func (c ARGB) NRGBA() color.NRGBA {
	return color.NRGBA{c.R(), c.G(), c.B(), c.A()}
}

// RGBA implements [color.Color], returning alpha-premultiplied
// values in the range 0x0000 - 0xffff.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String returns the color as a hex string: #rrggbb when
// it is opaque and #rrggbbaa otherwise.
func (c ARGB) String() string {
	if c.A() == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R(), c.G(), c.B(), c.A())
}

// MarshalText encodes the color as its hex string.
func (c ARGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText sets the color from a name or hex string; see [FromString].
func (c *ARGB) UnmarshalText(text []byte) error {
	v, err := FromString(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
