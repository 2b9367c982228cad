// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spaces provides the closed set of color spaces that gradients
// interpolate in. Every space converts between its native coordinates and
// the canonical triplet, which is gamma encoded sRGB normalized to [0, 1],
// and knows how to interpolate its own coordinates, including circular
// interpolation of hue channels.
package spaces

//go:generate core generate

import (
	"math"

	"cogentcore.org/gradients/enums"
)

// Triplet is a color in the native coordinates of one of the [Spaces],
// or, for the canonical form, normalized sRGB channels.
type Triplet [3]float64

// Spaces are the color spaces that gradients can interpolate in.
type Spaces int32 //enums:enum

const (
	// RGB interpolates the gamma encoded sRGB channels directly.
	RGB Spaces = iota

	// RYB interpolates in the red, yellow, blue painter's color wheel.
	RYB

	// HSBShort interpolates hue, saturation and brightness,
	// taking the shorter way around the hue circle.
	HSBShort

	// HSBLong interpolates hue, saturation and brightness,
	// taking the longer way around the hue circle.
	HSBLong

	// XYZ interpolates in the CIE 1931 XYZ space, which is linear light.
	XYZ

	// LAB interpolates in CIE L*a*b*.
	LAB

	// FastLAB is LAB with a fast pow approximation of the sRGB gamma.
	FastLAB

	// VeryFastLAB is LAB with a coarse pow approximation of the sRGB gamma.
	VeryFastLAB

	// HunterLAB interpolates in Hunter Lab.
	HunterLAB

	// LUV interpolates in CIE L*u*v*.
	LUV

	// FastLUV is LUV with a fast pow approximation of the sRGB gamma.
	FastLUV

	// JzAzBz interpolates in the perceptually uniform JzAzBz space.
	JzAzBz

	// LCH interpolates in the polar form of L*a*b*, with circular hue.
	LCH

	// HCG interpolates hue, chroma and grayness, with circular hue.
	HCG

	// DIN99 interpolates in the DIN99 space, a log compressed L*a*b*.
	DIN99

	// ICtCp interpolates in the ITU-R BT.2100 ICtCp space.
	ICtCp

	// Temp interpolates the correlated color temperature in kelvin.
	Temp

	// YUV interpolates luma and chrominance.
	YUV
)

// hueNone marks a space without a circular channel.
const hueNone = -1

// space is the conversion table entry for one of the [Spaces].
type space struct {
	toRGB   func(c Triplet) Triplet
	fromRGB func(c Triplet) Triplet

	// hue is the index of the circular channel, or hueNone.
	hue int

	// turn is the size of a full turn of the hue channel.
	turn float64

	// long takes the complementary arc around the hue circle.
	long bool

	// grayChroma is the chroma (channel 1) below which the hue is
	// undefined, so that the other color's hue is used.
	grayChroma float64

	// quick marks an approximate space.
	quick bool
}

var table = [SpacesN]space{
	RGB:         {toRGB: identity, fromRGB: identity, hue: hueNone},
	RYB:         {toRGB: rybToRGB, fromRGB: rgbToRYB, hue: hueNone},
	HSBShort:    {toRGB: hsbToRGB, fromRGB: rgbToHSB, hue: 0, turn: 1, grayChroma: 1e-9},
	HSBLong:     {toRGB: hsbToRGB, fromRGB: rgbToHSB, hue: 0, turn: 1, long: true, grayChroma: 1e-9},
	XYZ:         {toRGB: xyzToRGB, fromRGB: rgbToXYZ, hue: hueNone},
	LAB:         {toRGB: labToRGB, fromRGB: rgbToLAB, hue: hueNone},
	FastLAB:     {toRGB: labToRGBQuick, fromRGB: rgbToLAB, hue: hueNone, quick: true},
	VeryFastLAB: {toRGB: labToRGBVeryQuick, fromRGB: rgbToLAB, hue: hueNone, quick: true},
	HunterLAB:   {toRGB: hunterLABToRGB, fromRGB: rgbToHunterLAB, hue: hueNone},
	LUV:         {toRGB: luvToRGB, fromRGB: rgbToLUV, hue: hueNone},
	FastLUV:     {toRGB: luvToRGBQuick, fromRGB: rgbToLUV, hue: hueNone, quick: true},
	JzAzBz:      {toRGB: jzazbzToRGB, fromRGB: rgbToJzAzBz, hue: hueNone},
	LCH:         {toRGB: lchToRGB, fromRGB: rgbToLCH, hue: 2, turn: 360, grayChroma: 0.05},
	HCG:         {toRGB: hcgToRGB, fromRGB: rgbToHCG, hue: 0, turn: 1, grayChroma: 1e-9},
	DIN99:       {toRGB: din99ToRGB, fromRGB: rgbToDIN99, hue: hueNone},
	ICtCp:       {toRGB: ictcpToRGB, fromRGB: rgbToICtCp, hue: hueNone},
	Temp:        {toRGB: tempToRGB, fromRGB: rgbToTemp, hue: hueNone},
	YUV:         {toRGB: yuvToRGB, fromRGB: rgbToYUV, hue: hueNone},
}

// entry returns the table entry for the space, falling back on RGB
// for values outside of the enum.
func (s Spaces) entry() *space {
	if s < 0 || s >= SpacesN {
		return &table[RGB]
	}
	return &table[s]
}

// ToRGB converts the native coordinates c of the space to the canonical
// normalized sRGB triplet. Results may fall outside of [0, 1] for
// colors outside of the sRGB gamut; they are clamped when packed.
func (s Spaces) ToRGB(c Triplet) Triplet {
	return s.entry().toRGB(c)
}

// FromRGB converts the canonical normalized sRGB triplet c
// to the native coordinates of the space.
func (s Spaces) FromRGB(c Triplet) Triplet {
	return s.entry().fromRGB(c)
}

// Interpolate returns the native coordinates at fraction t of the way
// from a to b. Channels are interpolated linearly, except for the hue
// of polar spaces, which goes around the hue circle by the short arc
// (or the long arc for HSBLong). When one of the colors is gray its
// hue is undefined, and the hue of the other color is used throughout.
func (s Spaces) Interpolate(a, b Triplet, t float64) Triplet {
	sp := s.entry()
	var res Triplet
	for i := range res {
		res[i] = a[i] + t*(b[i]-a[i])
	}
	if sp.hue == hueNone {
		return res
	}
	ha, hb := a[sp.hue], b[sp.hue]
	switch {
	case a[1] <= sp.grayChroma && b[1] <= sp.grayChroma:
	case a[1] <= sp.grayChroma:
		ha = hb
	case b[1] <= sp.grayChroma:
		hb = ha
	}
	res[sp.hue] = lerpHue(ha, hb, t, sp.turn, sp.long)
	return res
}

// lerpHue interpolates circularly between hues a and b.
func lerpHue(a, b, t, turn float64, long bool) float64 {
	d := b - a
	d -= turn * math.Round(d/turn)
	if long && d != 0 {
		d -= math.Copysign(turn, d)
	}
	h := a + t*d
	return h - turn*math.Floor(h/turn)
}

// IsQuick returns whether the space trades accuracy for speed
// with approximate conversions back to sRGB.
func (s Spaces) IsQuick() bool {
	return s.entry().quick
}

// Next returns the next space, wrapping around after the last.
func (s Spaces) Next() Spaces {
	return enums.Next(s, SpacesValues())
}

// Prev returns the previous space, wrapping around before the first.
func (s Spaces) Prev() Spaces {
	return enums.Prev(s, SpacesValues())
}

func identity(c Triplet) Triplet { return c }
