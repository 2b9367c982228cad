// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// DIN99 (DIN 6176) rotates the a*b* plane by 16 degrees.
var din99Sin, din99Cos = math.Sincos(16 * math.Pi / 180)

// LABToDIN99 converts a color from L*a*b* to DIN99 coordinates.
func LABToDIN99(l, a, b float64) (l99, a99, b99 float64) {
	l99 = 105.51 * math.Log(1+0.0158*l)
	e := a*din99Cos + b*din99Sin
	f := 0.7 * (b*din99Cos - a*din99Sin)
	g := math.Hypot(e, f)
	if g == 0 {
		return l99, 0, 0
	}
	k := math.Log(1+0.045*g) / 0.045
	a99 = k * e / g
	b99 = k * f / g
	return
}

// DIN99ToLAB converts a color from DIN99 to L*a*b* coordinates.
func DIN99ToLAB(l99, a99, b99 float64) (l, a, b float64) {
	l = (math.Exp(l99/105.51) - 1) / 0.0158
	c := math.Hypot(a99, b99)
	if c == 0 {
		return l, 0, 0
	}
	g := (math.Exp(0.045*c) - 1) / 0.045
	e := g * a99 / c
	f := g * b99 / c / 0.7
	a = e*din99Cos - f*din99Sin
	b = e*din99Sin + f*din99Cos
	return
}

// SRGBToDIN99 converts a color from sRGB to DIN99 coordinates.
func SRGBToDIN99(r, g, b float64) (l, aa, bb float64) {
	return LABToDIN99(SRGBToLAB(r, g, b))
}

// DIN99ToSRGB converts a color from DIN99 to sRGB coordinates.
func DIN99ToSRGB(l, a, b float64) (r, g, bb float64) {
	return LABToSRGB(DIN99ToLAB(l, a, b))
}
