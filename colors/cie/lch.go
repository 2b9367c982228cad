// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// LABToLCH converts L*a*b* to its polar form L*C*h, with the
// hue h in degrees in [0, 360).
func LABToLCH(l, a, b float64) (ll, c, h float64) {
	c = math.Hypot(a, b)
	h = math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return l, c, h
}

// LCHToLAB converts L*C*h with the hue in degrees to L*a*b*.
func LCHToLAB(l, c, h float64) (ll, a, b float64) {
	s, co := math.Sincos(h * math.Pi / 180)
	return l, c * co, c * s
}

// SRGBToLCH converts a color from sRGB to L*C*h coordinates.
func SRGBToLCH(r, g, b float64) (l, c, h float64) {
	return LABToLCH(SRGBToLAB(r, g, b))
}

// LCHToSRGB converts a color from L*C*h to sRGB coordinates.
func LCHToSRGB(l, c, h float64) (r, g, b float64) {
	return LABToSRGB(LCHToLAB(l, c, h))
}
