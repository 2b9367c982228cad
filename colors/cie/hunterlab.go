// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// Hunter LAB works on XYZ scaled to [0, 100].
var (
	hunterXn = 100 * WhiteD65[0]
	hunterYn = 100 * WhiteD65[1]
	hunterZn = 100 * WhiteD65[2]
	hunterKa = 175 / 198.04 * (hunterXn + hunterYn)
	hunterKb = 70 / 218.11 * (hunterYn + hunterZn)
)

// XYZToHunterLAB converts a color from XYZ to Hunter Lab coordinates
// using the D65 white point. L is in [0, 100].
func XYZToHunterLAB(x, y, z float64) (l, a, b float64) {
	x, y, z = 100*x, 100*y, 100*z
	if y == 0 {
		return 0, 0, 0
	}
	s := math.Sqrt(y / hunterYn)
	l = 100 * s
	a = hunterKa * (x/hunterXn - y/hunterYn) / s
	b = hunterKb * (y/hunterYn - z/hunterZn) / s
	return
}

// HunterLABToXYZ converts a color from Hunter Lab to XYZ coordinates
// using the D65 white point.
func HunterLABToXYZ(l, a, b float64) (x, y, z float64) {
	s := l / 100
	y = s * s * hunterYn
	x = (a/hunterKa*s + y/hunterYn) * hunterXn
	z = -(b/hunterKb*s - y/hunterYn) * hunterZn
	return x / 100, y / 100, z / 100
}

// SRGBToHunterLAB converts a color from sRGB to Hunter Lab coordinates.
func SRGBToHunterLAB(r, g, b float64) (l, aa, bb float64) {
	return XYZToHunterLAB(SRGBToXYZ(r, g, b))
}

// HunterLABToSRGB converts a color from Hunter Lab to sRGB coordinates.
func HunterLABToSRGB(l, a, b float64) (r, g, bb float64) {
	return XYZToSRGB(HunterLABToXYZ(l, a, b))
}
