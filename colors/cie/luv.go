// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// uv returns the u' v' chromaticity coordinates of an XYZ color,
// which are 0 for black.
func uv(x, y, z float64) (u, v float64) {
	d := x + 15*y + 3*z
	if d == 0 {
		return 0, 0
	}
	return 4 * x / d, 9 * y / d
}

// white point chromaticity, for the D65 white
var whiteU, whiteV = uv(WhiteD65[0], WhiteD65[1], WhiteD65[2])

// XYZToLUV converts a color from XYZ to L*u*v* coordinates
// using the D65 white point.
func XYZToLUV(x, y, z float64) (l, u, v float64) {
	l = YToL(100 * y / WhiteD65[1])
	d := x + 15*y + 3*z
	if d == 0 {
		return l, 0, 0
	}
	up, vp := uv(x, y, z)
	u = 13 * l * (up - whiteU)
	v = 13 * l * (vp - whiteV)
	return
}

// LUVToXYZ converts a color from L*u*v* to XYZ coordinates
// using the D65 white point. L <= 0 is black.
func LUVToXYZ(l, u, v float64) (x, y, z float64) {
	if l <= 0 {
		return 0, 0, 0
	}
	up := u/(13*l) + whiteU
	vp := v/(13*l) + whiteV
	y = LToY(l) / 100 * WhiteD65[1]
	if vp == 0 {
		return 0, y, 0
	}
	x = y * 9 * up / (4 * vp)
	z = y * (12 - 3*up - 20*vp) / (4 * vp)
	return
}

// SRGBToLUV converts a color from sRGB to L*u*v* coordinates.
func SRGBToLUV(r, g, b float64) (l, u, v float64) {
	return XYZToLUV(SRGBToXYZ(r, g, b))
}

// LUVToSRGB converts a color from L*u*v* to sRGB coordinates.
func LUVToSRGB(l, u, v float64) (r, g, b float64) {
	return XYZToSRGB(LUVToXYZ(l, u, v))
}

// LUVToSRGBQuick is [LUVToSRGB] using the fast pow approximation
// for the gamma correction.
func LUVToSRGBQuick(l, u, v float64) (r, g, b float64) {
	return XYZToSRGBQuick(LUVToXYZ(l, u, v))
}
