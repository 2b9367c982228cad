// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

const (
	// labEpsilon is the CIE standard ε = 216/24389.
	labEpsilon = 216.0 / 24389.0

	// labKappa is the CIE standard κ = 24389/27.
	labKappa = 24389.0 / 27.0
)

// LABCompress does cube-root compression of the X, Y, Z components
// prior to performing the LAB conversion
func LABCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float64) float64 {
	if t := ft * ft * ft; t > labEpsilon {
		return t
	}
	return (116*ft - 16) / labKappa
}

// XYZToLAB converts a color from XYZ to L*a*b* coordinates
// using the D65 white point.
func XYZToLAB(x, y, z float64) (l, a, b float64) {
	fx := LABCompress(x / WhiteD65[0])
	fy := LABCompress(y / WhiteD65[1])
	fz := LABCompress(z / WhiteD65[2])
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts a color from L*a*b* to XYZ coordinates
// using the D65 white point.
func LABToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteD65[0]
	y = LABUncompress(fy) * WhiteD65[1]
	z = LABUncompress(fz) * WhiteD65[2]
	return
}

// LToY Converts an L* value to a Y value.
// L* in L*a*b* and Y in XYZ measure the same quantity, luminance.
// L* measures perceived luminance, a linear scale. Y in XYZ
// measures relative luminance, a logarithmic scale.
// Y is returned in the range [0, 100].
func LToY(l float64) float64 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL Converts a Y value to an L* value.
// L* in L*a*b* and Y in XYZ measure the same quantity, luminance.
// L* measures perceived luminance, a linear scale. Y in XYZ
// measures relative luminance, a logarithmic scale.
// Y is in the range [0, 100].
func YToL(y float64) float64 {
	return LABCompress(y/100)*116 - 16
}

// SRGBToLAB converts a color from sRGB to L*a*b* coordinates.
func SRGBToLAB(r, g, b float64) (l, aa, bb float64) {
	return XYZToLAB(SRGBToXYZ(r, g, b))
}

// LABToSRGB converts a color from L*a*b* to sRGB coordinates.
func LABToSRGB(l, a, b float64) (r, g, bb float64) {
	return XYZToSRGB(LABToXYZ(l, a, b))
}

// LABToSRGBQuick is [LABToSRGB] using the fast pow approximation
// for the gamma correction.
func LABToSRGBQuick(l, a, b float64) (r, g, bb float64) {
	return XYZToSRGBQuick(LABToXYZ(l, a, b))
}

// LABToSRGBVeryQuick is [LABToSRGB] using the very fast pow
// approximation for the gamma correction.
func LABToSRGBVeryQuick(l, a, b float64) (r, g, bb float64) {
	return XYZToSRGBVeryQuick(LABToXYZ(l, a, b))
}
