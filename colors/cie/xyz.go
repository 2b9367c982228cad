// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// WhiteD65 is the D65 reference white in XYZ, normalized to Y = 1.
var WhiteD65 = [3]float64{0.95047, 1, 1.08883}

// srgbToXYZ is the linear sRGB to XYZ matrix for the D65 white point.
var srgbToXYZ = Matrix3{
	{0.41239079926595948, 0.35758433938387796, 0.18048078840183429},
	{0.21263900587151036, 0.71516867876775593, 0.072192315360733715},
	{0.019330818715591851, 0.11919477979462599, 0.95053215224966058},
}

// xyzToSRGB is the exact inverse of srgbToXYZ.
var xyzToSRGB = srgbToXYZ.Inverse()

// SRGBLinToXYZ converts sRGB linear into XYZ CIE standard color space
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	return srgbToXYZ.Mul(rl, gl, bl)
}

// XYZToSRGBLin converts XYZ CIE standard color space to sRGB linear
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	return xyzToSRGB.Mul(x, y, z)
}

// SRGBToXYZ converts sRGB into XYZ CIE standard color space
func SRGBToXYZ(r, g, b float64) (x, y, z float64) {
	return SRGBLinToXYZ(SRGBToLinear(r, g, b))
}

// XYZToSRGB converts XYZ CIE standard color space into sRGB
func XYZToSRGB(x, y, z float64) (r, g, b float64) {
	return SRGBFromLinear(XYZToSRGBLin(x, y, z))
}

// XYZToSRGBQuick is [XYZToSRGB] using the fast pow approximation
// for the gamma correction.
func XYZToSRGBQuick(x, y, z float64) (r, g, b float64) {
	return SRGBFromLinearQuick(XYZToSRGBLin(x, y, z))
}

// XYZToSRGBVeryQuick is [XYZToSRGB] using the very fast pow
// approximation for the gamma correction.
func XYZToSRGBVeryQuick(x, y, z float64) (r, g, b float64) {
	return SRGBFromLinearVeryQuick(XYZToSRGBLin(x, y, z))
}
