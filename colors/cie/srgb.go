// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides conversions between sRGB and the CIE color spaces
// XYZ, LAB, LCH and LUV, and the LAB derived Hunter LAB and DIN99 spaces.
// Color values are float64, with sRGB channels normalized to [0, 1],
// XYZ normalized so that the white point has Y = 1, and L in [0, 100].
//
// The Quick and VeryQuick variants approximate the sRGB transfer function
// applied on the way back to sRGB with [math32.FastPow] and
// [math32.VeryFastPow]; the forward direction is always exact.
package cie

import (
	"math"

	"cogentcore.org/gradients/math32"
)

// SRGBToLinearComp converts an sRGB rgb component to linear space (removes gamma).
// Used in converting from sRGB to XYZ colors.
func SRGBToLinearComp(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts an sRGB rgb linear component
// to non-linear (gamma corrected) sRGB value
// Used in converting from XYZ to sRGB.
func SRGBFromLinearComp(lin float64) float64 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math.Pow(lin, 1/2.4) - 0.055
}

// SRGBFromLinearCompQuick is [SRGBFromLinearComp] with the power
// computed by [math32.FastPow]. Relative error of the power is
// below 0.02%.
func SRGBFromLinearCompQuick(lin float64) float64 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*float64(math32.FastPow(float32(lin), 1/2.4)) - 0.055
}

// SRGBFromLinearCompVeryQuick is [SRGBFromLinearComp] with the power
// computed by [math32.VeryFastPow]. Errors reach a few percent.
func SRGBFromLinearCompVeryQuick(lin float64) float64 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math32.VeryFastPow(lin, 1/2.4) - 0.055
}

// SRGBToLinear converts set of sRGB components to linear values,
// removing gamma correction.
func SRGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts set of sRGB components from linear values,
// adding gamma correction.
func SRGBFromLinear(rl, gl, bl float64) (r, g, b float64) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBFromLinearQuick is [SRGBFromLinear] using [SRGBFromLinearCompQuick].
func SRGBFromLinearQuick(rl, gl, bl float64) (r, g, b float64) {
	r = SRGBFromLinearCompQuick(rl)
	g = SRGBFromLinearCompQuick(gl)
	b = SRGBFromLinearCompQuick(bl)
	return
}

// SRGBFromLinearVeryQuick is [SRGBFromLinear] using [SRGBFromLinearCompVeryQuick].
func SRGBFromLinearVeryQuick(rl, gl, bl float64) (r, g, b float64) {
	r = SRGBFromLinearCompVeryQuick(rl)
	g = SRGBFromLinearCompVeryQuick(gl)
	b = SRGBFromLinearCompVeryQuick(bl)
	return
}
