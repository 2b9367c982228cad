// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "math"

// FastExp is a quartic spline approximation to the Exp function, by N.N. Schraudolph.
// It does not have any of the sanity checking of a standard method -- just the raw math.
// Relative error is below 1e-5 over the float32 range. Values at or below
// -88.02969 return 0, beyond which the bit manipulation produces NaN.
func FastExp(x float32) float32 {
	if x <= -88.02969 {
		return 0
	}
	i := int32(12102203*x) + int32(127)*(int32(1)<<23)
	m := i >> 7 & 0xFFFF // copy mantissa
	i += (((((((((((3537 * m) >> 16) + 13668) * m) >> 18) + 15817) * m) >> 14) - 80470) * m) >> 11)
	return math.Float32frombits(uint32(i))
}
