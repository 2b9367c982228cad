// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// BoolP is a simple method to generate a true value with given probability
// (else false). It is just rnd.Float64() < p but this is more readable
// and explicit.
func BoolP(p float64, rnd Rand) bool {
	return rnd.Float64() < p
}

// Sign returns +1 or -1 with equal probability.
func Sign(rnd Rand) float32 {
	if BoolP(0.5, rnd) {
		return 1
	}
	return -1
}

// UniformMinMax returns a uniform random value between min and max.
func UniformMinMax(min, max float32, rnd Rand) float32 {
	return min + (max-min)*rnd.Float32()
}
