// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "math"

// sinTableSize is the number of samples over one full turn.
const sinTableSize = 1024

// sinTable holds sin at sinTableSize+1 evenly spaced angles over [0, 2π],
// the extra entry closing the turn for interpolation.
var sinTable = func() []float32 {
	tbl := make([]float32, sinTableSize+1)
	for i := range tbl {
		tbl[i] = float32(math.Sin(2 * math.Pi * float64(i) / sinTableSize))
	}
	return tbl
}()

// FastSin returns an approximation of the sine of the radian argument x,
// linearly interpolated from a table of one turn. Absolute error is
// below 1e-5.
func FastSin(x float32) float32 {
	if IsNaN(x) || IsInf(x, 0) {
		return float32(math.NaN())
	}
	turns := float64(x) / (2 * math.Pi)
	turns -= math.Floor(turns)
	f := turns * sinTableSize
	i := int(f)
	if i >= sinTableSize {
		i = sinTableSize - 1
	}
	frac := float32(f - float64(i))
	return sinTable[i] + frac*(sinTable[i+1]-sinTable[i])
}
