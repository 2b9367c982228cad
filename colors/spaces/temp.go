// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spaces

import "math"

// Temp coordinates are (kelvin, 0, 0). Only the color of a black body
// radiator can be represented, so converting any other color to Temp
// finds the temperature with the closest blue to red ratio. Around
// 6600 K both red and blue are saturated and the ratio is flat, so
// conversions there recover the color but not the exact temperature.

const (
	// MinKelvin is the lowest color temperature of the Temp space.
	MinKelvin = 1000

	// MaxKelvin is the highest color temperature of the Temp space.
	MaxKelvin = 40000

	// kelvinTolerance is the bracket width at which the search stops.
	kelvinTolerance = 0.4
)

// tempToRGB uses the curve fit of Tanner Helland to black body colors,
// with the refined coefficients of Neil Bartlett.
func tempToRGB(c Triplet) Triplet {
	t := min(max(c[0], MinKelvin), MaxKelvin) / 100
	var r, g, b float64
	if t < 66 {
		r = 255
		if t >= 6 {
			g = -155.25485562709179 - 0.44596950469579133*(t-2) + 104.49216199393888*math.Log(t-2)
		}
		if t >= 20 {
			b = -254.76935184120902 + 0.8274096064007395*(t-10) + 115.67994401066147*math.Log(t-10)
		}
	} else {
		r = 351.97690566805693 + 0.114206453784165*(t-55) - 40.25366309332127*math.Log(t-55)
		g = 325.4494125711974 + 0.07943456536662342*(t-50) - 28.0852963507957*math.Log(t-50)
		b = 255
	}
	return Triplet{clamp01(r / 255), clamp01(g / 255), clamp01(b / 255)}
}

// rgbToTemp bisects for the temperature whose blue to red ratio
// matches that of c. The ratio grows with the temperature.
func rgbToTemp(c Triplet) Triplet {
	target := blueRed(c)
	lo, hi := float64(MinKelvin), float64(MaxKelvin)
	k := (lo + hi) / 2
	for hi-lo > kelvinTolerance {
		k = (lo + hi) / 2
		if blueRed(tempToRGB(Triplet{k})) >= target {
			hi = k
		} else {
			lo = k
		}
	}
	return Triplet{k, 0, 0}
}

func blueRed(c Triplet) float64 {
	if c[0] <= 0 {
		return math.Inf(1)
	}
	return c[2] / c[0]
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}
