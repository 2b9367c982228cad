// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spaces

import "math"

// rgbToHCG returns hue in turns, chroma and grayness in [0, 1].
// Grayness is the gray level the color is mixed with, and is
// undefined (0) for fully saturated colors.
func rgbToHCG(c Triplet) Triplet {
	r, g, b := c[0], c[1], c[2]
	mx := max(r, g, b)
	mn := min(r, g, b)
	chroma := mx - mn
	gray := 0.0
	if chroma < 1 {
		gray = mn / (1 - chroma)
	}
	return Triplet{hueOf(r, g, b, mx, chroma), chroma, gray}
}

func hcgToRGB(c Triplet) Triplet {
	h, chroma, gray := c[0], c[1], c[2]
	if chroma == 0 {
		return Triplet{gray, gray, gray}
	}
	h = (h - math.Floor(h)) * 6
	if h >= 6 {
		h = 0
	}
	v := h - math.Floor(h)
	var pure Triplet
	switch int(h) {
	case 0:
		pure = Triplet{1, v, 0}
	case 1:
		pure = Triplet{1 - v, 1, 0}
	case 2:
		pure = Triplet{0, 1, v}
	case 3:
		pure = Triplet{0, 1 - v, 1}
	case 4:
		pure = Triplet{v, 0, 1}
	default:
		pure = Triplet{1, 0, 1 - v}
	}
	mg := (1 - chroma) * gray
	return Triplet{chroma*pure[0] + mg, chroma*pure[1] + mg, chroma*pure[2] + mg}
}
