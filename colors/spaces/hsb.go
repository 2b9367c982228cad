// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spaces

import "math"

// hueOf returns the hue in turns [0, 1) of an sRGB color given its
// max channel and chroma, shared by HSB and HCG.
func hueOf(r, g, b, mx, chroma float64) float64 {
	if chroma <= 0 {
		return 0
	}
	var h float64
	switch mx {
	case r:
		h = (g - b) / chroma
		if h < 0 {
			h += 6
		}
	case g:
		h = (b-r)/chroma + 2
	default:
		h = (r-g)/chroma + 4
	}
	h /= 6
	return h - math.Floor(h)
}

// rgbToHSB returns hue in turns, saturation and brightness in [0, 1].
func rgbToHSB(c Triplet) Triplet {
	r, g, b := c[0], c[1], c[2]
	mx := max(r, g, b)
	chroma := mx - min(r, g, b)
	s := 0.0
	if mx > 0 {
		s = chroma / mx
	}
	return Triplet{hueOf(r, g, b, mx, chroma), s, mx}
}

func hsbToRGB(c Triplet) Triplet {
	h, s, v := c[0], c[1], c[2]
	h = (h - math.Floor(h)) * 6
	if h >= 6 {
		h = 0
	}
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		return Triplet{v, t, p}
	case 1:
		return Triplet{q, v, p}
	case 2:
		return Triplet{p, v, t}
	case 3:
		return Triplet{p, q, v}
	case 4:
		return Triplet{t, p, v}
	default:
		return Triplet{v, p, q}
	}
}
