// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spaces

// RYB uses the conversion of Sugita and Takahashi, "Computational RYB
// Color Model and its Applications": the white component is removed,
// yellow is split off from red and green, and the result is rescaled
// so that the strongest channel keeps its value.

func rgbToRYB(c Triplet) Triplet {
	r, g, b := c[0], c[1], c[2]
	w := min(r, g, b)
	r, g, b = r-w, g-w, b-w
	mg := max(r, g, b)

	y := min(r, g)
	r -= y
	g -= y
	if b > 0 && g > 0 {
		b /= 2
		g /= 2
	}
	y += g
	b += g

	if my := max(r, y, b); my > 0 {
		n := mg / my
		r, y, b = r*n, y*n, b*n
	}
	return Triplet{r + w, y + w, b + w}
}

func rybToRGB(c Triplet) Triplet {
	r, y, b := c[0], c[1], c[2]
	w := min(r, y, b)
	r, y, b = r-w, y-w, b-w
	my := max(r, y, b)

	g := min(y, b)
	y -= g
	b -= g
	if b > 0 && g > 0 {
		b *= 2
		g *= 2
	}
	r += y
	g += y

	if mg := max(r, g, b); mg > 0 {
		n := my / mg
		r, g, b = r*n, g*n, b*n
	}
	return Triplet{r + w, g + w, b + w}
}
