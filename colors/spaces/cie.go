// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spaces

import "cogentcore.org/gradients/colors/cie"

func rgbToXYZ(c Triplet) Triplet {
	x, y, z := cie.SRGBToXYZ(c[0], c[1], c[2])
	return Triplet{x, y, z}
}

func xyzToRGB(c Triplet) Triplet {
	r, g, b := cie.XYZToSRGB(c[0], c[1], c[2])
	return Triplet{r, g, b}
}

func rgbToLAB(c Triplet) Triplet {
	l, a, b := cie.SRGBToLAB(c[0], c[1], c[2])
	return Triplet{l, a, b}
}

func labToRGB(c Triplet) Triplet {
	r, g, b := cie.LABToSRGB(c[0], c[1], c[2])
	return Triplet{r, g, b}
}

func labToRGBQuick(c Triplet) Triplet {
	r, g, b := cie.LABToSRGBQuick(c[0], c[1], c[2])
	return Triplet{r, g, b}
}

func labToRGBVeryQuick(c Triplet) Triplet {
	r, g, b := cie.LABToSRGBVeryQuick(c[0], c[1], c[2])
	return Triplet{r, g, b}
}

func rgbToLCH(c Triplet) Triplet {
	l, ch, h := cie.SRGBToLCH(c[0], c[1], c[2])
	return Triplet{l, ch, h}
}

func lchToRGB(c Triplet) Triplet {
	r, g, b := cie.LCHToSRGB(c[0], c[1], c[2])
	return Triplet{r, g, b}
}

func rgbToLUV(c Triplet) Triplet {
	l, u, v := cie.SRGBToLUV(c[0], c[1], c[2])
	return Triplet{l, u, v}
}

func luvToRGB(c Triplet) Triplet {
	r, g, b := cie.LUVToSRGB(c[0], c[1], c[2])
	return Triplet{r, g, b}
}

func luvToRGBQuick(c Triplet) Triplet {
	r, g, b := cie.LUVToSRGBQuick(c[0], c[1], c[2])
	return Triplet{r, g, b}
}

func rgbToHunterLAB(c Triplet) Triplet {
	l, a, b := cie.SRGBToHunterLAB(c[0], c[1], c[2])
	return Triplet{l, a, b}
}

func hunterLABToRGB(c Triplet) Triplet {
	r, g, b := cie.HunterLABToSRGB(c[0], c[1], c[2])
	return Triplet{r, g, b}
}

func rgbToDIN99(c Triplet) Triplet {
	l, a, b := cie.SRGBToDIN99(c[0], c[1], c[2])
	return Triplet{l, a, b}
}

func din99ToRGB(c Triplet) Triplet {
	r, g, b := cie.DIN99ToSRGB(c[0], c[1], c[2])
	return Triplet{r, g, b}
}
