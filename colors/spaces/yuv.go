// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spaces

import "cogentcore.org/gradients/colors/cie"

// BT.601 luma and chrominance weights
var (
	rgbToYUVMatrix = cie.Matrix3{
		{0.299, 0.587, 0.114},
		{-0.14713, -0.28886, 0.436},
		{0.615, -0.51499, -0.10001},
	}
	yuvToRGBMatrix = rgbToYUVMatrix.Inverse()
)

func rgbToYUV(c Triplet) Triplet {
	y, u, v := rgbToYUVMatrix.Mul(c[0], c[1], c[2])
	return Triplet{y, u, v}
}

func yuvToRGB(c Triplet) Triplet {
	r, g, b := yuvToRGBMatrix.Mul(c[0], c[1], c[2])
	return Triplet{r, g, b}
}
