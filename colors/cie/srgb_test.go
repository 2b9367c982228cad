// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/gradients/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestSRGB(t *testing.T) {
	tolassert.Equal(t, 0.00015479876, SRGBToLinearComp(0.002))
	tolassert.Equal(t, 0.23302202, SRGBToLinearComp(0.52))

	tolassert.Equal(t, 0.012920001, SRGBFromLinearComp(0.001))
	tolassert.Equal(t, 0.84338915, SRGBFromLinearComp(0.68))

	rl, gl, bl := SRGBToLinear(0.3, 0.2, 0.6)
	tolassert.Equal(t, 0.07323897, rl)
	tolassert.Equal(t, 0.033104762, gl)
	tolassert.Equal(t, 0.31854683, bl)

	r, g, b := SRGBFromLinear(0.12, 0.34, 0.78)
	tolassert.Equal(t, 0.38109186, r)
	tolassert.Equal(t, 0.61803144, g)
	tolassert.Equal(t, 0.8962438, b)
}

func TestSRGBRoundTrip(t *testing.T) {
	for v := 0.0; v <= 1; v += 0.001 {
		tolassert.EqualTol(t, v, SRGBFromLinearComp(SRGBToLinearComp(v)), 1e-12)
	}
	assert.Equal(t, 0.0, SRGBToLinearComp(0))
	tolassert.EqualTol(t, 1, SRGBToLinearComp(1), 1e-12)
}

func TestSRGBQuick(t *testing.T) {
	for lin := 0.0; lin <= 1; lin += 0.0005 {
		exact := SRGBFromLinearComp(lin)
		tolassert.EqualTol(t, exact, SRGBFromLinearCompQuick(lin), 5e-4)
		tolassert.EqualTol(t, exact, SRGBFromLinearCompVeryQuick(lin), 0.035)
	}
	// the linear segment is exact in all variants
	assert.Equal(t, SRGBFromLinearComp(0.002), SRGBFromLinearCompQuick(0.002))
	assert.Equal(t, SRGBFromLinearComp(0.002), SRGBFromLinearCompVeryQuick(0.002))

	r, g, b := SRGBFromLinearQuick(0.12, 0.34, 0.78)
	tolassert.Equal(t, 0.38109186, r)
	tolassert.Equal(t, 0.61803144, g)
	tolassert.Equal(t, 0.8962438, b)
}
