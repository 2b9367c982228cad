// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastExp(t *testing.T) {
	for x := float32(-80); x <= 80; x += 1.0e-01 {
		fx := FastExp(x)
		sx := float32(math.Exp(float64(x)))
		if !assert.InDelta(t, 0, (fx-sx)/sx, 2.0e-5, "FastExp(%g) = %g, want %g", x, fx, sx) {
			return
		}
	}
	assert.Equal(t, float32(0), FastExp(-90))
}

func TestFastExpNaN(t *testing.T) {
	x := float32(9.398623)
	x2 := -(x * x) // should be 88.33411429612902
	fx := FastExp(x2)
	assert.False(t, math.IsNaN(float64(fx)), "NaN at x=%g", x2)
}

func TestFastExpNaNRange(t *testing.T) {
	for x := float32(-89); x <= -87; x += 1.0e-03 {
		fx := FastExp(x)
		if math.IsNaN(float64(fx)) {
			t.Fatalf("Found NaN at x=%f", x)
		}
	}
}

var result32 float32

func BenchmarkFastExp(b *testing.B) {
	// pre-convert the input, such that we're not measuring the speed of
	// the mod and sub operations.
	input := make([]float32, b.N)
	for i := range input {
		input[i] = float32(i%40 - 20)
	}

	b.ResetTimer()

	var x float32
	for n := 0; n < b.N; n++ {
		x += FastExp(input[n])
	}
	result32 = x
}

func BenchmarkExp32(b *testing.B) {
	var x float32

	input := make([]float32, b.N)
	for i := range input {
		input[i] += float32(i%40 - 20)
	}

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		x = float32(math.Exp(float64(input[n])))
	}
	result32 = x
}
