// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package easing provides the functions that warp the fraction between
// two gradient stops, shaping how one color turns into the next.
package easing

//go:generate core generate

import (
	"cogentcore.org/gradients/enums"
	"cogentcore.org/gradients/math32"
)

// Easings are the functions that warp an interpolation fraction t in [0, 1].
// All satisfy f(0) = 0 and f(1) = 1, within the error of the fast math
// approximations, except Sine, Parabola and ExpImpulse.
type Easings int32 //enums:enum

const (
	// Linear leaves t unchanged.
	Linear Easings = iota

	// Identity is t²(2−t), which eases out.
	Identity

	// SmoothStep is the cubic Hermite 3t²−2t³.
	SmoothStep

	// SmootherStep is the quintic t³(t(6t−15)+10).
	SmootherStep

	// Exponential is 1−2^(−10t), reaching 1 at t = 1.
	Exponential

	// Cubic is t³.
	Cubic

	// Bounce is the four segment parabola of the classic bounce ease.
	Bounce

	// Circular is √((2−t)t).
	Circular

	// Sine is sin(t) in radians, so that f(1) = sin(1).
	Sine

	// Parabola is √(4t(1−t)), which returns to 0 at t = 1.
	Parabola

	// Gain1 is the gain curve with exponent 0.3.
	Gain1

	// Gain2 is the gain curve with exponent 3.3333.
	Gain2

	// ExpImpulse is 2t·e^(1−2t), peaking at t = 0.5 with f(1) = 2/e.
	ExpImpulse
)

const (
	gain1 = 0.3
	gain2 = 3.3333
)

// two is the base representation of 2 for [math32.FastPowConstantBase].
var two = math32.BaseRepresentation(2)

// Apply returns t warped by the easing function.
func (e Easings) Apply(t float32) float32 {
	switch e {
	case Identity:
		return t * t * (2 - t)
	case SmoothStep:
		return t * t * (3 - 2*t)
	case SmootherStep:
		return t * t * t * (t*(t*6-15) + 10)
	case Exponential:
		if t == 1 {
			return 1
		}
		return 1 - math32.FastPowConstantBase(two, -10*t)
	case Cubic:
		return t * t * t
	case Bounce:
		return bounce(t)
	case Circular:
		return math32.Sqrt((2 - t) * t)
	case Sine:
		return math32.FastSin(t)
	case Parabola:
		return math32.Sqrt(4 * t * (1 - t))
	case Gain1:
		return gain(t, gain1)
	case Gain2:
		return gain(t, gain2)
	case ExpImpulse:
		return 2 * t * math32.FastExp(1-2*t)
	}
	return t
}

func bounce(t float32) float32 {
	const n = 7.5625
	switch {
	case t < 1/2.75:
		return n * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return n*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return n*t*t + 0.9375
	}
	t -= 2.625 / 2.75
	return n*t*t + 0.984375
}

// gain is Schlick's gain: a power curve of exponent k mirrored around
// the midpoint, steep there for k < 1 and flat for k > 1.
func gain(t, k float32) float32 {
	if t < 0.5 {
		return 0.5 * math32.FastPow(2*t, k)
	}
	return 1 - 0.5*math32.FastPow(2*(1-t), k)
}

// Next returns the next easing, wrapping around after the last.
func (e Easings) Next() Easings {
	return enums.Next(e, EasingsValues())
}

// Prev returns the previous easing, wrapping around before the first.
func (e Easings) Prev() Easings {
	return enums.Prev(e, EasingsValues())
}
