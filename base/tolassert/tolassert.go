// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"math"

	"github.com/stretchr/testify/assert"
)

// Float is a type constraint for all floating-point types.
type Float interface {
	~float32 | ~float64
}

// DefaultTol is the tolerance used by [Equal].
const DefaultTol = 1.0e-3

// Equal asserts that the given two numbers are about equal to each other,
// using a default tolerance of 0.001.
func Equal[T Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, DefaultTol, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given tolerance value. On failure it reports through
// [assert.Equal], so the message shows both values in full.
func EqualTol[T Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if math.Abs(float64(actual-expected)) > float64(tolerance) || math.IsNaN(float64(actual)) {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	return true
}

// EqualRel asserts that actual is within the given relative
// tolerance of expected.
func EqualRel[T Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if expected == 0 {
		return EqualTol(t, expected, actual, tolerance, msgAndArgs...)
	}
	if math.Abs(float64(actual-expected)/float64(expected)) > float64(tolerance) || math.IsNaN(float64(actual)) {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	return true
}
