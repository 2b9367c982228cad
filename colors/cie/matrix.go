// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// Matrix3 is a row-major 3x3 matrix applied to color triplets.
type Matrix3 [3][3]float64

// Mul returns the matrix times the column vector (a, b, c).
func (m *Matrix3) Mul(a, b, c float64) (x, y, z float64) {
	x = m[0][0]*a + m[0][1]*b + m[0][2]*c
	y = m[1][0]*a + m[1][1]*b + m[1][2]*c
	z = m[2][0]*a + m[2][1]*b + m[2][2]*c
	return
}

// Inverse returns the inverse of the matrix by the adjugate method.
// The conversion matrices it is used for are well conditioned, and
// a singular matrix is a programming error, so it panics.
func (m *Matrix3) Inverse() Matrix3 {
	c00 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	c01 := m[1][2]*m[2][0] - m[1][0]*m[2][2]
	c02 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	det := m[0][0]*c00 + m[0][1]*c01 + m[0][2]*c02
	if det == 0 {
		panic("cie.Matrix3.Inverse: singular matrix")
	}
	id := 1 / det
	return Matrix3{
		{c00 * id, (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * id, (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * id},
		{c01 * id, (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * id, (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * id},
		{c02 * id, (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * id, (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * id},
	}
}
