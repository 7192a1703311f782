// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Matrix3 is a 3x3 linear map stored row-major: m[row][col].
// It is the linear block of a [Matrix3x4].
type Matrix3 [3][3]float32

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Matrix3Diagonal returns a diagonal matrix with x, y and z on the diagonal.
func Matrix3Diagonal(x, y, z float32) Matrix3 {
	return Matrix3{
		{x, 0, 0},
		{0, y, 0},
		{0, 0, z},
	}
}

// Matrix3RotateX returns a rotation by angle radians about the X axis.
func Matrix3RotateX(angle float32) Matrix3 {
	s, c := Sincos(angle)
	return Matrix3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// Matrix3RotateY returns a rotation by angle radians about the Y axis.
func Matrix3RotateY(angle float32) Matrix3 {
	s, c := Sincos(angle)
	return Matrix3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// Matrix3RotateZ returns a rotation by angle radians about the Z axis.
func Matrix3RotateZ(angle float32) Matrix3 {
	s, c := Sincos(angle)
	return Matrix3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

func (m Matrix3) String() string {
	return fmt.Sprintf("(%f, %f, %f) (%f, %f, %f) (%f, %f, %f)",
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2])
}

// Row returns a copy of the given row.
func (m Matrix3) Row(row int) Vector3 {
	return Vector3{m[row][0], m[row][1], m[row][2]}
}

// Col returns a copy of the given column.
func (m Matrix3) Col(col int) Vector3 {
	return Vector3{m[0][col], m[1][col], m[2][col]}
}

// SetCol sets the given column.
func (m *Matrix3) SetCol(col int, v Vector3) {
	m[0][col] = v.X
	m[1][col] = v.Y
	m[2][col] = v.Z
}

// ScaleCol multiplies the given column by s.
func (m *Matrix3) ScaleCol(col int, s float32) {
	m[0][col] *= s
	m[1][col] *= s
	m[2][col] *= s
}

// Mul returns this matrix multiplied by other.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j]
		}
	}
	return r
}

// MulVector3 returns m * v, treating v as a column vector.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// MulMatrix3x4 returns m composed on the left of the 3x4 matrix other,
// treating m as a 3x4 matrix with zero translation.
func (m Matrix3) MulMatrix3x4(other Matrix3x4) Matrix3x4 {
	return Matrix3x4FromMatrix3(m).Mul(other)
}

// Transpose returns the transpose of this matrix.
func (m Matrix3) Transpose() Matrix3 {
	m[0][1], m[1][0] = m[1][0], m[0][1]
	m[0][2], m[2][0] = m[2][0], m[0][2]
	m[1][2], m[2][1] = m[2][1], m[1][2]
	return m
}

// Determinant returns the determinant, by cofactor expansion.
func (m Matrix3) Determinant() float32 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Adjugate returns the transpose of the cofactor matrix, so that
// m * m.Adjugate() = m.Determinant() * I.
func (m Matrix3) Adjugate() Matrix3 {
	return Matrix3{
		{m[1][1]*m[2][2] - m[1][2]*m[2][1], m[0][2]*m[2][1] - m[0][1]*m[2][2], m[0][1]*m[1][2] - m[0][2]*m[1][1]},
		{m[1][2]*m[2][0] - m[1][0]*m[2][2], m[0][0]*m[2][2] - m[0][2]*m[2][0], m[0][2]*m[1][0] - m[0][0]*m[1][2]},
		{m[1][0]*m[2][1] - m[1][1]*m[2][0], m[0][1]*m[2][0] - m[0][0]*m[2][1], m[0][0]*m[1][1] - m[0][1]*m[1][0]},
	}
}

// Inverse returns the inverse of this matrix. If |det| < tol it returns
// the identity and an error wrapping [ErrSingular].
func (m Matrix3) Inverse(tol float32) (Matrix3, error) {
	det := m.Determinant()
	if Abs(det) < tol {
		return Identity3(), fmt.Errorf("math32.Matrix3.Inverse: determinant %g: %w", det, ErrSingular)
	}
	r := m.Adjugate()
	id := 1 / det
	for i := range r {
		for j := range r[i] {
			r[i][j] *= id
		}
	}
	return r, nil
}

// IsEqualTol reports whether all elements are within tol of other.
func (m Matrix3) IsEqualTol(other Matrix3, tol float32) bool {
	for i := range m {
		for j := range m[i] {
			if !EqualAbs(m[i][j], other[i][j], tol) {
				return false
			}
		}
	}
	return true
}

// IsRotation reports whether m is orthonormal with determinant +1 within tol.
func (m Matrix3) IsRotation(tol float32) bool {
	mt := m.Transpose()
	p := m.Mul(mt)
	id := Identity3()
	return p.IsEqualTol(id, tol) && EqualAbs(m.Determinant(), 1, tol)
}
