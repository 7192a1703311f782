// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Matrix3x4 is a 3 row, 4 column affine transform matrix.
// Columns 0-2 hold the linear block (rotation, scale and shear) and
// column 3 holds the translation. Storage is row-major: m[row][col],
// 12 contiguous float32 values.
//
// The matrix behaves as if it had a virtual fourth row (0, 0, 0, 1),
// but that row is never stored, so Determinant, Trace and the
// inverses only operate on the 3x3 linear block.
//
// Indexing out of range panics, as all Go array indexing does.
// Matrix3x4 is a plain value: copies are independent and it is safe
// to share for reading, but not to mutate concurrently.
type Matrix3x4 [3][4]float32

// NewMatrix3x4 returns a new matrix from 12 values given in row-major order.
func NewMatrix3x4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23 float32) Matrix3x4 {
	return Matrix3x4{
		{m00, m01, m02, m03},
		{m10, m11, m12, m13},
		{m20, m21, m22, m23},
	}
}

// Identity3x4 returns a new identity [Matrix3x4] matrix.
func Identity3x4() Matrix3x4 {
	return Matrix3x4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
}

// Matrix3x4FromMatrix3 returns a matrix with the given linear block
// and zero translation.
func Matrix3x4FromMatrix3(m Matrix3) Matrix3x4 {
	r := Matrix3x4{}
	r.SetMatrix3Part(m)
	return r
}

// Matrix3x4FromCols returns a matrix from its four columns.
// The fourth column is the translation.
func Matrix3x4FromCols(c0, c1, c2, c3 Vector3) Matrix3x4 {
	r := Matrix3x4{}
	r.SetCol(0, c0)
	r.SetCol(1, c1)
	r.SetCol(2, c2)
	r.SetCol(3, c3)
	return r
}

// Matrix3x4FromQuat returns the rotation matrix of the given
// quaternion, with zero translation. q must be normalized;
// see [Matrix3x4.SetRotatePartQuat] for a checked version.
func Matrix3x4FromQuat(q Quat) Matrix3x4 {
	r := Matrix3x4{}
	r.SetRotatePartQuatUnchecked(q)
	return r
}

// Matrix3x4FromSlice returns a matrix from 12 row-major values
// in the given slice, starting at offset.
func Matrix3x4FromSlice(array []float32, offset int) Matrix3x4 {
	r := Matrix3x4{}
	r.FromSlice(array, offset)
	return r
}

// Matrix3x4RotateX returns a rotation by angle radians about the X axis.
func Matrix3x4RotateX(angle float32) Matrix3x4 {
	r := Matrix3x4{}
	r.SetRotatePartX(angle)
	return r
}

// Matrix3x4RotateY returns a rotation by angle radians about the Y axis.
func Matrix3x4RotateY(angle float32) Matrix3x4 {
	r := Matrix3x4{}
	r.SetRotatePartY(angle)
	return r
}

// Matrix3x4RotateZ returns a rotation by angle radians about the Z axis.
func Matrix3x4RotateZ(angle float32) Matrix3x4 {
	r := Matrix3x4{}
	r.SetRotatePartZ(angle)
	return r
}

// Matrix3x4RotateAxisAngle returns a rotation by angle radians about
// the given axis, which is normalized first.
func Matrix3x4RotateAxisAngle(axis Vector3, angle float32) Matrix3x4 {
	return Matrix3x4FromQuat(NewQuatAxisAngle(axis.Normal(), angle))
}

// Matrix3x4RotateFromTo returns the shortest rotation that maps the
// source direction onto the target direction. Both are normalized first.
func Matrix3x4RotateFromTo(source, target Vector3) Matrix3x4 {
	return Matrix3x4FromQuat(NewQuatFromUnitVectors(source.Normal(), target.Normal()))
}

// Matrix3x4ShearX returns a shear matrix where x is offset by
// yFactor*y + zFactor*z.
func Matrix3x4ShearX(yFactor, zFactor float32) Matrix3x4 {
	return Matrix3x4{
		{1, yFactor, zFactor, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
}

// Matrix3x4ShearY returns a shear matrix where y is offset by
// xFactor*x + zFactor*z.
func Matrix3x4ShearY(xFactor, zFactor float32) Matrix3x4 {
	return Matrix3x4{
		{1, 0, 0, 0},
		{xFactor, 1, zFactor, 0},
		{0, 0, 1, 0},
	}
}

// Matrix3x4ShearZ returns a shear matrix where z is offset by
// xFactor*x + yFactor*y.
func Matrix3x4ShearZ(xFactor, yFactor float32) Matrix3x4 {
	return Matrix3x4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{xFactor, yFactor, 1, 0},
	}
}

// String returns the matrix one parenthesized group per row. It is
// meant for debugging and logging, not as a stable persisted format.
func (m Matrix3x4) String() string {
	return fmt.Sprintf("(%f, %f, %f, %f) (%f, %f, %f, %f) (%f, %f, %f, %f)",
		m[0][0], m[0][1], m[0][2], m[0][3],
		m[1][0], m[1][1], m[1][2], m[1][3],
		m[2][0], m[2][1], m[2][2], m[2][3])
}

////////	Access

// At returns the element at the given row and column.
func (m Matrix3x4) At(row, col int) float32 {
	return m[row][col]
}

// SetAt sets the element at the given row and column.
func (m *Matrix3x4) SetAt(row, col int, v float32) {
	m[row][col] = v
}

// Row returns a copy of the given row, all four columns.
func (m Matrix3x4) Row(row int) Vector4 {
	return Vector4{m[row][0], m[row][1], m[row][2], m[row][3]}
}

// Row3 returns a copy of the first three columns of the given row.
func (m Matrix3x4) Row3(row int) Vector3 {
	return Vector3{m[row][0], m[row][1], m[row][2]}
}

// Col returns a copy of the given column.
func (m Matrix3x4) Col(col int) Vector3 {
	return Vector3{m[0][col], m[1][col], m[2][col]}
}

// Diagonal returns the main diagonal of the linear block.
func (m Matrix3x4) Diagonal() Vector3 {
	return Vector3{m[0][0], m[1][1], m[2][2]}
}

// Matrix3 returns a copy of the 3x3 linear block.
func (m Matrix3x4) Matrix3() Matrix3 {
	return Matrix3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// RotatePart returns the linear block. It is only a pure rotation
// if the matrix has no scale or shear.
func (m Matrix3x4) RotatePart() Matrix3 {
	return m.Matrix3()
}

// TranslatePart returns the translation column.
func (m Matrix3x4) TranslatePart() Vector3 {
	return m.Col(3)
}

// WorldX returns the local X axis in world space (column 0).
func (m Matrix3x4) WorldX() Vector3 {
	return m.Col(0)
}

// WorldY returns the local Y axis in world space (column 1).
func (m Matrix3x4) WorldY() Vector3 {
	return m.Col(1)
}

// WorldZ returns the local Z axis in world space (column 2).
func (m Matrix3x4) WorldZ() Vector3 {
	return m.Col(2)
}

// Array returns the 12 elements in row-major order.
func (m Matrix3x4) Array() [12]float32 {
	var a [12]float32
	m.ToSlice(a[:], 0)
	return a
}

// ToSlice copies the 12 elements in row-major order to the
// given slice, starting at offset.
func (m Matrix3x4) ToSlice(array []float32, offset int) {
	for i := 0; i < 3; i++ {
		copy(array[offset+i*4:offset+i*4+4], m[i][:])
	}
}

// FromSlice sets the 12 elements from the given slice in row-major
// order, starting at offset.
func (m *Matrix3x4) FromSlice(array []float32, offset int) {
	for i := 0; i < 3; i++ {
		copy(m[i][:], array[offset+i*4:offset+i*4+4])
	}
}

////////	Setters

// Set sets all 12 elements, given in row-major order.
func (m *Matrix3x4) Set(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23 float32) {
	*m = NewMatrix3x4(m00, m01, m02, m03, m10, m11, m12, m13, m20, m21, m22, m23)
}

// SetIdentity sets this matrix to the identity.
func (m *Matrix3x4) SetIdentity() {
	*m = Identity3x4()
}

// SetRow sets all four columns of the given row.
func (m *Matrix3x4) SetRow(row int, v Vector4) {
	m[row] = [4]float32{v.X, v.Y, v.Z, v.W}
}

// SetRowSlice sets the given row from four values in data.
func (m *Matrix3x4) SetRowSlice(row int, data []float32) {
	copy(m[row][:], data[:4])
}

// SetCol sets the given column.
func (m *Matrix3x4) SetCol(col int, v Vector3) {
	m[0][col] = v.X
	m[1][col] = v.Y
	m[2][col] = v.Z
}

// SetColSlice sets the given column from three values in data.
func (m *Matrix3x4) SetColSlice(col int, data []float32) {
	m[0][col] = data[0]
	m[1][col] = data[1]
	m[2][col] = data[2]
}

// SetMatrix3Part sets the linear block, leaving the translation unchanged.
func (m *Matrix3x4) SetMatrix3Part(r Matrix3) {
	for i := 0; i < 3; i++ {
		m[i][0], m[i][1], m[i][2] = r[i][0], r[i][1], r[i][2]
	}
}

// SetRotatePart sets the linear block, leaving the translation unchanged.
// It is the same as [Matrix3x4.SetMatrix3Part].
func (m *Matrix3x4) SetRotatePart(r Matrix3) {
	m.SetMatrix3Part(r)
}

// SetRotatePartX sets the linear block to a rotation about the X axis.
func (m *Matrix3x4) SetRotatePartX(angle float32) {
	m.SetMatrix3Part(Matrix3RotateX(angle))
}

// SetRotatePartY sets the linear block to a rotation about the Y axis.
func (m *Matrix3x4) SetRotatePartY(angle float32) {
	m.SetMatrix3Part(Matrix3RotateY(angle))
}

// SetRotatePartZ sets the linear block to a rotation about the Z axis.
func (m *Matrix3x4) SetRotatePartZ(angle float32) {
	m.SetMatrix3Part(Matrix3RotateZ(angle))
}

// SetRotatePartAxisAngle sets the linear block to a rotation of angle
// radians about the given axis, which must be normalized.
func (m *Matrix3x4) SetRotatePartAxisAngle(axis Vector3, angle float32) error {
	if !axis.IsNormalized(DefaultTolerance) {
		return fmt.Errorf("math32.Matrix3x4.SetRotatePartAxisAngle: axis %v is not normalized: %w", axis, ErrInvalidArgument)
	}
	m.SetRotatePartQuatUnchecked(NewQuatAxisAngle(axis, angle))
	return nil
}

// SetRotatePartQuat sets the linear block to the rotation of q,
// leaving the translation unchanged. It returns an error wrapping
// [ErrInvalidArgument], and leaves m unchanged, if q is not normalized.
func (m *Matrix3x4) SetRotatePartQuat(q Quat) error {
	if !q.IsNormalized(DefaultTolerance) {
		return fmt.Errorf("math32.Matrix3x4.SetRotatePartQuat: quaternion %v is not normalized: %w", q, ErrInvalidArgument)
	}
	m.SetRotatePartQuatUnchecked(q)
	return nil
}

// SetRotatePartQuatUnchecked is [Matrix3x4.SetRotatePartQuat] without the
// normalization check. A non-normalized q gives a scaled, non-orthogonal block.
func (m *Matrix3x4) SetRotatePartQuatUnchecked(q Quat) {
	m.SetMatrix3Part(q.ToMatrix3())
}

// SetTranslatePart sets the translation column.
func (m *Matrix3x4) SetTranslatePart(t Vector3) {
	m.SetCol(3, t)
}

// SwapColumns swaps two columns.
func (m *Matrix3x4) SwapColumns(col1, col2 int) {
	for i := 0; i < 3; i++ {
		m[i][col1], m[i][col2] = m[i][col2], m[i][col1]
	}
}

// SwapRows swaps two rows.
func (m *Matrix3x4) SwapRows(row1, row2 int) {
	m[row1], m[row2] = m[row2], m[row1]
}

// ScaleRow multiplies all four columns of the given row by s.
func (m *Matrix3x4) ScaleRow(row int, s float32) {
	for j := 0; j < 4; j++ {
		m[row][j] *= s
	}
}

// ScaleRow3 multiplies the first three columns of the given row by s.
func (m *Matrix3x4) ScaleRow3(row int, s float32) {
	for j := 0; j < 3; j++ {
		m[row][j] *= s
	}
}

// ScaleCol multiplies the given column by s.
func (m *Matrix3x4) ScaleCol(col int, s float32) {
	m[0][col] *= s
	m[1][col] *= s
	m[2][col] *= s
}

////////	Multiplication

// Mul returns the affine composition m * other: other is applied
// first, then m. The translation is m.linear * other.translation +
// m.translation.
func (m Matrix3x4) Mul(other Matrix3x4) Matrix3x4 {
	var r Matrix3x4
	for i := 0; i < 3; i++ {
		a0, a1, a2 := m[i][0], m[i][1], m[i][2]
		r[i][0] = a0*other[0][0] + a1*other[1][0] + a2*other[2][0]
		r[i][1] = a0*other[0][1] + a1*other[1][1] + a2*other[2][1]
		r[i][2] = a0*other[0][2] + a1*other[1][2] + a2*other[2][2]
		r[i][3] = a0*other[0][3] + a1*other[1][3] + a2*other[2][3] + m[i][3]
	}
	return r
}

// SetMul sets this matrix to m * other.
func (m *Matrix3x4) SetMul(other Matrix3x4) {
	*m = m.Mul(other)
}

// MulMatrices sets this matrix to a * b.
func (m *Matrix3x4) MulMatrices(a, b Matrix3x4) {
	*m = a.Mul(b)
}

// MulMatrix3 returns m * other, treating other as having zero
// translation. The translation of m passes through unchanged.
func (m Matrix3x4) MulMatrix3(other Matrix3) Matrix3x4 {
	var r Matrix3x4
	for i := 0; i < 3; i++ {
		a0, a1, a2 := m[i][0], m[i][1], m[i][2]
		r[i][0] = a0*other[0][0] + a1*other[1][0] + a2*other[2][0]
		r[i][1] = a0*other[0][1] + a1*other[1][1] + a2*other[2][1]
		r[i][2] = a0*other[0][2] + a1*other[1][2] + a2*other[2][2]
		r[i][3] = m[i][3]
	}
	return r
}

// MulQuat returns m times the rotation matrix of q, which must be normalized.
func (m Matrix3x4) MulQuat(q Quat) Matrix3x4 {
	return m.MulMatrix3(q.ToMatrix3())
}

// MulVector4 returns m * v, treating v as a homogeneous column vector.
// The W component passes through unchanged. It is the same as
// [Matrix3x4.Transform].
func (m Matrix3x4) MulVector4(v Vector4) Vector4 {
	return m.Transform(v)
}

////////	Transforms

// TransformPoint applies the full affine transform to point p:
// linear * p + translation.
func (m Matrix3x4) TransformPoint(p Vector3) Vector3 {
	return Vector3{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// TransformDir applies only the linear block to direction d.
// Normals under non-uniform scale need [Matrix3x4.InverseTransposed] instead.
func (m Matrix3x4) TransformDir(d Vector3) Vector3 {
	return Vector3{
		m[0][0]*d.X + m[0][1]*d.Y + m[0][2]*d.Z,
		m[1][0]*d.X + m[1][1]*d.Y + m[1][2]*d.Z,
		m[2][0]*d.X + m[2][1]*d.Y + m[2][2]*d.Z,
	}
}

// Transform applies the three rows of m to v as dot products over all
// four components, copying the input W to the output W.
func (m Matrix3x4) Transform(v Vector4) Vector4 {
	return Vector4{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		v.W,
	}
}

////////	Comparison

// Equals reports whether every element of m is within tol of the
// corresponding element of other. The difference is absolute, so
// tol must be chosen relative to the expected magnitude.
func (m Matrix3x4) Equals(other Matrix3x4, tol float32) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			if !EqualAbs(m[i][j], other[i][j], tol) {
				return false
			}
		}
	}
	return true
}
