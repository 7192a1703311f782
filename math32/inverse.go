// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Determinant returns the determinant of the 3x3 linear block.
// The translation column does not contribute.
func (m Matrix3x4) Determinant() float32 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	return a*e*i + b*f*g + c*d*h - a*f*h - b*d*i - c*e*g
}

// Trace returns the sum of the diagonal of the linear block.
func (m Matrix3x4) Trace() float32 {
	return m[0][0] + m[1][1] + m[2][2]
}

// Inverse inverts this matrix in place with no assumption about its
// structure, using the adjugate of the linear block. If the absolute
// determinant is below [Epsilon] it returns an error wrapping
// [ErrSingular] and leaves m unchanged.
func (m *Matrix3x4) Inverse() error {
	return m.InverseTol(Epsilon)
}

// InverseTol is [Matrix3x4.Inverse] with the given determinant tolerance.
func (m *Matrix3x4) InverseTol(tol float32) error {
	lin := m.Matrix3()
	inv, err := lin.Inverse(tol)
	if err != nil {
		return fmt.Errorf("math32.Matrix3x4.Inverse: %w", err)
	}
	t := m.TranslatePart()
	m.SetMatrix3Part(inv)
	m.SetTranslatePart(inv.MulVector3(t).Negate())
	return nil
}

// Inverted returns the general inverse of m, leaving m untouched.
// On error it returns m unchanged.
func (m Matrix3x4) Inverted() (Matrix3x4, error) {
	err := m.Inverse()
	return m, err
}

// InverseAffine inverts in place a matrix whose linear block is an
// orthogonal rotation times a non-uniform scale (R * S, no shear),
// which is cheaper than [Matrix3x4.Inverse]. It returns an error wrapping
// [ErrSingular] if a scale factor is (near) zero, or [ErrInvalidArgument]
// if the columns are not orthogonal, leaving m unchanged in both cases.
func (m *Matrix3x4) InverseAffine() error {
	if err := m.checkColumns("InverseAffine"); err != nil {
		return err
	}
	m.InverseAffineUnchecked()
	return nil
}

// InverseAffineUnchecked is [Matrix3x4.InverseAffine] without the
// singular and shear checks, for hot loops that already know the
// structure of m. A zero scale factor produces Inf values.
func (m *Matrix3x4) InverseAffineUnchecked() {
	// (R S)^-1 = S^-2 (R S)^T: after transposing, row i is column i of
	// the original, whose squared length is the squared scale s_i^2.
	m.transposeLinear()
	for i := 0; i < 3; i++ {
		m.ScaleRow3(i, 1/m.Row3(i).LengthSquared())
	}
	m.invertTranslation()
}

// InverseAffineUniformScale inverts in place a matrix whose linear
// block is an orthogonal rotation times a uniform scale. Errors are
// as for [Matrix3x4.InverseAffine]; the scale is not verified to be uniform.
func (m *Matrix3x4) InverseAffineUniformScale() error {
	if err := m.checkColumns("InverseAffineUniformScale"); err != nil {
		return err
	}
	m.InverseAffineUniformScaleUnchecked()
	return nil
}

// InverseAffineUniformScaleUnchecked is [Matrix3x4.InverseAffineUniformScale]
// without checks. The scale factor is taken from the first column.
func (m *Matrix3x4) InverseAffineUniformScaleUnchecked() {
	is := 1 / m.Col(0).LengthSquared()
	m.transposeLinear()
	for i := 0; i < 3; i++ {
		m.ScaleRow3(i, is)
	}
	m.invertTranslation()
}

// InverseAffineNoScale inverts in place a matrix whose linear block is
// a pure orthogonal rotation: the block is transposed and the
// translation recomputed. It cannot fail, but gives a wrong result
// if the block has any scale or shear.
func (m *Matrix3x4) InverseAffineNoScale() {
	m.transposeLinear()
	m.invertTranslation()
}

// Transpose transposes the 3x3 linear block in place.
// The translation column is left unchanged.
func (m *Matrix3x4) Transpose() {
	m.transposeLinear()
}

// Transposed returns a copy of m with the linear block transposed.
func (m Matrix3x4) Transposed() Matrix3x4 {
	m.transposeLinear()
	return m
}

// InverseTranspose sets m to the transpose of its general inverse.
// Only the linear block of the result is meaningful for transforming
// normals; the translation column is that of the inverse.
// On error m is unchanged.
func (m *Matrix3x4) InverseTranspose() error {
	if err := m.Inverse(); err != nil {
		return err
	}
	m.transposeLinear()
	return nil
}

// InverseTransposed returns the inverse transpose of m, for
// transforming normals under non-uniform scale with TransformDir.
func (m Matrix3x4) InverseTransposed() (Matrix3x4, error) {
	err := m.InverseTranspose()
	return m, err
}

// Orthonormalize makes columns c0, c1 and c2 of the linear block an
// orthonormal basis by Gram-Schmidt: c0 keeps its direction, c1 is made
// perpendicular to c0, and c2 to both. The indices must be a
// permutation of 0, 1, 2, otherwise an error wrapping [ErrInvalidArgument]
// is returned and m is unchanged.
func (m *Matrix3x4) Orthonormalize(c0, c1, c2 int) error {
	if c0 == c1 || c0 == c2 || c1 == c2 || !isLinearCol(c0) || !isLinearCol(c1) || !isLinearCol(c2) {
		return fmt.Errorf("math32.Matrix3x4.Orthonormalize: columns %d, %d, %d are not a permutation of 0, 1, 2: %w", c0, c1, c2, ErrInvalidArgument)
	}
	v0, v1, v2 := m.Col(c0), m.Col(c1), m.Col(c2)
	Orthonormalize(&v0, &v1, &v2)
	m.SetCol(c0, v0)
	m.SetCol(c1, v1)
	m.SetCol(c2, v2)
	return nil
}

// RemoveScale normalizes the three columns of the linear block, so that
// [Matrix3x4.ExtractScale] becomes (1, 1, 1). It returns an error wrapping
// [ErrSingular] and leaves m unchanged if any column is (near) zero length.
func (m *Matrix3x4) RemoveScale() error {
	s := m.ExtractScale()
	if s.X < Epsilon || s.Y < Epsilon || s.Z < Epsilon {
		return fmt.Errorf("math32.Matrix3x4.RemoveScale: scale %v: %w", s, ErrSingular)
	}
	m.ScaleCol(0, 1/s.X)
	m.ScaleCol(1, 1/s.Y)
	m.ScaleCol(2, 1/s.Z)
	return nil
}

func isLinearCol(c int) bool {
	return c >= 0 && c < 3
}

func (m *Matrix3x4) transposeLinear() {
	m[0][1], m[1][0] = m[1][0], m[0][1]
	m[0][2], m[2][0] = m[2][0], m[0][2]
	m[1][2], m[2][1] = m[2][1], m[1][2]
}

// invertTranslation sets the translation to -linear * translation,
// assuming the linear block has already been inverted.
func (m *Matrix3x4) invertTranslation() {
	m.SetTranslatePart(m.TransformDir(m.TranslatePart()).Negate())
}

// checkColumns returns an error if m is not R * S with non-zero scale.
func (m *Matrix3x4) checkColumns(op string) error {
	s := m.ExtractScale()
	if s.X < Epsilon || s.Y < Epsilon || s.Z < Epsilon {
		return fmt.Errorf("math32.Matrix3x4.%s: scale %v: %w", op, s, ErrSingular)
	}
	if !m.HasOrthogonalColumns(DefaultTolerance) {
		return fmt.Errorf("math32.Matrix3x4.%s: linear block has shear: %w", op, ErrInvalidArgument)
	}
	return nil
}
