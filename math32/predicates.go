// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// IsFinite reports whether none of the 12 elements is NaN or Inf.
func (m Matrix3x4) IsFinite() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			if !IsFinite(m[i][j]) {
				return false
			}
		}
	}
	return true
}

// IsIdentity reports whether m is within tol of the identity.
func (m Matrix3x4) IsIdentity(tol float32) bool {
	return m.Equals(Identity3x4(), tol)
}

// IsLowerTriangular reports whether the augmented 4x4 matrix, with its
// virtual last row (0, 0, 0, 1), is lower triangular: every element above
// the diagonal, translation included, is within tol of zero.
func (m Matrix3x4) IsLowerTriangular(tol float32) bool {
	return EqualAbs(m[0][1], 0, tol) && EqualAbs(m[0][2], 0, tol) && EqualAbs(m[0][3], 0, tol) &&
		EqualAbs(m[1][2], 0, tol) && EqualAbs(m[1][3], 0, tol) &&
		EqualAbs(m[2][3], 0, tol)
}

// IsUpperTriangular reports whether the augmented 4x4 matrix is upper
// triangular. The virtual last row is always zero below the diagonal,
// so only the three sub-diagonal elements of the linear block are tested.
func (m Matrix3x4) IsUpperTriangular(tol float32) bool {
	return EqualAbs(m[1][0], 0, tol) &&
		EqualAbs(m[2][0], 0, tol) && EqualAbs(m[2][1], 0, tol)
}

// IsSymmetric reports whether the linear block equals its transpose within tol.
func (m Matrix3x4) IsSymmetric(tol float32) bool {
	return EqualAbs(m[0][1], m[1][0], tol) &&
		EqualAbs(m[0][2], m[2][0], tol) &&
		EqualAbs(m[1][2], m[2][1], tol)
}

// IsSkewSymmetric reports whether the linear block equals the negation
// of its transpose within tol, which implies a zero diagonal.
func (m Matrix3x4) IsSkewSymmetric(tol float32) bool {
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			if !EqualAbs(m[i][j], -m[j][i], tol) {
				return false
			}
		}
	}
	return true
}

// HasUnitaryScale reports whether every column of the linear block has
// unit length within tol.
func (m Matrix3x4) HasUnitaryScale(tol float32) bool {
	s := m.ExtractScale()
	return s.IsEqualTol(Vector3Scalar(1), tol)
}

// HasUniformScale reports whether all columns of the linear block have
// the same length within tol.
func (m Matrix3x4) HasUniformScale(tol float32) bool {
	s := m.ExtractScale()
	return EqualAbs(s.X, s.Y, tol) && EqualAbs(s.X, s.Z, tol)
}

// HasNegativeScale reports whether m contains a reflection, which is
// the case exactly when the determinant is negative.
func (m Matrix3x4) HasNegativeScale() bool {
	return m.Determinant() < 0
}

// IsOrthogonal reports whether the three rows of the linear block are
// pairwise perpendicular within tol. The rows need not be unit length.
func (m Matrix3x4) IsOrthogonal(tol float32) bool {
	r0, r1, r2 := m.Row3(0), m.Row3(1), m.Row3(2)
	return r0.IsPerpendicular(r1, tol) && r0.IsPerpendicular(r2, tol) && r1.IsPerpendicular(r2, tol)
}

// HasOrthogonalColumns reports whether the three columns of the linear
// block are pairwise perpendicular, with tol relative to the column
// lengths. This holds for any rotation times scale, with or without
// reflection, and fails under shear.
func (m Matrix3x4) HasOrthogonalColumns(tol float32) bool {
	c := [3]Vector3{m.Col(0), m.Col(1), m.Col(2)}
	l := [3]float32{c[0].Length(), c[1].Length(), c[2].Length()}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if Abs(c[i].Dot(c[j])) > tol*l[i]*l[j] {
				return false
			}
		}
	}
	return true
}

// IsInvertible reports whether the absolute determinant is at least tol.
// It does not attempt the inversion.
func (m Matrix3x4) IsInvertible(tol float32) bool {
	return Abs(m.Determinant()) >= tol
}
