// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Matrix3x4FromTRS returns Translate(translate) * Rotate(rotate) *
// Scale(scale): scale is applied first, then rotation, then
// translation. rotate must be normalized.
func Matrix3x4FromTRS(translate Vector3, rotate Quat, scale Vector3) Matrix3x4 {
	return Matrix3x4Translate(translate).MulMatrix3x4(Matrix3x4FromQuat(rotate)).MulScale(Matrix3x4Scale(scale))
}

// Matrix3x4FromTRSMatrix3 is [Matrix3x4FromTRS] with the rotation
// given as a 3x3 matrix.
func Matrix3x4FromTRSMatrix3(translate Vector3, rotate Matrix3, scale Vector3) Matrix3x4 {
	return Matrix3x4Translate(translate).MulMatrix3x4(Matrix3x4FromMatrix3(rotate)).MulScale(Matrix3x4Scale(scale))
}

// Matrix3x4FromTRSMatrix3x4 is [Matrix3x4FromTRS] with the rotation
// given as a 3x4 matrix, whose own translation is kept and offset by translate.
func Matrix3x4FromTRSMatrix3x4(translate Vector3, rotate Matrix3x4, scale Vector3) Matrix3x4 {
	return Matrix3x4Translate(translate).MulMatrix3x4(rotate).MulScale(Matrix3x4Scale(scale))
}

// ExtractScale returns the lengths of the three columns of the linear
// block. It is always computable, with or without shear, and is
// never negative.
func (m Matrix3x4) ExtractScale() Vector3 {
	return Vector3{m.Col(0).Length(), m.Col(1).Length(), m.Col(2).Length()}
}

// DecomposeMatrix3 splits m into translation, rotation and scale so
// that m = FromTRSMatrix3(translate, rotate, scale). The linear block
// must be a rotation times a scale, with no shear, otherwise an error
// wrapping [ErrInvalidArgument] is returned. A (near) zero scale factor
// gives an error wrapping [ErrSingular].
//
// If m contains a reflection (negative determinant), the X scale is
// negated so that rotate is a proper rotation; the signs of the
// recovered scale can therefore differ from the ones m was built with.
func (m Matrix3x4) DecomposeMatrix3() (translate Vector3, rotate Matrix3, scale Vector3, err error) {
	scale = m.ExtractScale()
	if scale.X < Epsilon || scale.Y < Epsilon || scale.Z < Epsilon {
		err = fmt.Errorf("math32.Matrix3x4.Decompose: scale %v: %w", scale, ErrSingular)
		return
	}
	if !m.HasOrthogonalColumns(DefaultTolerance) {
		err = fmt.Errorf("math32.Matrix3x4.Decompose: linear block has shear: %w", ErrInvalidArgument)
		return
	}
	if m.Determinant() < 0 {
		scale.X = -scale.X
	}
	translate = m.TranslatePart()
	rotate = m.Matrix3()
	rotate.ScaleCol(0, 1/scale.X)
	rotate.ScaleCol(1, 1/scale.Y)
	rotate.ScaleCol(2, 1/scale.Z)
	return
}

// Decompose is [Matrix3x4.DecomposeMatrix3] with the rotation
// returned as a normalized quaternion.
func (m Matrix3x4) Decompose() (translate Vector3, rotate Quat, scale Vector3, err error) {
	var r Matrix3
	translate, r, scale, err = m.DecomposeMatrix3()
	if err != nil {
		return
	}
	rotate = NewQuatFromMatrix3(&r)
	rotate.Normalize()
	return
}

// DecomposeMatrix3x4 is [Matrix3x4.DecomposeMatrix3] with the rotation
// returned as a 3x4 matrix with zero translation.
func (m Matrix3x4) DecomposeMatrix3x4() (translate Vector3, rotate Matrix3x4, scale Vector3, err error) {
	var r Matrix3
	translate, r, scale, err = m.DecomposeMatrix3()
	if err != nil {
		return
	}
	rotate = Matrix3x4FromMatrix3(r)
	return
}
