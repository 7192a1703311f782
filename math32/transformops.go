// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// TranslateOp is a deferred translation operand. Multiplying it with a
// [Matrix3x4] only touches the translation column, without building
// a full translation matrix first.
type TranslateOp struct {
	Offset Vector3
}

// Matrix3x4Translate returns a deferred translation by the given offset.
func Matrix3x4Translate(offset Vector3) TranslateOp {
	return TranslateOp{Offset: offset}
}

// Matrix3x4 returns the translation as a full matrix.
func (t TranslateOp) Matrix3x4() Matrix3x4 {
	m := Identity3x4()
	m.SetTranslatePart(t.Offset)
	return m
}

// MulMatrix3x4 returns Translate(t) * m, which is m with the offset
// added to its translation.
func (t TranslateOp) MulMatrix3x4(m Matrix3x4) Matrix3x4 {
	m[0][3] += t.Offset.X
	m[1][3] += t.Offset.Y
	m[2][3] += t.Offset.Z
	return m
}

// MulTranslate returns m * Translate(t): the linear block of m is
// unchanged and the translation becomes m.TransformPoint(offset).
func (m Matrix3x4) MulTranslate(t TranslateOp) Matrix3x4 {
	m.SetTranslatePart(m.TransformPoint(t.Offset))
	return m
}

// ScaleOp is a deferred, axis-aligned scale operand.
type ScaleOp struct {
	Scale Vector3
}

// Matrix3x4Scale returns a deferred scale by the given per-axis factors.
func Matrix3x4Scale(scale Vector3) ScaleOp {
	return ScaleOp{Scale: scale}
}

// Matrix3x4UniformScale returns a deferred uniform scale by s.
func Matrix3x4UniformScale(s float32) ScaleOp {
	return ScaleOp{Scale: Vector3Scalar(s)}
}

// Matrix3x4 returns the scale as a full matrix.
func (s ScaleOp) Matrix3x4() Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3Diagonal(s.Scale.X, s.Scale.Y, s.Scale.Z))
}

// MulMatrix3x4 returns Scale(s) * m, which scales each row of m,
// translation included.
func (s ScaleOp) MulMatrix3x4(m Matrix3x4) Matrix3x4 {
	m.ScaleRow(0, s.Scale.X)
	m.ScaleRow(1, s.Scale.Y)
	m.ScaleRow(2, s.Scale.Z)
	return m
}

// MulScale returns m * Scale(s), which scales the first three
// columns of m. The translation is unchanged.
func (m Matrix3x4) MulScale(s ScaleOp) Matrix3x4 {
	m.ScaleCol(0, s.Scale.X)
	m.ScaleCol(1, s.Scale.Y)
	m.ScaleCol(2, s.Scale.Z)
	return m
}
