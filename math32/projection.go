// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Matrix3x4ScaleAlongAxis returns a scale by factor k along the given
// axis, leaving directions perpendicular to it unchanged: I + (k-1)aaᵀ,
// with a the normalized axis. A zero axis gives an error wrapping
// [ErrInvalidArgument].
func Matrix3x4ScaleAlongAxis(axis Vector3, k float32) (Matrix3x4, error) {
	l := axis.Length()
	if l < Epsilon {
		return Identity3x4(), fmt.Errorf("math32.Matrix3x4ScaleAlongAxis: zero axis: %w", ErrInvalidArgument)
	}
	a := axis.DivScalar(l)
	m := Identity3x4()
	m.addOuter(a, a, k-1)
	return m, nil
}

// Matrix3x4Reflect returns the reflection through the given plane,
// whose normal must be normalized.
func Matrix3x4Reflect(p Plane) (Matrix3x4, error) {
	if err := p.check("Matrix3x4Reflect"); err != nil {
		return Identity3x4(), err
	}
	m := Identity3x4()
	m.addOuter(p.Norm, p.Norm, -2)
	m.SetTranslatePart(p.Norm.MulScalar(-2 * p.Off))
	return m, nil
}

// MakeOrthographicProjection returns an affine orthographic projection
// for a view volume centered on the -Z axis, with the given near and far
// clip distances and horizontal and vertical view sizes. It maps the
// volume to the [-1, 1] cube, with the near plane at z = -1, as OpenGL does.
// Degenerate sizes give an error wrapping [ErrInvalidArgument].
func MakeOrthographicProjection(near, far, h, v float32) (Matrix3x4, error) {
	if Abs(far-near) < Epsilon || Abs(h) < Epsilon || Abs(v) < Epsilon {
		return Identity3x4(), fmt.Errorf("math32.MakeOrthographicProjection: degenerate view volume near=%g far=%g h=%g v=%g: %w", near, far, h, v, ErrInvalidArgument)
	}
	d := far - near
	return NewMatrix3x4(
		2/h, 0, 0, 0,
		0, 2/v, 0, 0,
		0, 0, -2/d, -(far+near)/d), nil
}

// MakeOrthographicProjectionPlane returns the orthographic projection
// onto the given plane, whose normal must be normalized: I - nnᵀ with
// translation -Off * n.
func MakeOrthographicProjectionPlane(p Plane) (Matrix3x4, error) {
	if err := p.check("MakeOrthographicProjectionPlane"); err != nil {
		return Identity3x4(), err
	}
	m := Identity3x4()
	m.addOuter(p.Norm, p.Norm, -1)
	m.SetTranslatePart(p.Norm.MulScalar(-p.Off))
	return m, nil
}

// MakeOrthographicProjectionYZ returns the projection onto the YZ plane,
// which zeroes x.
func MakeOrthographicProjectionYZ() Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3Diagonal(0, 1, 1))
}

// MakeOrthographicProjectionXZ returns the projection onto the XZ plane,
// which zeroes y.
func MakeOrthographicProjectionXZ() Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3Diagonal(1, 0, 1))
}

// MakeOrthographicProjectionXY returns the projection onto the XY plane,
// which zeroes z.
func MakeOrthographicProjectionXY() Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3Diagonal(1, 1, 0))
}

// addOuter adds s * a bᵀ to the linear block.
func (m *Matrix3x4) addOuter(a, b Vector3, s float32) {
	for i := 0; i < 3; i++ {
		ai := a.Dim(i) * s
		m[i][0] += ai * b.X
		m[i][1] += ai * b.Y
		m[i][2] += ai * b.Z
	}
}
