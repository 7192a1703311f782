// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// EulerOrder is the order of the three axes in an Euler angle
// rotation. For order ABC the rotation is RotateA(a) * RotateB(b) *
// RotateC(c), so the last axis is applied first to a vector.
// The first six orders repeat an axis (proper Euler angles), the
// last six use three distinct axes (Tait-Bryan angles).
type EulerOrder int32

const (
	EulerXYX EulerOrder = iota
	EulerXZX
	EulerYXY
	EulerYZY
	EulerZXZ
	EulerZYZ
	EulerXYZ
	EulerXZY
	EulerYXZ
	EulerYZX
	EulerZXY
	EulerZYX

	EulerOrderN
)

var eulerOrderNames = [EulerOrderN]string{"XYX", "XZX", "YXY", "YZY", "ZXZ", "ZYZ", "XYZ", "XZY", "YXZ", "YZX", "ZXY", "ZYX"}

// EulerOrderValues returns all 12 orders.
func EulerOrderValues() []EulerOrder {
	vals := make([]EulerOrder, EulerOrderN)
	for i := range vals {
		vals[i] = EulerOrder(i)
	}
	return vals
}

func (o EulerOrder) String() string {
	if o < 0 || o >= EulerOrderN {
		return fmt.Sprintf("EulerOrder(%d)", int32(o))
	}
	return eulerOrderNames[o]
}

// SetString sets the order from its name, such as "XYZ" or "zyx".
func (o *EulerOrder) SetString(s string) error {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, n := range eulerOrderNames {
		if n == s {
			*o = EulerOrder(i)
			return nil
		}
	}
	return fmt.Errorf("math32.EulerOrder.SetString: unknown order %q: %w", s, ErrInvalidArgument)
}

// IsProper reports whether the order repeats its first axis.
func (o EulerOrder) IsProper() bool {
	return o >= EulerXYX && o <= EulerZYZ
}

// MarshalText implements [encoding.TextMarshaler].
func (o EulerOrder) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *EulerOrder) UnmarshalText(text []byte) error {
	return o.SetString(string(text))
}

// gimbalEpsilon is the magnitude below which the first Euler angle is
// undetermined because the middle angle is at a pole.
const gimbalEpsilon = 1e-6

// eulerFirst returns the first Euler angle from its scaled sine y and
// cosine x. In gimbal lock both are ~0 and the angle is set to 0, so the
// third angle absorbs the remaining rotation.
func eulerFirst(y, x float32) float32 {
	if Hypot(y, x) < gimbalEpsilon {
		return 0
	}
	return Atan2(y, x)
}

// Matrix3FromEuler returns the rotation for the given order, with
// angles.X, angles.Y, angles.Z being the angles about the first,
// second and third axis of the order.
func Matrix3FromEuler(order EulerOrder, angles Vector3) Matrix3 {
	a, b, c := angles.X, angles.Y, angles.Z
	switch order {
	case EulerXYX:
		return Matrix3FromEulerXYX(a, b, c)
	case EulerXZX:
		return Matrix3FromEulerXZX(a, b, c)
	case EulerYXY:
		return Matrix3FromEulerYXY(a, b, c)
	case EulerYZY:
		return Matrix3FromEulerYZY(a, b, c)
	case EulerZXZ:
		return Matrix3FromEulerZXZ(a, b, c)
	case EulerZYZ:
		return Matrix3FromEulerZYZ(a, b, c)
	case EulerXYZ:
		return Matrix3FromEulerXYZ(a, b, c)
	case EulerXZY:
		return Matrix3FromEulerXZY(a, b, c)
	case EulerYXZ:
		return Matrix3FromEulerYXZ(a, b, c)
	case EulerYZX:
		return Matrix3FromEulerYZX(a, b, c)
	case EulerZXY:
		return Matrix3FromEulerZXY(a, b, c)
	case EulerZYX:
		return Matrix3FromEulerZYX(a, b, c)
	}
	panic("math32.Matrix3FromEuler: invalid order " + order.String())
}

// ToEuler returns the angles of m for the given order; the inverse
// of [Matrix3FromEuler] for pure rotations.
func (m Matrix3) ToEuler(order EulerOrder) Vector3 {
	switch order {
	case EulerXYX:
		return m.ToEulerXYX()
	case EulerXZX:
		return m.ToEulerXZX()
	case EulerYXY:
		return m.ToEulerYXY()
	case EulerYZY:
		return m.ToEulerYZY()
	case EulerZXZ:
		return m.ToEulerZXZ()
	case EulerZYZ:
		return m.ToEulerZYZ()
	case EulerXYZ:
		return m.ToEulerXYZ()
	case EulerXZY:
		return m.ToEulerXZY()
	case EulerYXZ:
		return m.ToEulerYXZ()
	case EulerYZX:
		return m.ToEulerYZX()
	case EulerZXY:
		return m.ToEulerZXY()
	case EulerZYX:
		return m.ToEulerZYX()
	}
	panic("math32.Matrix3.ToEuler: invalid order " + order.String())
}

// Matrix3x4FromEuler returns the rotation for the given order with
// zero translation. See [Matrix3FromEuler].
func Matrix3x4FromEuler(order EulerOrder, angles Vector3) Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3FromEuler(order, angles))
}

// ToEuler returns the Euler angles of the linear block of m for the
// given order. The result is only meaningful if that block is a pure
// rotation (orthonormal, determinant +1).
func (m Matrix3x4) ToEuler(order EulerOrder) Vector3 {
	return m.Matrix3().ToEuler(order)
}

// The closed forms below expand the three chained axis rotations.
// s1, c1 are the sine and cosine of the first angle, and so on.

// Matrix3FromEulerXYX returns the rotation RotateX(a) * RotateY(b) * RotateX(c).
func Matrix3FromEulerXYX(a, b, c float32) Matrix3 {
	s1, c1 := Sincos(a)
	s2, c2 := Sincos(b)
	s3, c3 := Sincos(c)
	return Matrix3{
		{c2, s2*s3, c3*s2},
		{s1*s2, c1*c3 - c2*s1*s3, -c2*c3*s1 - c1*s3},
		{-c1*s2, c1*c2*s3 + c3*s1, c1*c2*c3 - s1*s3},
	}
}

// Matrix3FromEulerXZX returns the rotation RotateX(a) * RotateZ(b) * RotateX(c).
func Matrix3FromEulerXZX(a, b, c float32) Matrix3 {
	s1, c1 := Sincos(a)
	s2, c2 := Sincos(b)
	s3, c3 := Sincos(c)
	return Matrix3{
		{c2, -c3*s2, s2*s3},
		{c1*s2, c1*c2*c3 - s1*s3, -c1*c2*s3 - c3*s1},
		{s1*s2, c2*c3*s1 + c1*s3, c1*c3 - c2*s1*s3},
	}
}

// Matrix3FromEulerYXY returns the rotation RotateY(a) * RotateX(b) * RotateY(c).
func Matrix3FromEulerYXY(a, b, c float32) Matrix3 {
	s1, c1 := Sincos(a)
	s2, c2 := Sincos(b)
	s3, c3 := Sincos(c)
	return Matrix3{
		{c1*c3 - c2*s1*s3, s1*s2, c2*c3*s1 + c1*s3},
		{s2*s3, c2, -c3*s2},
		{-c1*c2*s3 - c3*s1, c1*s2, c1*c2*c3 - s1*s3},
	}
}

// Matrix3FromEulerYZY returns the rotation RotateY(a) * RotateZ(b) * RotateY(c).
func Matrix3FromEulerYZY(a, b, c float32) Matrix3 {
	s1, c1 := Sincos(a)
	s2, c2 := Sincos(b)
	s3, c3 := Sincos(c)
	return Matrix3{
		{c1*c2*c3 - s1*s3, -c1*s2, c1*c2*s3 + c3*s1},
		{c3*s2, c2, s2*s3},
		{-c2*c3*s1 - c1*s3, s1*s2, c1*c3 - c2*s1*s3},
	}
}

// Matrix3FromEulerZXZ returns the rotation RotateZ(a) * RotateX(b) * RotateZ(c).
func Matrix3FromEulerZXZ(a, b, c float32) Matrix3 {
	s1, c1 := Sincos(a)
	s2, c2 := Sincos(b)
	s3, c3 := Sincos(c)
	return Matrix3{
		{c1*c3 - c2*s1*s3, -c2*c3*s1 - c1*s3, s1*s2},
		{c1*c2*s3 + c3*s1, c1*c2*c3 - s1*s3, -c1*s2},
		{s2*s3, c3*s2, c2},
	}
}

// Matrix3FromEulerZYZ returns the rotation RotateZ(a) * RotateY(b) * RotateZ(c).
func Matrix3FromEulerZYZ(a, b, c float32) Matrix3 {
	s1, c1 := Sincos(a)
	s2, c2 := Sincos(b)
	s3, c3 := Sincos(c)
	return Matrix3{
		{c1*c2*c3 - s1*s3, -c1*c2*s3 - c3*s1, c1*s2},
		{c2*c3*s1 + c1*s3, c1*c3 - c2*s1*s3, s1*s2},
		{-c3*s2, s2*s3, c2},
	}
}

// Matrix3FromEulerXYZ returns the rotation RotateX(a) * RotateY(b) * RotateZ(c).
func Matrix3FromEulerXYZ(a, b, c float32) Matrix3 {
	s1, c1 := Sincos(a)
	s2, c2 := Sincos(b)
	s3, c3 := Sincos(c)
	return Matrix3{
		{c2*c3, -c2*s3, s2},
		{c3*s1*s2 + c1*s3, c1*c3 - s1*s2*s3, -c2*s1},
		{s1*s3 - c1*c3*s2, c1*s2*s3 + c3*s1, c1*c2},
	}
}

// Matrix3FromEulerXZY returns the rotation RotateX(a) * RotateZ(b) * RotateY(c).
func Matrix3FromEulerXZY(a, b, c float32) Matrix3 {
	s1, c1 := Sincos(a)
	s2, c2 := Sincos(b)
	s3, c3 := Sincos(c)
	return Matrix3{
		{c2*c3, -s2, c2*s3},
		{c1*c3*s2 + s1*s3, c1*c2, c1*s2*s3 - c3*s1},
		{c3*s1*s2 - c1*s3, c2*s1, s1*s2*s3 + c1*c3},
	}
}

// Matrix3FromEulerYXZ returns the rotation RotateY(a) * RotateX(b) * RotateZ(c).
func Matrix3FromEulerYXZ(a, b, c float32) Matrix3 {
	s1, c1 := Sincos(a)
	s2, c2 := Sincos(b)
	s3, c3 := Sincos(c)
	return Matrix3{
		{s1*s2*s3 + c1*c3, c3*s1*s2 - c1*s3, c2*s1},
		{c2*s3, c2*c3, -s2},
		{c1*s2*s3 - c3*s1, c1*c3*s2 + s1*s3, c1*c2},
	}
}

// Matrix3FromEulerYZX returns the rotation RotateY(a) * RotateZ(b) * RotateX(c).
func Matrix3FromEulerYZX(a, b, c float32) Matrix3 {
	s1, c1 := Sincos(a)
	s2, c2 := Sincos(b)
	s3, c3 := Sincos(c)
	return Matrix3{
		{c1*c2, s1*s3 - c1*c3*s2, c1*s2*s3 + c3*s1},
		{s2, c2*c3, -c2*s3},
		{-c2*s1, c3*s1*s2 + c1*s3, c1*c3 - s1*s2*s3},
	}
}

// Matrix3FromEulerZXY returns the rotation RotateZ(a) * RotateX(b) * RotateY(c).
func Matrix3FromEulerZXY(a, b, c float32) Matrix3 {
	s1, c1 := Sincos(a)
	s2, c2 := Sincos(b)
	s3, c3 := Sincos(c)
	return Matrix3{
		{c1*c3 - s1*s2*s3, -c2*s1, c3*s1*s2 + c1*s3},
		{c1*s2*s3 + c3*s1, c1*c2, s1*s3 - c1*c3*s2},
		{-c2*s3, s2, c2*c3},
	}
}

// Matrix3FromEulerZYX returns the rotation RotateZ(a) * RotateY(b) * RotateX(c).
func Matrix3FromEulerZYX(a, b, c float32) Matrix3 {
	s1, c1 := Sincos(a)
	s2, c2 := Sincos(b)
	s3, c3 := Sincos(c)
	return Matrix3{
		{c1*c2, c1*s2*s3 - c3*s1, c1*c3*s2 + s1*s3},
		{c2*s1, s1*s2*s3 + c1*c3, c3*s1*s2 - c1*s3},
		{-s2, c2*s3, c2*c3},
	}
}

// ToEulerXYX returns the angles (a, b, c) such that
// m = Matrix3FromEulerXYX(a, b, c). m must be a pure rotation.
func (m Matrix3) ToEulerXYX() Vector3 {
	a := eulerFirst(m[1][0], -m[2][0])
	b := Atan2(Hypot(m[0][1], m[0][2]), m[0][0])
	s1, c1 := Sincos(a)
	c := Atan2(-c1*m[1][2]-s1*m[2][2], c1*m[1][1]+s1*m[2][1])
	return Vector3{a, b, c}
}

// ToEulerXZX returns the angles (a, b, c) such that
// m = Matrix3FromEulerXZX(a, b, c). m must be a pure rotation.
func (m Matrix3) ToEulerXZX() Vector3 {
	a := eulerFirst(m[2][0], m[1][0])
	b := Atan2(Hypot(m[0][1], m[0][2]), m[0][0])
	s1, c1 := Sincos(a)
	c := Atan2(-s1*m[1][1]+c1*m[2][1], -s1*m[1][2]+c1*m[2][2])
	return Vector3{a, b, c}
}

// ToEulerYXY returns the angles (a, b, c) such that
// m = Matrix3FromEulerYXY(a, b, c). m must be a pure rotation.
func (m Matrix3) ToEulerYXY() Vector3 {
	a := eulerFirst(m[0][1], m[2][1])
	b := Atan2(Hypot(m[1][0], m[1][2]), m[1][1])
	s1, c1 := Sincos(a)
	c := Atan2(c1*m[0][2]-s1*m[2][2], c1*m[0][0]-s1*m[2][0])
	return Vector3{a, b, c}
}

// ToEulerYZY returns the angles (a, b, c) such that
// m = Matrix3FromEulerYZY(a, b, c). m must be a pure rotation.
func (m Matrix3) ToEulerYZY() Vector3 {
	a := eulerFirst(m[2][1], -m[0][1])
	b := Atan2(Hypot(m[1][0], m[1][2]), m[1][1])
	s1, c1 := Sincos(a)
	c := Atan2(-s1*m[0][0]-c1*m[2][0], s1*m[0][2]+c1*m[2][2])
	return Vector3{a, b, c}
}

// ToEulerZXZ returns the angles (a, b, c) such that
// m = Matrix3FromEulerZXZ(a, b, c). m must be a pure rotation.
func (m Matrix3) ToEulerZXZ() Vector3 {
	a := eulerFirst(m[0][2], -m[1][2])
	b := Atan2(Hypot(m[2][0], m[2][1]), m[2][2])
	s1, c1 := Sincos(a)
	c := Atan2(-c1*m[0][1]-s1*m[1][1], c1*m[0][0]+s1*m[1][0])
	return Vector3{a, b, c}
}

// ToEulerZYZ returns the angles (a, b, c) such that
// m = Matrix3FromEulerZYZ(a, b, c). m must be a pure rotation.
func (m Matrix3) ToEulerZYZ() Vector3 {
	a := eulerFirst(m[1][2], m[0][2])
	b := Atan2(Hypot(m[2][0], m[2][1]), m[2][2])
	s1, c1 := Sincos(a)
	c := Atan2(-s1*m[0][0]+c1*m[1][0], -s1*m[0][1]+c1*m[1][1])
	return Vector3{a, b, c}
}

// ToEulerXYZ returns the angles (a, b, c) such that
// m = Matrix3FromEulerXYZ(a, b, c). m must be a pure rotation.
func (m Matrix3) ToEulerXYZ() Vector3 {
	a := eulerFirst(-m[1][2], m[2][2])
	b := Atan2(m[0][2], Hypot(m[0][0], m[0][1]))
	s1, c1 := Sincos(a)
	c := Atan2(c1*m[1][0]+s1*m[2][0], c1*m[1][1]+s1*m[2][1])
	return Vector3{a, b, c}
}

// ToEulerXZY returns the angles (a, b, c) such that
// m = Matrix3FromEulerXZY(a, b, c). m must be a pure rotation.
func (m Matrix3) ToEulerXZY() Vector3 {
	a := eulerFirst(m[2][1], m[1][1])
	b := Atan2(-m[0][1], Hypot(m[0][0], m[0][2]))
	s1, c1 := Sincos(a)
	c := Atan2(s1*m[1][0]-c1*m[2][0], -s1*m[1][2]+c1*m[2][2])
	return Vector3{a, b, c}
}

// ToEulerYXZ returns the angles (a, b, c) such that
// m = Matrix3FromEulerYXZ(a, b, c). m must be a pure rotation.
func (m Matrix3) ToEulerYXZ() Vector3 {
	a := eulerFirst(m[0][2], m[2][2])
	b := Atan2(-m[1][2], Hypot(m[1][0], m[1][1]))
	s1, c1 := Sincos(a)
	c := Atan2(-c1*m[0][1]+s1*m[2][1], c1*m[0][0]-s1*m[2][0])
	return Vector3{a, b, c}
}

// ToEulerYZX returns the angles (a, b, c) such that
// m = Matrix3FromEulerYZX(a, b, c). m must be a pure rotation.
func (m Matrix3) ToEulerYZX() Vector3 {
	a := eulerFirst(-m[2][0], m[0][0])
	b := Atan2(m[1][0], Hypot(m[1][1], m[1][2]))
	s1, c1 := Sincos(a)
	c := Atan2(s1*m[0][1]+c1*m[2][1], s1*m[0][2]+c1*m[2][2])
	return Vector3{a, b, c}
}

// ToEulerZXY returns the angles (a, b, c) such that
// m = Matrix3FromEulerZXY(a, b, c). m must be a pure rotation.
func (m Matrix3) ToEulerZXY() Vector3 {
	a := eulerFirst(-m[0][1], m[1][1])
	b := Atan2(m[2][1], Hypot(m[2][0], m[2][2]))
	s1, c1 := Sincos(a)
	c := Atan2(c1*m[0][2]+s1*m[1][2], c1*m[0][0]+s1*m[1][0])
	return Vector3{a, b, c}
}

// ToEulerZYX returns the angles (a, b, c) such that
// m = Matrix3FromEulerZYX(a, b, c). m must be a pure rotation.
func (m Matrix3) ToEulerZYX() Vector3 {
	a := eulerFirst(m[1][0], m[0][0])
	b := Atan2(-m[2][0], Hypot(m[2][1], m[2][2]))
	s1, c1 := Sincos(a)
	c := Atan2(s1*m[0][2]-c1*m[1][2], -s1*m[0][1]+c1*m[1][1])
	return Vector3{a, b, c}
}

// Matrix3x4FromEulerXYX returns Matrix3x4RotateX(a) * Matrix3x4RotateY(b) * Matrix3x4RotateX(c),
// with zero translation.
func Matrix3x4FromEulerXYX(a, b, c float32) Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3FromEulerXYX(a, b, c))
}

// ToEulerXYX returns the angles (a, b, c) of the linear block for
// [Matrix3x4FromEulerXYX]. The block must be a pure rotation.
func (m Matrix3x4) ToEulerXYX() Vector3 {
	return m.Matrix3().ToEulerXYX()
}

// Matrix3x4FromEulerXZX returns Matrix3x4RotateX(a) * Matrix3x4RotateZ(b) * Matrix3x4RotateX(c),
// with zero translation.
func Matrix3x4FromEulerXZX(a, b, c float32) Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3FromEulerXZX(a, b, c))
}

// ToEulerXZX returns the angles (a, b, c) of the linear block for
// [Matrix3x4FromEulerXZX]. The block must be a pure rotation.
func (m Matrix3x4) ToEulerXZX() Vector3 {
	return m.Matrix3().ToEulerXZX()
}

// Matrix3x4FromEulerYXY returns Matrix3x4RotateY(a) * Matrix3x4RotateX(b) * Matrix3x4RotateY(c),
// with zero translation.
func Matrix3x4FromEulerYXY(a, b, c float32) Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3FromEulerYXY(a, b, c))
}

// ToEulerYXY returns the angles (a, b, c) of the linear block for
// [Matrix3x4FromEulerYXY]. The block must be a pure rotation.
func (m Matrix3x4) ToEulerYXY() Vector3 {
	return m.Matrix3().ToEulerYXY()
}

// Matrix3x4FromEulerYZY returns Matrix3x4RotateY(a) * Matrix3x4RotateZ(b) * Matrix3x4RotateY(c),
// with zero translation.
func Matrix3x4FromEulerYZY(a, b, c float32) Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3FromEulerYZY(a, b, c))
}

// ToEulerYZY returns the angles (a, b, c) of the linear block for
// [Matrix3x4FromEulerYZY]. The block must be a pure rotation.
func (m Matrix3x4) ToEulerYZY() Vector3 {
	return m.Matrix3().ToEulerYZY()
}

// Matrix3x4FromEulerZXZ returns Matrix3x4RotateZ(a) * Matrix3x4RotateX(b) * Matrix3x4RotateZ(c),
// with zero translation.
func Matrix3x4FromEulerZXZ(a, b, c float32) Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3FromEulerZXZ(a, b, c))
}

// ToEulerZXZ returns the angles (a, b, c) of the linear block for
// [Matrix3x4FromEulerZXZ]. The block must be a pure rotation.
func (m Matrix3x4) ToEulerZXZ() Vector3 {
	return m.Matrix3().ToEulerZXZ()
}

// Matrix3x4FromEulerZYZ returns Matrix3x4RotateZ(a) * Matrix3x4RotateY(b) * Matrix3x4RotateZ(c),
// with zero translation.
func Matrix3x4FromEulerZYZ(a, b, c float32) Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3FromEulerZYZ(a, b, c))
}

// ToEulerZYZ returns the angles (a, b, c) of the linear block for
// [Matrix3x4FromEulerZYZ]. The block must be a pure rotation.
func (m Matrix3x4) ToEulerZYZ() Vector3 {
	return m.Matrix3().ToEulerZYZ()
}

// Matrix3x4FromEulerXYZ returns Matrix3x4RotateX(a) * Matrix3x4RotateY(b) * Matrix3x4RotateZ(c),
// with zero translation.
func Matrix3x4FromEulerXYZ(a, b, c float32) Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3FromEulerXYZ(a, b, c))
}

// ToEulerXYZ returns the angles (a, b, c) of the linear block for
// [Matrix3x4FromEulerXYZ]. The block must be a pure rotation.
func (m Matrix3x4) ToEulerXYZ() Vector3 {
	return m.Matrix3().ToEulerXYZ()
}

// Matrix3x4FromEulerXZY returns Matrix3x4RotateX(a) * Matrix3x4RotateZ(b) * Matrix3x4RotateY(c),
// with zero translation.
func Matrix3x4FromEulerXZY(a, b, c float32) Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3FromEulerXZY(a, b, c))
}

// ToEulerXZY returns the angles (a, b, c) of the linear block for
// [Matrix3x4FromEulerXZY]. The block must be a pure rotation.
func (m Matrix3x4) ToEulerXZY() Vector3 {
	return m.Matrix3().ToEulerXZY()
}

// Matrix3x4FromEulerYXZ returns Matrix3x4RotateY(a) * Matrix3x4RotateX(b) * Matrix3x4RotateZ(c),
// with zero translation.
func Matrix3x4FromEulerYXZ(a, b, c float32) Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3FromEulerYXZ(a, b, c))
}

// ToEulerYXZ returns the angles (a, b, c) of the linear block for
// [Matrix3x4FromEulerYXZ]. The block must be a pure rotation.
func (m Matrix3x4) ToEulerYXZ() Vector3 {
	return m.Matrix3().ToEulerYXZ()
}

// Matrix3x4FromEulerYZX returns Matrix3x4RotateY(a) * Matrix3x4RotateZ(b) * Matrix3x4RotateX(c),
// with zero translation.
func Matrix3x4FromEulerYZX(a, b, c float32) Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3FromEulerYZX(a, b, c))
}

// ToEulerYZX returns the angles (a, b, c) of the linear block for
// [Matrix3x4FromEulerYZX]. The block must be a pure rotation.
func (m Matrix3x4) ToEulerYZX() Vector3 {
	return m.Matrix3().ToEulerYZX()
}

// Matrix3x4FromEulerZXY returns Matrix3x4RotateZ(a) * Matrix3x4RotateX(b) * Matrix3x4RotateY(c),
// with zero translation.
func Matrix3x4FromEulerZXY(a, b, c float32) Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3FromEulerZXY(a, b, c))
}

// ToEulerZXY returns the angles (a, b, c) of the linear block for
// [Matrix3x4FromEulerZXY]. The block must be a pure rotation.
func (m Matrix3x4) ToEulerZXY() Vector3 {
	return m.Matrix3().ToEulerZXY()
}

// Matrix3x4FromEulerZYX returns Matrix3x4RotateZ(a) * Matrix3x4RotateY(b) * Matrix3x4RotateX(c),
// with zero translation.
func Matrix3x4FromEulerZYX(a, b, c float32) Matrix3x4 {
	return Matrix3x4FromMatrix3(Matrix3FromEulerZYX(a, b, c))
}

// ToEulerZYX returns the angles (a, b, c) of the linear block for
// [Matrix3x4FromEulerZYX]. The block must be a pure rotation.
func (m Matrix3x4) ToEulerZYX() Vector3 {
	return m.Matrix3().ToEulerZYX()
}
