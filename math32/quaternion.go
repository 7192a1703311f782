// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Quat is quaternion with X,Y,Z and W components.
// Rotation quaternions are expected to be normalized.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// NewQuatIdentity returns the identity (no rotation) quaternion.
func NewQuatIdentity() Quat {
	return Quat{W: 1}
}

// NewQuatAxisAngle returns a new quaternion from given axis and angle rotation (radians).
// The axis must be normalized.
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	nq := Quat{}
	nq.SetFromAxisAngle(axis, angle)
	return nq
}

// NewQuatFromUnitVectors returns the shortest rotation taking
// direction vFrom to direction vTo. Both must be normalized.
func NewQuatFromUnitVectors(vFrom, vTo Vector3) Quat {
	nq := Quat{}
	nq.SetFromUnitVectors(vFrom, vTo)
	return nq
}

// NewQuatFromMatrix3 returns the quaternion of the given rotation matrix.
// The matrix must be a pure rotation.
func NewQuatFromMatrix3(m *Matrix3) Quat {
	nq := Quat{}
	nq.SetFromRotationMatrix(m)
	return nq
}

// Set sets this quaternion's components.
func (q *Quat) Set(x, y, z, w float32) {
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
}

// SetIdentity sets this quanternion to the identity quaternion.
func (q *Quat) SetIdentity() {
	q.X = 0
	q.Y = 0
	q.Z = 0
	q.W = 1
}

// IsIdentity returns if this is an identity quaternion.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

func (q Quat) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}

// SetFromAxisAngle sets this quaternion with the rotation
// specified by the given axis and angle.
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float32) {
	s, c := Sincos(angle / 2)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = c
}

// ToAxisAngle returns the Vector4 holding axis and angle of this Quaternion
func (q Quat) ToAxisAngle() Vector4 {
	aa := Vector4{}
	aa.SetAxisAngleFromQuat(q)
	return aa
}

// SetFromRotationMatrix sets this quaternion from the specified rotation matrix.
func (q *Quat) SetFromRotationMatrix(m *Matrix3) {
	m11, m12, m13 := m[0][0], m[0][1], m[0][2]
	m21, m22, m23 := m[1][0], m[1][1], m[1][2]
	m31, m32, m33 := m[2][0], m[2][1], m[2][2]
	trace := m11 + m22 + m33

	var s float32
	if trace > 0 {
		s = 0.5 / Sqrt(trace+1.0)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s
	} else if m11 > m22 && m11 > m33 {
		s = 2.0 * Sqrt(1.0+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s
	} else if m22 > m33 {
		s = 2.0 * Sqrt(1.0+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s
	} else {
		s = 2.0 * Sqrt(1.0+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}
}

// ToMatrix3 returns the rotation matrix of this quaternion,
// which must be normalized.
func (q Quat) ToMatrix3() Matrix3 {
	// See e.g. http://www.geometrictools.com/Documentation/LinearAlgebraicQuaternions.pdf
	x, y, z, w := q.X, q.Y, q.Z, q.W
	return Matrix3{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	}
}

// SetFromUnitVectors sets this quaternion to the rotation from vector vFrom to vTo.
// The vectors must be normalized.
func (q *Quat) SetFromUnitVectors(vFrom, vTo Vector3) {
	var v1 Vector3
	var EPS float32 = 0.000001

	r := vFrom.Dot(vTo) + 1
	if r < EPS {
		r = 0
		if Abs(vFrom.X) > Abs(vFrom.Z) {
			v1.Set(-vFrom.Y, vFrom.X, 0)
		} else {
			v1.Set(0, -vFrom.Z, vFrom.Y)
		}
	} else {
		v1 = vFrom.Cross(vTo)
	}
	q.X = v1.X
	q.Y = v1.Y
	q.Z = v1.Z
	q.W = r

	q.Normalize()
}

// SetConjugate sets this quaternion to its conjugate.
func (q *Quat) SetConjugate() {
	q.X *= -1
	q.Y *= -1
	q.Z *= -1
}

// Conjugate returns the conjugate of this quaternion.
func (q Quat) Conjugate() Quat {
	q.SetConjugate()
	return q
}

// Inverse returns the inverse of this quaternion.
func (q Quat) Inverse() Quat {
	q.SetConjugate()
	q.Normalize()
	return q
}

// Dot returns the dot products of this quaternion with other.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// LengthSquared returns this quanternion's length squared
func (q Quat) LengthSquared() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the length of this quaternion
func (q Quat) Length() float32 {
	return Sqrt(q.LengthSquared())
}

// IsNormalized reports whether the length of q is 1 within tol.
func (q Quat) IsNormalized(tol float32) bool {
	return EqualAbs(q.LengthSquared(), 1, tol)
}

// Normalize normalizes this quaternion. The zero quaternion
// becomes the identity.
func (q *Quat) Normalize() {
	l := q.Length()
	if l == 0 {
		q.SetIdentity()
		return
	}
	l = 1 / l
	q.X *= l
	q.Y *= l
	q.Z *= l
	q.W *= l
}

// Normal returns a normalized copy of this quaternion.
func (q Quat) Normal() Quat {
	q.Normalize()
	return q
}

// MulQuats set this quaternion to the multiplication of a by b.
func (q *Quat) MulQuats(a, b Quat) {
	// from http://www.euclideanspace.com/maths/algebra/realNormedAlgebra/quaternions/code/index.htm
	q.X = a.X*b.W + a.W*b.X + a.Y*b.Z - a.Z*b.Y
	q.Y = a.Y*b.W + a.W*b.Y + a.Z*b.X - a.X*b.Z
	q.Z = a.Z*b.W + a.W*b.Z + a.X*b.Y - a.Y*b.X
	q.W = a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z
}

// Mul returns returns multiplication of this quaternion with other,
// which rotates by other first and then by q.
func (q Quat) Mul(other Quat) Quat {
	nq := Quat{}
	nq.MulQuats(q, other)
	return nq
}

// MulVector3 returns v rotated by this quaternion.
func (q Quat) MulVector3(v Vector3) Vector3 {
	m := q.ToMatrix3()
	return m.MulVector3(v)
}

// MulMatrix3x4 returns this rotation composed on the left of m,
// treating q as a 3x4 matrix with zero translation.
func (q Quat) MulMatrix3x4(m Matrix3x4) Matrix3x4 {
	return Matrix3x4FromQuat(q).Mul(m)
}

// Slerp returns the spherically linear interpolation
// from this quaternion to other using t.
func (q Quat) Slerp(other Quat, t float32) Quat {
	if t == 0 {
		return q
	}
	if t == 1 {
		return other
	}
	cosHalfTheta := q.Dot(other)
	if cosHalfTheta < 0 {
		other = Quat{-other.X, -other.Y, -other.Z, -other.W}
		cosHalfTheta = -cosHalfTheta
	}
	if cosHalfTheta >= 1.0 {
		return q
	}
	sqrSinHalfTheta := 1.0 - cosHalfTheta*cosHalfTheta
	if sqrSinHalfTheta < 0.001 {
		s := 1 - t
		nq := Quat{s*q.X + t*other.X, s*q.Y + t*other.Y, s*q.Z + t*other.Z, s*q.W + t*other.W}
		nq.Normalize()
		return nq
	}
	sinHalfTheta := Sqrt(sqrSinHalfTheta)
	halfTheta := Atan2(sinHalfTheta, cosHalfTheta)
	ratioA := Sin((1-t)*halfTheta) / sinHalfTheta
	ratioB := Sin(t*halfTheta) / sinHalfTheta
	return Quat{
		q.X*ratioA + other.X*ratioB,
		q.Y*ratioA + other.Y*ratioB,
		q.Z*ratioA + other.Z*ratioB,
		q.W*ratioA + other.W*ratioB,
	}
}

// IsEqual returns if this quaternion is equal to other.
func (q Quat) IsEqual(other Quat) bool {
	return (other.X == q.X) && (other.Y == q.Y) && (other.Z == q.Z) && (other.W == q.W)
}

// IsSameRotation reports whether q and other represent the same rotation
// within tol, accounting for q and -q being the same rotation.
func (q Quat) IsSameRotation(other Quat, tol float32) bool {
	return Abs(Abs(q.Dot(other))-1) <= tol
}
