// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/affine/base/randx"
	"cogentcore.org/affine/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const StandardTol = float32(1.0e-4)

func TolAssertEqualVector3(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func TolAssertEqualMatrix(t *testing.T, tol float32, mt, ma Matrix3x4) {
	t.Helper()
	et, ea := mt.Array(), ma.Array()
	tolassert.EqualTolSlice(t, et[:], ea[:], tol, "expected %v, got %v", mt, ma)
}

func TolAssertEqualMatrix3(t *testing.T, tol float32, mt, ma Matrix3) {
	t.Helper()
	TolAssertEqualMatrix(t, tol, Matrix3x4FromMatrix3(mt), Matrix3x4FromMatrix3(ma))
}

func randomAxis(rnd randx.Rand) Vector3 {
	return Vec3(randx.UnitVector3(rnd))
}

func randomQuat(rnd randx.Rand) Quat {
	return NewQuatAxisAngle(randomAxis(rnd), randx.UniformMinMax(-Pi, Pi, rnd))
}

func randomVector3(rnd randx.Rand, min, max float32) Vector3 {
	return Vec3(randx.UniformMinMax(min, max, rnd), randx.UniformMinMax(min, max, rnd), randx.UniformMinMax(min, max, rnd))
}

// randomAffine returns a general, well conditioned affine matrix.
func randomAffine(rnd randx.Rand) Matrix3x4 {
	m := Matrix3x4FromTRS(randomVector3(rnd, -10, 10), randomQuat(rnd), randomVector3(rnd, 0.5, 3))
	return m.Mul(Matrix3x4ShearX(randx.UniformMinMax(-0.5, 0.5, rnd), randx.UniformMinMax(-0.5, 0.5, rnd)))
}

func TestMath(t *testing.T) {
	tolassert.EqualTol(t, Pi/2, DegToRad(90), StandardTol)
	tolassert.EqualTol(t, 180, RadToDeg(Pi), StandardTol)
	assert.True(t, IsFinite(1))
	assert.False(t, IsFinite(Infinity))
	assert.False(t, IsFinite(NaN()))
	assert.Equal(t, float32(2), Clamp[float32](5, -2, 2))
	assert.Equal(t, 3, Clamp(3, 0, 10))
	assert.True(t, EqualAbs(1, 1.0005, 1e-3))
	assert.False(t, EqualAbs(1, 1.01, 1e-3))
}

func TestVector3(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(-2, 0, 1)
	assert.Equal(t, Vec3(-1, 2, 4), a.Add(b))
	assert.Equal(t, Vec3(3, 2, 2), a.Sub(b))
	assert.Equal(t, float32(1), a.Dot(b))
	assert.Equal(t, Vec3(2, -7, 4), a.Cross(b))
	assert.Equal(t, Vec3(-1, -2, -3), a.Negate())
	assert.Equal(t, Vec3(-2, 0, 1), a.Min(b))
	assert.Equal(t, Vec3(1, 2, 3), a.Max(b))
	tolassert.EqualTol(t, 1, a.Normal().Length(), StandardTol)
	assert.True(t, Vec3(1, 0, 0).IsPerpendicular(Vec3(0, 0, 2), StandardTol))

	v := Vec3(3, 0, 4)
	assert.Equal(t, float32(5), v.SetNormal())
	assert.True(t, v.IsNormalized(StandardTol))

	v.SetDim(1, 7)
	assert.Equal(t, float32(7), v.Dim(1))
	assert.Panics(t, func() { v.Dim(3) })

	buf := make([]float32, 5)
	a.ToSlice(buf, 2)
	assert.Equal(t, []float32{0, 0, 1, 2, 3}, buf)

	x, y, z := Vec3(1, 1, 0), Vec3(0, 1, 1), Vec3(1, 0, 1)
	Orthonormalize(&x, &y, &z)
	tolassert.EqualTol(t, 0, x.Dot(y), StandardTol)
	tolassert.EqualTol(t, 0, x.Dot(z), StandardTol)
	tolassert.EqualTol(t, 0, y.Dot(z), StandardTol)
	assert.True(t, z.IsNormalized(StandardTol))
	TolAssertEqualVector3(t, StandardTol, Vec3(1, 1, 0).Normal(), x)
}

func TestQuat(t *testing.T) {
	rnd := randx.NewSysRand(11)
	q := NewQuatAxisAngle(Vec3(0, 0, 1), Pi/2)
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 1, 0), q.MulVector3(Vec3(1, 0, 0)))
	assert.True(t, q.IsNormalized(StandardTol))

	aa := q.ToAxisAngle()
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 0, 1), aa.Vector3())
	tolassert.EqualTol(t, Pi/2, aa.W, StandardTol)

	for i := 0; i < 100; i++ {
		q := randomQuat(rnd)
		r := q.ToMatrix3()
		assert.True(t, r.IsRotation(StandardTol))
		q2 := NewQuatFromMatrix3(&r)
		assert.True(t, q.IsSameRotation(q2, StandardTol), "%v != %v", q, q2)

		v := randomVector3(rnd, -1, 1)
		TolAssertEqualVector3(t, StandardTol, r.MulVector3(v), q.MulVector3(v))
		TolAssertEqualVector3(t, StandardTol, v, q.Inverse().MulVector3(q.MulVector3(v)))
	}

	from, to := Vec3(1, 0, 0), Vec3(0, 0, 1)
	TolAssertEqualVector3(t, StandardTol, to, NewQuatFromUnitVectors(from, to).MulVector3(from))

	p := NewQuatAxisAngle(Vec3(1, 0, 0), 0.4)
	r := NewQuatAxisAngle(Vec3(1, 0, 0), 1.2)
	assert.True(t, NewQuatAxisAngle(Vec3(1, 0, 0), 0.8).IsSameRotation(p.Slerp(r, 0.5), StandardTol))
	assert.True(t, p.Mul(r).IsSameRotation(NewQuatAxisAngle(Vec3(1, 0, 0), 1.6), StandardTol))
	assert.True(t, NewQuatIdentity().IsIdentity())
	assert.False(t, NewQuat(1, 1, 0, 0).IsNormalized(StandardTol))
}
