// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"fmt"

	"cogentcore.org/affine/base/errors"
	"cogentcore.org/affine/math32"
)

// Transform is one named transform of a [Document]. It is given
// either as an explicit Matrix, as one of the Reflect, Project or Ortho
// projections, or as translate, rotate, shear and scale parts, which
// are combined as Translate * Rotate * Shear * Scale. All parts are
// optional, and at most one rotation can be given.
type Transform struct {

	// Name identifies the transform within its document.
	Name string `toml:"name" yaml:"name"`

	// Parent is the name of the transform this one is relative to.
	// The world matrix of the transform is the world matrix of its
	// parent times its own local matrix.
	Parent string `toml:"parent,omitempty" yaml:"parent,omitempty"`

	// Matrix is an explicit matrix as 12 row-major values.
	Matrix []float32 `toml:"matrix,omitempty" yaml:"matrix,omitempty"`

	// Translate is the translation, as x, y, z.
	Translate []float32 `toml:"translate,omitempty" yaml:"translate,omitempty"`

	// Euler are rotation angles about the three axes of Order.
	Euler []float32 `toml:"euler,omitempty" yaml:"euler,omitempty"`

	// Order is the Euler order of this transform, overriding the
	// document order.
	Order string `toml:"order,omitempty" yaml:"order,omitempty"`

	// Quat is a rotation quaternion as x, y, z, w.
	Quat []float32 `toml:"quat,omitempty" yaml:"quat,omitempty"`

	// Axis is a rotation axis, used with Angle.
	Axis []float32 `toml:"axis,omitempty" yaml:"axis,omitempty"`

	// Angle is the rotation angle about Axis.
	Angle float32 `toml:"angle,omitempty" yaml:"angle,omitempty"`

	// From and To give the rotation taking the direction From onto To.
	From []float32 `toml:"from,omitempty" yaml:"from,omitempty"`
	To   []float32 `toml:"to,omitempty" yaml:"to,omitempty"`

	// Shear are the six shear factors xy, xz, yx, yz, zx, zy, where xy
	// is the amount of y added to x.
	Shear []float32 `toml:"shear,omitempty" yaml:"shear,omitempty"`

	// Scale is the scale, as x, y, z or as a single uniform factor.
	Scale []float32 `toml:"scale,omitempty" yaml:"scale,omitempty"`

	// Reflect is a plane to mirror through.
	Reflect *Plane `toml:"reflect,omitempty" yaml:"reflect,omitempty"`

	// Project is a plane to project onto orthographically.
	Project *Plane `toml:"project,omitempty" yaml:"project,omitempty"`

	// Ortho is an orthographic view volume projection.
	Ortho *Ortho `toml:"ortho,omitempty" yaml:"ortho,omitempty"`
}

// Plane is the plane of points p with Normal . p + Offset = 0.
// Normal does not need to be normalized.
type Plane struct {
	Normal []float32 `toml:"normal" yaml:"normal"`
	Offset float32   `toml:"offset,omitempty" yaml:"offset,omitempty"`
}

// Ortho is a view volume along -Z, see [math32.MakeOrthographicProjection].
type Ortho struct {
	Near   float32 `toml:"near" yaml:"near"`
	Far    float32 `toml:"far" yaml:"far"`
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`
}

// hasTRS reports whether any translate, rotate, shear or scale part is set.
func (t *Transform) hasTRS() bool {
	return t.Translate != nil || t.Euler != nil || t.Quat != nil || t.Axis != nil ||
		t.From != nil || t.To != nil || t.Shear != nil || t.Scale != nil
}

func (t *Transform) errorf(format string, args ...any) error {
	return fmt.Errorf("xform: transform %q: %s: %w", t.Name, fmt.Sprintf(format, args...), ErrInvalid)
}

// Local returns the matrix of t by itself, relative to its parent.
func (d *Document) Local(t *Transform) (math32.Matrix3x4, error) {
	kinds := 0
	for _, set := range []bool{t.Matrix != nil, t.Reflect != nil, t.Project != nil, t.Ortho != nil, t.hasTRS()} {
		if set {
			kinds++
		}
	}
	if kinds > 1 {
		return math32.Identity3x4(), t.errorf("more than one of matrix, reflect, project, ortho and translate/rotate/scale")
	}
	ctx := fmt.Sprintf("xform: transform %q", t.Name)
	switch {
	case t.Matrix != nil:
		if len(t.Matrix) != 12 {
			return math32.Identity3x4(), t.errorf("matrix needs 12 values, not %d", len(t.Matrix))
		}
		return math32.Matrix3x4FromSlice(t.Matrix, 0), nil
	case t.Reflect != nil:
		p, err := t.Reflect.plane(t)
		if err != nil {
			return math32.Identity3x4(), err
		}
		m, err := math32.Matrix3x4Reflect(p)
		return m, errors.Wrap(err, ctx)
	case t.Project != nil:
		p, err := t.Project.plane(t)
		if err != nil {
			return math32.Identity3x4(), err
		}
		m, err := math32.MakeOrthographicProjectionPlane(p)
		return m, errors.Wrap(err, ctx)
	case t.Ortho != nil:
		o := t.Ortho
		m, err := math32.MakeOrthographicProjection(o.Near, o.Far, o.Width, o.Height)
		return m, errors.Wrap(err, ctx)
	}
	return d.trs(t)
}

func (p *Plane) plane(t *Transform) (math32.Plane, error) {
	n, err := vector3(t, "normal", p.Normal)
	if err != nil {
		return math32.Plane{}, err
	}
	return math32.NewPlane(n, p.Offset), nil
}

// angle converts a document angle to radians.
func (d *Document) angle(a float32) float32 {
	if d.Degrees {
		return math32.DegToRad(a)
	}
	return a
}

func (d *Document) trs(t *Transform) (math32.Matrix3x4, error) {
	rot, err := d.rotation(t)
	if err != nil {
		return math32.Identity3x4(), err
	}
	if t.Shear != nil {
		if len(t.Shear) != 6 {
			return math32.Identity3x4(), t.errorf("shear needs 6 values, not %d", len(t.Shear))
		}
		s := t.Shear
		rot = rot.Mul(math32.Matrix3x4ShearX(s[0], s[1])).
			Mul(math32.Matrix3x4ShearY(s[2], s[3])).
			Mul(math32.Matrix3x4ShearZ(s[4], s[5]))
	}
	var tr math32.Vector3
	if t.Translate != nil {
		if tr, err = vector3(t, "translate", t.Translate); err != nil {
			return math32.Identity3x4(), err
		}
	}
	m := math32.Matrix3x4Translate(tr).MulMatrix3x4(rot)
	switch len(t.Scale) {
	case 0:
		return m, nil
	case 1:
		return m.MulScale(math32.Matrix3x4UniformScale(t.Scale[0])), nil
	case 3:
		return m.MulScale(math32.Matrix3x4Scale(math32.Vec3(t.Scale[0], t.Scale[1], t.Scale[2]))), nil
	}
	return math32.Identity3x4(), t.errorf("scale needs 1 or 3 values, not %d", len(t.Scale))
}

// rotation returns the rotation part of t as a matrix.
func (d *Document) rotation(t *Transform) (math32.Matrix3x4, error) {
	n := 0
	for _, set := range []bool{t.Euler != nil, t.Quat != nil, t.Axis != nil, t.From != nil || t.To != nil} {
		if set {
			n++
		}
	}
	if n > 1 {
		return math32.Identity3x4(), t.errorf("more than one of euler, quat, axis and from/to")
	}
	ctx := fmt.Sprintf("xform: transform %q", t.Name)
	m := math32.Identity3x4()
	switch {
	case t.Euler != nil:
		a, err := vector3(t, "euler", t.Euler)
		if err != nil {
			return m, err
		}
		order, err := d.EulerOrder()
		if t.Order != "" {
			order, err = parseOrder(t.Order)
		}
		if err != nil {
			return m, errors.Wrap(err, ctx)
		}
		a.Set(d.angle(a.X), d.angle(a.Y), d.angle(a.Z))
		return math32.Matrix3x4FromEuler(order, a), nil
	case t.Quat != nil:
		if len(t.Quat) != 4 {
			return m, t.errorf("quat needs 4 values, not %d", len(t.Quat))
		}
		q := math32.NewQuat(t.Quat[0], t.Quat[1], t.Quat[2], t.Quat[3])
		if d.Normalize {
			if q.Length() == 0 {
				return m, t.errorf("zero quat")
			}
			m.SetRotatePartQuatUnchecked(q.Normal())
			return m, nil
		}
		return m, errors.Wrap(m.SetRotatePartQuat(q), ctx)
	case t.Axis != nil:
		axis, err := vector3(t, "axis", t.Axis)
		if err != nil {
			return m, err
		}
		if d.Normalize {
			if axis.Length() == 0 {
				return m, t.errorf("zero axis")
			}
			return math32.Matrix3x4RotateAxisAngle(axis, d.angle(t.Angle)), nil
		}
		return m, errors.Wrap(m.SetRotatePartAxisAngle(axis, d.angle(t.Angle)), ctx)
	case t.From != nil || t.To != nil:
		from, err := vector3(t, "from", t.From)
		if err != nil {
			return m, err
		}
		to, err := vector3(t, "to", t.To)
		if err != nil {
			return m, err
		}
		if from.Length() == 0 || to.Length() == 0 {
			return m, t.errorf("zero from or to direction")
		}
		return math32.Matrix3x4RotateFromTo(from.Normal(), to.Normal()), nil
	}
	return m, nil
}

func vector3(t *Transform, field string, v []float32) (math32.Vector3, error) {
	if len(v) != 3 {
		return math32.Vector3{}, t.errorf("%s needs 3 values, not %d", field, len(v))
	}
	return math32.Vec3(v[0], v[1], v[2]), nil
}

// World returns the matrix of the named transform relative to the
// root of the document, following its chain of parents.
func (d *Document) World(name string) (math32.Matrix3x4, error) {
	m := math32.Identity3x4()
	seen := map[string]bool{}
	for name != "" {
		if seen[name] {
			return math32.Identity3x4(), fmt.Errorf("xform: parent cycle through %q: %w", name, ErrInvalid)
		}
		seen[name] = true
		t := d.Transform(name)
		if t == nil {
			return math32.Identity3x4(), fmt.Errorf("xform: unknown transform %q: %w", name, ErrInvalid)
		}
		local, err := d.Local(t)
		if err != nil {
			return math32.Identity3x4(), err
		}
		m = local.Mul(m)
		name = t.Parent
	}
	return m, nil
}

// Composed returns the product of the world matrices of the given
// names, outermost first, or of [Document.Compose] if none are given.
func (d *Document) Composed(names ...string) (math32.Matrix3x4, error) {
	if len(names) == 0 {
		names = d.Compose
	}
	if len(names) == 0 {
		return math32.Identity3x4(), fmt.Errorf("xform: nothing to compose: %w", ErrInvalid)
	}
	m := math32.Identity3x4()
	for _, n := range names {
		w, err := d.World(n)
		if err != nil {
			return math32.Identity3x4(), err
		}
		m = m.Mul(w)
	}
	return m, nil
}
