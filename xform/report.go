// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"fmt"
	"strings"

	"cogentcore.org/affine/math32"
)

// Report describes the structure of one matrix.
type Report struct {
	Name        string            `toml:"name" yaml:"name"`
	Matrix      math32.Matrix3x4  `toml:"matrix" yaml:"matrix"`
	Determinant float32           `toml:"determinant" yaml:"determinant"`
	Translate   math32.Vector3    `toml:"translate" yaml:"translate"`
	Scale       math32.Vector3    `toml:"scale" yaml:"scale"`
	Order       math32.EulerOrder `toml:"order" yaml:"order"`

	// Euler are the angles of the rotation in Order, in degrees if
	// Degrees is set. They are only set if Decomposed.
	Euler   math32.Vector3 `toml:"euler" yaml:"euler"`
	Degrees bool           `toml:"degrees" yaml:"degrees"`

	// Quat is the rotation, if Decomposed.
	Quat math32.Quat `toml:"quat" yaml:"quat"`

	// Decomposed is set if the matrix could be split into
	// translation, rotation and scale. Otherwise DecomposeError
	// gives the reason.
	Decomposed     bool   `toml:"decomposed" yaml:"decomposed"`
	DecomposeError string `toml:"decompose_error,omitempty" yaml:"decompose_error,omitempty"`

	// Inverse is the inverse matrix, computed with InverseKind.
	// Both are empty if the matrix is singular.
	Inverse     math32.Matrix3x4 `toml:"inverse" yaml:"inverse"`
	InverseKind InverseKind      `toml:"inverse_kind,omitempty" yaml:"inverse_kind,omitempty"`

	// Bounds is the box that the unit cube [0, 1]^3 is mapped to.
	Bounds math32.Box3 `toml:"bounds" yaml:"bounds"`

	Flags []string `toml:"flags" yaml:"flags"`
}

// NewReport returns the report for m, with Euler angles in the given order
// and predicates tested with tol.
func NewReport(name string, m math32.Matrix3x4, order math32.EulerOrder, degrees bool, tol float32) *Report {
	r := &Report{Name: name, Matrix: m, Order: order, Degrees: degrees}
	r.Determinant = m.Determinant()
	r.Translate = m.TranslatePart()
	r.Scale = m.ExtractScale()
	t, q, s, err := m.Decompose()
	if err != nil {
		r.DecomposeError = err.Error()
	} else {
		r.Decomposed = true
		r.Translate, r.Quat, r.Scale = t, q, s
		_, rot, _, _ := m.DecomposeMatrix3x4()
		r.Euler = rot.ToEuler(order)
		if degrees {
			r.Euler.Set(math32.RadToDeg(r.Euler.X), math32.RadToDeg(r.Euler.Y), math32.RadToDeg(r.Euler.Z))
		}
	}
	if inv, kind, err := Invert(m, tol); err == nil {
		r.Inverse, r.InverseKind = inv, kind
	}
	r.Bounds = math32.B3(0, 0, 0, 1, 1, 1).MulMatrix3x4(m)
	r.Flags = flags(m, tol)
	return r
}

// flags returns the names of the predicates that hold for m.
func flags(m math32.Matrix3x4, tol float32) []string {
	preds := []struct {
		name string
		ok   bool
	}{
		{"finite", m.IsFinite()},
		{"identity", m.IsIdentity(tol)},
		{"invertible", m.IsInvertible(tol)},
		{"orthogonal", m.IsOrthogonal(tol)},
		{"orthogonal-columns", m.HasOrthogonalColumns(tol)},
		{"unitary-scale", m.HasUnitaryScale(tol)},
		{"uniform-scale", m.HasUniformScale(tol)},
		{"negative-scale", m.HasNegativeScale()},
		{"symmetric", m.IsSymmetric(tol)},
		{"skew-symmetric", m.IsSkewSymmetric(tol)},
		{"lower-triangular", m.IsLowerTriangular(tol)},
		{"upper-triangular", m.IsUpperTriangular(tol)},
	}
	fl := []string{}
	for _, p := range preds {
		if p.ok {
			fl = append(fl, p.name)
		}
	}
	return fl
}

// HasFlag reports whether the named predicate holds.
func (r *Report) HasFlag(name string) bool {
	for _, f := range r.Flags {
		if f == name {
			return true
		}
	}
	return false
}

// String returns a multi-line plain text rendering of the report.
func (r *Report) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s\n", r.Name)
	for i := 0; i < 3; i++ {
		row := r.Matrix.Row(i)
		fmt.Fprintf(b, "  [% 10.4f % 10.4f % 10.4f % 10.4f]\n", row.X, row.Y, row.Z, row.W)
	}
	fmt.Fprintf(b, "  determinant: %g\n", r.Determinant)
	fmt.Fprintf(b, "  translate: %v\n", r.Translate)
	fmt.Fprintf(b, "  scale: %v\n", r.Scale)
	if r.Decomposed {
		unit := "rad"
		if r.Degrees {
			unit = "deg"
		}
		fmt.Fprintf(b, "  euler %s (%s): %v\n", r.Order, unit, r.Euler)
		fmt.Fprintf(b, "  quat: %v\n", r.Quat)
	} else {
		fmt.Fprintf(b, "  decompose: %s\n", r.DecomposeError)
	}
	if r.InverseKind != "" {
		fmt.Fprintf(b, "  inverse (%s):\n", r.InverseKind)
		for i := 0; i < 3; i++ {
			row := r.Inverse.Row(i)
			fmt.Fprintf(b, "  [% 10.4f % 10.4f % 10.4f % 10.4f]\n", row.X, row.Y, row.Z, row.W)
		}
	} else {
		fmt.Fprintf(b, "  inverse: singular\n")
	}
	fmt.Fprintf(b, "  bounds: %v\n", r.Bounds)
	fmt.Fprintf(b, "  flags: %s\n", strings.Join(r.Flags, " "))
	return b.String()
}

// Reports returns the report for the world matrix of every transform
// of the document, in document order.
func (d *Document) Reports(tol float32) ([]*Report, error) {
	order, err := d.EulerOrder()
	if err != nil {
		return nil, err
	}
	rs := make([]*Report, 0, len(d.Transforms))
	for _, t := range d.Transforms {
		m, err := d.World(t.Name)
		if err != nil {
			return nil, err
		}
		rs = append(rs, NewReport(t.Name, m, order, d.Degrees, tol))
	}
	return rs, nil
}
