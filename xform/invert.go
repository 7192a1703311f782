// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"log/slog"

	"cogentcore.org/affine/math32"
)

// InverseKind is the inversion method chosen by [Invert].
type InverseKind string

const (
	// NoScale is the transpose inverse of a rigid motion.
	NoScale InverseKind = "no-scale"

	// UniformScale is the inverse of a rotation times a uniform scale.
	UniformScale InverseKind = "uniform-scale"

	// Affine is the inverse of a rotation times a non-uniform scale.
	Affine InverseKind = "affine"

	// General is the adjugate inverse used for sheared matrices.
	General InverseKind = "general"
)

// Invert returns the inverse of m, using the cheapest method that its
// structure allows within tol. A singular m gives an error wrapping
// [math32.ErrSingular].
func Invert(m math32.Matrix3x4, tol float32) (math32.Matrix3x4, InverseKind, error) {
	if !m.IsInvertible(math32.Epsilon) {
		_, err := m.Inverted()
		return m, General, err
	}
	inv := m
	kind := General
	var err error
	switch {
	case !m.HasOrthogonalColumns(tol):
		err = inv.Inverse()
	case m.HasUnitaryScale(tol):
		kind = NoScale
		inv.InverseAffineNoScale()
	case m.HasUniformScale(tol):
		kind = UniformScale
		inv.InverseAffineUniformScaleUnchecked()
	default:
		kind = Affine
		err = inv.InverseAffine()
	}
	slog.Debug("xform: inverse", "kind", kind, "det", m.Determinant())
	return inv, kind, err
}
