// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Plane represents a plane in 3D space as the set of points p with
// Norm.Dot(p) + Off == 0. Norm is expected to be normalized.
type Plane struct {
	Norm Vector3
	Off  float32
}

// NewPlane returns a plane with the given normal and offset.
// The normal is normalized, and the offset scaled to match.
func NewPlane(normal Vector3, offset float32) Plane {
	l := normal.Length()
	if l == 0 {
		return Plane{Norm: normal, Off: offset}
	}
	return Plane{Norm: normal.DivScalar(l), Off: offset / l}
}

// NewPlaneFromPoint returns the plane through point with the given normal,
// which is normalized first.
func NewPlaneFromPoint(normal, point Vector3) Plane {
	n := normal.Normal()
	return Plane{Norm: n, Off: -n.Dot(point)}
}

func (p Plane) String() string {
	return fmt.Sprintf("Plane(%v, %f)", p.Norm, p.Off)
}

// DistanceToPoint returns the signed distance from the plane to point.
func (p Plane) DistanceToPoint(point Vector3) float32 {
	return p.Norm.Dot(point) + p.Off
}

// ProjectPoint returns the closest point on the plane to point.
func (p Plane) ProjectPoint(point Vector3) Vector3 {
	return point.Sub(p.Norm.MulScalar(p.DistanceToPoint(point)))
}

// ReflectPoint returns the mirror image of point through the plane.
func (p Plane) ReflectPoint(point Vector3) Vector3 {
	return point.Sub(p.Norm.MulScalar(2 * p.DistanceToPoint(point)))
}

// check returns an error if the plane normal is not normalized.
func (p Plane) check(op string) error {
	if !p.Norm.IsNormalized(DefaultTolerance) {
		return fmt.Errorf("math32.%s: plane normal %v is not normalized: %w", op, p.Norm, ErrInvalidArgument)
	}
	return nil
}
