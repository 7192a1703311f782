// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Box3 represents a 3D axis-aligned bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Empty returns a new empty [Box3], which any point expands.
func B3Empty() Box3 {
	bx := Box3{}
	bx.SetEmpty()
	return bx
}

// SetEmpty set this bounding box to empty (min / max +/- Infinity)
func (b *Box3) SetEmpty() {
	b.Min = Vector3Scalar(Infinity)
	b.Max = Vector3Scalar(-Infinity)
}

// IsEmpty returns true if this bounding box is empty (max < min on any coord).
func (b Box3) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y) || (b.Max.Z < b.Min.Z)
}

func (b Box3) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// ExpandByPoints may expand this bounding box from the specified points.
func (b *Box3) ExpandByPoints(points []Vector3) {
	for _, p := range points {
		b.ExpandByPoint(p)
	}
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box3) ExpandByPoint(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Center returns the center of the bounding box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns the vector from the minimum point to the maximum point.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box3) ContainsPoint(point Vector3) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}

// Corners returns the eight corners of the box.
func (b Box3) Corners() [8]Vector3 {
	return [8]Vector3{
		{b.Min.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
	}
}

// MulMatrix3x4 returns the box spanning the eight corners of b
// transformed by m. The box of each axis is accumulated per matrix
// element instead of transforming the corners one by one.
func (b Box3) MulMatrix3x4(m Matrix3x4) Box3 {
	if b.IsEmpty() {
		return b
	}
	var nb Box3
	for i := 0; i < 3; i++ {
		lo, hi := m[i][3], m[i][3]
		for j := 0; j < 3; j++ {
			e := m[i][j] * b.Min.Dim(j)
			f := m[i][j] * b.Max.Dim(j)
			lo += Min(e, f)
			hi += Max(e, f)
		}
		nb.Min.SetDim(i, lo)
		nb.Max.SetDim(i, hi)
	}
	return nb
}
