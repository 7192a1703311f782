// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// BatchTransformPoint applies [Matrix3x4.TransformPoint] to every point, in place.
func (m Matrix3x4) BatchTransformPoint(points []Vector3) {
	for i := range points {
		points[i] = m.TransformPoint(points[i])
	}
}

// BatchTransformDir applies [Matrix3x4.TransformDir] to every direction, in place.
func (m Matrix3x4) BatchTransformDir(dirs []Vector3) {
	for i := range dirs {
		dirs[i] = m.TransformDir(dirs[i])
	}
}

// BatchTransform applies [Matrix3x4.Transform] to every vector, in place.
func (m Matrix3x4) BatchTransform(vecs []Vector4) {
	for i := range vecs {
		vecs[i] = m.Transform(vecs[i])
	}
}

// BatchTransformPointStride transforms points stored in a flat,
// interleaved buffer in place. Point k starts at data[k*stride], with
// stride counted in floats; the floats between points are left as is.
// Every point that fits entirely in data is transformed. It returns the
// number of points transformed, and an error wrapping
// [ErrInvalidArgument] if stride is less than 3.
func (m Matrix3x4) BatchTransformPointStride(data []float32, stride int) (int, error) {
	return stridedVector3(data, stride, "BatchTransformPointStride", m.TransformPoint)
}

// BatchTransformDirStride is [Matrix3x4.BatchTransformPointStride] for directions.
func (m Matrix3x4) BatchTransformDirStride(data []float32, stride int) (int, error) {
	return stridedVector3(data, stride, "BatchTransformDirStride", m.TransformDir)
}

// BatchTransformStride is [Matrix3x4.BatchTransformPointStride] for
// 4-component vectors, which need a stride of at least 4.
func (m Matrix3x4) BatchTransformStride(data []float32, stride int) (int, error) {
	if stride < 4 {
		return 0, fmt.Errorf("math32.Matrix3x4.BatchTransformStride: stride %d < 4: %w", stride, ErrInvalidArgument)
	}
	n := 0
	var v Vector4
	for off := 0; off+4 <= len(data); off += stride {
		v.FromSlice(data, off)
		m.Transform(v).ToSlice(data, off)
		n++
	}
	return n, nil
}

func stridedVector3(data []float32, stride int, op string, fun func(Vector3) Vector3) (int, error) {
	if stride < 3 {
		return 0, fmt.Errorf("math32.Matrix3x4.%s: stride %d < 3: %w", op, stride, ErrInvalidArgument)
	}
	n := 0
	var v Vector3
	for off := 0; off+3 <= len(data); off += stride {
		v.FromSlice(data, off)
		fun(v).ToSlice(data, off)
		n++
	}
	return n, nil
}
