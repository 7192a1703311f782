// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "cogentcore.org/affine/base/errors"

var (
	// ErrInvalidArgument is returned by checked operations whose
	// precondition does not hold, such as a non-normalized quaternion
	// passed to [Matrix3x4.SetRotatePartQuat] or a sheared matrix
	// passed to [Matrix3x4.Decompose].
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSingular is returned when a matrix cannot be inverted
	// or decomposed because its determinant or one of its scale
	// factors is (near) zero.
	ErrSingular = errors.New("singular matrix")
)
