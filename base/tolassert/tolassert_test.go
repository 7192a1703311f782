// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	failed bool
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
}

func TestEqualTol(t *testing.T) {
	EqualTol(t, float32(1), 1.0005, 0.001)
	EqualTol(t, 3.14159, 3.1416, 1e-4)

	r := &recorder{}
	assert.False(t, EqualTol(r, float32(1), 1.1, 0.001))
	assert.True(t, r.failed)
}

func TestEqualTolSlice(t *testing.T) {
	EqualTolSlice(t, []float32{1, 2, 3}, []float32{1.0001, 1.9999, 3}, 1e-3)

	assert.False(t, EqualTolSlice(&recorder{}, []float32{1, 2}, []float32{1, 2.5}, 1e-3))
	assert.False(t, EqualTolSlice(&recorder{}, []float32{1, 2}, []float32{1}, 1e-3))
}
