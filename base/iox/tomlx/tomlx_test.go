// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pose struct {
	Name      string
	Translate []float32
	Degrees   bool
}

func TestRoundTrip(t *testing.T) {
	p := pose{Name: "arm", Translate: []float32{1.5, -2, 3}, Degrees: true}
	b, err := WriteBytes(&p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Name")
	assert.Contains(t, string(b), "arm")

	var q pose
	require.NoError(t, ReadBytes(&q, b))
	assert.Equal(t, p, q)

	file := filepath.Join(t.TempDir(), "pose.toml")
	require.NoError(t, Save(&p, file))
	var r pose
	require.NoError(t, Open(&r, file))
	assert.Equal(t, p, r)
	require.NoError(t, OpenFiles(&r, file))
}

func TestUnknownField(t *testing.T) {
	var p pose
	err := ReadBytes(&p, []byte("Name = 'x'\nRotate = 1.0\n"))
	assert.Error(t, err)
}
