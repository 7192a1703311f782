// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pose struct {
	Name      string    `yaml:"name"`
	Translate []float32 `yaml:"translate"`
}

func TestRoundTrip(t *testing.T) {
	p := pose{Name: "arm", Translate: []float32{1.5, -2, 3}}
	b, err := WriteBytes(&p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "name: arm")

	var q pose
	require.NoError(t, ReadBytes(&q, b))
	assert.Equal(t, p, q)

	var buf bytes.Buffer
	require.NoError(t, Write(&p, &buf))
	require.NoError(t, Read(&q, &buf))
	assert.Equal(t, p, q)

	file := filepath.Join(t.TempDir(), "pose.yaml")
	require.NoError(t, Save(&p, file))
	var r pose
	require.NoError(t, Open(&r, file))
	assert.Equal(t, p, r)
}

func TestUnknownField(t *testing.T) {
	var p pose
	assert.Error(t, ReadBytes(&p, []byte("name: x\nrotate: 1\n")))
}
