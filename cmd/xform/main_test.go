// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/affine/base/iox/yamlx"
	"cogentcore.org/affine/math32"
	"cogentcore.org/affine/xform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var arm = filepath.Join("..", "..", "xform", "testdata", "arm.toml")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var b bytes.Buffer
	cmd.SetOut(&b)
	cmd.SetErr(&b)
	cmd.SetArgs(append([]string{"-q"}, args...))
	err := cmd.Execute()
	return b.String(), err
}

func TestInspect(t *testing.T) {
	out, err := run(t, "inspect", arm, "base", "sheared")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "base\n"), out)
	assert.Contains(t, out, "euler ZYX (deg)")
	assert.Contains(t, out, "inverse (no-scale)")
	assert.Contains(t, out, "not decomposable")
	assert.Contains(t, out, "inverse (general)")

	out, err = run(t, "inspect", "--format", "yaml", "--order", "xyz", arm)
	require.NoError(t, err)
	var rs []xform.Report
	require.NoError(t, yamlx.ReadBytes(&rs, []byte(out)))
	require.Len(t, rs, 4)
	assert.Equal(t, math32.EulerXYZ, rs[0].Order)
	assert.Equal(t, xform.UniformScale, rs[1].InverseKind)

	out, err = run(t, "inspect", "--format", "toml", arm, "mirror")
	require.NoError(t, err)
	assert.Contains(t, out, "[[report]]")

	_, err = run(t, "inspect", arm, "missing")
	assert.ErrorIs(t, err, xform.ErrInvalid)
	_, err = run(t, "inspect", "--format", "json", arm)
	assert.Error(t, err)
	_, err = run(t, "inspect", "--tolerance", "0", arm)
	assert.Error(t, err)
}

func TestCompose(t *testing.T) {
	out, err := run(t, "compose", arm)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "mirror * base\n"), out)
	assert.Contains(t, out, "negative-scale")

	out, err = run(t, "compose", arm, "base", "base")
	require.NoError(t, err)
	assert.Contains(t, out, "base * base")
}

func TestEuler(t *testing.T) {
	out, err := run(t, "euler", "--degrees", "zyx", "30", "20", "10")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13)
	assert.Contains(t, lines, "ZYX 30.0000 20.0000 10.0000")

	_, err = run(t, "euler", "ABC", "1", "2", "3")
	assert.ErrorIs(t, err, math32.ErrInvalidArgument)
	_, err = run(t, "euler", "XYZ", "1", "x", "3")
	assert.Error(t, err)
}

func TestInvert(t *testing.T) {
	out, err := run(t, "invert", arm, "elbow")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "elbow (uniform-scale)\n"), out)
}

func TestApply(t *testing.T) {
	out, err := run(t, "apply", arm, "base", "1,0,0", "0,0,0")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1,2,3", lines[1])

	out, err = run(t, "apply", "--dirs", arm, "mirror", "1,2,3")
	require.NoError(t, err)
	assert.Equal(t, "-1,2,3\n", out)

	_, err = run(t, "apply", arm, "base", "1,2")
	assert.Error(t, err)
}

func TestBake(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "baked.yaml")
	_, err := run(t, "bake", arm, fn)
	require.NoError(t, err)
	b, err := xform.Open(fn)
	require.NoError(t, err)
	d, err := xform.Open(arm)
	require.NoError(t, err)
	w, err := d.World("elbow")
	require.NoError(t, err)
	bw, err := b.World("elbow")
	require.NoError(t, err)
	assert.True(t, w.Equals(bw, 1e-5))
	assert.Empty(t, b.Transform("elbow").Parent)
}
