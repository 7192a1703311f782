// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pose struct {
	Name      string
	Translate [3]float32
	Scale     float32
}

var (
	jsonDecoder = NewDecoderFunc(json.NewDecoder)
	jsonEncoder = NewEncoderFunc(json.NewEncoder)
)

func TestReadWriteBytes(t *testing.T) {
	p := pose{Name: "arm", Translate: [3]float32{1, 2, 3}, Scale: 2}
	b, err := WriteBytes(&p, jsonEncoder)
	require.NoError(t, err)

	var q pose
	require.NoError(t, ReadBytes(&q, b, jsonDecoder))
	assert.Equal(t, p, q)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, Save(&pose{Name: "base", Scale: 1}, a, jsonEncoder))
	require.NoError(t, Save(&pose{Name: "override", Translate: [3]float32{0, 5, 0}, Scale: 3}, b, jsonEncoder))

	var p pose
	require.NoError(t, Open(&p, a, jsonDecoder))
	assert.Equal(t, "base", p.Name)

	require.NoError(t, OpenFiles(&p, []string{a, b}, jsonDecoder))
	assert.Equal(t, "override", p.Name)
	assert.Equal(t, float32(3), p.Scale)

	err := OpenFiles(&p, []string{a, filepath.Join(dir, "missing.json")}, jsonDecoder)
	assert.Error(t, err)
	assert.Error(t, Open(&p, filepath.Join(dir, "missing.json"), jsonDecoder))
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{
		"pose.json": {Data: []byte(`{"Name":"fs","Scale":4}`)},
	}
	var p pose
	require.NoError(t, OpenFS(&p, fsys, "pose.json", jsonDecoder))
	assert.Equal(t, pose{Name: "fs", Scale: 4}, p)
	assert.Error(t, OpenFS(&p, fsys, "nope.json", jsonDecoder))
}
