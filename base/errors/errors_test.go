// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSingular = New("singular matrix")

func invert(det float32) (float32, error) {
	if det == 0 {
		return 0, fmt.Errorf("invert: %w", errSingular)
	}
	return 1 / det, nil
}

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(old) })
	return &buf
}

func TestLog(t *testing.T) {
	buf := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	_, err := invert(0)
	assert.ErrorIs(t, Log(err), errSingular)
	assert.Contains(t, buf.String(), "singular matrix")
	assert.Contains(t, buf.String(), "errors_test.go")

	buf.Reset()
	assert.Equal(t, float32(0.5), Log1(invert(2)))
	assert.Empty(t, buf.String())
	assert.Equal(t, float32(0), Log1(invert(0)))
	assert.True(t, strings.Contains(buf.String(), "invert: singular matrix"))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errSingular) })
	assert.Equal(t, float32(0.25), Must1(invert(4)))
	assert.Panics(t, func() { Must1(invert(0)) })
	assert.Equal(t, float32(0), Ignore1(invert(0)))
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "transform a"))
	_, err := invert(0)
	w := Wrap(err, "transform a")
	assert.EqualError(t, w, "transform a: invert: singular matrix")
	assert.True(t, Is(w, errSingular))
	assert.Equal(t, err, Unwrap(w))

	j := Join(errSingular, nil)
	assert.True(t, Is(j, errSingular))
	assert.Nil(t, Join(nil, nil))
}
