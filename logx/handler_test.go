// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	level := slog.LevelInfo
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: &level}))

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("transform is sheared", "name", "arm", "det", 2.5)
	assert.Equal(t, "WARN transform is sheared name=arm det=2.5\n", buf.String())

	buf.Reset()
	logger.With("file", "a.toml").WithGroup("m").Error("singular", "det", 0)
	assert.Equal(t, "ERROR singular file=a.toml m.det=0\n", buf.String())

	buf.Reset()
	logger.Info("grouped", slog.Group("scale", "x", 1, "y", 2))
	assert.Equal(t, "INFO grouped scale.x=1 scale.y=2\n", buf.String())

	level = slog.LevelDebug
	buf.Reset()
	logger.Debug("shown")
	assert.Equal(t, "DEBUG shown\n", buf.String())
}

func TestDefaultLogger(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)
	UserLevel = slog.LevelDebug
	SetDefaultLogger()
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	UserLevel = slog.LevelError
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
	UserLevel = defaultUserLevel
}
