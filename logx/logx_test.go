// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()

	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf))
	UserLevel = slog.LevelInfo
	logger.Debug("hidden")
	logger.Info("shown", "frame", 3)
	logger.With("mesh", 1).WithGroup("g").Warn("grouped", "n", 2)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown frame=3")
	// a bytes.Buffer is not a terminal, so levels are not colored
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "mesh=1 g.n=2")

	// the level is read on every record
	buf.Reset()
	UserLevel = slog.LevelError
	logger.Warn("now hidden")
	assert.Empty(t, buf.String())
}

func TestDefaultLogger(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()
	UserLevel = slog.LevelDebug
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}
