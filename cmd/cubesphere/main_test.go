// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/cubesphere/frame"
	"cogentcore.org/cubesphere/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"-q"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestGenerateOBJ(t *testing.T) {
	out, err := runCmd(t, "generate", "-r", "3")
	require.NoError(t, err)
	assert.Equal(t, 6*9, strings.Count(out, "\nv "))
	assert.Equal(t, 6*8, strings.Count(out, "\nf "))
}

func TestGenerateYAMLFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sphere.yaml")
	_, err := runCmd(t, "generate", "-s", "2", "-r", "4", "-f", "yaml", "-o", fn)
	require.NoError(t, err)
	f, err := os.Open(fn)
	require.NoError(t, err)
	defer f.Close()
	meshes, err := shape.ReadYAML(f)
	require.NoError(t, err)
	assert.Len(t, meshes, 24)
}

func TestGenerateErrors(t *testing.T) {
	_, err := runCmd(t, "generate", "-r", "1")
	assert.Error(t, err)
	_, err = runCmd(t, "generate", "-r", "300")
	assert.Error(t, err)
	_, err = runCmd(t, "generate", "-f", "stl")
	assert.Error(t, err)
	_, err = runCmd(t, "generate", "--heightmap", filepath.Join(t.TempDir(), "none.png"))
	assert.Error(t, err)
}

func TestLayout(t *testing.T) {
	out, err := runCmd(t, "layout")
	require.NoError(t, err)
	assert.Contains(t, out, frame.MVPField)
	assert.Contains(t, out, "total: 20 elements (80 bytes), rules: wgsl")

	out, err = runCmd(t, "layout", "--rules", "packed")
	require.NoError(t, err)
	assert.Contains(t, out, "total: 17 elements (68 bytes)")

	_, err = runCmd(t, "layout", "--rules", "std430")
	assert.Error(t, err)
}

func TestFrame(t *testing.T) {
	var s frame.Settings
	s.Defaults()
	s.Translate.Y = 1
	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, s.Save(fn))

	out, err := runCmd(t, "frame", "-c", fn, "--frames", "2", "--fps", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "frame 0 time ")
	assert.Contains(t, out, "frame 1 time ")
	assert.NotContains(t, out, "frame 2 ")

	_, err = runCmd(t, "frame", "--watch")
	assert.Error(t, err)
	_, err = runCmd(t, "frame", "--fps", "0")
	assert.Error(t, err)
	_, err = runCmd(t, "frame", "--fps", "2000000000")
	assert.ErrorContains(t, err, "fps must be in")
}
