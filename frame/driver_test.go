// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/cubesphere/math32"
	"cogentcore.org/cubesphere/uniform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverFrames(t *testing.T) {
	var s Settings
	s.Defaults()
	var frames []int
	var mvps []math32.Matrix4
	d := NewDriver(s, func(n int, buf *uniform.Buffer) error {
		frames = append(frames, n)
		m, err := buf.Matrix4(MVPField)
		mvps = append(mvps, m)
		return err
	})
	d.Interval = time.Millisecond
	d.Frames = 3
	require.NoError(t, d.Run(context.Background()))
	assert.Equal(t, []int{0, 1, 2}, frames)
	for _, m := range mvps {
		assert.Equal(t, ModelViewProjection(s), m)
	}
}

func TestDriverSetSettings(t *testing.T) {
	var s Settings
	s.Defaults()
	d := NewDriver(s, nil)
	require.NoError(t, d.Frame(0, time.Second))
	before, err := d.Uniforms.Matrix4(MVPField)
	require.NoError(t, err)

	s.Translate.X = 3
	d.SetSettings(s)
	assert.Equal(t, s, d.Settings())
	require.NoError(t, d.Frame(1, 2*time.Second))
	after, err := d.Uniforms.Matrix4(MVPField)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
	assert.Equal(t, ModelViewProjection(s), after)
	tm, err := d.Uniforms.Float32(TimeField)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, tm, 1e-6)
}

func TestDriverCancel(t *testing.T) {
	var s Settings
	s.Defaults()
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	d := NewDriver(s, func(int, *uniform.Buffer) error {
		n++
		if n == 2 {
			cancel()
		}
		return nil
	})
	d.Interval = time.Millisecond
	assert.NoError(t, d.Run(ctx))
	assert.Equal(t, 2, n)

	errSubmit := errors.New("lost device")
	d.Submit = func(int, *uniform.Buffer) error { return errSubmit }
	assert.ErrorIs(t, d.Run(context.Background()), errSubmit)
}

func TestDriverInterval(t *testing.T) {
	var s Settings
	s.Defaults()
	n := 0
	d := &Driver{Uniforms: NewUniforms(), Frames: 2, settings: s}
	d.Submit = func(int, *uniform.Buffer) error { n++; return nil }
	for _, iv := range []time.Duration{0, -time.Second, time.Second / 2000000000} {
		n = 0
		d.Interval = iv
		assert.NotPanics(t, func() { assert.NoError(t, d.Run(context.Background())) })
		assert.Equal(t, 2, n)
	}
}

func TestWatcher(t *testing.T) {
	var s Settings
	s.Defaults()
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, s.Save(path))

	changes := make(chan Settings, 8)
	w := NewWatcher(path, func(s Settings) { changes <- s })
	require.NoError(t, w.Start())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// an invalid file is skipped
	require.NoError(t, os.WriteFile(path, []byte("speed = -1.0\n"), 0666))
	s.Speed = 4
	require.NoError(t, s.Save(path))

	timeout := time.After(5 * time.Second)
	for got := false; !got; {
		select {
		case ns := <-changes:
			got = ns.Speed == 4
		case <-timeout:
			t.Fatal("no settings change seen")
		}
	}
	cancel()
	assert.NoError(t, <-done)
}
