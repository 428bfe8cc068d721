// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cogentcore.org/cubesphere/uniform"
)

// Driver runs the frame loop: on every tick it updates its uniform
// buffer from the current settings and hands it to Submit. The driver
// is the only writer of the buffer.
type Driver struct {

	// Uniforms is the per-frame buffer, made by [NewUniforms].
	Uniforms *uniform.Buffer

	// Submit receives the buffer after each update, for example to
	// upload it to the GPU. It must not keep the buffer past the call.
	Submit func(frame int, buf *uniform.Buffer) error

	// Interval is the time between frames; a value <= 0 uses
	// [DefaultInterval].
	Interval time.Duration

	// Frames is the number of frames to run; 0 runs until the
	// context is done.
	Frames int

	mu       sync.Mutex
	settings Settings
}

// DefaultInterval is the frame interval used when [Driver.Interval] is not positive.
const DefaultInterval = time.Second / 60

// NewDriver returns a new driver at 60 frames per second.
func NewDriver(s Settings, submit func(frame int, buf *uniform.Buffer) error) *Driver {
	return &Driver{
		Uniforms: NewUniforms(),
		Submit:   submit,
		Interval: DefaultInterval,
		settings: s,
	}
}

// Settings returns the current settings.
func (d *Driver) Settings() Settings {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settings
}

// SetSettings replaces the settings; they take effect on the next frame.
// It is safe to call from any goroutine.
func (d *Driver) SetSettings(s Settings) {
	d.mu.Lock()
	d.settings = s
	d.mu.Unlock()
}

// Frame updates the uniforms for the given frame number and elapsed
// time, and submits them.
func (d *Driver) Frame(n int, elapsed time.Duration) error {
	s := d.Settings()
	if err := Update(d.Uniforms, s, Time(elapsed, s)); err != nil {
		return err
	}
	if d.Submit == nil {
		return nil
	}
	return d.Submit(n, d.Uniforms)
}

// Run renders frames until the context is done or [Driver.Frames]
// frames have been rendered. It returns the first Submit error.
func (d *Driver) Run(ctx context.Context) error {
	interval := d.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	start := time.Now()
	for n := 0; d.Frames <= 0 || n < d.Frames; n++ {
		if ctx.Err() != nil {
			return nil
		}
		if err := d.Frame(n, time.Since(start)); err != nil {
			return err
		}
		slog.Debug("frame", "n", n)
		if d.Frames > 0 && n == d.Frames-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}
