// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame computes the per-frame uniform values of the cube-sphere
// renderer from explicit [Settings]: the elapsed time and the combined
// model-view-projection matrix. It also provides a settings file
// [Watcher] and a [Driver] that runs the frame loop.
package frame

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/cubesphere/base/errors"
	"cogentcore.org/cubesphere/math32"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrFormat is returned when a settings file has an unsupported extension.
var ErrFormat = errors.New("frame: unsupported settings format")

// Settings are the user controls of a frame. Angles are in radians.
type Settings struct {

	// Speed divides the elapsed seconds to give the time uniform.
	Speed float32 `toml:"speed" yaml:"speed"`

	// FovY is the vertical field of view.
	FovY float32 `toml:"fovY" yaml:"fovY"`

	// AspectRatio is the viewport width over its height.
	AspectRatio float32 `toml:"aspectRatio" yaml:"aspectRatio"`

	// ZNear and ZFar are the depth clipping planes.
	ZNear float32 `toml:"zNear" yaml:"zNear"`
	ZFar  float32 `toml:"zFar" yaml:"zFar"`

	// Translate moves the model.
	Translate math32.Vector3 `toml:"translate" yaml:"translate"`

	// Rotate is the model rotation around the X, Y and Z axes,
	// applied in Z, Y, X order.
	Rotate math32.Vector3 `toml:"rotate" yaml:"rotate"`

	// CameraYaw rotates the view direction around the Y axis.
	CameraYaw float32 `toml:"cameraYaw" yaml:"cameraYaw"`

	// CameraPitch rotates the view direction around the X axis.
	CameraPitch float32 `toml:"cameraPitch" yaml:"cameraPitch"`
}

// Defaults sets the default settings.
func (s *Settings) Defaults() {
	*s = Settings{
		Speed:       10,
		FovY:        0.5,
		AspectRatio: 16.0 / 9.0,
		ZNear:       1,
		ZFar:        2000,
	}
}

// Validate returns an error if the settings cannot produce a frame.
func (s *Settings) Validate() error {
	switch {
	case !(s.Speed > 0):
		return fmt.Errorf("frame: speed must be positive, not %g", s.Speed)
	case !(s.FovY > 0 && s.FovY < math32.Pi):
		return fmt.Errorf("frame: fovY must be in (0, π), not %g", s.FovY)
	case !(s.AspectRatio > 0):
		return fmt.Errorf("frame: aspect ratio must be positive, not %g", s.AspectRatio)
	case !(s.ZNear > 0):
		return fmt.Errorf("frame: zNear must be positive, not %g", s.ZNear)
	case !(s.ZFar > s.ZNear):
		return fmt.Errorf("frame: zFar %g must be beyond zNear %g", s.ZFar, s.ZNear)
	}
	return nil
}

// Open reads settings from the given .toml or .yaml file. Fields missing
// from the file keep their [Settings.Defaults] values.
func Open(filename string) (Settings, error) {
	var s Settings
	s.Defaults()
	b, err := os.ReadFile(filename)
	if err != nil {
		return s, err
	}
	switch ext(filename) {
	case ".toml":
		err = toml.Unmarshal(b, &s)
	case ".yaml":
		err = yaml.Unmarshal(b, &s)
	default:
		return s, fmt.Errorf("%w: %q", ErrFormat, filename)
	}
	if err != nil {
		return s, fmt.Errorf("frame: reading %q: %w", filename, err)
	}
	return s, s.Validate()
}

// Save writes the settings to the given .toml or .yaml file.
func (s *Settings) Save(filename string) error {
	var b []byte
	var err error
	switch ext(filename) {
	case ".toml":
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		err = enc.Encode(s)
		b = buf.Bytes()
	case ".yaml":
		b, err = yaml.Marshal(s)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, filename)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

func ext(filename string) string {
	e := strings.ToLower(filepath.Ext(filename))
	if e == ".yml" {
		return ".yaml"
	}
	return e
}
