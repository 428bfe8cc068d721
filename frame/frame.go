// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"time"

	"cogentcore.org/cubesphere/base/errors"
	"cogentcore.org/cubesphere/math32"
	"cogentcore.org/cubesphere/uniform"
)

// Names of the per-frame uniform fields.
const (
	TimeField = "time"
	MVPField  = "modelViewProjection"
)

// Eye returns the camera position of every frame, looking at the origin.
func Eye() math32.Vector3 { return math32.Vec3(0, 0, -10) }

// NewUniforms returns the per-frame uniform buffer, laid out with the
// [uniform.WGSL] rules: the time at offset 0 and the model-view-projection
// matrix at offset 4, 20 elements in all.
func NewUniforms() *uniform.Buffer {
	return errors.Must1(uniform.NewBuffer(uniform.WGSL(),
		uniform.NumberEntry(TimeField, 0),
		uniform.Matrix4Entry(MVPField, math32.Identity4()),
	))
}

// Model returns the model matrix: rotation around Z, then Y, then X,
// followed by the translation.
func Model(s Settings) math32.Matrix4 {
	return math32.Identity4().
		Translate(s.Translate.X, s.Translate.Y, s.Translate.Z).
		RotateX(s.Rotate.X).
		RotateY(s.Rotate.Y).
		RotateZ(s.Rotate.Z)
}

// NewFrameCamera returns the camera of a frame with the given settings,
// at [Eye] looking at the origin and turned by the camera yaw and pitch.
func NewFrameCamera(s Settings) *Camera {
	cm := NewCamera(Eye(), math32.Vector3{}, ProjectionOptions{
		FovY:        s.FovY,
		AspectRatio: s.AspectRatio,
		ZNear:       s.ZNear,
		ZFar:        s.ZFar,
	})
	cm.Orient(s.CameraYaw, s.CameraPitch)
	return cm
}

// ModelViewProjection returns the combined matrix that takes model
// space points to clip space.
func ModelViewProjection(s Settings) math32.Matrix4 {
	return NewFrameCamera(s).ViewProjection().Mul(Model(s))
}

// Time returns the time uniform value after the given elapsed duration.
// A non-positive speed leaves the seconds unscaled.
func Time(elapsed time.Duration, s Settings) float32 {
	sec := float32(elapsed.Seconds())
	if s.Speed <= 0 {
		return sec
	}
	return sec / s.Speed
}

// Update writes the time and the model-view-projection matrix of the
// given settings into a buffer made by [NewUniforms].
func Update(buf *uniform.Buffer, s Settings, t float32) error {
	if err := buf.SetFloat32(TimeField, t); err != nil {
		return err
	}
	return buf.SetMatrix4(MVPField, ModelViewProjection(s))
}
