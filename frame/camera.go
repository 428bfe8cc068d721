// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"cogentcore.org/cubesphere/math32"
)

// ProjectionOptions are the perspective projection parameters of a
// [Camera]. Zero fields use the defaults: a 2π/5 vertical field of view,
// a 16/9 aspect ratio and depth planes at 1 and 2000.
type ProjectionOptions struct {
	FovY        float32
	AspectRatio float32
	ZNear       float32
	ZFar        float32
}

// Matrix returns the perspective projection matrix.
func (po ProjectionOptions) Matrix() math32.Matrix4 {
	or := func(v, def float32) float32 {
		if v == 0 {
			return def
		}
		return v
	}
	return math32.Perspective(
		or(po.FovY, 2*math32.Pi/5),
		or(po.AspectRatio, 16.0/9.0),
		or(po.ZNear, 1),
		or(po.ZFar, 2000),
	)
}

// Camera is a perspective camera at Eye looking at Target.
type Camera struct {

	// Eye is the position of the camera.
	Eye math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// Projection is the perspective projection matrix.
	Projection math32.Matrix4
}

// NewCamera returns a new camera with the given position, target and
// projection options.
func NewCamera(eye, target math32.Vector3, opts ProjectionOptions) *Camera {
	return &Camera{Eye: eye, Target: target, Projection: opts.Matrix()}
}

// View returns the view matrix, mapping world space to camera space.
func (cm *Camera) View() math32.Matrix4 {
	return math32.LookAt(cm.Eye, cm.Target)
}

// ViewProjection returns the view matrix followed by the projection.
func (cm *Camera) ViewProjection() math32.Matrix4 {
	return cm.Projection.Mul(cm.View())
}

// Orient turns the view direction around the eye: by pitch around the
// X axis and then by yaw around the Y axis. The eye does not move.
func (cm *Camera) Orient(yaw, pitch float32) {
	rot := math32.RotationY4(yaw).Mul(math32.RotationX4(pitch))
	dir := cm.Target.Sub(cm.Eye)
	cm.Target = cm.Eye.Add(dir.MulMatrix4AsVector(rot))
}
