// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"iter"
)

// Matrix4 is a 4x4 transform matrix stored as 16 float32 values
// in row-major order, laid out exactly as the shader consumes it.
// Cells 12, 13 and 14 hold the translation.
//
// Composition convention: a.Mul(b) applies b first and then a,
// so Identity4().Translate(t).RotateY(r) rotates a point and then
// translates it, and projection.Mul(view).Mul(model) is the
// model-view-projection matrix.
//
// The zero value is the zero matrix; use [Identity4] as the starting
// point for any transform.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromSlice returns a matrix read from the given slice, starting at offset.
func Matrix4FromSlice(array []float32, offset int) Matrix4 {
	var m Matrix4
	copy(m[:], array[offset:offset+16])
	return m
}

// ToSlice copies this matrix's values to the given slice, starting at offset.
func (m Matrix4) ToSlice(array []float32, offset int) {
	copy(array[offset:offset+16], m[:])
}

// All returns an iterator over the 16 values in storage order.
func (m Matrix4) All() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for _, v := range m {
			if !yield(v) {
				return
			}
		}
	}
}

func (m Matrix4) String() string {
	return fmt.Sprintf("[%v %v %v %v]\n[%v %v %v %v]\n[%v %v %v %v]\n[%v %v %v %v]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11], m[12], m[13], m[14], m[15])
}

// At returns the value in the given row and column.
func (m Matrix4) At(row, col int) float32 {
	return m[row*4+col]
}

// Mul returns the product of m and other: the transform that
// applies other first and then m.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	a := m
	b := other
	var c Matrix4

	a00, a01, a02, a03 := a[0], a[1], a[2], a[3]
	a10, a11, a12, a13 := a[4], a[5], a[6], a[7]
	a20, a21, a22, a23 := a[8], a[9], a[10], a[11]
	a30, a31, a32, a33 := a[12], a[13], a[14], a[15]

	b00, b01, b02, b03 := b[0], b[1], b[2], b[3]
	b10, b11, b12, b13 := b[4], b[5], b[6], b[7]
	b20, b21, b22, b23 := b[8], b[9], b[10], b[11]
	b30, b31, b32, b33 := b[12], b[13], b[14], b[15]

	c[0] = b00*a00 + b01*a10 + b02*a20 + b03*a30
	c[1] = b00*a01 + b01*a11 + b02*a21 + b03*a31
	c[2] = b00*a02 + b01*a12 + b02*a22 + b03*a32
	c[3] = b00*a03 + b01*a13 + b02*a23 + b03*a33

	c[4] = b10*a00 + b11*a10 + b12*a20 + b13*a30
	c[5] = b10*a01 + b11*a11 + b12*a21 + b13*a31
	c[6] = b10*a02 + b11*a12 + b12*a22 + b13*a32
	c[7] = b10*a03 + b11*a13 + b12*a23 + b13*a33

	c[8] = b20*a00 + b21*a10 + b22*a20 + b23*a30
	c[9] = b20*a01 + b21*a11 + b22*a21 + b23*a31
	c[10] = b20*a02 + b21*a12 + b22*a22 + b23*a32
	c[11] = b20*a03 + b21*a13 + b22*a23 + b23*a33

	c[12] = b30*a00 + b31*a10 + b32*a20 + b33*a30
	c[13] = b30*a01 + b31*a11 + b32*a21 + b33*a31
	c[14] = b30*a02 + b31*a12 + b32*a22 + b33*a32
	c[15] = b30*a03 + b31*a13 + b32*a23 + b33*a33

	return c
}

// MulVector4 returns the given homogeneous vector transformed by this matrix.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{
		X: v.X*m[0] + v.Y*m[4] + v.Z*m[8] + v.W*m[12],
		Y: v.X*m[1] + v.Y*m[5] + v.Z*m[9] + v.W*m[13],
		Z: v.X*m[2] + v.Y*m[6] + v.Z*m[10] + v.W*m[14],
		W: v.X*m[3] + v.Y*m[7] + v.Z*m[11] + v.W*m[15],
	}
}

// MulVector3AsPoint returns the given point (w = 1) transformed by
// this matrix. If the resulting w is neither 0 nor 1 the perspective
// divide is applied.
func (m Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	r := m.MulVector4(Vector4FromVector3(v, 1))
	if r.W == 0 || r.W == 1 {
		return Vec3(r.X, r.Y, r.Z)
	}
	return r.PerspDiv()
}

// MulVector3AsVector returns the given direction (w = 0) transformed
// by this matrix, so translation has no effect.
func (m Matrix4) MulVector3AsVector(v Vector3) Vector3 {
	r := m.MulVector4(Vector4FromVector3(v, 0))
	return Vec3(r.X, r.Y, r.Z)
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	var t Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c*4+r] = m[r*4+c]
		}
	}
	return t
}

// Determinant calculates and returns the determinant of this matrix.
func (m Matrix4) Determinant() float32 {
	c := m.cofactors()
	return c.det()
}

// Inverse returns the inverse of this matrix, computed by cofactor
// expansion over 2x2 sub-determinants. The inverse of a singular
// matrix (determinant 0) is not defined: the result then holds
// non-finite values. Check [Matrix4.Determinant] first when the
// input may be degenerate.
func (m Matrix4) Inverse() Matrix4 {
	a := m
	c := m.cofactors()
	id := 1 / c.det()

	a00, a01, a02, a03 := a[0], a[1], a[2], a[3]
	a10, a11, a12, a13 := a[4], a[5], a[6], a[7]
	a20, a21, a22, a23 := a[8], a[9], a[10], a[11]
	a30, a31, a32, a33 := a[12], a[13], a[14], a[15]

	var r Matrix4
	r[0] = (a11*c.b11 - a12*c.b10 + a13*c.b09) * id
	r[1] = (a02*c.b10 - a01*c.b11 - a03*c.b09) * id
	r[2] = (a31*c.b05 - a32*c.b04 + a33*c.b03) * id
	r[3] = (a22*c.b04 - a21*c.b05 - a23*c.b03) * id
	r[4] = (a12*c.b08 - a10*c.b11 - a13*c.b07) * id
	r[5] = (a00*c.b11 - a02*c.b08 + a03*c.b07) * id
	r[6] = (a32*c.b02 - a30*c.b05 - a33*c.b01) * id
	r[7] = (a20*c.b05 - a22*c.b02 + a23*c.b01) * id
	r[8] = (a10*c.b10 - a11*c.b08 + a13*c.b06) * id
	r[9] = (a01*c.b08 - a00*c.b10 - a03*c.b06) * id
	r[10] = (a30*c.b04 - a31*c.b02 + a33*c.b00) * id
	r[11] = (a21*c.b02 - a20*c.b04 - a23*c.b00) * id
	r[12] = (a11*c.b07 - a10*c.b09 - a12*c.b06) * id
	r[13] = (a00*c.b09 - a01*c.b07 + a02*c.b06) * id
	r[14] = (a31*c.b01 - a30*c.b03 - a32*c.b00) * id
	r[15] = (a20*c.b03 - a21*c.b01 + a22*c.b00) * id
	return r
}

// subDets holds the 2x2 sub-determinants of the top two and
// bottom two rows used by Determinant and Inverse.
type subDets struct {
	b00, b01, b02, b03, b04, b05 float32
	b06, b07, b08, b09, b10, b11 float32
}

func (m Matrix4) cofactors() subDets {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]
	return subDets{
		b00: a00*a11 - a01*a10,
		b01: a00*a12 - a02*a10,
		b02: a00*a13 - a03*a10,
		b03: a01*a12 - a02*a11,
		b04: a01*a13 - a03*a11,
		b05: a02*a13 - a03*a12,
		b06: a20*a31 - a21*a30,
		b07: a20*a32 - a22*a30,
		b08: a20*a33 - a23*a30,
		b09: a21*a32 - a22*a31,
		b10: a21*a33 - a23*a31,
		b11: a22*a33 - a23*a32,
	}
}

func (c subDets) det() float32 {
	return c.b00*c.b11 - c.b01*c.b10 + c.b02*c.b09 + c.b03*c.b08 - c.b04*c.b07 + c.b05*c.b06
}

// Elementary transforms:

// Translation4 returns a matrix that translates by the given amounts.
func Translation4(tx, ty, tz float32) Matrix4 {
	var m Matrix4
	m[0] = 1
	m[5] = 1
	m[10] = 1
	m[12] = tx
	m[13] = ty
	m[14] = tz
	m[15] = 1
	return m
}

// RotationX4 returns a matrix that rotates around the X axis
// by the given angle in radians.
func RotationX4(angle float32) Matrix4 {
	s, c := Sincos(angle)
	var m Matrix4
	m[0] = 1
	m[5] = c
	m[6] = s
	m[9] = -s
	m[10] = c
	m[15] = 1
	return m
}

// RotationY4 returns a matrix that rotates around the Y axis
// by the given angle in radians.
func RotationY4(angle float32) Matrix4 {
	s, c := Sincos(angle)
	var m Matrix4
	m[0] = c
	m[2] = -s
	m[5] = 1
	m[8] = s
	m[10] = c
	m[15] = 1
	return m
}

// RotationZ4 returns a matrix that rotates around the Z axis
// by the given angle in radians.
func RotationZ4(angle float32) Matrix4 {
	s, c := Sincos(angle)
	var m Matrix4
	m[0] = c
	m[1] = s
	m[4] = -s
	m[5] = c
	m[10] = 1
	m[15] = 1
	return m
}

// Scaling4 returns a matrix that scales by the given factors.
func Scaling4(sx, sy, sz float32) Matrix4 {
	var m Matrix4
	m[0] = sx
	m[5] = sy
	m[10] = sz
	m[15] = 1
	return m
}

// Translate returns m composed with a translation, applied before m.
func (m Matrix4) Translate(tx, ty, tz float32) Matrix4 {
	return m.Mul(Translation4(tx, ty, tz))
}

// RotateX returns m composed with a rotation around X, applied before m.
func (m Matrix4) RotateX(angle float32) Matrix4 {
	return m.Mul(RotationX4(angle))
}

// RotateY returns m composed with a rotation around Y, applied before m.
func (m Matrix4) RotateY(angle float32) Matrix4 {
	return m.Mul(RotationY4(angle))
}

// RotateZ returns m composed with a rotation around Z, applied before m.
func (m Matrix4) RotateZ(angle float32) Matrix4 {
	return m.Mul(RotationZ4(angle))
}

// Scale returns m composed with a scale, applied before m.
func (m Matrix4) Scale(sx, sy, sz float32) Matrix4 {
	return m.Mul(Scaling4(sx, sy, sz))
}

// Camera and projection:

// LookAt returns a view matrix for a camera at eye looking at target,
// with a fixed world up of (0, 1, 0). It transforms world space
// into camera space, where the camera looks down -Z.
// The result is not defined when eye == target or when the view
// direction is parallel to the world up.
func LookAt(eye, target Vector3) Matrix4 {
	zAxis := eye.Sub(target).Normal()
	xAxis := Vector3Up().Cross(zAxis).Normal()
	yAxis := zAxis.Cross(xAxis).Normal()

	var m Matrix4
	m[0] = xAxis.X
	m[1] = yAxis.X
	m[2] = zAxis.X
	m[3] = 0

	m[4] = xAxis.Y
	m[5] = yAxis.Y
	m[6] = zAxis.Y
	m[7] = 0

	m[8] = xAxis.Z
	m[9] = yAxis.Z
	m[10] = zAxis.Z
	m[11] = 0

	m[12] = -xAxis.Dot(eye)
	m[13] = -yAxis.Dot(eye)
	m[14] = -zAxis.Dot(eye)
	m[15] = 1
	return m
}

// Perspective returns a symmetric perspective projection matrix.
// fovY is the vertical field of view in radians. Depth maps to
// 0 at zNear and 1 at zFar.
func Perspective(fovY, aspectRatio, zNear, zFar float32) Matrix4 {
	f := Tan(Pi*0.5 - 0.5*fovY)
	rangeInv := 1 / (zNear - zFar)

	var m Matrix4
	m[0] = f / aspectRatio
	m[5] = f
	m[10] = zFar * rangeInv
	m[11] = -1
	m[14] = zNear * zFar * rangeInv
	return m
}

// Orthographic returns an orthographic projection matrix for the
// given view volume. Depth maps to 0 at near and 1 at far, as
// for [Perspective].
func Orthographic(left, right, top, bottom, near, far float32) Matrix4 {
	var m Matrix4
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = 1 / (near - far)
	m[12] = (right + left) / (left - right)
	m[13] = (top + bottom) / (bottom - top)
	m[14] = near / (near - far)
	m[15] = 1
	return m
}
