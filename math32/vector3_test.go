// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3(t *testing.T) {
	v := Vec3(1, 2, 3)
	w := Vec3(4, -5, 6)

	assert.Equal(t, Vec3(5, -3, 9), v.Add(w))
	assert.Equal(t, Vec3(2, 3, 4), v.AddScalar(1))
	assert.Equal(t, Vec3(-3, 7, -3), v.Sub(w))
	assert.Equal(t, Vec3(0, 1, 2), v.SubScalar(1))
	assert.Equal(t, Vec3(4, -10, 18), v.Mul(w))
	assert.Equal(t, Vec3(2, 4, 6), v.MulScalar(2))
	assert.Equal(t, Vec3(0.25, -0.4, 0.5), v.Div(w))
	assert.Equal(t, Vec3(0.5, 1, 1.5), v.DivScalar(2))
	assert.Equal(t, Vector3{}, v.DivScalar(0))
	assert.Equal(t, Vec3(-1, -2, -3), v.Negate())

	// operations never modify the receiver
	assert.Equal(t, Vec3(1, 2, 3), v)

	assert.Equal(t, float32(12), v.Dot(w))
	assert.Equal(t, Vec3(27, 6, -13), v.Cross(w))
	assert.Equal(t, float32(5), Vec3(3, 4, 0).Length())
	assert.Equal(t, float32(25), Vec3(3, 4, 0).LengthSquared())
	assert.Equal(t, float32(2), v.Dim(Y))
	assert.Equal(t, "(1, 2, 3)", v.String())
}

func TestVector3Normal(t *testing.T) {
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
	n := Vec3(3, 0, 4).Normal()
	assert.Equal(t, Vec3(0.6, 0, 0.8), n)
	assert.InDelta(t, 1, Vec3(-2, 7, 0.5).Normal().Length(), 1e-6)
}

func TestVector3MulMatrix4(t *testing.T) {
	m := Translation4(1, 2, 3).Mul(Scaling4(2, 2, 2))
	v := Vec3(1, 1, 1)
	assert.Equal(t, Vec3(3, 4, 5), v.MulMatrix4AsPoint(m))
	assert.Equal(t, m.MulVector3AsPoint(v), v.MulMatrix4AsPoint(m))
	// directions ignore the translation
	assert.Equal(t, Vec3(2, 2, 2), v.MulMatrix4AsVector(m))
}

func TestVector3Units(t *testing.T) {
	assert.Equal(t, Vec3(0, 1, 0), Vector3Up())
	assert.Equal(t, Vec3(0, -1, 0), Vector3Down())
	assert.Equal(t, Vec3(-1, 0, 0), Vector3Left())
	assert.Equal(t, Vec3(1, 0, 0), Vector3Right())
	assert.Equal(t, Vec3(0, 0, 1), Vector3Forward())
	assert.Equal(t, Vec3(0, 0, -1), Vector3Back())

	// right-handed: right x up = forward
	assert.Equal(t, Vector3Forward(), Vector3Right().Cross(Vector3Up()))
	assert.Equal(t, Vector3Right(), Vector3Up().Cross(Vector3Forward()))
}

func TestVector3All(t *testing.T) {
	v := Vec3(7, 8, 9)
	assert.Equal(t, []float32{7, 8, 9}, slices.Collect(v.All()))
	// restartable
	assert.Equal(t, []float32{7, 8, 9}, slices.Collect(v.All()))

	var first []float32
	for c := range v.All() {
		first = append(first, c)
		break
	}
	assert.Equal(t, []float32{7}, first)

	buf := make([]float32, 5)
	v.ToSlice(buf, 2)
	assert.Equal(t, []float32{0, 0, 7, 8, 9}, buf)
	assert.Equal(t, v, Vector3FromSlice(buf, 2))
}
