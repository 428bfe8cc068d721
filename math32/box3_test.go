// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox3(t *testing.T) {
	bb := B3Empty()
	assert.True(t, bb.IsEmpty())
	bb.ExpandByPoints([]Vector3{Vec3(1, -2, 0), Vec3(-1, 2, 4)})
	assert.False(t, bb.IsEmpty())
	assert.Equal(t, B3(-1, -2, 0, 1, 2, 4), bb)
	assert.Equal(t, Vec3(0, 0, 2), bb.Center())
	assert.Equal(t, Vec3(2, 4, 4), bb.Size())
	assert.True(t, bb.ContainsPoint(Vec3(0, 1, 3)))
	assert.False(t, bb.ContainsPoint(Vec3(0, 3, 3)))

	tb := bb.MulMatrix4(Translation4(1, 1, 1))
	assert.Equal(t, B3(0, -1, 1, 2, 3, 5), tb)
	// a quarter turn around Z swaps the x and y extents
	rb := bb.MulMatrix4(RotationZ4(Pi / 2))
	TolAssertEqualVector(t, StandardTol, Vec3(-2, -1, 0), rb.Min)
	TolAssertEqualVector(t, StandardTol, Vec3(2, 1, 4), rb.Max)
}

func TestTriangle(t *testing.T) {
	tri := NewTriangle(Vec3(0, 0, 0), Vec3(2, 0, 0), Vec3(0, 2, 0))
	assert.Equal(t, float32(2), tri.Area())
	assert.Equal(t, Vec3(0, 0, 1), tri.Normal())
	TolAssertEqualVector(t, StandardTol, Vec3(2.0/3, 2.0/3, 0), tri.Midpoint())

	// reversed winding flips the normal
	assert.Equal(t, Vec3(0, 0, -1), Normal(tri.A, tri.C, tri.B))
	assert.Equal(t, Vector3{}, Normal(tri.A, tri.A, tri.B))
}
