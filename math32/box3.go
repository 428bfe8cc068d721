// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Box3 represents a 3D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Empty returns a new [Box3] with empty minimum and maximum values.
func B3Empty() Box3 {
	bx := Box3{}
	bx.SetEmpty()
	return bx
}

// SetEmpty set this bounding box to empty (min / max +/- Infinity)
func (b *Box3) SetEmpty() {
	b.Min = Vector3Scalar(Infinity)
	b.Max = Vector3Scalar(-Infinity)
}

// IsEmpty returns true if this bounding box is empty (max < min on any coord).
func (b Box3) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y) || (b.Max.Z < b.Min.Z)
}

// ExpandByPoints may expand this bounding box from the specified array of points.
func (b *Box3) ExpandByPoints(points []Vector3) {
	for _, p := range points {
		b.ExpandByPoint(p)
	}
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box3) ExpandByPoint(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Center returns the center of the bounding box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns whether this bounding box contains the specified point.
func (b Box3) ContainsPoint(point Vector3) bool {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y ||
		point.Z < b.Min.Z || point.Z > b.Max.Z {
		return false
	}
	return true
}

// MulMatrix4 multiplies the specified matrix to the vertices of this
// bounding box and computes the resulting spanning box of the transformed
// vertices.
func (b Box3) MulMatrix4(m Matrix4) Box3 {
	xax := Vec3(m[0], m[1], m[2]).MulScalar(b.Min.X)
	xbx := Vec3(m[0], m[1], m[2]).MulScalar(b.Max.X)
	yay := Vec3(m[4], m[5], m[6]).MulScalar(b.Min.Y)
	yby := Vec3(m[4], m[5], m[6]).MulScalar(b.Max.Y)
	zaz := Vec3(m[8], m[9], m[10]).MulScalar(b.Min.Z)
	zbz := Vec3(m[8], m[9], m[10]).MulScalar(b.Max.Z)

	nb := Box3{}
	nb.Min = xax.Min(xbx).Add(yay.Min(yby)).Add(zaz.Min(zbz)).Add(Vec3(m[12], m[13], m[14]))
	nb.Max = xax.Max(xbx).Add(yay.Max(yby)).Add(zaz.Max(zbz)).Add(Vec3(m[12], m[13], m[14]))
	return nb
}
