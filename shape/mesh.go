// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates cube and cube-sphere meshes: vertex positions
// and 16-bit triangle-list indices ready to be uploaded to the GPU.
package shape

import (
	"fmt"
	"iter"

	"cogentcore.org/cubesphere/base/errors"
	"cogentcore.org/cubesphere/math32"
)

// ErrIndexRange is returned for a mesh index that has no vertex.
var ErrIndexRange = errors.New("shape: index out of range")

// VertexSize is the number of float32 values per vertex in [Mesh.VertexData].
const VertexSize = 3

// MaxResolution is the largest per-mesh resolution whose vertices can all
// be addressed by 16-bit indices.
const MaxResolution = 256

// Mesh is an indexed triangle list. Every 3 indices form one triangle,
// referencing Vertices.
type Mesh struct {

	// Vertices are the vertex positions.
	Vertices []math32.Vector3

	// Indices are the triangle-list indices into Vertices.
	Indices []uint16
}

// NumVertices returns the number of vertices.
func (ms *Mesh) NumVertices() int {
	return len(ms.Vertices)
}

// NumIndices returns the number of indices (3 per triangle).
func (ms *Mesh) NumIndices() int {
	return len(ms.Indices)
}

// VertexData returns the vertex positions as interleaved float32 x, y, z
// values, the float32x3 vertex attribute layout.
func (ms *Mesh) VertexData() []float32 {
	data := make([]float32, len(ms.Vertices)*VertexSize)
	for i, v := range ms.Vertices {
		v.ToSlice(data, i*VertexSize)
	}
	return data
}

// IndexData returns a copy of the indices.
func (ms *Mesh) IndexData() []uint16 {
	return append([]uint16(nil), ms.Indices...)
}

// Spherify replaces every vertex with its unit-length direction,
// projecting the mesh onto the unit sphere. Indices are unchanged.
func (ms *Mesh) Spherify() {
	for i, v := range ms.Vertices {
		ms.Vertices[i] = v.Normal()
	}
}

// Normals returns the unit direction of each vertex from the origin,
// which is the surface normal of a sphere centered there.
func (ms *Mesh) Normals() []math32.Vector3 {
	norms := make([]math32.Vector3, len(ms.Vertices))
	for i, v := range ms.Vertices {
		norms[i] = v.Normal()
	}
	return norms
}

// TexCoords returns the equirectangular texture coordinates of each vertex,
// as interleaved u, v values. See [SphereUV].
func (ms *Mesh) TexCoords() []float32 {
	data := make([]float32, len(ms.Vertices)*2)
	for i, v := range ms.Vertices {
		data[i*2], data[i*2+1] = SphereUV(v)
	}
	return data
}

// BBox returns the axis-aligned box enclosing all vertices.
// It is empty for a mesh without vertices.
func (ms *Mesh) BBox() math32.Box3 {
	bb := math32.B3Empty()
	bb.ExpandByPoints(ms.Vertices)
	return bb
}

// Triangles returns an iterator over the triangles of the mesh.
func (ms *Mesh) Triangles() iter.Seq[math32.Triangle] {
	return func(yield func(math32.Triangle) bool) {
		for i := 0; i+2 < len(ms.Indices); i += 3 {
			t := math32.NewTriangle(ms.Vertices[ms.Indices[i]], ms.Vertices[ms.Indices[i+1]], ms.Vertices[ms.Indices[i+2]])
			if !yield(t) {
				return
			}
		}
	}
}

// Area returns the total surface area of the triangles.
func (ms *Mesh) Area() float32 {
	var a float32
	for t := range ms.Triangles() {
		a += t.Area()
	}
	return a
}

// Validate returns an error wrapping [ErrIndexRange] if any index
// does not reference a vertex.
func (ms *Mesh) Validate() error {
	for i, idx := range ms.Indices {
		if int(idx) >= len(ms.Vertices) {
			return fmt.Errorf("%w: index %d is %d, with %d vertices", ErrIndexRange, i, idx, len(ms.Vertices))
		}
	}
	return nil
}

// Clone returns a deep copy of the mesh.
func (ms *Mesh) Clone() *Mesh {
	return &Mesh{
		Vertices: append([]math32.Vector3(nil), ms.Vertices...),
		Indices:  ms.IndexData(),
	}
}

// SphereUV returns the equirectangular texture coordinates of the
// direction of the given point: u = 0.5 + atan2(z, x) / 2π wraps around
// the Y axis, and v = 0.5 - asin(y) / π runs from the north pole (0)
// to the south pole (1).
func SphereUV(p math32.Vector3) (u, v float32) {
	d := p.Normal()
	u = 0.5 + math32.Atan2(d.Z, d.X)/(2*math32.Pi)
	v = 0.5 - math32.Asin(math32.Clamp(d.Y, -1, 1))/math32.Pi
	return
}
