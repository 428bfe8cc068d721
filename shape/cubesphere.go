// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/cubesphere/math32"
)

// FaceNormals returns the outward normals of the 6 faces of the unit cube,
// in generation order: up, down, left, right, forward, back.
func FaceNormals() [6]math32.Vector3 {
	return [6]math32.Vector3{
		math32.Vector3Up(),
		math32.Vector3Down(),
		math32.Vector3Left(),
		math32.Vector3Right(),
		math32.Vector3Forward(),
		math32.Vector3Back(),
	}
}

// FaceAxes returns the two tangent axes spanning the face plane of the
// cube face with the given normal. a is the normal with its components
// rotated, and b = normal × a.
func FaceAxes(normal math32.Vector3) (a, b math32.Vector3) {
	a = math32.Vec3(normal.Y, normal.Z, normal.X)
	b = normal.Cross(a)
	return
}

// FaceSize returns the number of vertices and indices of a face
// generated at the given resolution.
func FaceSize(resolution int) (numVertex, numIndex int) {
	if resolution < 2 {
		return 0, 0
	}
	numVertex = resolution * resolution
	numIndex = (resolution - 1) * (resolution - 1) * 6
	return
}

// Face returns a resolution x resolution grid of vertices starting at
// origin and spanning size along both axes a and b, with two triangles
// per grid cell. A resolution below 2 yields an empty mesh.
func Face(origin, a, b math32.Vector3, size float32, resolution int) *Mesh {
	nVtx, nIdx := FaceSize(resolution)
	ms := &Mesh{
		Vertices: make([]math32.Vector3, 0, nVtx),
		Indices:  make([]uint16, nIdx),
	}
	if nVtx == 0 {
		return ms
	}
	r := resolution
	step := float32(r - 1)
	ii := 0
	for y := 0; y < r; y++ {
		for x := 0; x < r; x++ {
			v := x + r*y
			sx := float32(x) / step
			sy := float32(y) / step
			vtx := origin.Add(a.MulScalar(size * sx)).Add(b.MulScalar(size * sy))
			ms.Vertices = append(ms.Vertices, vtx)

			if x == r-1 || y == r-1 {
				continue
			}
			ms.Indices[ii] = uint16(v)
			ms.Indices[ii+1] = uint16(v + r + 1)
			ms.Indices[ii+2] = uint16(v + r)
			ms.Indices[ii+3] = uint16(v)
			ms.Indices[ii+4] = uint16(v + 1)
			ms.Indices[ii+5] = uint16(v + r + 1)
			ii += 6
		}
	}
	return ms
}

// SubdividedFace returns the cube face with the given normal split into
// subdivisions x subdivisions patches, each generated as its own mesh at
// the given resolution so that it stays within the 16-bit index range.
// Patch i covers grid cell (i % subdivisions, i / subdivisions).
func SubdividedFace(normal math32.Vector3, subdivisions, resolution int) []*Mesh {
	if subdivisions < 1 {
		return nil
	}
	a, b := FaceAxes(normal)
	s := float32(subdivisions)
	size := 2 / s
	n := subdivisions * subdivisions
	meshes := make([]*Mesh, 0, n)
	for i := 0; i < n; i++ {
		x := float32(i % subdivisions)
		y := float32(i / subdivisions)
		origin := normal.Add(a.MulScalar(2*(x/s) - 1)).Add(b.MulScalar(2*(y/s) - 1))
		meshes = append(meshes, Face(origin, a, b, size, resolution))
	}
	return meshes
}

// CubeSphere generates a sphere by subdividing the faces of the
// [-1, 1] cube into grids and normalizing every vertex.
type CubeSphere struct {

	// Subdivisions is the number of patches along each edge of a face;
	// each face is made of Subdivisions² separate meshes.
	Subdivisions int

	// Resolution is the number of vertices along each edge of one patch.
	// It must be in [2, MaxResolution].
	Resolution int
}

// NewCubeSphere returns a CubeSphere with the given parameters.
func NewCubeSphere(subdivisions, resolution int) *CubeSphere {
	return &CubeSphere{Subdivisions: subdivisions, Resolution: resolution}
}

// Defaults sets the minimal valid parameters: one mesh per face
// with 2 vertices per edge.
func (cs *CubeSphere) Defaults() {
	cs.Subdivisions = 1
	cs.Resolution = 2
}

// Validate returns an error if the parameters cannot produce a usable mesh.
// Generation itself does not check: callers must reject invalid parameters.
func (cs *CubeSphere) Validate() error {
	if cs.Subdivisions < 1 {
		return fmt.Errorf("shape: subdivisions must be at least 1, not %d", cs.Subdivisions)
	}
	if cs.Resolution < 2 {
		return fmt.Errorf("shape: resolution must be at least 2, not %d", cs.Resolution)
	}
	if cs.Resolution > MaxResolution {
		return fmt.Errorf("shape: resolution %d exceeds the 16-bit index range (max %d)", cs.Resolution, MaxResolution)
	}
	return nil
}

// Size returns the number of meshes, and the number of vertices and
// indices in each mesh.
func (cs *CubeSphere) Size() (numMesh, numVertex, numIndex int) {
	numVertex, numIndex = FaceSize(cs.Resolution)
	if cs.Subdivisions > 0 {
		numMesh = 6 * cs.Subdivisions * cs.Subdivisions
	}
	return
}

// Cube returns the meshes of the cube faces, before spherical projection.
func (cs *CubeSphere) Cube() []*Mesh {
	nm, _, _ := cs.Size()
	meshes := make([]*Mesh, 0, nm)
	for _, n := range FaceNormals() {
		meshes = append(meshes, SubdividedFace(n, cs.Subdivisions, cs.Resolution)...)
	}
	return meshes
}

// Sphere returns the meshes of the cube-sphere: the cube faces with
// every vertex projected onto the unit sphere.
func (cs *CubeSphere) Sphere() []*Mesh {
	meshes := cs.Cube()
	for _, ms := range meshes {
		ms.Spherify()
	}
	return meshes
}
