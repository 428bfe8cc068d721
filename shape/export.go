// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"bufio"
	"fmt"
	"io"

	"cogentcore.org/cubesphere/math32"
	"gopkg.in/yaml.v3"
)

// WriteOBJ writes the given meshes as one Wavefront OBJ file, one object
// per mesh, with vertex positions, texture coordinates and normals.
// OBJ indices are 1-based and global across objects, so each mesh's
// indices are offset by the vertices written before it.
func WriteOBJ(w io.Writer, meshes []*Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# cube-sphere: %d meshes\n", len(meshes))
	base := 1
	for mi, ms := range meshes {
		fmt.Fprintf(bw, "o mesh%d\n", mi)
		for _, v := range ms.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
		}
		uvs := ms.TexCoords()
		for i := 0; i < len(uvs); i += 2 {
			fmt.Fprintf(bw, "vt %g %g\n", uvs[i], 1-uvs[i+1])
		}
		for _, n := range ms.Normals() {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
		for i := 0; i+2 < len(ms.Indices); i += 3 {
			a := int(ms.Indices[i]) + base
			b := int(ms.Indices[i+1]) + base
			c := int(ms.Indices[i+2]) + base
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		}
		base += len(ms.Vertices)
	}
	return bw.Flush()
}

// meshYAML is the YAML form of a [Mesh].
type meshYAML struct {
	Vertices [][3]float32 `yaml:"vertices,flow"`
	Indices  []uint16     `yaml:"indices,flow"`
}

// MarshalYAML implements [yaml.Marshaler].
func (ms *Mesh) MarshalYAML() (any, error) {
	my := meshYAML{Vertices: make([][3]float32, len(ms.Vertices)), Indices: ms.Indices}
	for i, v := range ms.Vertices {
		my.Vertices[i] = [3]float32{v.X, v.Y, v.Z}
	}
	return my, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (ms *Mesh) UnmarshalYAML(value *yaml.Node) error {
	var my meshYAML
	if err := value.Decode(&my); err != nil {
		return err
	}
	ms.Vertices = make([]math32.Vector3, len(my.Vertices))
	for i, v := range my.Vertices {
		ms.Vertices[i] = math32.Vec3(v[0], v[1], v[2])
	}
	ms.Indices = my.Indices
	return ms.Validate()
}

// WriteYAML writes the given meshes as a YAML list.
func WriteYAML(w io.Writer, meshes []*Mesh) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(meshes); err != nil {
		return err
	}
	return enc.Close()
}

// ReadYAML reads meshes written by [WriteYAML]. Meshes with indices
// past their vertices are rejected with [ErrIndexRange].
func ReadYAML(r io.Reader) ([]*Mesh, error) {
	var meshes []*Mesh
	if err := yaml.NewDecoder(r).Decode(&meshes); err != nil {
		return nil, err
	}
	return meshes, nil
}
