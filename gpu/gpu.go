// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu describes cube-sphere meshes and uniform buffers in
// WebGPU terms: vertex layouts, bind group layout entries and buffer
// init descriptors, ready to pass to a [wgpu.Device]. It never
// touches a device itself.
package gpu

import (
	"strconv"

	"cogentcore.org/cubesphere/shape"
	"github.com/cogentcore/webgpu/wgpu"
)

// IndexFormat is the format of the mesh index buffers.
const IndexFormat = wgpu.IndexFormatUint16

// VertexStride is the number of bytes per vertex: 3 float32 positions.
const VertexStride = shape.VertexSize * 4

// VertexLayout returns the vertex buffer layout of the mesh positions,
// one float32x3 attribute at the given shader location.
func VertexLayout(shaderLocation uint32) wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         0,
				ShaderLocation: shaderLocation,
			},
		},
	}
}

// VertexBuffer returns the descriptor of a vertex buffer holding
// the positions of the given mesh.
func VertexBuffer(label string, ms *shape.Mesh) *wgpu.BufferInitDescriptor {
	return &wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: wgpu.ToBytes(ms.VertexData()),
		Usage:    wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	}
}

// IndexBuffer returns the descriptor of an index buffer holding the
// indices of the given mesh. WebGPU buffer writes must be a multiple
// of 4 bytes, so an odd number of indices is padded with a zero.
func IndexBuffer(label string, ms *shape.Mesh) *wgpu.BufferInitDescriptor {
	idx := ms.IndexData()
	if len(idx)%2 != 0 {
		idx = append(idx, 0)
	}
	return &wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: wgpu.ToBytes(idx),
		Usage:    wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	}
}

// Mesh has the buffer descriptors of one mesh, and the number of
// indices to draw.
type Mesh struct {
	Vertex     *wgpu.BufferInitDescriptor
	Index      *wgpu.BufferInitDescriptor
	NumIndices uint32
}

// Meshes returns the buffer descriptors of the given meshes,
// labeled with the given prefix and the mesh number.
func Meshes(label string, meshes []*shape.Mesh) []Mesh {
	out := make([]Mesh, len(meshes))
	for i, ms := range meshes {
		out[i] = Mesh{
			Vertex:     VertexBuffer(meshLabel(label, i, "vertex"), ms),
			Index:      IndexBuffer(meshLabel(label, i, "index"), ms),
			NumIndices: uint32(ms.NumIndices()),
		}
	}
	return out
}

func meshLabel(label string, i int, kind string) string {
	return label + "." + strconv.Itoa(i) + "." + kind
}
