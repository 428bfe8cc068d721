// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"cogentcore.org/cubesphere/frame"
	"cogentcore.org/cubesphere/math32"
	"cogentcore.org/cubesphere/shape"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	vl := VertexLayout(2)
	assert.Equal(t, uint64(12), vl.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, vl.StepMode)
	require.Len(t, vl.Attributes, 1)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, vl.Attributes[0].Format)
	assert.Equal(t, uint64(0), vl.Attributes[0].Offset)
	assert.Equal(t, uint32(2), vl.Attributes[0].ShaderLocation)
	assert.Equal(t, wgpu.IndexFormatUint16, IndexFormat)
}

func TestMeshBuffers(t *testing.T) {
	ms := &shape.Mesh{
		Vertices: []math32.Vector3{math32.Vec3(1, 2, 3), math32.Vec3(-1, 0, 0.5), math32.Vec3(0, 1, 0)},
		Indices:  []uint16{0, 1, 2},
	}
	vb := VertexBuffer("v", ms)
	assert.Equal(t, "v", vb.Label)
	require.Len(t, vb.Contents, 36)
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(vb.Contents[8:])))
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(vb.Contents[20:])))
	assert.NotZero(t, vb.Usage&wgpu.BufferUsageVertex)

	ib := IndexBuffer("i", ms)
	// 3 indices are padded to 8 bytes
	require.Len(t, ib.Contents, 8)
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(ib.Contents[4:]))
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(ib.Contents[6:]))
	assert.NotZero(t, ib.Usage&wgpu.BufferUsageIndex)
	// the mesh itself is not padded
	assert.Len(t, ms.Indices, 3)
}

func TestMeshes(t *testing.T) {
	meshes := shape.NewCubeSphere(1, 4).Sphere()
	bufs := Meshes("sphere", meshes)
	require.Len(t, bufs, 6)
	for i, b := range bufs {
		assert.Equal(t, uint32(54), b.NumIndices)
		assert.Len(t, b.Vertex.Contents, 16*VertexStride)
		assert.Len(t, b.Index.Contents, 54*2)
		assert.Equal(t, meshLabel("sphere", i, "index"), b.Index.Label)
	}
	assert.Equal(t, "sphere.5.vertex", bufs[5].Vertex.Label)
}

func TestUniform(t *testing.T) {
	buf := frame.NewUniforms()
	require.NoError(t, buf.SetFloat32(frame.TimeField, 1.5))

	le := UniformLayoutEntry(0, buf)
	assert.Equal(t, uint32(0), le.Binding)
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, le.Visibility)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, le.Buffer.Type)
	assert.Equal(t, uint64(80), le.Buffer.MinBindingSize)

	ub := UniformBuffer("uniforms", buf)
	require.Len(t, ub.Contents, 80)
	assert.Equal(t, float32(1.5), math.Float32frombits(binary.LittleEndian.Uint32(ub.Contents)))
	assert.NotZero(t, ub.Usage&wgpu.BufferUsageUniform)
}

func TestLayoutEntries(t *testing.T) {
	les := LayoutEntries(frame.NewUniforms())
	require.Len(t, les, 4)
	for i, le := range les {
		assert.Equal(t, uint32(i), le.Binding)
	}
	assert.Equal(t, wgpu.BufferBindingTypeUniform, les[UniformBinding].Buffer.Type)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, les[SamplerBinding].Sampler.Type)
	for _, b := range []uint32{DiffuseBinding, HeightBinding} {
		assert.Equal(t, wgpu.TextureSampleTypeFloat, les[b].Texture.SampleType)
		assert.Equal(t, wgpu.TextureViewDimension2D, les[b].Texture.ViewDimension)
		assert.False(t, les[b].Texture.Multisampled)
	}
	assert.NotZero(t, les[HeightBinding].Visibility&wgpu.ShaderStageVertex)
}
