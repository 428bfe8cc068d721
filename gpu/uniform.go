// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/cubesphere/uniform"
	"github.com/cogentcore/webgpu/wgpu"
)

// UniformLayoutEntry returns the bind group layout entry of the given
// uniform buffer at the given binding, visible to the vertex and
// fragment stages.
func UniformLayoutEntry(binding uint32, buf *uniform.Buffer) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
		Buffer: wgpu.BufferBindingLayout{
			Type:           wgpu.BufferBindingTypeUniform,
			MinBindingSize: uint64(buf.Layout().Bytes()),
		},
	}
}

// UniformBuffer returns the descriptor of a uniform buffer holding
// the current values of the given buffer. Later frames update it with
// [wgpu.Queue.WriteBuffer] using [uniform.Buffer.Bytes].
func UniformBuffer(label string, buf *uniform.Buffer) *wgpu.BufferInitDescriptor {
	return &wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: buf.Bytes(),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	}
}

// Bindings of the planet bind group.
const (
	UniformBinding uint32 = iota
	SamplerBinding
	DiffuseBinding
	HeightBinding
)

// SamplerLayoutEntry returns the bind group layout entry of a filtering
// sampler at the given binding.
func SamplerLayoutEntry(binding uint32) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
		Sampler: wgpu.SamplerBindingLayout{
			Type: wgpu.SamplerBindingTypeFiltering,
		},
	}
}

// TextureLayoutEntry returns the bind group layout entry of a
// filterable 2D float texture at the given binding.
func TextureLayoutEntry(binding uint32) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
		Texture: wgpu.TextureBindingLayout{
			SampleType:    wgpu.TextureSampleTypeFloat,
			ViewDimension: wgpu.TextureViewDimension2D,
		},
	}
}

// LayoutEntries returns the layout entries of the planet bind group:
// the uniform buffer, a sampler, and the diffuse and height textures.
// The height texture is read in the vertex stage for displacement.
func LayoutEntries(buf *uniform.Buffer) []wgpu.BindGroupLayoutEntry {
	return []wgpu.BindGroupLayoutEntry{
		UniformLayoutEntry(UniformBinding, buf),
		SamplerLayoutEntry(SamplerBinding),
		TextureLayoutEntry(DiffuseBinding),
		TextureLayoutEntry(HeightBinding),
	}
}
