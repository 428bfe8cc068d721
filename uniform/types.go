// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uniform packs named scalar, vector and matrix fields into a
// single float32 buffer at the offsets required by a shading language's
// uniform block layout rules, and updates fields in place each frame.
package uniform

import (
	"fmt"

	"cogentcore.org/cubesphere/math32"
)

// Types are the data types that can be stored in a uniform [Buffer].
type Types int32

const (
	// Number is a single float32 scalar.
	Number Types = iota

	// Vector3 is a [math32.Vector3].
	Vector3

	// Matrix4 is a [math32.Matrix4].
	Matrix4

	typesN
)

var typesNames = [...]string{"Number", "Vector3", "Matrix4"}

func (tp Types) String() string {
	if tp < 0 || tp >= typesN {
		return fmt.Sprintf("Types(%d)", int32(tp))
	}
	return typesNames[tp]
}

// Arity returns the number of float32 values that hold a value of this type.
// This is independent of the layout [Rules], which may reserve more space.
func (tp Types) Arity() int {
	switch tp {
	case Number:
		return 1
	case Vector3:
		return 3
	case Matrix4:
		return 16
	}
	return 0
}

// TypeInfo is the storage size and required alignment of a type,
// both in 32-bit elements.
type TypeInfo struct {
	// Size is the number of elements the field occupies.
	Size int

	// Align is the element multiple the field offset must start on.
	Align int
}

// Rules are the memory layout conventions of a shading language
// for a uniform block. A renderer with different alignment rules
// provides different Rules; the packing algorithm does not change.
type Rules struct {
	// Name identifies the convention, for messages.
	Name string

	// Types gives the size and alignment of each supported type.
	Types map[Types]TypeInfo

	// StructAlign is the element multiple the total buffer length
	// is rounded up to. Values < 1 mean no rounding.
	StructAlign int
}

// WGSL returns the uniform address space rules of WGSL:
// f32 is 4 bytes aligned to 4, vec3<f32> is 12 bytes aligned to 16,
// mat4x4<f32> is 64 bytes aligned to 16, and a struct is rounded up
// to its largest member alignment (16 bytes).
func WGSL() Rules {
	return Rules{
		Name: "wgsl",
		Types: map[Types]TypeInfo{
			Number:  {Size: 1, Align: 1},
			Vector3: {Size: 3, Align: 4},
			Matrix4: {Size: 16, Align: 4},
		},
		StructAlign: 4,
	}
}

// Packed returns rules with no padding at all, as used for tightly
// packed vertex style data.
func Packed() Rules {
	return Rules{
		Name: "packed",
		Types: map[Types]TypeInfo{
			Number:  {Size: 1, Align: 1},
			Vector3: {Size: 3, Align: 1},
			Matrix4: {Size: 16, Align: 1},
		},
	}
}

// Info returns the size and alignment for the given type.
func (r *Rules) Info(tp Types) (TypeInfo, error) {
	ti, ok := r.Types[tp]
	if !ok {
		return ti, fmt.Errorf("%w: %v has no entry in %q rules", ErrUnknownType, tp, r.Name)
	}
	if ti.Align < 1 || ti.Size < tp.Arity() {
		return ti, fmt.Errorf("%w: %v has invalid size %d / alignment %d in %q rules", ErrUnknownType, tp, ti.Size, ti.Align, r.Name)
	}
	return ti, nil
}

// MemSizeAlign returns size rounded up to the next multiple of align.
func MemSizeAlign(size, align int) int {
	if align <= 1 || size%align == 0 {
		return size
	}
	nb := size / align
	return (nb + 1) * align
}

// components returns the float32 values of the given value, which must
// match the given type. Numbers may be given as any Go float or int type.
func components(tp Types, value any) ([]float32, error) {
	switch tp {
	case Number:
		switch v := value.(type) {
		case float32:
			return []float32{v}, nil
		case float64:
			return []float32{float32(v)}, nil
		case int:
			return []float32{float32(v)}, nil
		}
	case Vector3:
		if v, ok := value.(math32.Vector3); ok {
			vals := make([]float32, 3)
			v.ToSlice(vals, 0)
			return vals, nil
		}
	case Matrix4:
		if v, ok := value.(math32.Matrix4); ok {
			return v[:], nil
		}
	}
	return nil, fmt.Errorf("%w: %T is not a %v", ErrTypeMismatch, value, tp)
}
