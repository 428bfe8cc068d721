// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniform

import (
	"encoding/binary"
	"fmt"
	"math"

	"cogentcore.org/cubesphere/math32"
)

// Buffer is one contiguous block of float32 values holding several named
// fields of different types at the offsets given by its [Layout], ready to
// be uploaded to the GPU as-is. Padding elements are zero and are never
// written.
//
// A Buffer is not safe for concurrent use: there must be a single writer
// per frame.
type Buffer struct {
	layout *Layout
	values []float32
}

// NewBuffer lays out the given entries under the given rules and returns
// a buffer holding their initial values.
func NewBuffer(rules Rules, entries ...Entry) (*Buffer, error) {
	ly, err := NewLayout(rules, entries...)
	if err != nil {
		return nil, err
	}
	b := &Buffer{layout: ly, values: make([]float32, ly.Len)}
	for i, e := range entries {
		vals, err := components(e.Type, e.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", e.Name, err)
		}
		copy(b.values[ly.Fields[i].Offset:], vals)
	}
	return b, nil
}

// Layout returns the layout of this buffer.
func (b *Buffer) Layout() *Layout {
	return b.layout
}

// Len returns the number of float32 elements in the buffer.
func (b *Buffer) Len() int {
	return len(b.values)
}

// Values returns the backing values. The slice is shared with the buffer:
// callers handing it to a renderer must treat it as read-only.
func (b *Buffer) Values() []float32 {
	return b.values
}

// Bytes returns a little-endian copy of the values, as the GPU expects them.
func (b *Buffer) Bytes() []byte {
	bs := make([]byte, 0, len(b.values)*4)
	for _, v := range b.values {
		bs = binary.LittleEndian.AppendUint32(bs, math.Float32bits(v))
	}
	return bs
}

// Set overwrites the given field with the given value, which must match the
// declared field type. Only the elements of the value are written, leaving
// padding and other fields untouched. It returns an error wrapping
// [ErrFieldNotFound] if the name was never registered.
func (b *Buffer) Set(name string, value any) error {
	fd, err := b.layout.Field(name)
	if err != nil {
		return err
	}
	vals, err := components(fd.Type, value)
	if err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	copy(b.values[fd.Offset:fd.Offset+len(vals)], vals)
	return nil
}

// SetFloat32 sets a Number field.
func (b *Buffer) SetFloat32(name string, value float32) error {
	return b.Set(name, value)
}

// SetVector3 sets a Vector3 field.
func (b *Buffer) SetVector3(name string, value math32.Vector3) error {
	return b.Set(name, value)
}

// SetMatrix4 sets a Matrix4 field.
func (b *Buffer) SetMatrix4(name string, value math32.Matrix4) error {
	return b.Set(name, value)
}

// Get returns the current value of the given field: a float32,
// [math32.Vector3] or [math32.Matrix4] according to its type.
func (b *Buffer) Get(name string) (any, error) {
	fd, err := b.layout.Field(name)
	if err != nil {
		return nil, err
	}
	switch fd.Type {
	case Number:
		return b.values[fd.Offset], nil
	case Vector3:
		return math32.Vector3FromSlice(b.values, fd.Offset), nil
	case Matrix4:
		return math32.Matrix4FromSlice(b.values, fd.Offset), nil
	}
	return nil, fmt.Errorf("field %q: %w: %v", name, ErrUnknownType, fd.Type)
}

// Float32 returns the value of a Number field.
func (b *Buffer) Float32(name string) (float32, error) {
	return getAs[float32](b, name, Number)
}

// Vector3 returns the value of a Vector3 field.
func (b *Buffer) Vector3(name string) (math32.Vector3, error) {
	return getAs[math32.Vector3](b, name, Vector3)
}

// Matrix4 returns the value of a Matrix4 field.
func (b *Buffer) Matrix4(name string) (math32.Matrix4, error) {
	return getAs[math32.Matrix4](b, name, Matrix4)
}

func getAs[T any](b *Buffer, name string, tp Types) (T, error) {
	var zero T
	fd, err := b.layout.Field(name)
	if err != nil {
		return zero, err
	}
	if fd.Type != tp {
		return zero, fmt.Errorf("field %q: %w: is a %v, not a %v", name, ErrTypeMismatch, fd.Type, tp)
	}
	v, err := b.Get(name)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}
