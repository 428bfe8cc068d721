// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniform

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"cogentcore.org/cubesphere/math32"
)

// Entry is a named field of a uniform block with its type and
// initial value. Entries are laid out in the order given.
type Entry struct {
	// Name is the field name, used by [Buffer.Set] and [Buffer.Get].
	Name string

	// Type is the declared field type.
	Type Types

	// Value is the initial value: a float32 (or other Go number) for
	// Number, a [math32.Vector3] or a [math32.Matrix4].
	Value any
}

// NumberEntry returns a Number entry.
func NumberEntry(name string, value float32) Entry {
	return Entry{Name: name, Type: Number, Value: value}
}

// Vector3Entry returns a Vector3 entry.
func Vector3Entry(name string, value math32.Vector3) Entry {
	return Entry{Name: name, Type: Vector3, Value: value}
}

// Matrix4Entry returns a Matrix4 entry.
func Matrix4Entry(name string, value math32.Matrix4) Entry {
	return Entry{Name: name, Type: Matrix4, Value: value}
}

// Field is the placement of one entry within a buffer.
type Field struct {
	Name string
	Type Types

	// Offset is the starting element (32-bit) index.
	Offset int

	// Size is the number of elements reserved for the field.
	Size int
}

// Layout maps field names to element offsets in one contiguous buffer.
// It is computed once from the ordered entries and never changes.
type Layout struct {
	// Rules used to compute the layout.
	Rules Rules

	// Fields in entry order.
	Fields []Field

	// Len is the total number of elements in the buffer,
	// including trailing padding.
	Len int

	index map[string]int
}

// NewLayout computes the layout of the given entries under the given rules.
// The first field starts at offset 0. Each later field starts at the
// smallest multiple of its alignment that is at or after the end of the
// previous field.
func NewLayout(rules Rules, entries ...Entry) (*Layout, error) {
	ly := &Layout{Rules: rules, index: make(map[string]int, len(entries))}
	end := 0
	for _, e := range entries {
		if _, has := ly.index[e.Name]; has {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, e.Name)
		}
		ti, err := rules.Info(e.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", e.Name, err)
		}
		off := MemSizeAlign(end, ti.Align)
		ly.index[e.Name] = len(ly.Fields)
		ly.Fields = append(ly.Fields, Field{Name: e.Name, Type: e.Type, Offset: off, Size: ti.Size})
		end = off + ti.Size
	}
	ly.Len = MemSizeAlign(end, rules.StructAlign)
	return ly, nil
}

// Field returns the field with the given name.
func (ly *Layout) Field(name string) (Field, error) {
	i, ok := ly.index[name]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	return ly.Fields[i], nil
}

// Offset returns the element offset of the given field.
func (ly *Layout) Offset(name string) (int, error) {
	fd, err := ly.Field(name)
	if err != nil {
		return 0, err
	}
	return fd.Offset, nil
}

// Offsets returns a new name to offset table.
func (ly *Layout) Offsets() map[string]int {
	offs := make(map[string]int, len(ly.Fields))
	for _, fd := range ly.Fields {
		offs[fd.Name] = fd.Offset
	}
	return offs
}

// Bytes returns the total size of the buffer in bytes.
func (ly *Layout) Bytes() int {
	return ly.Len * 4
}

// String returns a table of the fields, one per line.
func (ly *Layout) String() string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "name\ttype\toffset\tsize\tbytes\n")
	for _, fd := range ly.Fields {
		fmt.Fprintf(tw, "%s\t%v\t%d\t%d\t%d\n", fd.Name, fd.Type, fd.Offset, fd.Size, fd.Offset*4)
	}
	tw.Flush()
	fmt.Fprintf(&sb, "total: %d elements (%d bytes), rules: %s\n", ly.Len, ly.Bytes(), ly.Rules.Name)
	return sb.String()
}
