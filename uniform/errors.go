// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniform

import "cogentcore.org/cubesphere/base/errors"

var (
	// ErrFieldNotFound is returned when a field name was never
	// registered in the buffer layout.
	ErrFieldNotFound = errors.New("uniform: field not found")

	// ErrTypeMismatch is returned when a value does not have the
	// shape of the field's declared type.
	ErrTypeMismatch = errors.New("uniform: type mismatch")

	// ErrDuplicateField is returned when two entries share a name.
	ErrDuplicateField = errors.New("uniform: duplicate field")

	// ErrUnknownType is returned when the layout rules do not
	// describe a type.
	ErrUnknownType = errors.New("uniform: unknown type")
)
