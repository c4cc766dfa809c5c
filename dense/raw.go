// Copyright 2026 The Matra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dense

import (
	"github.com/matra-math/matra/internal/dense"
)

// Raw is the dtype-erased storage all containers share and backends
// compute on. Most code works with the typed containers instead; Raw is
// the surface for implementing a Backend.
type Raw = dense.Raw

// NewRaw creates an owned, zero-filled Raw with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*Raw, error) {
	return dense.NewRaw(shape, dtype)
}

// RawFromSlice creates an owned Raw holding a copy of data.
func RawFromSlice[T Element](data []T, shape Shape) (*Raw, error) {
	return dense.RawFromSlice(data, shape)
}

// RawView creates a Raw bound to data without copying. Mutations through
// either alias are visible to the other.
func RawView[T Element](data []T, shape Shape) (*Raw, error) {
	return dense.RawView(data, shape)
}
