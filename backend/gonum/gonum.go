// Copyright 2026 The Matra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package gonum

import (
	"github.com/matra-math/matra/dense"
	internalgonum "github.com/matra-math/matra/internal/backend/gonum"
)

// Backend represents the gonum-based compute backend.
//
// Kernels delegate to gonum's floats and blas64 packages and to mat for
// matrix inversion. Only float64 operands are supported; a float32
// operand panics.
type Backend = internalgonum.GonumBackend

// Compile-time check that Backend implements dense.Backend.
var _ dense.Backend = (*Backend)(nil)

// New creates a gonum backend.
//
// Example:
//
//	import (
//	    "github.com/matra-math/matra/backend/gonum"
//	    "github.com/matra-math/matra/dense"
//	)
//
//	func main() {
//	    backend := gonum.New()
//	    m, _ := dense.NewMatrix(backend, 2, 2, []float64{1, 2, 3, 4})
//	}
func New() *Backend {
	return internalgonum.New()
}
