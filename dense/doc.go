// Copyright 2026 The Matra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dense provides the public API for dense vector and matrix
// containers.
//
// # Overview
//
// The package defines the container types and the contracts the operator
// layer in package algebra builds on:
//   - Vector[T], Matrix[T]: owned dense containers, generic over float32/float64
//   - VecView[T], MatView[T]: non-owning views binding caller memory zero-copy
//   - VectorOperand[T], MatrixOperand[T]: the operand interfaces both satisfy
//   - Backend: the compute contract (implemented by backend/cpu and backend/gonum)
//   - Raw, Shape, DataType: the low-level storage representation
//
// # Basic Usage
//
//	import (
//	    "github.com/matra-math/matra/backend/cpu"
//	    "github.com/matra-math/matra/dense"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    v, _ := dense.NewVector(backend, []float64{1, 2, 3})
//	    m, _ := dense.NewMatrix(backend, 2, 2, []float64{1, 2, 3, 4})
//	    fmt.Println(v, m)
//	}
//
// # Views
//
// Views bind externally owned memory without copying. Reads and writes go
// straight to the caller's buffer, so a view is the way to run operators
// over memory another system owns, such as a reused sensor buffer:
//
//	buffer := []float64{1, 2, 3}
//	view, _ := dense.ViewVector(backend, buffer)
//	algebra.ScaleAssign(view, 2) // buffer is now [2, 4, 6]
//
// The referenced memory must stay valid, and must not be concurrently
// written, for as long as the view is in use. That lifetime is a caller
// invariant; it is never checked.
//
// # Errors and panics
//
// Failures that depend on data are errors: shape mismatches between
// operands, singular matrices, zero-norm normalization. Failures that can
// only come from a programming mistake are panics: out-of-range indexing,
// dtype mismatch at the Raw boundary, invalid creation dimensions.
//
// # Concurrency
//
// Containers are safe for concurrent reads. Mutating operations on shared
// containers, and views over concurrently written memory, require caller
// synchronization.
package dense
