// Copyright 2026 The Matra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package algebra implements vector and matrix operators over the dense
// containers.
//
// # Overview
//
// Operators are free functions, generic over the element type:
//   - Element-wise: Add, Sub, Mul, Div, Apply, and the *Assign forms
//   - Scalar: Scale, DivScalar, and their *Assign forms
//   - Reductions: Dot, Sum, Norm, LpNorm, FrobeniusNorm, Normalize
//   - Matrix algebra: MatAdd, MatSub, MatScale, MatMul, MatVec, VecMat,
//     Transpose, Inverse
//
// Every operator accepts its operands by interface, so owned containers
// and views mix freely in one call:
//
//	sum, err := algebra.Add(owned, view)
//
// Both operand kinds resolve to the same backend kernel. There is one
// algorithm per operation, not one per container kind.
//
// # Basic Usage
//
//	import (
//	    "github.com/matra-math/matra/algebra"
//	    "github.com/matra-math/matra/backend/cpu"
//	    "github.com/matra-math/matra/dense"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := dense.NewVector(backend, []float64{1, 2, 3})
//	    b, _ := dense.NewVector(backend, []float64{4, 5, 6})
//
//	    dot, _ := algebra.Dot(a, b)   // 32
//	    sum, _ := algebra.Add(a, b)   // [5 7 9]
//	    algebra.ScaleAssign(sum, 0.5) // [2.5 3.5 4.5]
//	}
//
// # Results and Errors
//
// Allocating operators always return a new owned container, never a
// view, even when every operand is a view. The *Assign forms and
// Normalize update their first operand in place and write through views
// to the bound memory.
//
// Shape validation happens before any backend dispatch, and failures
// wrap the sentinel errors of package dense:
//
//	if errors.Is(err, dense.ErrDimensionMismatch) { ... }
//
// Inverse and Normalize can also fail on well-formed shapes, reported as
// dense.ErrSingular and dense.ErrZeroNorm. Division follows IEEE 754:
// dividing by zero yields infinities or NaNs, never an error.
//
// The left operand's backend executes every operation. Mixing containers
// from different backends in one call is not detected; keep operands on
// one backend.
package algebra
