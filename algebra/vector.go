// Copyright 2026 The Matra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package algebra

import (
	"github.com/matra-math/matra/dense"
	"github.com/matra-math/matra/internal/algebra"
)

// Add returns the element-wise sum a + b as a new owned vector.
func Add[T dense.Element](a, b dense.VectorOperand[T]) (*dense.Vector[T], error) {
	return algebra.Add(a, b)
}

// Sub returns the element-wise difference a - b as a new owned vector.
func Sub[T dense.Element](a, b dense.VectorOperand[T]) (*dense.Vector[T], error) {
	return algebra.Sub(a, b)
}

// AddAssign updates dst in place, dst += src. Writing through a view
// mutates the bound memory.
func AddAssign[T dense.Element](dst, src dense.VectorOperand[T]) error {
	return algebra.AddAssign(dst, src)
}

// SubAssign updates dst in place, dst -= src.
func SubAssign[T dense.Element](dst, src dense.VectorOperand[T]) error {
	return algebra.SubAssign(dst, src)
}

// Scale returns k * v as a new owned vector.
func Scale[T dense.Element](v dense.VectorOperand[T], k T) *dense.Vector[T] {
	return algebra.Scale(v, k)
}

// DivScalar returns v / k as a new owned vector. Division by zero
// follows IEEE 754.
func DivScalar[T dense.Element](v dense.VectorOperand[T], k T) *dense.Vector[T] {
	return algebra.DivScalar(v, k)
}

// ScaleAssign updates v in place, v *= k.
func ScaleAssign[T dense.Element](v dense.VectorOperand[T], k T) {
	algebra.ScaleAssign(v, k)
}

// DivScalarAssign updates v in place, v /= k.
func DivScalarAssign[T dense.Element](v dense.VectorOperand[T], k T) {
	algebra.DivScalarAssign(v, k)
}

// Dot returns the inner product of a and b.
//
// Example:
//
//	a, _ := dense.NewVector(backend, []float64{1, 2, 3})
//	b, _ := dense.NewVector(backend, []float64{4, 5, 6})
//	dot, _ := algebra.Dot(a, b) // 32
func Dot[T dense.Element](a, b dense.VectorOperand[T]) (T, error) {
	return algebra.Dot(a, b)
}
