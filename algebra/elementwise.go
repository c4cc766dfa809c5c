// Copyright 2026 The Matra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package algebra

import (
	"github.com/matra-math/matra/dense"
	"github.com/matra-math/matra/internal/algebra"
)

// Mul returns the element-wise (Hadamard) product a * b as a new owned
// vector.
func Mul[T dense.Element](a, b dense.VectorOperand[T]) (*dense.Vector[T], error) {
	return algebra.Mul(a, b)
}

// Div returns the element-wise quotient a / b as a new owned vector.
// Zero divisors follow IEEE 754 and produce infinities or NaNs.
func Div[T dense.Element](a, b dense.VectorOperand[T]) (*dense.Vector[T], error) {
	return algebra.Div(a, b)
}

// Apply returns a new owned vector with f applied to every element of v.
//
// Example:
//
//	squared := algebra.Apply(v, func(x float64) float64 { return x * x })
func Apply[T dense.Element](v dense.VectorOperand[T], f func(T) T) *dense.Vector[T] {
	return algebra.Apply(v, f)
}
