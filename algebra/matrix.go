// Copyright 2026 The Matra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package algebra

import (
	"github.com/matra-math/matra/dense"
	"github.com/matra-math/matra/internal/algebra"
)

// MatAdd returns the element-wise sum a + b as a new owned matrix.
func MatAdd[T dense.Element](a, b dense.MatrixOperand[T]) (*dense.Matrix[T], error) {
	return algebra.MatAdd(a, b)
}

// MatSub returns the element-wise difference a - b as a new owned matrix.
func MatSub[T dense.Element](a, b dense.MatrixOperand[T]) (*dense.Matrix[T], error) {
	return algebra.MatSub(a, b)
}

// MatScale returns k * m as a new owned matrix.
func MatScale[T dense.Element](m dense.MatrixOperand[T], k T) *dense.Matrix[T] {
	return algebra.MatScale(m, k)
}

// MatDivScalar returns m / k as a new owned matrix.
func MatDivScalar[T dense.Element](m dense.MatrixOperand[T], k T) *dense.Matrix[T] {
	return algebra.MatDivScalar(m, k)
}

// MatMul returns the matrix product a x b. The inner dimensions must
// agree: an [m,k] times a [k,n] operand yields an [m,n] matrix.
//
// Example:
//
//	a, _ := dense.NewMatrix(backend, 2, 3, []float64{1, 2, 3, 4, 5, 6})
//	b, _ := dense.NewMatrix(backend, 3, 2, []float64{1, 2, 3, 4, 5, 6})
//	c, _ := algebra.MatMul(a, b) // 2x2
func MatMul[T dense.Element](a, b dense.MatrixOperand[T]) (*dense.Matrix[T], error) {
	return algebra.MatMul(a, b)
}

// MatVec returns the matrix-vector product m x v as a new owned vector
// of length m.Rows().
func MatVec[T dense.Element](m dense.MatrixOperand[T], v dense.VectorOperand[T]) (*dense.Vector[T], error) {
	return algebra.MatVec(m, v)
}

// VecMat returns the row-vector product v x m as a new owned vector of
// length m.Cols().
func VecMat[T dense.Element](v dense.VectorOperand[T], m dense.MatrixOperand[T]) (*dense.Vector[T], error) {
	return algebra.VecMat(v, m)
}

// Transpose returns the transpose of m as a new owned matrix.
func Transpose[T dense.Element](m dense.MatrixOperand[T]) *dense.Matrix[T] {
	return algebra.Transpose(m)
}

// Inverse returns the inverse of the square matrix m. A rectangular
// operand is reported as dense.ErrNonSquare, a matrix without an inverse
// as dense.ErrSingular.
//
// Example:
//
//	m, _ := dense.NewMatrix(backend, 2, 2, []float64{1, 2, 3, 4})
//	inv, err := algebra.Inverse(m) // [[-2 1] [1.5 -0.5]]
func Inverse[T dense.Element](m dense.MatrixOperand[T]) (*dense.Matrix[T], error) {
	return algebra.Inverse(m)
}
