// Copyright 2026 The Matra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dense

import (
	"github.com/matra-math/matra/internal/dense"
)

// Element constrains container element types to float32 and float64.
type Element = dense.Element

// DataType represents runtime type information for container storage.
type DataType = dense.DataType

// Supported element types.
const (
	Float32 DataType = dense.Float32
	Float64 DataType = dense.Float64
)

// DataTypeOf returns the DataType matching the element type T.
func DataTypeOf[T Element]() DataType {
	return dense.DataTypeOf[T]()
}

// Shape describes container dimensions. Rank 1 is a vector, rank 2 a
// row-major matrix.
type Shape = dense.Shape

// Vector is an owned dense vector of element type T.
type Vector[T Element] = dense.Vector[T]

// Matrix is an owned dense row-major matrix of element type T.
type Matrix[T Element] = dense.Matrix[T]

// VecView is a non-owning vector over caller memory. Reads and writes go
// straight to the bound slice.
type VecView[T Element] = dense.VecView[T]

// MatView is a non-owning row-major matrix over caller memory.
type MatView[T Element] = dense.MatView[T]

// VectorOperand is the operand contract satisfied by Vector and VecView.
// Operators in package algebra accept any implementation.
type VectorOperand[T Element] = dense.VectorOperand[T]

// MatrixOperand is the operand contract satisfied by Matrix and MatView.
type MatrixOperand[T Element] = dense.MatrixOperand[T]

// NewVector creates an owned vector holding a copy of data.
//
//	v, err := dense.NewVector(backend, []float64{1, 2, 3})
func NewVector[T Element](b Backend, data []T) (*Vector[T], error) {
	return dense.NewVector(b, data)
}

// NewMatrix creates an owned rows x cols matrix holding a copy of the
// row-major data.
//
//	m, err := dense.NewMatrix(backend, 2, 2, []float64{1, 2, 3, 4})
func NewMatrix[T Element](b Backend, rows, cols int, data []T) (*Matrix[T], error) {
	return dense.NewMatrix(b, rows, cols, data)
}

// ViewVector creates a vector view bound to data without copying. The
// slice must stay valid for as long as the view is in use.
//
//	view, err := dense.ViewVector(backend, buffer)
func ViewVector[T Element](b Backend, data []T) (VecView[T], error) {
	return dense.ViewVector(b, data)
}

// ViewMatrix creates a rows x cols matrix view bound to the row-major
// data without copying.
func ViewMatrix[T Element](b Backend, data []T, rows, cols int) (MatView[T], error) {
	return dense.ViewMatrix(b, data, rows, cols)
}

// VectorFromRaw wraps a rank-1 Raw in a typed vector. It panics if the
// raw's rank or dtype does not match.
func VectorFromRaw[T Element](b Backend, r *Raw) *Vector[T] {
	return dense.VectorFromRaw[T](b, r)
}

// MatrixFromRaw wraps a rank-2 Raw in a typed matrix. It panics if the
// raw's rank or dtype does not match.
func MatrixFromRaw[T Element](b Backend, r *Raw) *Matrix[T] {
	return dense.MatrixFromRaw[T](b, r)
}

// ZerosVector creates a zero-filled vector of length n.
//
//	v := dense.ZerosVector[float64](backend, 3)
func ZerosVector[T Element](b Backend, n int) *Vector[T] {
	return dense.ZerosVector[T](b, n)
}

// OnesVector creates a vector of length n with every element set to one.
func OnesVector[T Element](b Backend, n int) *Vector[T] {
	return dense.OnesVector[T](b, n)
}

// FullVector creates a vector of length n with every element set to value.
func FullVector[T Element](b Backend, n int, value T) *Vector[T] {
	return dense.FullVector(b, n, value)
}

// ZerosMatrix creates a zero-filled rows x cols matrix.
func ZerosMatrix[T Element](b Backend, rows, cols int) *Matrix[T] {
	return dense.ZerosMatrix[T](b, rows, cols)
}

// OnesMatrix creates a rows x cols matrix with every element set to one.
func OnesMatrix[T Element](b Backend, rows, cols int) *Matrix[T] {
	return dense.OnesMatrix[T](b, rows, cols)
}

// FullMatrix creates a rows x cols matrix with every element set to value.
func FullMatrix[T Element](b Backend, rows, cols int, value T) *Matrix[T] {
	return dense.FullMatrix(b, rows, cols, value)
}

// Eye creates the n x n identity matrix.
//
//	id := dense.Eye[float64](backend, 3)
func Eye[T Element](b Backend, n int) *Matrix[T] {
	return dense.Eye[T](b, n)
}
