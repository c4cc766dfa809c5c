// Copyright 2026 The Matra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package algebra

import (
	"github.com/matra-math/matra/dense"
	"github.com/matra-math/matra/internal/algebra"
)

// Sum returns the sum of all elements of v.
func Sum[T dense.Element](v dense.VectorOperand[T]) T {
	return algebra.Sum(v)
}

// Norm returns the Euclidean (L2) norm of v.
func Norm[T dense.Element](v dense.VectorOperand[T]) T {
	return algebra.Norm(v)
}

// LpNorm returns the Lp norm of v. The exponent p must be at least 1;
// math.Inf(1) gives the maximum norm. An invalid exponent panics.
func LpNorm[T dense.Element](v dense.VectorOperand[T], p float64) T {
	return algebra.LpNorm(v, p)
}

// FrobeniusNorm returns the Frobenius norm of m, the Euclidean norm of
// its elements.
func FrobeniusNorm[T dense.Element](m dense.MatrixOperand[T]) T {
	return algebra.FrobeniusNorm(m)
}

// Normalize scales v in place to unit Euclidean norm. A zero-norm vector
// is left unchanged and reported as dense.ErrZeroNorm.
//
// Example:
//
//	v, _ := dense.NewVector(backend, []float64{3, 4})
//	err := algebra.Normalize(v) // v is now [0.6 0.8]
func Normalize[T dense.Element](v dense.VectorOperand[T]) error {
	return algebra.Normalize(v)
}

// NormalizeLp scales v in place to unit Lp norm. An invalid exponent
// panics; a zero-norm vector is reported as dense.ErrZeroNorm.
func NormalizeLp[T dense.Element](v dense.VectorOperand[T], p float64) error {
	return algebra.NormalizeLp(v, p)
}
