// Copyright 2026 The Matra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dense

import (
	"github.com/matra-math/matra/internal/dense"
)

// Backend is the compute contract containers carry and operators dispatch
// on. Implementations work on the dtype-erased Raw representation, so one
// kernel set serves owned containers and views alike.
//
// Backends assume operands already validated by the operator layer:
// mismatched shapes or unsupported dtypes are programmer errors and panic.
// Only Inverse can fail on well-formed input and returns an error.
//
// The module ships two implementations, backend/cpu and backend/gonum.
type Backend interface {
	// Element-wise binary operations. Operands have equal shape; the
	// result is a new owned Raw.
	Add(a, b *Raw) *Raw // Element-wise addition.
	Sub(a, b *Raw) *Raw // Element-wise subtraction.
	Mul(a, b *Raw) *Raw // Element-wise (Hadamard) product.
	Div(a, b *Raw) *Raw // Element-wise quotient, IEEE semantics.

	// In-place element-wise updates of dst.
	AddAssign(dst, src *Raw) // dst += src.
	SubAssign(dst, src *Raw) // dst -= src.

	// Scalar operations (element-wise with scalar).
	Scale(x *Raw, k float64) *Raw      // k * x into a new Raw.
	DivScalar(x *Raw, k float64) *Raw  // x / k into a new Raw.
	ScaleAssign(x *Raw, k float64)     // x *= k in place.
	DivScalarAssign(x *Raw, k float64) // x /= k in place.

	// Element-wise map into a new Raw, one method per dtype.
	Apply32(x *Raw, f func(float32) float32) *Raw
	Apply64(x *Raw, f func(float64) float64) *Raw

	// Reduction operations.
	Dot(a, b *Raw) float64            // Inner product of equal-length vectors.
	Sum(x *Raw) float64               // Sum of all elements.
	Norm(x *Raw) float64              // Euclidean (Frobenius for rank 2) norm.
	LpNorm(x *Raw, p float64) float64 // Lp norm, p >= 1 or +Inf.

	// Linear algebra.
	MatMul(a, b *Raw) *Raw        // Matrix product [m,k] x [k,n].
	MatVec(m, v *Raw) *Raw        // Matrix-vector product [m,n] x [n].
	VecMat(v, m *Raw) *Raw        // Vector-matrix product [m] x [m,n].
	Transpose(m *Raw) *Raw        // Transposed copy.
	Inverse(m *Raw) (*Raw, error) // Inverse of a square matrix, ErrSingular on failure.

	// Metadata.
	Name() string
}

// The public and internal contracts must stay in sync both ways.
var _ Backend = dense.Backend(nil)
var _ dense.Backend = Backend(nil)
